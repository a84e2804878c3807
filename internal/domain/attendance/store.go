package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"backoffice/internal/platform/db"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const attendanceColumns = `
    SELECT a.id, a.employee_id, a.date,
           to_char(a.check_in, 'HH24:MI:SS') AS check_in,
           to_char(a.check_out, 'HH24:MI:SS') AS check_out,
           a.status, a.notes, a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row) (Attendance, error) {
	var a Attendance
	err := row.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut,
		&a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (s *Store) List(ctx context.Context, filter Filter) ([]Attendance, error) {
	query := attendanceColumns + `,
           e.name AS employee_name, e.employee_code
    FROM attendances a
    JOIN employees e ON a.employee_id = e.id
    WHERE 1=1`
	args := []any{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND a.employee_id = $%d", len(args))
	}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		query += fmt.Sprintf(" AND a.date >= $%d", len(args))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		query += fmt.Sprintf(" AND a.date <= $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND a.status = $%d", len(args))
	}

	query += " ORDER BY a.date DESC, a.created_at DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Attendance{}
	for rows.Next() {
		var a Attendance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut,
			&a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
			&a.EmployeeName, &a.EmployeeCode); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ExportRows returns attendance rows for reports, newest date first then by
// employee code.
func (s *Store) ExportRows(ctx context.Context, filter Filter) ([]Attendance, error) {
	query := attendanceColumns + `,
           e.name AS employee_name, e.employee_code
    FROM attendances a
    JOIN employees e ON a.employee_id = e.id
    WHERE 1=1`
	args := []any{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND a.employee_id = $%d", len(args))
	}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		query += fmt.Sprintf(" AND a.date >= $%d", len(args))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		query += fmt.Sprintf(" AND a.date <= $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND a.status = $%d", len(args))
	}

	query += " ORDER BY a.date DESC, e.employee_code ASC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Attendance{}
	for rows.Next() {
		var a Attendance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut,
			&a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
			&a.EmployeeName, &a.EmployeeCode); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// CheckIn records today's check-in for the employee. The row for
// (employee, day) is locked for the duration of the transaction so two
// concurrent check-ins cannot both pass the state check.
func (s *Store) CheckIn(ctx context.Context, employeeID int64, now time.Time) (Attendance, error) {
	date := now.Format("2006-01-02")
	clock := now.Format("15:04:05")

	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Attendance{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	var checkIn *string
	err = tx.QueryRow(ctx, `
    SELECT id, to_char(check_in, 'HH24:MI:SS')
    FROM attendances
    WHERE employee_id = $1 AND date = $2
    FOR UPDATE
  `, employeeID, date).Scan(&id, &checkIn)

	var a Attendance
	switch {
	case err == nil:
		if err := CanCheckIn(checkIn); err != nil {
			return Attendance{}, err
		}
		a, err = scanAttendance(tx.QueryRow(ctx, `
      UPDATE attendances SET check_in = $1, status = 'present', updated_at = CURRENT_TIMESTAMP
      WHERE id = $2
      RETURNING id, employee_id, date,
                to_char(check_in, 'HH24:MI:SS'), to_char(check_out, 'HH24:MI:SS'),
                status, notes, created_at, updated_at
    `, clock, id))
		if err != nil {
			return Attendance{}, err
		}
	case db.IsNoRows(err):
		a, err = scanAttendance(tx.QueryRow(ctx, `
      INSERT INTO attendances (employee_id, date, check_in, status)
      VALUES ($1, $2, $3, 'present')
      RETURNING id, employee_id, date,
                to_char(check_in, 'HH24:MI:SS'), to_char(check_out, 'HH24:MI:SS'),
                status, notes, created_at, updated_at
    `, employeeID, date, clock))
		if err != nil {
			// A concurrent transaction created the row first.
			if db.IsUniqueViolation(err) {
				return Attendance{}, ErrAlreadyCheckedIn
			}
			return Attendance{}, err
		}
	default:
		return Attendance{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Attendance{}, err
	}
	return a, nil
}

// CheckOut records today's check-out under the same per-day row lock as
// CheckIn.
func (s *Store) CheckOut(ctx context.Context, employeeID int64, now time.Time) (Attendance, error) {
	date := now.Format("2006-01-02")
	clock := now.Format("15:04:05")

	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Attendance{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	var checkIn, checkOut *string
	err = tx.QueryRow(ctx, `
    SELECT id, to_char(check_in, 'HH24:MI:SS'), to_char(check_out, 'HH24:MI:SS')
    FROM attendances
    WHERE employee_id = $1 AND date = $2
    FOR UPDATE
  `, employeeID, date).Scan(&id, &checkIn, &checkOut)
	if db.IsNoRows(err) {
		return Attendance{}, ErrNotCheckedIn
	}
	if err != nil {
		return Attendance{}, err
	}

	if err := CanCheckOut(checkIn, checkOut); err != nil {
		return Attendance{}, err
	}

	a, err := scanAttendance(tx.QueryRow(ctx, `
    UPDATE attendances SET check_out = $1, updated_at = CURRENT_TIMESTAMP
    WHERE id = $2
    RETURNING id, employee_id, date,
              to_char(check_in, 'HH24:MI:SS'), to_char(check_out, 'HH24:MI:SS'),
              status, notes, created_at, updated_at
  `, clock, id))
	if err != nil {
		return Attendance{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Attendance{}, err
	}
	return a, nil
}

// TodayStatus returns today's record for the employee, or nil when the
// employee has not checked in yet.
func (s *Store) TodayStatus(ctx context.Context, employeeID int64, now time.Time) (*Attendance, error) {
	date := now.Format("2006-01-02")
	a, err := scanAttendance(s.DB.QueryRow(ctx, attendanceColumns+`
    FROM attendances a
    WHERE a.employee_id = $1 AND a.date = $2
  `, employeeID, date))
	if db.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) Create(ctx context.Context, input CreateInput) (Attendance, error) {
	a, err := scanAttendance(s.DB.QueryRow(ctx, `
    INSERT INTO attendances (employee_id, date, check_in, check_out, status, notes)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, employee_id, date,
              to_char(check_in, 'HH24:MI:SS'), to_char(check_out, 'HH24:MI:SS'),
              status, notes, created_at, updated_at
  `, input.EmployeeID, input.Date, input.CheckIn, input.CheckOut, input.Status, input.Notes))
	if db.IsUniqueViolation(err) {
		return Attendance{}, ErrDuplicateDate
	}
	return a, err
}

func (s *Store) Update(ctx context.Context, id int64, input UpdateInput) (Attendance, error) {
	a, err := scanAttendance(s.DB.QueryRow(ctx, `
    UPDATE attendances SET check_in = $1, check_out = $2, status = $3, notes = $4, updated_at = CURRENT_TIMESTAMP
    WHERE id = $5
    RETURNING id, employee_id, date,
              to_char(check_in, 'HH24:MI:SS'), to_char(check_out, 'HH24:MI:SS'),
              status, notes, created_at, updated_at
  `, input.CheckIn, input.CheckOut, input.Status, input.Notes, id))
	if db.IsNoRows(err) {
		return Attendance{}, ErrNotFound
	}
	return a, err
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM attendances WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
