package leave

import (
	"context"
	"fmt"

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

const leaveColumns = `
    SELECT l.id, l.employee_id, l.leave_type, l.start_date, l.end_date,
           l.reason, l.status, l.approved_by, l.approved_at, l.created_at, l.updated_at,
           e.name AS employee_name, e.employee_code, u.name AS approved_by_name
    FROM leaves l
    JOIN employees e ON l.employee_id = e.id
    LEFT JOIN users u ON l.approved_by = u.id
`

func scanLeave(row pgx.Row) (Leave, error) {
	var l Leave
	err := row.Scan(&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate,
		&l.Reason, &l.Status, &l.ApprovedBy, &l.ApprovedAt, &l.CreatedAt, &l.UpdatedAt,
		&l.EmployeeName, &l.EmployeeCode, &l.ApprovedByName)
	return l, err
}

func (s *Store) List(ctx context.Context, filter Filter) ([]Leave, error) {
	query := leaveColumns + " WHERE 1=1"
	args := []any{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND l.employee_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND l.status = $%d", len(args))
	}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		query += fmt.Sprintf(" AND l.start_date >= $%d", len(args))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		query += fmt.Sprintf(" AND l.end_date <= $%d", len(args))
	}

	query += " ORDER BY l.created_at DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Leave{}
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (Leave, error) {
	l, err := scanLeave(s.DB.QueryRow(ctx, leaveColumns+" WHERE l.id = $1", id))
	if db.IsNoRows(err) {
		return Leave{}, ErrNotFound
	}
	return l, err
}

func (s *Store) Create(ctx context.Context, input CreateInput) (Leave, error) {
	var l Leave
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leaves (employee_id, leave_type, start_date, end_date, reason)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, employee_id, leave_type, start_date, end_date, reason, status,
              approved_by, approved_at, created_at, updated_at
  `, input.EmployeeID, input.LeaveType, input.StartDate, input.EndDate, input.Reason).
		Scan(&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.Reason, &l.Status,
			&l.ApprovedBy, &l.ApprovedAt, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

// Decide settles a pending request. The row is locked so two reviewers
// cannot both see it as pending.
func (s *Store) Decide(ctx context.Context, id int64, status string, approverID int64) (Leave, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Leave{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current string
	err = tx.QueryRow(ctx, "SELECT status FROM leaves WHERE id = $1 FOR UPDATE", id).Scan(&current)
	if db.IsNoRows(err) {
		return Leave{}, ErrNotFound
	}
	if err != nil {
		return Leave{}, err
	}
	if err := CanModify(current); err != nil {
		return Leave{}, err
	}

	var l Leave
	err = tx.QueryRow(ctx, `
    UPDATE leaves SET status = $1, approved_by = $2, approved_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
    WHERE id = $3
    RETURNING id, employee_id, leave_type, start_date, end_date, reason, status,
              approved_by, approved_at, created_at, updated_at
  `, status, approverID, id).
		Scan(&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.Reason, &l.Status,
			&l.ApprovedBy, &l.ApprovedAt, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return Leave{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Leave{}, err
	}
	return l, nil
}

// Update edits a request that is still pending, re-checking the state under
// a row lock.
func (s *Store) Update(ctx context.Context, id int64, input UpdateInput) (Leave, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Leave{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current string
	err = tx.QueryRow(ctx, "SELECT status FROM leaves WHERE id = $1 FOR UPDATE", id).Scan(&current)
	if db.IsNoRows(err) {
		return Leave{}, ErrNotFound
	}
	if err != nil {
		return Leave{}, err
	}
	if err := CanModify(current); err != nil {
		return Leave{}, err
	}

	var l Leave
	err = tx.QueryRow(ctx, `
    UPDATE leaves SET leave_type = $1, start_date = $2, end_date = $3, reason = $4, updated_at = CURRENT_TIMESTAMP
    WHERE id = $5
    RETURNING id, employee_id, leave_type, start_date, end_date, reason, status,
              approved_by, approved_at, created_at, updated_at
  `, input.LeaveType, input.StartDate, input.EndDate, input.Reason, id).
		Scan(&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.Reason, &l.Status,
			&l.ApprovedBy, &l.ApprovedAt, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return Leave{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Leave{}, err
	}
	return l, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM leaves WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
