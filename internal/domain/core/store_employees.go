package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"backoffice/internal/domain/auth"
	"backoffice/internal/platform/db"
)

const employeeColumns = `
    SELECT e.id, e.employee_code, e.name, e.email, e.phone, e.address,
           e.date_of_birth, e.hire_date, e.department_id, e.position_id,
           e.status, e.created_at, e.updated_at,
           d.name AS department_name, p.name AS position_name
    FROM employees e
    LEFT JOIN departments d ON e.department_id = d.id
    LEFT JOIN positions p ON e.position_id = p.id
`

func scanEmployee(row pgx.Row) (Employee, error) {
	var e Employee
	err := row.Scan(&e.ID, &e.EmployeeCode, &e.Name, &e.Email, &e.Phone, &e.Address,
		&e.DateOfBirth, &e.HireDate, &e.DepartmentID, &e.PositionID,
		&e.Status, &e.CreatedAt, &e.UpdatedAt,
		&e.DepartmentName, &e.PositionName)
	return e, err
}

func (s *Store) ListEmployees(ctx context.Context, filter EmployeeFilter) ([]Employee, error) {
	query := employeeColumns + " WHERE 1=1"
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (e.name ILIKE $%d OR e.employee_code ILIKE $%d OR e.email ILIKE $%d)", len(args), len(args), len(args))
	}
	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		query += fmt.Sprintf(" AND e.department_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND e.status = $%d", len(args))
	}

	query += " ORDER BY e.created_at DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ExportEmployees returns rows for the CSV export, ordered by employee code.
func (s *Store) ExportEmployees(ctx context.Context, departmentID *int64, status string) ([]Employee, error) {
	query := employeeColumns + " WHERE 1=1"
	args := []any{}

	if departmentID != nil {
		args = append(args, *departmentID)
		query += fmt.Sprintf(" AND e.department_id = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND e.status = $%d", len(args))
	}

	query += " ORDER BY e.employee_code ASC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, id int64) (Employee, error) {
	e, err := scanEmployee(s.DB.QueryRow(ctx, employeeColumns+" WHERE e.id = $1", id))
	if db.IsNoRows(err) {
		return Employee{}, ErrNotFound
	}
	return e, err
}

// CreateEmployee inserts the employee and, when requested, its login account
// in one transaction so a failed user insert never leaves an orphan employee.
func (s *Store) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (Employee, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Employee{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var existing int64
	err = tx.QueryRow(ctx, "SELECT id FROM employees WHERE employee_code = $1 OR email = $2",
		input.EmployeeCode, input.Email).Scan(&existing)
	if err == nil {
		return Employee{}, ErrDuplicate
	}
	if !db.IsNoRows(err) {
		return Employee{}, err
	}

	var e Employee
	err = tx.QueryRow(ctx, `
    INSERT INTO employees
      (employee_code, name, email, phone, address, date_of_birth, hire_date, department_id, position_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING id, employee_code, name, email, phone, address, date_of_birth, hire_date,
              department_id, position_id, status, created_at, updated_at
  `, input.EmployeeCode, input.Name, input.Email, input.Phone, input.Address,
		input.DateOfBirth, input.HireDate, input.DepartmentID, input.PositionID).
		Scan(&e.ID, &e.EmployeeCode, &e.Name, &e.Email, &e.Phone, &e.Address,
			&e.DateOfBirth, &e.HireDate, &e.DepartmentID, &e.PositionID,
			&e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return Employee{}, ErrDuplicate
		}
		return Employee{}, err
	}

	if input.CreateUserAccount && input.Password != "" {
		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			return Employee{}, err
		}
		if _, err := tx.Exec(ctx, `
      INSERT INTO users (email, password, name, role, employee_id)
      VALUES ($1, $2, $3, 'employee', $4)
    `, input.Email, hash, input.Name, e.ID); err != nil {
			if db.IsUniqueViolation(err) {
				return Employee{}, ErrDuplicate
			}
			return Employee{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return Employee{}, err
	}
	return e, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, id int64, input UpdateEmployeeInput) (Employee, error) {
	var existing int64
	err := s.DB.QueryRow(ctx, "SELECT id FROM employees WHERE id = $1", id).Scan(&existing)
	if db.IsNoRows(err) {
		return Employee{}, ErrNotFound
	}
	if err != nil {
		return Employee{}, err
	}

	err = s.DB.QueryRow(ctx, "SELECT id FROM employees WHERE (employee_code = $1 OR email = $2) AND id != $3",
		input.EmployeeCode, input.Email, id).Scan(&existing)
	if err == nil {
		return Employee{}, ErrDuplicate
	}
	if !db.IsNoRows(err) {
		return Employee{}, err
	}

	var e Employee
	err = s.DB.QueryRow(ctx, `
    UPDATE employees SET
      employee_code = $1, name = $2, email = $3, phone = $4, address = $5,
      date_of_birth = $6, hire_date = $7, department_id = $8, position_id = $9,
      status = $10, updated_at = CURRENT_TIMESTAMP
    WHERE id = $11
    RETURNING id, employee_code, name, email, phone, address, date_of_birth, hire_date,
              department_id, position_id, status, created_at, updated_at
  `, input.EmployeeCode, input.Name, input.Email, input.Phone, input.Address,
		input.DateOfBirth, input.HireDate, input.DepartmentID, input.PositionID, input.Status, id).
		Scan(&e.ID, &e.EmployeeCode, &e.Name, &e.Email, &e.Phone, &e.Address,
			&e.DateOfBirth, &e.HireDate, &e.DepartmentID, &e.PositionID,
			&e.Status, &e.CreatedAt, &e.UpdatedAt)
	if db.IsUniqueViolation(err) {
		return Employee{}, ErrDuplicate
	}
	return e, err
}

func (s *Store) DeleteEmployee(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
