package core

import (
	"context"

	"backoffice/internal/platform/db"
)

const departmentColumns = `
    SELECT d.id, d.name, d.description, d.created_at, d.updated_at,
           COUNT(e.id) AS employee_count
    FROM departments d
    LEFT JOIN employees e ON d.id = e.department_id AND e.status = 'active'
`

func (s *Store) ListDepartments(ctx context.Context) ([]Department, error) {
	rows, err := s.DB.Query(ctx, departmentColumns+" GROUP BY d.id ORDER BY d.name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Department{}
	for rows.Next() {
		var d Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt, &d.EmployeeCount); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) GetDepartment(ctx context.Context, id int64) (Department, error) {
	var d Department
	err := s.DB.QueryRow(ctx, departmentColumns+" WHERE d.id = $1 GROUP BY d.id", id).
		Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt, &d.EmployeeCount)
	if db.IsNoRows(err) {
		return Department{}, ErrNotFound
	}
	return d, err
}

func (s *Store) CreateDepartment(ctx context.Context, name string, description *string) (Department, error) {
	var d Department
	err := s.DB.QueryRow(ctx, `
    INSERT INTO departments (name, description)
    VALUES ($1, $2)
    RETURNING id, name, description, created_at, updated_at
  `, name, description).Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt)
	if db.IsUniqueViolation(err) {
		return Department{}, ErrDuplicate
	}
	return d, err
}

func (s *Store) UpdateDepartment(ctx context.Context, id int64, name string, description *string) (Department, error) {
	var d Department
	err := s.DB.QueryRow(ctx, `
    UPDATE departments SET name = $1, description = $2, updated_at = CURRENT_TIMESTAMP
    WHERE id = $3
    RETURNING id, name, description, created_at, updated_at
  `, name, description, id).Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt)
	if db.IsNoRows(err) {
		return Department{}, ErrNotFound
	}
	if db.IsUniqueViolation(err) {
		return Department{}, ErrDuplicate
	}
	return d, err
}

func (s *Store) DeleteDepartment(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM departments WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
