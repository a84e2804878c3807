package core

import (
	"context"

	"backoffice/internal/platform/db"
)

const positionColumns = `
    SELECT p.id, p.name, p.department_id, p.description, p.created_at, p.updated_at,
           d.name AS department_name,
           COUNT(e.id) AS employee_count
    FROM positions p
    LEFT JOIN departments d ON p.department_id = d.id
    LEFT JOIN employees e ON p.id = e.position_id AND e.status = 'active'
`

func (s *Store) ListPositions(ctx context.Context, departmentID *int64) ([]Position, error) {
	query := positionColumns
	args := []any{}
	if departmentID != nil {
		query += " WHERE p.department_id = $1"
		args = append(args, *departmentID)
	}
	query += " GROUP BY p.id, d.name ORDER BY p.name ASC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Position{}
	for rows.Next() {
		var p Position
		if err := rows.Scan(&p.ID, &p.Name, &p.DepartmentID, &p.Description, &p.CreatedAt, &p.UpdatedAt, &p.DepartmentName, &p.EmployeeCount); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) GetPosition(ctx context.Context, id int64) (Position, error) {
	var p Position
	err := s.DB.QueryRow(ctx, positionColumns+" WHERE p.id = $1 GROUP BY p.id, d.name", id).
		Scan(&p.ID, &p.Name, &p.DepartmentID, &p.Description, &p.CreatedAt, &p.UpdatedAt, &p.DepartmentName, &p.EmployeeCount)
	if db.IsNoRows(err) {
		return Position{}, ErrNotFound
	}
	return p, err
}

func (s *Store) CreatePosition(ctx context.Context, name string, departmentID *int64, description *string) (Position, error) {
	var p Position
	err := s.DB.QueryRow(ctx, `
    INSERT INTO positions (name, department_id, description)
    VALUES ($1, $2, $3)
    RETURNING id, name, department_id, description, created_at, updated_at
  `, name, departmentID, description).Scan(&p.ID, &p.Name, &p.DepartmentID, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (s *Store) UpdatePosition(ctx context.Context, id int64, name string, departmentID *int64, description *string) (Position, error) {
	var p Position
	err := s.DB.QueryRow(ctx, `
    UPDATE positions SET name = $1, department_id = $2, description = $3, updated_at = CURRENT_TIMESTAMP
    WHERE id = $4
    RETURNING id, name, department_id, description, created_at, updated_at
  `, name, departmentID, description, id).Scan(&p.ID, &p.Name, &p.DepartmentID, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if db.IsNoRows(err) {
		return Position{}, ErrNotFound
	}
	return p, err
}

func (s *Store) DeletePosition(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM positions WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
