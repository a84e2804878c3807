package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// AuthUser is the users row joined with its employee record, as needed for
// issuing tokens.
type AuthUser struct {
	ID           int64
	Email        string
	Password     string
	Name         string
	Role         string
	EmployeeID   *int64
	EmployeeCode *string
}

// Profile is the /auth/me projection.
type Profile struct {
	ID             int64   `json:"id"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	EmployeeID     *int64  `json:"employee_id"`
	EmployeeCode   *string `json:"employee_code"`
	DepartmentID   *int64  `json:"department_id"`
	PositionID     *int64  `json:"position_id"`
	DepartmentName *string `json:"department_name"`
	PositionName   *string `json:"position_name"`
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (AuthUser, error) {
	var out AuthUser
	err := s.DB.QueryRow(ctx, `
    SELECT u.id, u.email, u.password, u.name, u.role, u.employee_id, e.employee_code
    FROM users u
    LEFT JOIN employees e ON u.employee_id = e.id
    WHERE u.email = $1
  `, email).Scan(&out.ID, &out.Email, &out.Password, &out.Name, &out.Role, &out.EmployeeID, &out.EmployeeCode)
	return out, err
}

// FindUserByRefreshToken only matches when the presented token is the one
// currently stored on the row, which is what invalidates rotated tokens.
func (s *Store) FindUserByRefreshToken(ctx context.Context, userID int64, refreshToken string) (AuthUser, error) {
	var out AuthUser
	err := s.DB.QueryRow(ctx, `
    SELECT u.id, u.email, u.password, u.name, u.role, u.employee_id, e.employee_code
    FROM users u
    LEFT JOIN employees e ON u.employee_id = e.id
    WHERE u.id = $1 AND u.refresh_token = $2
  `, userID, refreshToken).Scan(&out.ID, &out.Email, &out.Password, &out.Name, &out.Role, &out.EmployeeID, &out.EmployeeCode)
	return out, err
}

func (s *Store) SaveRefreshToken(ctx context.Context, userID int64, refreshToken string) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET refresh_token = $1 WHERE id = $2", refreshToken, userID)
	return err
}

func (s *Store) ClearRefreshToken(ctx context.Context, userID int64) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET refresh_token = NULL WHERE id = $1", userID)
	return err
}

func (s *Store) PasswordHash(ctx context.Context, userID int64) (string, error) {
	var hash string
	err := s.DB.QueryRow(ctx, "SELECT password FROM users WHERE id = $1", userID).Scan(&hash)
	return hash, err
}

func (s *Store) UpdatePassword(ctx context.Context, userID int64, hash string) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET password = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2", hash, userID)
	return err
}

func (s *Store) FindProfile(ctx context.Context, userID int64) (Profile, error) {
	var out Profile
	err := s.DB.QueryRow(ctx, `
    SELECT u.id, u.email, u.name, u.role, u.employee_id,
           e.employee_code, e.department_id, e.position_id,
           d.name AS department_name, p.name AS position_name
    FROM users u
    LEFT JOIN employees e ON u.employee_id = e.id
    LEFT JOIN departments d ON e.department_id = d.id
    LEFT JOIN positions p ON e.position_id = p.id
    WHERE u.id = $1
  `, userID).Scan(&out.ID, &out.Email, &out.Name, &out.Role, &out.EmployeeID,
		&out.EmployeeCode, &out.DepartmentID, &out.PositionID,
		&out.DepartmentName, &out.PositionName)
	return out, err
}
