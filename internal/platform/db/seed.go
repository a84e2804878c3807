package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"backoffice/internal/domain/auth"
	"backoffice/internal/platform/config"
)

var defaultDepartments = []struct {
	Name        string
	Description string
}{
	{"Human Resources", "HR Department"},
	{"Information Technology", "IT Department"},
	{"Finance", "Finance Department"},
	{"Marketing", "Marketing Department"},
}

// Seed provisions the default admin user and departments for the HR system.
// Safe to run on every startup.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureAdminUser(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminName, cfg.SeedAdminPassword); err != nil {
		return err
	}
	return ensureDefaultDepartments(ctx, pool)
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, email, name, password string) error {
	var id int64
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&id)
	if err == nil {
		return nil
	}
	if !IsNoRows(err) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
    INSERT INTO users (email, password, name, role)
    VALUES ($1, $2, $3, 'admin')
  `, email, hash, name)
	return err
}

func ensureDefaultDepartments(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM departments").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, dept := range defaultDepartments {
		if _, err := pool.Exec(ctx, "INSERT INTO departments (name, description) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING", dept.Name, dept.Description); err != nil {
			return err
		}
	}
	return nil
}
