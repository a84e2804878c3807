package core

import "context"

type StoreAPI interface {
	ListDepartments(ctx context.Context) ([]Department, error)
	GetDepartment(ctx context.Context, id int64) (Department, error)
	CreateDepartment(ctx context.Context, name string, description *string) (Department, error)
	UpdateDepartment(ctx context.Context, id int64, name string, description *string) (Department, error)
	DeleteDepartment(ctx context.Context, id int64) error

	ListPositions(ctx context.Context, departmentID *int64) ([]Position, error)
	GetPosition(ctx context.Context, id int64) (Position, error)
	CreatePosition(ctx context.Context, name string, departmentID *int64, description *string) (Position, error)
	UpdatePosition(ctx context.Context, id int64, name string, departmentID *int64, description *string) (Position, error)
	DeletePosition(ctx context.Context, id int64) error

	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	ExportEmployees(ctx context.Context, departmentID *int64, status string) ([]Employee, error)
	GetEmployee(ctx context.Context, id int64) (Employee, error)
	CreateEmployee(ctx context.Context, input CreateEmployeeInput) (Employee, error)
	UpdateEmployee(ctx context.Context, id int64, input UpdateEmployeeInput) (Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}
