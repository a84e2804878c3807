package core

import "time"

const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

type Department struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	EmployeeCount int64     `json:"employee_count"`
}

type Position struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	DepartmentID   *int64    `json:"department_id"`
	Description    *string   `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	DepartmentName *string   `json:"department_name"`
	EmployeeCount  int64     `json:"employee_count"`
}

type Employee struct {
	ID             int64      `json:"id"`
	EmployeeCode   string     `json:"employee_code"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          *string    `json:"phone"`
	Address        *string    `json:"address"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	HireDate       time.Time  `json:"hire_date"`
	DepartmentID   *int64     `json:"department_id"`
	PositionID     *int64     `json:"position_id"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DepartmentName *string    `json:"department_name"`
	PositionName   *string    `json:"position_name"`
}

type EmployeeFilter struct {
	Search       string
	DepartmentID *int64
	Status       string
}

type CreateEmployeeInput struct {
	EmployeeCode      string
	Name              string
	Email             string
	Phone             *string
	Address           *string
	DateOfBirth       *time.Time
	HireDate          time.Time
	DepartmentID      *int64
	PositionID        *int64
	CreateUserAccount bool
	Password          string
}

type UpdateEmployeeInput struct {
	EmployeeCode string
	Name         string
	Email        string
	Phone        *string
	Address      *string
	DateOfBirth  *time.Time
	HireDate     time.Time
	DepartmentID *int64
	PositionID   *int64
	Status       string
}
