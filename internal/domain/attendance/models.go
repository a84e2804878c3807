package attendance

import "time"

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusLeave   = "leave"
)

type Attendance struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employee_id"`
	Date         time.Time `json:"date"`
	CheckIn      *string   `json:"check_in"`
	CheckOut     *string   `json:"check_out"`
	Status       string    `json:"status"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	EmployeeName *string   `json:"employee_name,omitempty"`
	EmployeeCode *string   `json:"employee_code,omitempty"`
}

type Filter struct {
	EmployeeID *int64
	StartDate  string
	EndDate    string
	Status     string
}

type CreateInput struct {
	EmployeeID int64
	Date       string
	CheckIn    *string
	CheckOut   *string
	Status     string
	Notes      *string
}

type UpdateInput struct {
	CheckIn  *string
	CheckOut *string
	Status   string
	Notes    *string
}
