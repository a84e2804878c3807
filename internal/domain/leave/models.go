package leave

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Leave struct {
	ID             int64      `json:"id"`
	EmployeeID     int64      `json:"employee_id"`
	LeaveType      string     `json:"leave_type"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        time.Time  `json:"end_date"`
	Reason         *string    `json:"reason"`
	Status         string     `json:"status"`
	ApprovedBy     *int64     `json:"approved_by"`
	ApprovedAt     *time.Time `json:"approved_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	EmployeeName   *string    `json:"employee_name,omitempty"`
	EmployeeCode   *string    `json:"employee_code,omitempty"`
	ApprovedByName *string    `json:"approved_by_name,omitempty"`
}

type Filter struct {
	EmployeeID *int64
	Status     string
	StartDate  string
	EndDate    string
}

type CreateInput struct {
	EmployeeID int64
	LeaveType  string
	StartDate  string
	EndDate    string
	Reason     *string
}

type UpdateInput struct {
	LeaveType string
	StartDate string
	EndDate   string
	Reason    *string
}
