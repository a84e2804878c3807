package auth

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Identity is the authenticated caller as carried through request context.
type Identity struct {
	ID         int64
	Email      string
	Name       string
	Role       string
	EmployeeID *int64
}

func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}

// CanAccessEmployee reports whether the caller may read or act on records
// belonging to employeeID. Admins see everyone, employees only themselves.
func CanAccessEmployee(id Identity, employeeID int64) bool {
	if id.IsAdmin() {
		return true
	}
	return id.EmployeeID != nil && *id.EmployeeID == employeeID
}

// ScopeEmployeeID returns the employee filter a listing must apply for the
// caller. nil means unrestricted.
func ScopeEmployeeID(id Identity) *int64 {
	if id.IsAdmin() {
		return nil
	}
	return id.EmployeeID
}
