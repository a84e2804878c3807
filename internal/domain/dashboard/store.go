package dashboard

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"backoffice/internal/domain/leave"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

type AttendanceToday struct {
	Present int64 `json:"present"`
	Absent  int64 `json:"absent"`
	Late    int64 `json:"late"`
}

type AttendanceMonthly struct {
	Present int64 `json:"present"`
	Absent  int64 `json:"absent"`
	Late    int64 `json:"late"`
	Total   int64 `json:"total"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

// Stats is the dashboard payload. Keys are camelCase, unlike the rest of
// the API, matching the dashboard consumer.
type Stats struct {
	TotalEmployees        int64             `json:"totalEmployees"`
	ActiveEmployees       int64             `json:"activeEmployees"`
	TotalDepartments      int64             `json:"totalDepartments"`
	TotalPositions        int64             `json:"totalPositions"`
	TodayAttendance       AttendanceToday   `json:"todayAttendance"`
	PendingLeaves         int64             `json:"pendingLeaves"`
	MonthlyAttendance     AttendanceMonthly `json:"monthlyAttendance"`
	RecentLeaves          []leave.Leave     `json:"recentLeaves"`
	EmployeesByDepartment []DepartmentCount `json:"employeesByDepartment"`
}

func (s *Store) Stats(ctx context.Context, now time.Time) (Stats, error) {
	var out Stats

	if err := s.DB.QueryRow(ctx, "SELECT COUNT(*) FROM employees").Scan(&out.TotalEmployees); err != nil {
		return Stats{}, err
	}
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(*) FROM employees WHERE status = 'active'").Scan(&out.ActiveEmployees); err != nil {
		return Stats{}, err
	}
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(*) FROM departments").Scan(&out.TotalDepartments); err != nil {
		return Stats{}, err
	}
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(*) FROM positions").Scan(&out.TotalPositions); err != nil {
		return Stats{}, err
	}

	today := now.Format("2006-01-02")
	if err := s.DB.QueryRow(ctx, `
    SELECT
      COUNT(CASE WHEN check_in IS NOT NULL THEN 1 END),
      COUNT(CASE WHEN status = 'absent' THEN 1 END),
      COUNT(CASE WHEN status = 'late' THEN 1 END)
    FROM attendances WHERE date = $1
  `, today).Scan(&out.TodayAttendance.Present, &out.TodayAttendance.Absent, &out.TodayAttendance.Late); err != nil {
		return Stats{}, err
	}

	if err := s.DB.QueryRow(ctx, "SELECT COUNT(*) FROM leaves WHERE status = 'pending'").Scan(&out.PendingLeaves); err != nil {
		return Stats{}, err
	}

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
	if err := s.DB.QueryRow(ctx, `
    SELECT
      COUNT(CASE WHEN status = 'present' THEN 1 END),
      COUNT(CASE WHEN status = 'absent' THEN 1 END),
      COUNT(CASE WHEN status = 'late' THEN 1 END),
      COUNT(*)
    FROM attendances WHERE date >= $1
  `, startOfMonth).Scan(&out.MonthlyAttendance.Present, &out.MonthlyAttendance.Absent,
		&out.MonthlyAttendance.Late, &out.MonthlyAttendance.Total); err != nil {
		return Stats{}, err
	}

	rows, err := s.DB.Query(ctx, `
    SELECT l.id, l.employee_id, l.leave_type, l.start_date, l.end_date,
           l.reason, l.status, l.approved_by, l.approved_at, l.created_at, l.updated_at,
           e.name AS employee_name
    FROM leaves l
    JOIN employees e ON l.employee_id = e.id
    ORDER BY l.created_at DESC LIMIT 5
  `)
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()

	out.RecentLeaves = []leave.Leave{}
	for rows.Next() {
		var l leave.Leave
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate,
			&l.Reason, &l.Status, &l.ApprovedBy, &l.ApprovedAt, &l.CreatedAt, &l.UpdatedAt,
			&l.EmployeeName); err != nil {
			return Stats{}, err
		}
		out.RecentLeaves = append(out.RecentLeaves, l)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}
	rows.Close()

	deptRows, err := s.DB.Query(ctx, `
    SELECT d.name AS department, COUNT(e.id) AS count
    FROM departments d
    LEFT JOIN employees e ON d.id = e.department_id AND e.status = 'active'
    GROUP BY d.id, d.name
    ORDER BY count DESC
  `)
	if err != nil {
		return Stats{}, err
	}
	defer deptRows.Close()

	out.EmployeesByDepartment = []DepartmentCount{}
	for deptRows.Next() {
		var dc DepartmentCount
		if err := deptRows.Scan(&dc.Department, &dc.Count); err != nil {
			return Stats{}, err
		}
		out.EmployeesByDepartment = append(out.EmployeesByDepartment, dc)
	}
	return out, deptRows.Err()
}
