package attendance

import (
	"context"
	"time"
)

type StoreAPI interface {
	List(ctx context.Context, filter Filter) ([]Attendance, error)
	ExportRows(ctx context.Context, filter Filter) ([]Attendance, error)
	CheckIn(ctx context.Context, employeeID int64, now time.Time) (Attendance, error)
	CheckOut(ctx context.Context, employeeID int64, now time.Time) (Attendance, error)
	TodayStatus(ctx context.Context, employeeID int64, now time.Time) (*Attendance, error)
	Create(ctx context.Context, input CreateInput) (Attendance, error)
	Update(ctx context.Context, id int64, input UpdateInput) (Attendance, error)
	Delete(ctx context.Context, id int64) error
}
