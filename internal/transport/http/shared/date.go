package shared

import (
	"errors"
	"time"
)

var ErrBadDate = errors.New("invalid date")

// ParseDate accepts the API's two date shapes: plain YYYY-MM-DD and full
// RFC3339 timestamps (what JSON clients send for date pickers).
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, ErrBadDate
}

// FormatDateID renders a date the way id-ID locale clients expect: D/M/YYYY.
func FormatDateID(t time.Time) string {
	return t.Format("2/1/2006")
}
