package leave

import (
	"errors"
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestValidateDateRange(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  error
	}{
		{"normal range", "2026-09-01", "2026-09-05", nil},
		{"single day", "2026-09-01", "2026-09-01", nil},
		{"reversed range", "2026-09-05", "2026-09-01", ErrInvalidDateRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDateRange(date(tc.start), date(tc.end))
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestValidateDecision(t *testing.T) {
	for _, status := range []string{StatusApproved, StatusRejected} {
		if err := ValidateDecision(status); err != nil {
			t.Fatalf("%s: %v", status, err)
		}
	}
	for _, status := range []string{StatusPending, "cancelled", ""} {
		if err := ValidateDecision(status); !errors.Is(err, ErrInvalidDecision) {
			t.Fatalf("%q: got %v", status, err)
		}
	}
}

func TestCanModify(t *testing.T) {
	if err := CanModify(StatusPending); err != nil {
		t.Fatalf("pending: %v", err)
	}
	for _, status := range []string{StatusApproved, StatusRejected} {
		if err := CanModify(status); !errors.Is(err, ErrAlreadyProcessed) {
			t.Fatalf("%s: got %v", status, err)
		}
	}
}
