package leave

import (
	"errors"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("start date after end date")
	ErrInvalidDecision  = errors.New("decision must be approved or rejected")
	ErrAlreadyProcessed = errors.New("leave already processed")
	ErrNotFound         = errors.New("leave not found")
)

// ValidateDateRange rejects requests whose start date falls after the end
// date. Equal dates are a valid single-day leave.
func ValidateDateRange(start, end time.Time) error {
	if start.After(end) {
		return ErrInvalidDateRange
	}
	return nil
}

// ValidateDecision accepts only the two terminal review states.
func ValidateDecision(status string) error {
	if status != StatusApproved && status != StatusRejected {
		return ErrInvalidDecision
	}
	return nil
}

// CanModify reports whether a request may still be edited or withdrawn.
// Only pending requests can.
func CanModify(status string) error {
	if status != StatusPending {
		return ErrAlreadyProcessed
	}
	return nil
}
