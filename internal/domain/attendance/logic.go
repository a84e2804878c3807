package attendance

import "errors"

var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("not checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrDuplicateDate     = errors.New("attendance for date already exists")
	ErrNotFound          = errors.New("attendance not found")
)

// CanCheckIn validates the check-in transition for today's record, which may
// not exist yet.
func CanCheckIn(checkIn *string) error {
	if checkIn != nil {
		return ErrAlreadyCheckedIn
	}
	return nil
}

// CanCheckOut validates the check-out transition: check-in must have
// happened and check-out must not.
func CanCheckOut(checkIn, checkOut *string) error {
	if checkIn == nil {
		return ErrNotCheckedIn
	}
	if checkOut != nil {
		return ErrAlreadyCheckedOut
	}
	return nil
}
