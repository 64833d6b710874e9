package bookings

import "errors"

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrVenueNotFound     = errors.New("venue not found")
	ErrVenueInactive     = errors.New("venue is not accepting bookings")
	ErrHallNotApproved   = errors.New("hall is not approved for bookings")
	ErrSlotUnavailable   = errors.New("requested slot is already booked")
	ErrDurationTooShort  = errors.New("booking is shorter than the venue minimum")
	ErrInvalidTimeRange  = errors.New("end time must be after start time")
	ErrAlreadyTerminal   = errors.New("booking is already completed or cancelled")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrNotAuthorized     = errors.New("not authorized for this booking")
)
