package venues

import "errors"

var (
	ErrVenueNotFound    = errors.New("venue not found")
	ErrHallNotFound     = errors.New("hall not found")
	ErrNotAuthorized    = errors.New("not authorized to manage this venue")
	ErrInvalidSlot      = errors.New("slot end must be after slot start")
	ErrOverlappingSlots = errors.New("pricing slots must not overlap")
	ErrInvalidDate      = errors.New("invalid date")
)
