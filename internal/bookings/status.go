package bookings

// Status is the booking lifecycle state.
//
//	PENDING -> CONFIRMED -> COMPLETED
//	PENDING -> CANCELLED
//	CONFIRMED -> CANCELLED
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// BlocksSlot reports whether a booking in this state holds its time slot.
// Cancelled and completed bookings release the slot.
func (s Status) BlocksSlot() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransition reports whether moving from s to next is a legal step.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// BlockingStatuses are the states counted by the availability guard.
var BlockingStatuses = []Status{StatusPending, StatusConfirmed}
