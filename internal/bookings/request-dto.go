package bookings

import "github.com/google/uuid"

// BookingRequest is the payload for reserving a venue slot.
type BookingRequest struct {
	VenueID    string `json:"venue_id" binding:"required,uuid"`
	EventDate  string `json:"event_date" binding:"required,datetime=2006-01-02"`
	StartTime  string `json:"start_time" binding:"required,clocktime"`
	EndTime    string `json:"end_time" binding:"required,clocktime"`
	GuestCount int    `json:"guest_count" binding:"omitempty,min=1"`
}

// venueID returns the parsed venue ID. Binding validates the format, so
// a failed parse surfaces as a venue-not-found downstream.
func (r BookingRequest) venueID() uuid.UUID {
	id, err := uuid.Parse(r.VenueID)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// CancelRequest carries an optional cancellation reason.
type CancelRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}
