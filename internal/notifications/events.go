package notifications

import "time"

// Event types published to the booking lifecycle topic.
const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
	EventBookingCompleted = "booking.completed"
	EventPaymentSettled   = "payment.settled"
	EventPaymentRefunded  = "payment.refunded"
)

// BookingEvent is the wire payload for booking lifecycle notifications.
// Messages are keyed by BookingID so every event for one booking lands
// on the same partition in order.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	VenueID    string    `json:"venue_id"`
	CustomerID string    `json:"customer_id"`
	Amount     float64   `json:"amount,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
