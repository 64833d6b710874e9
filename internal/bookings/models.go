package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Booking reserves a venue for one contiguous window on a single date.
// TotalAmount is quoted once at creation and never recomputed, so later
// pricing changes cannot alter an existing reservation.
type Booking struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VenueID      uuid.UUID `json:"venue_id" gorm:"type:uuid;not null;index:idx_bookings_venue_date"`
	CustomerID   uuid.UUID `json:"customer_id" gorm:"type:uuid;not null;index"`
	EventDate    time.Time `json:"event_date" gorm:"type:date;not null;index:idx_bookings_venue_date"`
	StartTime    string    `json:"start_time" gorm:"type:time;not null"`
	EndTime      string    `json:"end_time" gorm:"type:time;not null"`
	GuestCount   int       `json:"guest_count" gorm:"not null;default:0"`
	Status       Status    `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	TotalAmount  float64   `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	PaidAmount   float64   `json:"paid_amount" gorm:"type:decimal(10,2);not null;default:0"`
	CancelReason string    `json:"cancel_reason,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Booking) TableName() string {
	return "bookings"
}

// Outstanding is the amount still owed on the booking.
func (b *Booking) Outstanding() float64 {
	remaining := b.TotalAmount - b.PaidAmount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsFullyPaid reports whether payments cover the frozen total.
func (b *Booking) IsFullyPaid() bool {
	return b.PaidAmount >= b.TotalAmount
}
