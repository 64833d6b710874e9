package venues

import (
	"time"

	"github.com/google/uuid"
)

// Venue is a bookable room inside a hall. Pricing is a base hourly rate
// unless a PricingOverride covers part of the requested window.
type Venue struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	HallID           uuid.UUID `json:"hall_id" gorm:"type:uuid;not null;index"`
	Name             string    `json:"name" gorm:"type:varchar(255);not null"`
	Description      string    `json:"description" gorm:"type:text"`
	Capacity         int       `json:"capacity" gorm:"not null"`
	MinBookingHours  int       `json:"min_booking_hours" gorm:"not null;default:2"`
	BasePricePerHour float64   `json:"base_price_per_hour" gorm:"type:decimal(10,2);not null"`
	Active           bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Venue) TableName() string {
	return "venues"
}

// PricingOverride prices a time window on a specific date. Overrides for
// a (venue, date) pair are replaced wholesale, never patched.
type PricingOverride struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VenueID       uuid.UUID `json:"venue_id" gorm:"type:uuid;not null;index:idx_pricing_venue_date"`
	EffectiveDate time.Time `json:"effective_date" gorm:"type:date;not null;index:idx_pricing_venue_date"`
	SlotStart     string    `json:"slot_start" gorm:"type:time;not null"`
	SlotEnd       string    `json:"slot_end" gorm:"type:time;not null"`
	PricePerHour  float64   `json:"price_per_hour" gorm:"type:decimal(10,2);not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (PricingOverride) TableName() string {
	return "pricing_overrides"
}
