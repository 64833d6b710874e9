package venues

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface defines the contract for venue data access
type Repository interface {
	CreateVenue(ctx context.Context, venue *Venue) error
	GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	GetVenuesByHall(ctx context.Context, hallID uuid.UUID) ([]Venue, error)
	UpdateVenue(ctx context.Context, venue *Venue) error

	// ReplacePricing swaps out every override for the (venue, date) pair
	// in one transaction.
	ReplacePricing(ctx context.Context, venueID uuid.UUID, date time.Time, overrides []PricingOverride) error
	GetOverrides(ctx context.Context, venueID uuid.UUID, date time.Time) ([]PricingOverride, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateVenue(ctx context.Context, venue *Venue) error {
	if err := r.db.WithContext(ctx).Create(venue).Error; err != nil {
		return fmt.Errorf("failed to create venue: %w", err)
	}
	return nil
}

func (r *repository) GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&venue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	return &venue, nil
}

func (r *repository) GetVenuesByHall(ctx context.Context, hallID uuid.UUID) ([]Venue, error) {
	var venues []Venue
	err := r.db.WithContext(ctx).
		Where("hall_id = ?", hallID).
		Order("created_at ASC").
		Find(&venues).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	return venues, nil
}

// venueColumns lists every mutable column explicitly. A struct update
// would skip zero values, silently dropping Active=false and cleared
// descriptions.
func venueColumns(venue *Venue) map[string]interface{} {
	return map[string]interface{}{
		"name":                venue.Name,
		"description":         venue.Description,
		"capacity":            venue.Capacity,
		"min_booking_hours":   venue.MinBookingHours,
		"base_price_per_hour": venue.BasePricePerHour,
		"active":              venue.Active,
	}
}

func (r *repository) UpdateVenue(ctx context.Context, venue *Venue) error {
	result := r.db.WithContext(ctx).Model(&Venue{}).Where("id = ?", venue.ID).Updates(venueColumns(venue))
	if result.Error != nil {
		return fmt.Errorf("failed to update venue: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrVenueNotFound
	}
	return nil
}

func (r *repository) ReplacePricing(ctx context.Context, venueID uuid.UUID, date time.Time, overrides []PricingOverride) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ? AND effective_date = ?", venueID, date).
			Delete(&PricingOverride{}).Error; err != nil {
			return fmt.Errorf("failed to clear pricing overrides: %w", err)
		}

		if len(overrides) == 0 {
			return nil
		}

		if err := tx.Create(&overrides).Error; err != nil {
			return fmt.Errorf("failed to insert pricing overrides: %w", err)
		}
		return nil
	})
}

func (r *repository) GetOverrides(ctx context.Context, venueID uuid.UUID, date time.Time) ([]PricingOverride, error) {
	var overrides []PricingOverride
	err := r.db.WithContext(ctx).
		Where("venue_id = ? AND effective_date = ?", venueID, date).
		Order("slot_start ASC").
		Find(&overrides).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pricing overrides: %w", err)
	}
	return overrides, nil
}
