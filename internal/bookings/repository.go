package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hallbook/internal/venues"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository interface defines the contract for booking data access
type Repository interface {
	// CreateBookingWithSlotCheck inserts the booking only if no live
	// booking overlaps its window. The venue row is locked for the
	// duration of the check so concurrent requests for the same venue
	// serialize and at most one of two overlapping requests wins.
	CreateBookingWithSlotCheck(ctx context.Context, booking *Booking) error

	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetBookingsByCustomer(ctx context.Context, customerID uuid.UUID) ([]Booking, error)
	GetBookingsByVenue(ctx context.Context, venueID uuid.UUID, date *time.Time) ([]Booking, error)
	CountOverlapping(ctx context.Context, venueID uuid.UUID, date time.Time, startTime, endTime string) (int64, error)

	// UpdateStatus moves the booking from one exact state to another.
	// The update is a compare-and-set on the current status, so a
	// concurrent transition makes this return ErrAlreadyTerminal-style
	// staleness via zero rows affected.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status, reason string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// overlapClause matches live bookings whose half-open window intersects
// [startTime, endTime). Back-to-back bookings sharing a boundary do not
// overlap.
const overlapClause = "venue_id = ? AND event_date = ? AND status IN ? AND start_time < ? AND end_time > ?"

// lockForUpdate adds a SELECT ... FOR UPDATE row lock to the query so
// writers of the same row serialize within the surrounding transaction.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *repository) CreateBookingWithSlotCheck(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the venue row so overlap checks for this venue run one
		// at a time. The gap between SELECT COUNT and INSERT is what
		// would otherwise let two overlapping requests both succeed.
		var venue venues.Venue
		if err := lockForUpdate(tx).
			Where("id = ?", booking.VenueID).
			First(&venue).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}
			return fmt.Errorf("failed to lock venue: %w", err)
		}

		var overlapping int64
		err := tx.Model(&Booking{}).
			Where(overlapClause, booking.VenueID, booking.EventDate, BlockingStatuses, booking.EndTime, booking.StartTime).
			Count(&overlapping).Error
		if err != nil {
			return fmt.Errorf("failed to check slot availability: %w", err)
		}
		if overlapping > 0 {
			return ErrSlotUnavailable
		}

		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
}

func (r *repository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *repository) GetBookingsByCustomer(ctx context.Context, customerID uuid.UUID) ([]Booking, error) {
	var list []Booking
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("event_date DESC, start_time DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list customer bookings: %w", err)
	}
	return list, nil
}

func (r *repository) GetBookingsByVenue(ctx context.Context, venueID uuid.UUID, date *time.Time) ([]Booking, error) {
	query := r.db.WithContext(ctx).Where("venue_id = ?", venueID)
	if date != nil {
		query = query.Where("event_date = ?", *date)
	}

	var list []Booking
	err := query.Order("event_date ASC, start_time ASC").Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list venue bookings: %w", err)
	}
	return list, nil
}

func (r *repository) CountOverlapping(ctx context.Context, venueID uuid.UUID, date time.Time, startTime, endTime string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Booking{}).
		Where(overlapClause, venueID, date, BlockingStatuses, endTime, startTime).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}
	return count, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status, reason string) error {
	updates := map[string]interface{}{"status": to}
	if reason != "" {
		updates["cancel_reason"] = reason
	}

	result := r.db.WithContext(ctx).Model(&Booking{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update booking status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}
