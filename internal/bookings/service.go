package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hallbook/internal/halls"
	"hallbook/internal/notifications"
	"hallbook/internal/shared/utils/clock"
	"hallbook/internal/venues"
	"hallbook/pkg/logger"

	"github.com/google/uuid"
)

// VenueCatalog is the slice of the venues service the engine needs.
type VenueCatalog interface {
	GetVenue(ctx context.Context, id uuid.UUID) (*venues.Venue, error)
	GetPricing(ctx context.Context, venueID uuid.UUID, date time.Time) ([]venues.PricingOverride, error)
}

// HallDirectory answers hall lookups and management membership checks.
type HallDirectory interface {
	GetHall(ctx context.Context, id uuid.UUID) (*halls.Hall, error)
	IsManagement(ctx context.Context, hallID, userID uuid.UUID) (bool, error)
}

// Service interface defines the contract for the reservation engine
type Service interface {
	CreateBooking(ctx context.Context, customerID uuid.UUID, req BookingRequest) (*Booking, error)
	GetBooking(ctx context.Context, id, actorID uuid.UUID, role string) (*Booking, error)
	ListMyBookings(ctx context.Context, customerID uuid.UUID) ([]Booking, error)
	ListVenueBookings(ctx context.Context, venueID, actorID uuid.UUID, role string, date *time.Time) ([]Booking, error)
	CancelBooking(ctx context.Context, id, actorID uuid.UUID, role, reason string) (*Booking, error)
	CompleteBooking(ctx context.Context, id, actorID uuid.UUID, role string) (*Booking, error)

	QuotePrice(ctx context.Context, venueID uuid.UUID, date time.Time, startTime, endTime string) (float64, error)
	CheckAvailability(ctx context.Context, venueID uuid.UUID, date time.Time, startTime, endTime string) (bool, error)
}

type service struct {
	repo     Repository
	catalog  VenueCatalog
	hallsDir HallDirectory
	producer notifications.Producer
	log      *logger.Logger
}

func NewService(repo Repository, catalog VenueCatalog, hallsDir HallDirectory, producer notifications.Producer, log *logger.Logger) Service {
	return &service{
		repo:     repo,
		catalog:  catalog,
		hallsDir: hallsDir,
		producer: producer,
		log:      log,
	}
}

func (s *service) CreateBooking(ctx context.Context, customerID uuid.UUID, req BookingRequest) (*Booking, error) {
	date, err := clock.ParseDate(req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("invalid event date: %w", err)
	}

	startMin, err := clock.ParseMinutes(req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeRange
	}
	endMin, err := clock.ParseMinutes(req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeRange
	}
	if endMin <= startMin {
		return nil, ErrInvalidTimeRange
	}

	venue, err := s.catalog.GetVenue(ctx, req.venueID())
	if err != nil {
		return nil, ErrVenueNotFound
	}
	if !venue.Active {
		return nil, ErrVenueInactive
	}

	if endMin-startMin < venue.MinBookingHours*60 {
		return nil, ErrDurationTooShort
	}

	hall, err := s.hallsDir.GetHall(ctx, venue.HallID)
	if err != nil {
		return nil, fmt.Errorf("failed to load hall: %w", err)
	}
	if !hall.IsApproved() {
		return nil, ErrHallNotApproved
	}

	overrides, err := s.catalog.GetPricing(ctx, venue.ID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing: %w", err)
	}

	total := Quote(venue.BasePricePerHour, startMin, endMin, toRateWindows(overrides))

	booking := &Booking{
		VenueID:     venue.ID,
		CustomerID:  customerID,
		EventDate:   date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		GuestCount:  req.GuestCount,
		Status:      StatusPending,
		TotalAmount: total,
	}

	if err := s.repo.CreateBookingWithSlotCheck(ctx, booking); err != nil {
		return nil, err
	}

	s.log.LogBookingCreated(ctx, booking.ID.String(), booking.VenueID.String(), customerID.String())
	s.publish(ctx, notifications.EventBookingCreated, booking, "")

	return booking, nil
}

func (s *service) GetBooking(ctx context.Context, id, actorID uuid.UUID, role string) (*Booking, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.canAccess(ctx, booking, actorID, role)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrNotAuthorized
	}

	return booking, nil
}

func (s *service) ListMyBookings(ctx context.Context, customerID uuid.UUID) ([]Booking, error) {
	return s.repo.GetBookingsByCustomer(ctx, customerID)
}

func (s *service) ListVenueBookings(ctx context.Context, venueID, actorID uuid.UUID, role string, date *time.Time) ([]Booking, error) {
	venue, err := s.catalog.GetVenue(ctx, venueID)
	if err != nil {
		return nil, ErrVenueNotFound
	}

	if role != "ADMIN" {
		allowed, err := s.hallsDir.IsManagement(ctx, venue.HallID, actorID)
		if err != nil {
			return nil, fmt.Errorf("failed to check hall access: %w", err)
		}
		if !allowed {
			return nil, ErrNotAuthorized
		}
	}

	return s.repo.GetBookingsByVenue(ctx, venueID, date)
}

func (s *service) CancelBooking(ctx context.Context, id, actorID uuid.UUID, role, reason string) (*Booking, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.canAccess(ctx, booking, actorID, role)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrNotAuthorized
	}

	if booking.Status.IsTerminal() {
		return nil, ErrAlreadyTerminal
	}

	if err := s.repo.UpdateStatus(ctx, id, booking.Status, StatusCancelled, reason); err != nil {
		// A concurrent transition got there first.
		if errors.Is(err, ErrInvalidTransition) {
			return nil, ErrAlreadyTerminal
		}
		return nil, err
	}

	booking.Status = StatusCancelled
	booking.CancelReason = reason

	s.log.LogBookingCancelled(ctx, booking.ID.String(), actorID.String(), reason)
	s.publish(ctx, notifications.EventBookingCancelled, booking, reason)

	return booking, nil
}

func (s *service) CompleteBooking(ctx context.Context, id, actorID uuid.UUID, role string) (*Booking, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Completion is a venue-side action; customers do not complete
	// their own bookings.
	if role != "ADMIN" {
		allowed, err := s.isManagement(ctx, booking, actorID)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, ErrNotAuthorized
		}
	}

	if !booking.Status.CanTransition(StatusCompleted) {
		if booking.Status.IsTerminal() {
			return nil, ErrAlreadyTerminal
		}
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, booking.Status, StatusCompleted, ""); err != nil {
		return nil, err
	}

	booking.Status = StatusCompleted
	s.publish(ctx, notifications.EventBookingCompleted, booking, "")

	return booking, nil
}

func (s *service) QuotePrice(ctx context.Context, venueID uuid.UUID, date time.Time, startTime, endTime string) (float64, error) {
	startMin, err := clock.ParseMinutes(startTime)
	if err != nil {
		return 0, ErrInvalidTimeRange
	}
	endMin, err := clock.ParseMinutes(endTime)
	if err != nil {
		return 0, ErrInvalidTimeRange
	}
	if endMin <= startMin {
		return 0, ErrInvalidTimeRange
	}

	venue, err := s.catalog.GetVenue(ctx, venueID)
	if err != nil {
		return 0, ErrVenueNotFound
	}

	overrides, err := s.catalog.GetPricing(ctx, venueID, date)
	if err != nil {
		return 0, fmt.Errorf("failed to load pricing: %w", err)
	}

	return Quote(venue.BasePricePerHour, startMin, endMin, toRateWindows(overrides)), nil
}

func (s *service) CheckAvailability(ctx context.Context, venueID uuid.UUID, date time.Time, startTime, endTime string) (bool, error) {
	startMin, err := clock.ParseMinutes(startTime)
	if err != nil {
		return false, ErrInvalidTimeRange
	}
	endMin, err := clock.ParseMinutes(endTime)
	if err != nil {
		return false, ErrInvalidTimeRange
	}
	if endMin <= startMin {
		return false, ErrInvalidTimeRange
	}

	if _, err := s.catalog.GetVenue(ctx, venueID); err != nil {
		return false, ErrVenueNotFound
	}

	count, err := s.repo.CountOverlapping(ctx, venueID, date, startTime, endTime)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// canAccess allows the booking's customer, hall management, and admins.
func (s *service) canAccess(ctx context.Context, booking *Booking, actorID uuid.UUID, role string) (bool, error) {
	if booking.CustomerID == actorID || role == "ADMIN" {
		return true, nil
	}
	return s.isManagement(ctx, booking, actorID)
}

func (s *service) isManagement(ctx context.Context, booking *Booking, actorID uuid.UUID) (bool, error) {
	venue, err := s.catalog.GetVenue(ctx, booking.VenueID)
	if err != nil {
		return false, fmt.Errorf("failed to load venue: %w", err)
	}
	allowed, err := s.hallsDir.IsManagement(ctx, venue.HallID, actorID)
	if err != nil {
		return false, fmt.Errorf("failed to check hall access: %w", err)
	}
	return allowed, nil
}

// publish emits a lifecycle event without failing the request.
func (s *service) publish(ctx context.Context, eventType string, booking *Booking, reason string) {
	err := s.producer.Publish(ctx, notifications.BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID.String(),
		VenueID:    booking.VenueID.String(),
		CustomerID: booking.CustomerID.String(),
		Amount:     booking.TotalAmount,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.log.Warn("failed to publish booking event", "type", eventType, "booking_id", booking.ID, "error", err)
	}
}

func toRateWindows(overrides []venues.PricingOverride) []RateWindow {
	windows := make([]RateWindow, 0, len(overrides))
	for _, o := range overrides {
		start, err := clock.ParseMinutes(o.SlotStart)
		if err != nil {
			continue
		}
		end, err := clock.ParseMinutes(o.SlotEnd)
		if err != nil {
			continue
		}
		windows = append(windows, RateWindow{
			StartMinute:  start,
			EndMinute:    end,
			PricePerHour: o.PricePerHour,
		})
	}
	return windows
}
