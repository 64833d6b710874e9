package venues

import (
	"context"
	"fmt"
	"time"

	"hallbook/internal/halls"
	"hallbook/internal/shared/utils/clock"
	"hallbook/pkg/cache"

	"github.com/google/uuid"
)

// HallDirectory is the slice of the halls service the venue catalog needs.
type HallDirectory interface {
	GetHall(ctx context.Context, id uuid.UUID) (*halls.Hall, error)
	IsManagement(ctx context.Context, hallID, userID uuid.UUID) (bool, error)
}

// Service interface defines the contract for venue business logic
type Service interface {
	CreateVenue(ctx context.Context, actorID uuid.UUID, req VenueRequest) (*Venue, error)
	GetVenue(ctx context.Context, id uuid.UUID) (*Venue, error)
	ListHallVenues(ctx context.Context, hallID uuid.UUID) ([]Venue, error)
	UpdateVenue(ctx context.Context, venueID, actorID uuid.UUID, req VenueUpdateRequest) (*Venue, error)

	SetPricing(ctx context.Context, venueID, actorID uuid.UUID, req SetPricingRequest) ([]PricingOverride, error)
	GetPricing(ctx context.Context, venueID uuid.UUID, date time.Time) ([]PricingOverride, error)
}

type service struct {
	repo     Repository
	hallsDir HallDirectory
	cache    cache.Service
	cacheTTL time.Duration
}

func NewService(repo Repository, hallsDir HallDirectory, cacheService cache.Service, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		hallsDir: hallsDir,
		cache:    cacheService,
		cacheTTL: cacheTTL,
	}
}

func venueCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("hallbook:venues:%s", id)
}

func pricingCacheKey(venueID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("hallbook:venues:%s:pricing:%s", venueID, clock.FormatDate(date))
}

func (s *service) CreateVenue(ctx context.Context, actorID uuid.UUID, req VenueRequest) (*Venue, error) {
	hallID, err := uuid.Parse(req.HallID)
	if err != nil {
		return nil, ErrHallNotFound
	}

	if _, err := s.hallsDir.GetHall(ctx, hallID); err != nil {
		return nil, ErrHallNotFound
	}

	allowed, err := s.hallsDir.IsManagement(ctx, hallID, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check hall access: %w", err)
	}
	if !allowed {
		return nil, ErrNotAuthorized
	}

	minHours := req.MinBookingHours
	if minHours == 0 {
		minHours = 2
	}

	venue := &Venue{
		HallID:           hallID,
		Name:             req.Name,
		Description:      req.Description,
		Capacity:         req.Capacity,
		MinBookingHours:  minHours,
		BasePricePerHour: req.BasePricePerHour,
		Active:           true,
	}

	if err := s.repo.CreateVenue(ctx, venue); err != nil {
		return nil, err
	}

	return venue, nil
}

func (s *service) GetVenue(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	err := s.cache.GetOrSet(ctx, venueCacheKey(id), s.cacheTTL, func() (interface{}, error) {
		return s.repo.GetVenueByID(ctx, id)
	}, &venue)
	if err != nil {
		return s.repo.GetVenueByID(ctx, id)
	}
	return &venue, nil
}

func (s *service) ListHallVenues(ctx context.Context, hallID uuid.UUID) ([]Venue, error) {
	if _, err := s.hallsDir.GetHall(ctx, hallID); err != nil {
		return nil, ErrHallNotFound
	}
	return s.repo.GetVenuesByHall(ctx, hallID)
}

func (s *service) UpdateVenue(ctx context.Context, venueID, actorID uuid.UUID, req VenueUpdateRequest) (*Venue, error) {
	venue, err := s.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.hallsDir.IsManagement(ctx, venue.HallID, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check hall access: %w", err)
	}
	if !allowed {
		return nil, ErrNotAuthorized
	}

	if req.Name != "" {
		venue.Name = req.Name
	}
	if req.Description != nil {
		venue.Description = *req.Description
	}
	if req.Capacity > 0 {
		venue.Capacity = req.Capacity
	}
	if req.MinBookingHours > 0 {
		venue.MinBookingHours = req.MinBookingHours
	}
	if req.BasePricePerHour > 0 {
		venue.BasePricePerHour = req.BasePricePerHour
	}
	if req.Active != nil {
		venue.Active = *req.Active
	}

	if err := s.repo.UpdateVenue(ctx, venue); err != nil {
		return nil, err
	}

	// Stale reads here would quote the old rate, so drop the entry now.
	_ = s.cache.Delete(ctx, venueCacheKey(venueID))

	return venue, nil
}

func (s *service) SetPricing(ctx context.Context, venueID, actorID uuid.UUID, req SetPricingRequest) ([]PricingOverride, error) {
	venue, err := s.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.hallsDir.IsManagement(ctx, venue.HallID, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check hall access: %w", err)
	}
	if !allowed {
		return nil, ErrNotAuthorized
	}

	date, err := clock.ParseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	overrides, err := buildOverrides(venueID, date, req.Slots)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplacePricing(ctx, venueID, date, overrides); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, pricingCacheKey(venueID, date))

	return overrides, nil
}

func (s *service) GetPricing(ctx context.Context, venueID uuid.UUID, date time.Time) ([]PricingOverride, error) {
	if _, err := s.repo.GetVenueByID(ctx, venueID); err != nil {
		return nil, err
	}

	var overrides []PricingOverride
	err := s.cache.GetOrSet(ctx, pricingCacheKey(venueID, date), s.cacheTTL, func() (interface{}, error) {
		return s.repo.GetOverrides(ctx, venueID, date)
	}, &overrides)
	if err != nil {
		return s.repo.GetOverrides(ctx, venueID, date)
	}
	return overrides, nil
}

// buildOverrides validates each slot and rejects windows that collide
// with each other.
func buildOverrides(venueID uuid.UUID, date time.Time, slots []PricingSlotRequest) ([]PricingOverride, error) {
	type window struct{ start, end int }
	windows := make([]window, 0, len(slots))
	overrides := make([]PricingOverride, 0, len(slots))

	for _, slot := range slots {
		start, err := clock.ParseMinutes(slot.SlotStart)
		if err != nil {
			return nil, ErrInvalidSlot
		}
		end, err := clock.ParseMinutes(slot.SlotEnd)
		if err != nil {
			return nil, ErrInvalidSlot
		}
		if end <= start {
			return nil, ErrInvalidSlot
		}

		for _, w := range windows {
			if start < w.end && w.start < end {
				return nil, ErrOverlappingSlots
			}
		}
		windows = append(windows, window{start: start, end: end})

		overrides = append(overrides, PricingOverride{
			VenueID:       venueID,
			EffectiveDate: date,
			SlotStart:     slot.SlotStart,
			SlotEnd:       slot.SlotEnd,
			PricePerHour:  slot.PricePerHour,
		})
	}

	return overrides, nil
}
