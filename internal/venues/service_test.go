package venues

import (
	"context"
	"sync"
	"testing"
	"time"

	"hallbook/internal/halls"
	"hallbook/internal/shared/utils/clock"
	"hallbook/pkg/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVenueRepo struct {
	mu        sync.Mutex
	venues    map[uuid.UUID]*Venue
	overrides map[string][]PricingOverride
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{
		venues:    make(map[uuid.UUID]*Venue),
		overrides: make(map[string][]PricingOverride),
	}
}

func pricingKey(venueID uuid.UUID, date time.Time) string {
	return venueID.String() + "/" + clock.FormatDate(date)
}

func (r *fakeVenueRepo) CreateVenue(_ context.Context, venue *Venue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	venue.ID = uuid.New()
	copied := *venue
	r.venues[venue.ID] = &copied
	return nil
}

func (r *fakeVenueRepo) GetVenueByID(_ context.Context, id uuid.UUID) (*Venue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	venue, ok := r.venues[id]
	if !ok {
		return nil, ErrVenueNotFound
	}
	copied := *venue
	return &copied, nil
}

func (r *fakeVenueRepo) GetVenuesByHall(_ context.Context, hallID uuid.UUID) ([]Venue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []Venue
	for _, v := range r.venues {
		if v.HallID == hallID {
			list = append(list, *v)
		}
	}
	return list, nil
}

func (r *fakeVenueRepo) UpdateVenue(_ context.Context, venue *Venue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.venues[venue.ID]; !ok {
		return ErrVenueNotFound
	}
	copied := *venue
	r.venues[venue.ID] = &copied
	return nil
}

func (r *fakeVenueRepo) ReplacePricing(_ context.Context, venueID uuid.UUID, date time.Time, overrides []PricingOverride) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides[pricingKey(venueID, date)] = overrides
	return nil
}

func (r *fakeVenueRepo) GetOverrides(_ context.Context, venueID uuid.UUID, date time.Time) ([]PricingOverride, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.overrides[pricingKey(venueID, date)], nil
}

type fakeHalls struct {
	halls      map[uuid.UUID]*halls.Hall
	management map[uuid.UUID]bool
}

func (d *fakeHalls) GetHall(_ context.Context, id uuid.UUID) (*halls.Hall, error) {
	hall, ok := d.halls[id]
	if !ok {
		return nil, halls.ErrHallNotFound
	}
	return hall, nil
}

func (d *fakeHalls) IsManagement(_ context.Context, _ uuid.UUID, userID uuid.UUID) (bool, error) {
	return d.management[userID], nil
}

type passthroughCache struct{}

func (passthroughCache) Get(context.Context, string, interface{}) error { return cache.ErrCacheMiss }
func (passthroughCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (passthroughCache) Delete(context.Context, string) error        { return nil }
func (passthroughCache) DeletePattern(context.Context, string) error { return nil }
func (passthroughCache) Exists(context.Context, string) bool         { return false }
func (passthroughCache) SetIfAbsent(context.Context, string, string, time.Duration) (bool, error) {
	return true, nil
}
func (passthroughCache) GetOrSet(_ context.Context, _ string, _ time.Duration, fetcher func() (interface{}, error), _ interface{}) error {
	_, err := fetcher()
	return err
}
func (passthroughCache) Ping(context.Context) error { return nil }

type venueFixture struct {
	service Service
	repo    *fakeVenueRepo

	hallID  uuid.UUID
	ownerID uuid.UUID
	venueID uuid.UUID
}

func newVenueFixture(t *testing.T) *venueFixture {
	t.Helper()

	hallID := uuid.New()
	ownerID := uuid.New()

	repo := newFakeVenueRepo()
	dir := &fakeHalls{
		halls:      map[uuid.UUID]*halls.Hall{hallID: {ID: hallID, OwnerID: ownerID, Status: halls.StatusApproved}},
		management: map[uuid.UUID]bool{ownerID: true},
	}

	service := NewService(repo, dir, passthroughCache{}, time.Minute)

	venue := &Venue{HallID: hallID, Name: "Crystal Ballroom", Capacity: 400, MinBookingHours: 2, BasePricePerHour: 100, Active: true}
	require.NoError(t, repo.CreateVenue(context.Background(), venue))

	return &venueFixture{
		service: service,
		repo:    repo,
		hallID:  hallID,
		ownerID: ownerID,
		venueID: venue.ID,
	}
}

func TestCreateVenue(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults minimum booking hours", func(t *testing.T) {
		f := newVenueFixture(t)

		venue, err := f.service.CreateVenue(ctx, f.ownerID, VenueRequest{
			HallID:           f.hallID.String(),
			Name:             "Garden Pavilion",
			Capacity:         150,
			BasePricePerHour: 65.50,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, venue.MinBookingHours)
		assert.True(t, venue.Active)
	})

	t.Run("rejects non-management", func(t *testing.T) {
		f := newVenueFixture(t)

		_, err := f.service.CreateVenue(ctx, uuid.New(), VenueRequest{
			HallID:           f.hallID.String(),
			Name:             "Garden Pavilion",
			Capacity:         150,
			BasePricePerHour: 65.50,
		})
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})
}

func TestSetPricing(t *testing.T) {
	ctx := context.Background()
	date, _ := clock.ParseDate("2026-09-12")

	slots := func(slots ...PricingSlotRequest) SetPricingRequest {
		return SetPricingRequest{Date: "2026-09-12", Slots: slots}
	}

	t.Run("replaces overrides wholesale", func(t *testing.T) {
		f := newVenueFixture(t)

		_, err := f.service.SetPricing(ctx, f.venueID, f.ownerID, slots(
			PricingSlotRequest{SlotStart: "10:00", SlotEnd: "14:00", PricePerHour: 80},
			PricingSlotRequest{SlotStart: "18:00", SlotEnd: "22:00", PricePerHour: 150},
		))
		require.NoError(t, err)

		_, err = f.service.SetPricing(ctx, f.venueID, f.ownerID, slots(
			PricingSlotRequest{SlotStart: "18:00", SlotEnd: "22:00", PricePerHour: 175},
		))
		require.NoError(t, err)

		stored, err := f.repo.GetOverrides(ctx, f.venueID, date)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, 175.00, stored[0].PricePerHour)
	})

	t.Run("empty slot list clears the date", func(t *testing.T) {
		f := newVenueFixture(t)

		_, err := f.service.SetPricing(ctx, f.venueID, f.ownerID, slots(
			PricingSlotRequest{SlotStart: "18:00", SlotEnd: "22:00", PricePerHour: 150},
		))
		require.NoError(t, err)

		_, err = f.service.SetPricing(ctx, f.venueID, f.ownerID, slots())
		require.NoError(t, err)

		stored, err := f.repo.GetOverrides(ctx, f.venueID, date)
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("rejects overlapping slots", func(t *testing.T) {
		f := newVenueFixture(t)

		_, err := f.service.SetPricing(ctx, f.venueID, f.ownerID, slots(
			PricingSlotRequest{SlotStart: "10:00", SlotEnd: "14:00", PricePerHour: 80},
			PricingSlotRequest{SlotStart: "13:00", SlotEnd: "16:00", PricePerHour: 90},
		))
		assert.ErrorIs(t, err, ErrOverlappingSlots)
	})

	t.Run("rejects inverted slots", func(t *testing.T) {
		f := newVenueFixture(t)

		_, err := f.service.SetPricing(ctx, f.venueID, f.ownerID, slots(
			PricingSlotRequest{SlotStart: "14:00", SlotEnd: "10:00", PricePerHour: 80},
		))
		assert.ErrorIs(t, err, ErrInvalidSlot)
	})

	t.Run("rejects non-management", func(t *testing.T) {
		f := newVenueFixture(t)

		_, err := f.service.SetPricing(ctx, f.venueID, uuid.New(), slots(
			PricingSlotRequest{SlotStart: "18:00", SlotEnd: "22:00", PricePerHour: 150},
		))
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("back-to-back slots are allowed", func(t *testing.T) {
		f := newVenueFixture(t)

		_, err := f.service.SetPricing(ctx, f.venueID, f.ownerID, slots(
			PricingSlotRequest{SlotStart: "10:00", SlotEnd: "14:00", PricePerHour: 80},
			PricingSlotRequest{SlotStart: "14:00", SlotEnd: "18:00", PricePerHour: 120},
		))
		assert.NoError(t, err)
	})
}

func TestUpdateVenue(t *testing.T) {
	ctx := context.Background()

	t.Run("applies partial updates", func(t *testing.T) {
		f := newVenueFixture(t)
		inactive := false

		venue, err := f.service.UpdateVenue(ctx, f.venueID, f.ownerID, VenueUpdateRequest{
			BasePricePerHour: 120.00,
			Active:           &inactive,
		})
		require.NoError(t, err)
		assert.Equal(t, 120.00, venue.BasePricePerHour)
		assert.False(t, venue.Active)
		assert.Equal(t, "Crystal Ballroom", venue.Name)
	})

	t.Run("rejects non-management", func(t *testing.T) {
		f := newVenueFixture(t)

		_, err := f.service.UpdateVenue(ctx, f.venueID, uuid.New(), VenueUpdateRequest{Capacity: 10})
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})
}
