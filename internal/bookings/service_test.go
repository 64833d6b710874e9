package bookings

import (
	"context"
	"sync"
	"testing"
	"time"

	"hallbook/internal/halls"
	"hallbook/internal/notifications"
	"hallbook/internal/shared/utils/clock"
	"hallbook/internal/venues"
	"hallbook/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory Repository with the same serialization
// guarantee as the SQL implementation: the slot check and insert run
// under one lock per call.
type fakeRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*Booking
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: make(map[uuid.UUID]*Booking)}
}

func (r *fakeRepo) CreateBookingWithSlotCheck(_ context.Context, booking *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	newStart, _ := clock.ParseMinutes(booking.StartTime)
	newEnd, _ := clock.ParseMinutes(booking.EndTime)

	for _, existing := range r.bookings {
		if existing.VenueID != booking.VenueID || !existing.EventDate.Equal(booking.EventDate) {
			continue
		}
		if !existing.Status.BlocksSlot() {
			continue
		}
		start, _ := clock.ParseMinutes(existing.StartTime)
		end, _ := clock.ParseMinutes(existing.EndTime)
		if newStart < end && start < newEnd {
			return ErrSlotUnavailable
		}
	}

	booking.ID = uuid.New()
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeRepo) GetBookingByID(_ context.Context, id uuid.UUID) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeRepo) GetBookingsByCustomer(_ context.Context, customerID uuid.UUID) ([]Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			list = append(list, *b)
		}
	}
	return list, nil
}

func (r *fakeRepo) GetBookingsByVenue(_ context.Context, venueID uuid.UUID, date *time.Time) ([]Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []Booking
	for _, b := range r.bookings {
		if b.VenueID != venueID {
			continue
		}
		if date != nil && !b.EventDate.Equal(*date) {
			continue
		}
		list = append(list, *b)
	}
	return list, nil
}

func (r *fakeRepo) CountOverlapping(_ context.Context, venueID uuid.UUID, date time.Time, startTime, endTime string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	newStart, _ := clock.ParseMinutes(startTime)
	newEnd, _ := clock.ParseMinutes(endTime)

	var count int64
	for _, b := range r.bookings {
		if b.VenueID != venueID || !b.EventDate.Equal(date) || !b.Status.BlocksSlot() {
			continue
		}
		start, _ := clock.ParseMinutes(b.StartTime)
		end, _ := clock.ParseMinutes(b.EndTime)
		if newStart < end && start < newEnd {
			count++
		}
	}
	return count, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to Status, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok || booking.Status != from {
		return ErrInvalidTransition
	}
	booking.Status = to
	if reason != "" {
		booking.CancelReason = reason
	}
	return nil
}

type fakeCatalog struct {
	venues    map[uuid.UUID]*venues.Venue
	overrides map[uuid.UUID][]venues.PricingOverride
}

func (c *fakeCatalog) GetVenue(_ context.Context, id uuid.UUID) (*venues.Venue, error) {
	venue, ok := c.venues[id]
	if !ok {
		return nil, venues.ErrVenueNotFound
	}
	return venue, nil
}

func (c *fakeCatalog) GetPricing(_ context.Context, venueID uuid.UUID, _ time.Time) ([]venues.PricingOverride, error) {
	return c.overrides[venueID], nil
}

type fakeHallDirectory struct {
	halls      map[uuid.UUID]*halls.Hall
	management map[uuid.UUID]map[uuid.UUID]bool
}

func (d *fakeHallDirectory) GetHall(_ context.Context, id uuid.UUID) (*halls.Hall, error) {
	hall, ok := d.halls[id]
	if !ok {
		return nil, halls.ErrHallNotFound
	}
	return hall, nil
}

func (d *fakeHallDirectory) IsManagement(_ context.Context, hallID, userID uuid.UUID) (bool, error) {
	return d.management[hallID][userID], nil
}

type fakeProducer struct {
	mu     sync.Mutex
	events []notifications.BookingEvent
}

func (p *fakeProducer) Publish(_ context.Context, event notifications.BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakeProducer) Close() error { return nil }

func (p *fakeProducer) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type engineFixture struct {
	service  Service
	repo     *fakeRepo
	catalog  *fakeCatalog
	hallDir  *fakeHallDirectory
	producer *fakeProducer

	venueID    uuid.UUID
	hallID     uuid.UUID
	ownerID    uuid.UUID
	customerID uuid.UUID
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	hallID := uuid.New()
	venueID := uuid.New()
	ownerID := uuid.New()

	catalog := &fakeCatalog{
		venues: map[uuid.UUID]*venues.Venue{
			venueID: {
				ID:               venueID,
				HallID:           hallID,
				Name:             "Crystal Ballroom",
				Capacity:         400,
				MinBookingHours:  2,
				BasePricePerHour: 100.00,
				Active:           true,
			},
		},
		overrides: map[uuid.UUID][]venues.PricingOverride{},
	}

	hallDir := &fakeHallDirectory{
		halls: map[uuid.UUID]*halls.Hall{
			hallID: {ID: hallID, OwnerID: ownerID, Status: halls.StatusApproved},
		},
		management: map[uuid.UUID]map[uuid.UUID]bool{
			hallID: {ownerID: true},
		},
	}

	repo := newFakeRepo()
	producer := &fakeProducer{}
	service := NewService(repo, catalog, hallDir, producer, logger.GetDefault())

	return &engineFixture{
		service:    service,
		repo:       repo,
		catalog:    catalog,
		hallDir:    hallDir,
		producer:   producer,
		venueID:    venueID,
		hallID:     hallID,
		ownerID:    ownerID,
		customerID: uuid.New(),
	}
}

func (f *engineFixture) request(start, end string) BookingRequest {
	return BookingRequest{
		VenueID:    f.venueID.String(),
		EventDate:  "2026-09-12",
		StartTime:  start,
		EndTime:    end,
		GuestCount: 120,
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("quotes and freezes the total", func(t *testing.T) {
		f := newEngineFixture(t)

		booking, err := f.service.CreateBooking(ctx, f.customerID, f.request("14:00", "17:00"))
		require.NoError(t, err)

		assert.Equal(t, StatusPending, booking.Status)
		assert.Equal(t, 300.00, booking.TotalAmount)
		assert.Equal(t, 0.00, booking.PaidAmount)
		assert.Equal(t, []string{notifications.EventBookingCreated}, f.producer.types())
	})

	t.Run("applies pricing overrides to the overlap only", func(t *testing.T) {
		f := newEngineFixture(t)
		f.catalog.overrides[f.venueID] = []venues.PricingOverride{
			{SlotStart: "18:00", SlotEnd: "22:00", PricePerHour: 150.00},
		}

		booking, err := f.service.CreateBooking(ctx, f.customerID, f.request("17:00", "20:00"))
		require.NoError(t, err)
		assert.Equal(t, 300.00, booking.TotalAmount)
	})

	t.Run("rejects a window below the venue minimum", func(t *testing.T) {
		f := newEngineFixture(t)

		_, err := f.service.CreateBooking(ctx, f.customerID, f.request("14:00", "15:00"))
		assert.ErrorIs(t, err, ErrDurationTooShort)
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		f := newEngineFixture(t)

		_, err := f.service.CreateBooking(ctx, f.customerID, f.request("17:00", "14:00"))
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("rejects an unknown venue", func(t *testing.T) {
		f := newEngineFixture(t)
		req := f.request("14:00", "17:00")
		req.VenueID = uuid.New().String()

		_, err := f.service.CreateBooking(ctx, f.customerID, req)
		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("rejects an inactive venue", func(t *testing.T) {
		f := newEngineFixture(t)
		f.catalog.venues[f.venueID].Active = false

		_, err := f.service.CreateBooking(ctx, f.customerID, f.request("14:00", "17:00"))
		assert.ErrorIs(t, err, ErrVenueInactive)
	})

	t.Run("rejects an unapproved hall", func(t *testing.T) {
		f := newEngineFixture(t)
		f.hallDir.halls[f.hallID].Status = halls.StatusPending

		_, err := f.service.CreateBooking(ctx, f.customerID, f.request("14:00", "17:00"))
		assert.ErrorIs(t, err, ErrHallNotApproved)
	})

	t.Run("rejects overlap and allows back-to-back", func(t *testing.T) {
		f := newEngineFixture(t)

		_, err := f.service.CreateBooking(ctx, f.customerID, f.request("14:00", "17:00"))
		require.NoError(t, err)

		_, err = f.service.CreateBooking(ctx, uuid.New(), f.request("16:00", "19:00"))
		assert.ErrorIs(t, err, ErrSlotUnavailable)

		// Shared boundary does not overlap under the half-open rule.
		_, err = f.service.CreateBooking(ctx, uuid.New(), f.request("17:00", "19:00"))
		assert.NoError(t, err)
	})

	t.Run("cancelled bookings release the slot", func(t *testing.T) {
		f := newEngineFixture(t)

		booking, err := f.service.CreateBooking(ctx, f.customerID, f.request("14:00", "17:00"))
		require.NoError(t, err)

		_, err = f.service.CancelBooking(ctx, booking.ID, f.customerID, "CUSTOMER", "change of plans")
		require.NoError(t, err)

		_, err = f.service.CreateBooking(ctx, uuid.New(), f.request("14:00", "17:00"))
		assert.NoError(t, err)
	})
}

func TestCreateBooking_ConcurrentRequestsOneWinner(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	const attempts = 8
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.CreateBooking(ctx, uuid.New(), f.request("14:00", "17:00"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	winners := 0
	losers := 0
	for err := range results {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrSlotUnavailable)
			losers++
		}
	}

	assert.Equal(t, 1, winners)
	assert.Equal(t, attempts-1, losers)
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("customer cancels own booking", func(t *testing.T) {
		f := newEngineFixture(t)
		booking, err := f.service.CreateBooking(ctx, f.customerID, f.request("14:00", "17:00"))
		require.NoError(t, err)

		cancelled, err := f.service.CancelBooking(ctx, booking.ID, f.customerID, "CUSTOMER", "illness")
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, cancelled.Status)
		assert.Equal(t, "illness", cancelled.CancelReason)
	})

	t.Run("hall management cancels", func(t *testing.T) {
		f := newEngineFixture(t)
		booking, err := f.service.CreateBooking(ctx, f.customerID, f.request("14:00", "17:00"))
		require.NoError(t, err)

		_, err = f.service.CancelBooking(ctx, booking.ID, f.ownerID, "OWNER", "maintenance")
		assert.NoError(t, err)
	})

	t.Run("strangers are rejected", func(t *testing.T) {
		f := newEngineFixture(t)
		booking, err := f.service.CreateBooking(ctx, f.customerID, f.request("14:00", "17:00"))
		require.NoError(t, err)

		_, err = f.service.CancelBooking(ctx, booking.ID, uuid.New(), "CUSTOMER", "")
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("terminal bookings stay terminal", func(t *testing.T) {
		f := newEngineFixture(t)
		booking, err := f.service.CreateBooking(ctx, f.customerID, f.request("14:00", "17:00"))
		require.NoError(t, err)

		_, err = f.service.CancelBooking(ctx, booking.ID, f.customerID, "CUSTOMER", "first")
		require.NoError(t, err)

		_, err = f.service.CancelBooking(ctx, booking.ID, f.customerID, "CUSTOMER", "second")
		assert.ErrorIs(t, err, ErrAlreadyTerminal)
	})
}

func TestCompleteBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("management completes a confirmed booking", func(t *testing.T) {
		f := newEngineFixture(t)
		booking, err := f.service.CreateBooking(ctx, f.customerID, f.request("14:00", "17:00"))
		require.NoError(t, err)
		require.NoError(t, f.repo.UpdateStatus(ctx, booking.ID, StatusPending, StatusConfirmed, ""))

		completed, err := f.service.CompleteBooking(ctx, booking.ID, f.ownerID, "OWNER")
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, completed.Status)
	})

	t.Run("pending bookings cannot complete", func(t *testing.T) {
		f := newEngineFixture(t)
		booking, err := f.service.CreateBooking(ctx, f.customerID, f.request("14:00", "17:00"))
		require.NoError(t, err)

		_, err = f.service.CompleteBooking(ctx, booking.ID, f.ownerID, "OWNER")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("customers cannot complete", func(t *testing.T) {
		f := newEngineFixture(t)
		booking, err := f.service.CreateBooking(ctx, f.customerID, f.request("14:00", "17:00"))
		require.NoError(t, err)
		require.NoError(t, f.repo.UpdateStatus(ctx, booking.ID, StatusPending, StatusConfirmed, ""))

		_, err = f.service.CompleteBooking(ctx, booking.ID, f.customerID, "CUSTOMER")
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})
}

func TestQuoteAndAvailability(t *testing.T) {
	ctx := context.Background()
	date, _ := clock.ParseDate("2026-09-12")

	t.Run("quote matches booking price", func(t *testing.T) {
		f := newEngineFixture(t)

		total, err := f.service.QuotePrice(ctx, f.venueID, date, "14:00", "17:00")
		require.NoError(t, err)
		assert.Equal(t, 300.00, total)
	})

	t.Run("availability flips once a slot is taken", func(t *testing.T) {
		f := newEngineFixture(t)

		available, err := f.service.CheckAvailability(ctx, f.venueID, date, "14:00", "17:00")
		require.NoError(t, err)
		assert.True(t, available)

		_, err = f.service.CreateBooking(ctx, f.customerID, f.request("14:00", "17:00"))
		require.NoError(t, err)

		available, err = f.service.CheckAvailability(ctx, f.venueID, date, "16:00", "18:00")
		require.NoError(t, err)
		assert.False(t, available)

		available, err = f.service.CheckAvailability(ctx, f.venueID, date, "17:00", "19:00")
		require.NoError(t, err)
		assert.True(t, available)
	})
}
