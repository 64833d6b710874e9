package payments

import (
	"context"
	"fmt"
	"time"

	"hallbook/internal/bookings"
	"hallbook/internal/notifications"
	"hallbook/pkg/cache"
	"hallbook/pkg/logger"

	"github.com/google/uuid"
)

// BookingDirectory is the slice of the reservation engine the payment
// service needs. GetBooking enforces booking-level access for the
// acting user.
type BookingDirectory interface {
	GetBooking(ctx context.Context, id, actorID uuid.UUID, role string) (*bookings.Booking, error)
}

// Service interface defines the contract for payment business logic
type Service interface {
	CreateIntent(ctx context.Context, actorID uuid.UUID, role string, req PaymentIntentRequest) (*Payment, error)
	ConfirmSettlement(ctx context.Context, actorID uuid.UUID, role, gatewayRef string) (*Payment, error)
	ProcessRefund(ctx context.Context, actorID uuid.UUID, role string, req RefundRequest) (*Payment, error)
	GetPayment(ctx context.Context, id, actorID uuid.UUID, role string) (*Payment, error)
	ListBookingPayments(ctx context.Context, bookingID, actorID uuid.UUID, role string) ([]Payment, error)
}

type service struct {
	repo           Repository
	bookingsDir    BookingDirectory
	gateway        Gateway
	cache          cache.Service
	producer       notifications.Producer
	log            *logger.Logger
	idempotencyTTL time.Duration
	currency       string
}

func NewService(repo Repository, bookingsDir BookingDirectory, gateway Gateway, cacheService cache.Service, producer notifications.Producer, log *logger.Logger, idempotencyTTL time.Duration, currency string) Service {
	return &service{
		repo:           repo,
		bookingsDir:    bookingsDir,
		gateway:        gateway,
		cache:          cacheService,
		producer:       producer,
		log:            log,
		idempotencyTTL: idempotencyTTL,
		currency:       currency,
	}
}

func settlementKey(gatewayRef string) string {
	return fmt.Sprintf("hallbook:payments:settled:%s", gatewayRef)
}

func (s *service) CreateIntent(ctx context.Context, actorID uuid.UUID, role string, req PaymentIntentRequest) (*Payment, error) {
	kind := Kind(req.Kind)
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, bookings.ErrBookingNotFound
	}

	booking, err := s.bookingsDir.GetBooking(ctx, bookingID, actorID, role)
	if err != nil {
		return nil, err
	}

	// Only the booking's customer pays for it.
	if booking.CustomerID != actorID {
		return nil, ErrNotAuthorized
	}
	if !booking.Status.BlocksSlot() {
		return nil, ErrBookingNotPayable
	}

	amount := req.Amount
	if amount == 0 {
		amount = defaultAmount(kind, booking)
	}
	if amount <= 0 || amount > booking.Outstanding() {
		return nil, ErrAmountTooLarge
	}

	gatewayRef, err := s.gateway.CreateCharge(ctx, amount, s.currency, booking.ID)
	if err != nil {
		// Nothing persisted: a failed gateway call leaves no ledger
		// trace.
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}

	payment := &Payment{
		BookingID:  booking.ID,
		Kind:       kind,
		Amount:     roundAmount(amount),
		Status:     StatusPending,
		GatewayRef: gatewayRef,
	}

	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

func (s *service) ConfirmSettlement(ctx context.Context, actorID uuid.UUID, role, gatewayRef string) (*Payment, error) {
	payment, err := s.repo.GetByGatewayRef(ctx, gatewayRef)
	if err != nil {
		return nil, err
	}

	if _, err := s.bookingsDir.GetBooking(ctx, payment.BookingID, actorID, role); err != nil {
		return nil, err
	}

	// Keyed dedup in Redis short-circuits retried confirmations. The
	// database status check below stays authoritative in case the key
	// expired or Redis was unavailable.
	claimed, err := s.cache.SetIfAbsent(ctx, settlementKey(gatewayRef), "1", s.idempotencyTTL)
	if err != nil {
		s.log.Warn("settlement idempotency check unavailable", "gateway_ref", gatewayRef, "error", err)
		claimed = true
	}
	if !claimed {
		return s.repo.GetByGatewayRef(ctx, gatewayRef)
	}

	settled, booking, alreadySettled, err := s.repo.Settle(ctx, gatewayRef)
	if err != nil {
		// Release the claim so a later retry can reach the database
		// again.
		_ = s.cache.Delete(ctx, settlementKey(gatewayRef))
		return nil, err
	}
	if alreadySettled {
		return settled, nil
	}

	s.log.LogPaymentSettled(ctx, booking.ID.String(), gatewayRef, settled.Amount)
	s.publish(ctx, notifications.EventPaymentSettled, booking, settled.Amount, "")
	if booking.Status == bookings.StatusConfirmed {
		s.publish(ctx, notifications.EventBookingConfirmed, booking, booking.PaidAmount, "")
	}

	return settled, nil
}

func (s *service) ProcessRefund(ctx context.Context, actorID uuid.UUID, role string, req RefundRequest) (*Payment, error) {
	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, bookings.ErrBookingNotFound
	}

	booking, err := s.bookingsDir.GetBooking(ctx, bookingID, actorID, role)
	if err != nil {
		return nil, err
	}

	original, err := s.repo.FirstSuccessfulPayment(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	amount := req.Amount
	if amount == 0 {
		amount = original.Amount
	}
	if amount > booking.PaidAmount {
		return nil, ErrRefundExceedsPaid
	}

	// Simulated charges never reached a processor, so there is nothing
	// external to reverse.
	var refundRef string
	if IsSimulatedRef(original.GatewayRef) {
		refundRef = simulatedRefundRef(original.GatewayRef)
	} else {
		refundRef, err = s.gateway.CreateRefund(ctx, original.GatewayRef, amount)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
		}
	}

	entry := &Payment{
		BookingID:  bookingID,
		Kind:       original.Kind,
		Amount:     -roundAmount(amount),
		Status:     StatusRefunded,
		GatewayRef: refundRef,
	}

	updated, err := s.repo.ApplyRefund(ctx, entry)
	if err != nil {
		return nil, err
	}

	s.log.LogRefundProcessed(ctx, bookingID.String(), actorID.String(), amount)
	s.publish(ctx, notifications.EventPaymentRefunded, updated, amount, req.Reason)

	return entry, nil
}

func (s *service) GetPayment(ctx context.Context, id, actorID uuid.UUID, role string) (*Payment, error) {
	payment, err := s.repo.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.bookingsDir.GetBooking(ctx, payment.BookingID, actorID, role); err != nil {
		return nil, err
	}

	return payment, nil
}

func (s *service) ListBookingPayments(ctx context.Context, bookingID, actorID uuid.UUID, role string) ([]Payment, error) {
	if _, err := s.bookingsDir.GetBooking(ctx, bookingID, actorID, role); err != nil {
		return nil, err
	}
	return s.repo.GetPaymentsByBooking(ctx, bookingID)
}

// defaultAmount picks the charge amount when the client omits one.
func defaultAmount(kind Kind, booking *bookings.Booking) float64 {
	switch kind {
	case KindInstallment1:
		half := roundAmount(booking.TotalAmount / 2)
		if half > booking.Outstanding() {
			return booking.Outstanding()
		}
		return half
	default:
		return booking.Outstanding()
	}
}

func (s *service) publish(ctx context.Context, eventType string, booking *bookings.Booking, amount float64, reason string) {
	err := s.producer.Publish(ctx, notifications.BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID.String(),
		VenueID:    booking.VenueID.String(),
		CustomerID: booking.CustomerID.String(),
		Amount:     amount,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.log.Warn("failed to publish payment event", "type", eventType, "booking_id", booking.ID, "error", err)
	}
}
