package payments

import (
	"context"
	"errors"
	"fmt"
	"math"

	"hallbook/internal/bookings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository interface defines the contract for payment data access
type Repository interface {
	CreatePayment(ctx context.Context, payment *Payment) error
	GetPaymentByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	GetByGatewayRef(ctx context.Context, gatewayRef string) (*Payment, error)
	GetPaymentsByBooking(ctx context.Context, bookingID uuid.UUID) ([]Payment, error)
	FirstSuccessfulPayment(ctx context.Context, bookingID uuid.UUID) (*Payment, error)

	// Settle flips the entry to SUCCESS and applies it to the booking
	// in one transaction. Re-settling an already successful entry is a
	// no-op reported through the second return value.
	Settle(ctx context.Context, gatewayRef string) (*Payment, *bookings.Booking, bool, error)

	// ApplyRefund appends a negated ledger entry and reduces the
	// booking's paid amount. The cap against PaidAmount is enforced
	// under the booking row lock.
	ApplyRefund(ctx context.Context, entry *Payment) (*bookings.Booking, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// lockForUpdate adds a SELECT ... FOR UPDATE row lock to the query so
// writers of the same row serialize within the surrounding transaction.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *repository) CreatePayment(ctx context.Context, payment *Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (r *repository) GetPaymentByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	var payment Payment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

func (r *repository) GetByGatewayRef(ctx context.Context, gatewayRef string) (*Payment, error) {
	var payment Payment
	err := r.db.WithContext(ctx).Where("gateway_ref = ?", gatewayRef).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

func (r *repository) GetPaymentsByBooking(ctx context.Context, bookingID uuid.UUID) ([]Payment, error) {
	var list []Payment
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return list, nil
}

func (r *repository) FirstSuccessfulPayment(ctx context.Context, bookingID uuid.UUID) (*Payment, error) {
	var payment Payment
	err := r.db.WithContext(ctx).
		Where("booking_id = ? AND status = ?", bookingID, StatusSuccess).
		Order("created_at ASC").
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSuccessfulPayment
		}
		return nil, fmt.Errorf("failed to find successful payment: %w", err)
	}
	return &payment, nil
}

func (r *repository) Settle(ctx context.Context, gatewayRef string) (*Payment, *bookings.Booking, bool, error) {
	var payment Payment
	var booking bookings.Booking
	alreadySettled := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).
			Where("gateway_ref = ?", gatewayRef).
			First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return fmt.Errorf("failed to lock payment: %w", err)
		}

		// Booking row lock keeps paid_amount updates serialized with
		// refunds and other settlements.
		if err := lockForUpdate(tx).
			Where("id = ?", payment.BookingID).
			First(&booking).Error; err != nil {
			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if payment.Status == StatusSuccess {
			alreadySettled = true
			return nil
		}
		if payment.Status == StatusRefunded {
			return ErrPaymentRefunded
		}
		if !booking.Status.BlocksSlot() {
			return ErrBookingNotPayable
		}

		if err := tx.Model(&Payment{}).
			Where("id = ?", payment.ID).
			Update("status", StatusSuccess).Error; err != nil {
			return fmt.Errorf("failed to settle payment: %w", err)
		}
		payment.Status = StatusSuccess

		newPaid := roundAmount(booking.PaidAmount + payment.Amount)
		updates := map[string]interface{}{"paid_amount": newPaid}

		booking.PaidAmount = newPaid
		if booking.Status == bookings.StatusPending && shouldConfirm(&booking, &payment) {
			booking.Status = bookings.StatusConfirmed
			updates["status"] = bookings.StatusConfirmed
		}

		if err := tx.Model(&bookings.Booking{}).
			Where("id = ?", booking.ID).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to apply payment to booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, false, err
	}

	return &payment, &booking, alreadySettled, nil
}

func (r *repository) ApplyRefund(ctx context.Context, entry *Payment) (*bookings.Booking, error) {
	var booking bookings.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).
			Where("id = ?", entry.BookingID).
			First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return bookings.ErrBookingNotFound
			}
			return fmt.Errorf("failed to lock booking: %w", err)
		}

		refundAmount := -entry.Amount
		if refundAmount > booking.PaidAmount {
			return ErrRefundExceedsPaid
		}

		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to record refund: %w", err)
		}

		booking.PaidAmount = roundAmount(booking.PaidAmount - refundAmount)
		if err := tx.Model(&bookings.Booking{}).
			Where("id = ?", booking.ID).
			Update("paid_amount", booking.PaidAmount).Error; err != nil {
			return fmt.Errorf("failed to apply refund to booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// shouldConfirm implements the confirmation policy: a booking confirms
// once fully paid, or immediately on a FULL charge, or on the first
// installment as a deposit.
func shouldConfirm(booking *bookings.Booking, payment *Payment) bool {
	if booking.IsFullyPaid() {
		return true
	}
	return payment.Kind == KindFull || payment.Kind == KindInstallment1
}

// roundAmount rounds money to two decimal places, ties away from zero.
func roundAmount(v float64) float64 {
	if v < 0 {
		return -math.Floor(-v*100+0.5) / 100
	}
	return math.Floor(v*100+0.5) / 100
}
