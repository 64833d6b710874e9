package payments

import (
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes a single full payment from the two-part
// installment plan.
type Kind string

const (
	KindFull         Kind = "FULL"
	KindInstallment1 Kind = "INSTALLMENT_1"
	KindInstallment2 Kind = "INSTALLMENT_2"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindFull, KindInstallment1, KindInstallment2:
		return true
	}
	return false
}

// PaymentStatus is the state of one ledger entry.
type PaymentStatus string

const (
	StatusPending  PaymentStatus = "PENDING"
	StatusSuccess  PaymentStatus = "SUCCESS"
	StatusRefunded PaymentStatus = "REFUNDED"
)

// Payment is one append-only ledger entry against a booking. Refunds
// are recorded as new entries with a negated amount, never by rewriting
// history.
type Payment struct {
	ID         uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	BookingID  uuid.UUID     `json:"booking_id" gorm:"type:uuid;not null;index"`
	Kind       Kind          `json:"kind" gorm:"type:varchar(20);not null"`
	Amount     float64       `json:"amount" gorm:"type:decimal(10,2);not null"`
	Status     PaymentStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	GatewayRef string        `json:"gateway_ref" gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt  time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Payment) TableName() string {
	return "payments"
}
