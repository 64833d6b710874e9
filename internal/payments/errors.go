package payments

import "errors"

var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrBookingNotPayable   = errors.New("booking cannot accept payments in its current state")
	ErrInvalidKind         = errors.New("invalid payment kind")
	ErrAmountTooLarge      = errors.New("amount exceeds outstanding balance")
	ErrPaymentRefunded     = errors.New("payment has already been refunded")
	ErrNoSuccessfulPayment = errors.New("booking has no successful payment to refund")
	ErrRefundExceedsPaid   = errors.New("refund exceeds the amount paid")
	ErrGatewayFailure      = errors.New("payment gateway request failed")
	ErrNotAuthorized       = errors.New("not authorized for this payment")
)
