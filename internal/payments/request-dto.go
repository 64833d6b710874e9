package payments

// PaymentIntentRequest opens a charge against a booking. Amount is
// optional; the kind picks a sensible default (full outstanding balance
// or half the total for the first installment).
type PaymentIntentRequest struct {
	BookingID string  `json:"booking_id" binding:"required,uuid"`
	Kind      string  `json:"kind" binding:"required,oneof=FULL INSTALLMENT_1 INSTALLMENT_2"`
	Amount    float64 `json:"amount" binding:"omitempty,gt=0"`
}

// SettleRequest confirms a charge by its gateway reference.
type SettleRequest struct {
	GatewayRef string `json:"gateway_ref" binding:"required"`
}

// RefundRequest reverses money on a booking. Amount defaults to the
// first successful payment when omitted.
type RefundRequest struct {
	BookingID string  `json:"booking_id" binding:"required,uuid"`
	Amount    float64 `json:"amount" binding:"omitempty,gt=0"`
	Reason    string  `json:"reason" binding:"omitempty,max=500"`
}
