package venues

// VenueRequest is the payload for registering a venue under a hall.
type VenueRequest struct {
	HallID           string  `json:"hall_id" binding:"required,uuid"`
	Name             string  `json:"name" binding:"required,min=2,max=255"`
	Description      string  `json:"description" binding:"omitempty,max=2000"`
	Capacity         int     `json:"capacity" binding:"required,min=1"`
	MinBookingHours  int     `json:"min_booking_hours" binding:"omitempty,min=1,max=24"`
	BasePricePerHour float64 `json:"base_price_per_hour" binding:"required,gt=0"`
}

// VenueUpdateRequest updates mutable venue fields.
type VenueUpdateRequest struct {
	Name             string  `json:"name" binding:"omitempty,min=2,max=255"`
	Description      *string `json:"description" binding:"omitempty,max=2000"`
	Capacity         int     `json:"capacity" binding:"omitempty,min=1"`
	MinBookingHours  int     `json:"min_booking_hours" binding:"omitempty,min=1,max=24"`
	BasePricePerHour float64 `json:"base_price_per_hour" binding:"omitempty,gt=0"`
	Active           *bool   `json:"active"`
}

// PricingSlotRequest is one priced window inside a SetPricingRequest.
type PricingSlotRequest struct {
	SlotStart    string  `json:"slot_start" binding:"required,clocktime"`
	SlotEnd      string  `json:"slot_end" binding:"required,clocktime"`
	PricePerHour float64 `json:"price_per_hour" binding:"required,gt=0"`
}

// SetPricingRequest replaces every override for the given date.
type SetPricingRequest struct {
	Date  string               `json:"date" binding:"required,datetime=2006-01-02"`
	Slots []PricingSlotRequest `json:"slots" binding:"dive"`
}
