package halls

// HallRequest represents a hall create/update request
type HallRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Address     string `json:"address" binding:"required,min=5,max=500"`
	City        string `json:"city" binding:"max=100"`
}

// HallStatusUpdateRequest represents an admin approval decision
type HallStatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING APPROVED REJECTED"`
}

// HallStaffRequest identifies the user to add as staff
type HallStaffRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}
