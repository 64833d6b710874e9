package halls

import (
	"time"

	"github.com/google/uuid"
)

// Hall is a banquet hall property that contains bookable venues.
type Hall struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index;not null" json:"owner_id"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Address     string    `gorm:"not null;size:500" json:"address"`
	City        string    `gorm:"size:100;index" json:"city"`
	Status      Status    `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HallStaff grants a user management rights over a hall.
type HallStaff struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	HallID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_hall_staff_member" json:"hall_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_hall_staff_member" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Hall) TableName() string {
	return "halls"
}

func (HallStaff) TableName() string {
	return "hall_staff"
}

// IsApproved reports whether the hall may accept bookings.
func (h *Hall) IsApproved() bool {
	return h.Status == StatusApproved
}
