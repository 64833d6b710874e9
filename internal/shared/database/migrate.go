package database

import (
	"hallbook/internal/bookings"
	"hallbook/internal/halls"
	"hallbook/internal/payments"
	"hallbook/internal/users"
	"hallbook/internal/venues"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 backs the primary key defaults
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&users.User{},
		&halls.Hall{},
		&halls.HallStaff{},
		&venues.Venue{},
		&venues.PricingOverride{},
		&bookings.Booking{},
		&payments.Payment{},
	)
}
