package main

import (
	"fmt"
	"log"
	"time"

	"hallbook/internal/bookings"
	"hallbook/internal/halls"
	"hallbook/internal/shared/config"
	"hallbook/internal/shared/database"
	"hallbook/internal/users"
	"hallbook/internal/venues"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Hallbook Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db.GetPostgreSQL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"payments",
		"bookings",
		"pricing_overrides",
		"venues",
		"hall_staff",
		"halls",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	seededUsers, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	hall, err := s.SeedHall(seededUsers["owner"], seededUsers["staff"])
	if err != nil {
		return fmt.Errorf("failed to seed hall: %w", err)
	}

	seededVenues, err := s.SeedVenues(hall.ID)
	if err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}

	if err := s.SeedBookings(seededVenues, seededUsers["customer"]); err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}

	return nil
}

// SeedUsers creates one user per role plus an extra customer.
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	password, err := bcrypt.GenerateFromPassword([]byte("Password@123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	seed := []struct {
		key  string
		user users.User
	}{
		{"admin", users.User{FirstName: "Asha", LastName: "Admin", Email: "admin@hallbook.dev", Role: users.RoleAdmin}},
		{"owner", users.User{FirstName: "Omar", LastName: "Owner", Email: "owner@hallbook.dev", Role: users.RoleOwner, Phone: "+15550000001"}},
		{"staff", users.User{FirstName: "Sana", LastName: "Staff", Email: "staff@hallbook.dev", Role: users.RoleCustomer}},
		{"customer", users.User{FirstName: "Carl", LastName: "Customer", Email: "customer@hallbook.dev", Role: users.RoleCustomer, Phone: "+15550000002"}},
		{"customer2", users.User{FirstName: "Cleo", LastName: "Customer", Email: "customer2@hallbook.dev", Role: users.RoleCustomer}},
	}

	ids := make(map[string]uuid.UUID, len(seed))
	for _, entry := range seed {
		user := entry.user
		user.Password = string(password)
		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, err
		}
		ids[entry.key] = user.ID
		fmt.Printf("  Created user: %s (%s)\n", user.Email, user.Role)
	}

	return ids, nil
}

// SeedHall creates one approved hall with a staff member.
func (s *Seeder) SeedHall(ownerID, staffID uuid.UUID) (*halls.Hall, error) {
	hall := halls.Hall{
		OwnerID:     ownerID,
		Name:        "Grand Jubilee Banquets",
		Description: "Two renovated banquet venues near the riverfront.",
		Address:     "14 Riverside Avenue",
		City:        "Austin",
		Status:      halls.StatusApproved,
	}
	if err := s.db.PostgreSQL.Create(&hall).Error; err != nil {
		return nil, err
	}
	fmt.Printf("  Created hall: %s (%s)\n", hall.Name, hall.Status)

	staff := halls.HallStaff{HallID: hall.ID, UserID: staffID}
	if err := s.db.PostgreSQL.Create(&staff).Error; err != nil {
		return nil, err
	}
	fmt.Println("  Added hall staff member")

	return &hall, nil
}

// SeedVenues creates two venues and evening pricing for the first one.
func (s *Seeder) SeedVenues(hallID uuid.UUID) ([]venues.Venue, error) {
	list := []venues.Venue{
		{
			HallID:           hallID,
			Name:             "Crystal Ballroom",
			Description:      "Main ballroom with stage and dance floor.",
			Capacity:         400,
			MinBookingHours:  3,
			BasePricePerHour: 100.00,
			Active:           true,
		},
		{
			HallID:           hallID,
			Name:             "Garden Pavilion",
			Description:      "Covered outdoor pavilion.",
			Capacity:         150,
			MinBookingHours:  2,
			BasePricePerHour: 65.50,
			Active:           true,
		},
	}

	for i := range list {
		if err := s.db.PostgreSQL.Create(&list[i]).Error; err != nil {
			return nil, err
		}
		fmt.Printf("  Created venue: %s ($%.2f/hr)\n", list[i].Name, list[i].BasePricePerHour)
	}

	eveningDate := nextSaturday()
	overrides := []venues.PricingOverride{
		{
			VenueID:       list[0].ID,
			EffectiveDate: eveningDate,
			SlotStart:     "18:00",
			SlotEnd:       "22:00",
			PricePerHour:  150.00,
		},
	}
	if err := s.db.PostgreSQL.Create(&overrides).Error; err != nil {
		return nil, err
	}
	fmt.Printf("  Created evening pricing override for %s\n", eveningDate.Format("2006-01-02"))

	return list, nil
}

// SeedBookings creates one confirmed afternoon booking.
func (s *Seeder) SeedBookings(seededVenues []venues.Venue, customerID uuid.UUID) error {
	booking := bookings.Booking{
		VenueID:     seededVenues[0].ID,
		CustomerID:  customerID,
		EventDate:   nextSaturday(),
		StartTime:   "14:00",
		EndTime:     "17:00",
		GuestCount:  180,
		Status:      bookings.StatusConfirmed,
		TotalAmount: 300.00,
		PaidAmount:  300.00,
	}
	if err := s.db.PostgreSQL.Create(&booking).Error; err != nil {
		return err
	}
	fmt.Printf("  Created booking: %s %s-%s ($%.2f)\n",
		booking.EventDate.Format("2006-01-02"), booking.StartTime, booking.EndTime, booking.TotalAmount)

	return nil
}

func nextSaturday() time.Time {
	now := time.Now().UTC()
	day := now
	for day.Weekday() != time.Saturday {
		day = day.AddDate(0, 0, 1)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}
