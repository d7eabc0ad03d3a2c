package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"brightway/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the three intake tables. Booking and contact live in
// configurable tables, so they are migrated through Table(); careers uses
// the fixed name on the entity.
func Migrate(db *gorm.DB, bookingTable, contactTable string) error {
	if err := db.Table(bookingTable).AutoMigrate(&domain.BookingSubmission{}); err != nil {
		return err
	}
	if err := db.Table(contactTable).AutoMigrate(&domain.ContactSubmission{}); err != nil {
		return err
	}
	return db.AutoMigrate(&domain.CareerApplication{})
}
