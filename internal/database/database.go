package database

import (
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	// Registers the cgo-free "sqlite" driver used below.
	_ "modernc.org/sqlite"

	"hotelops/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Info().Msg("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Info().Str("dsn", dsn).Msg("using SQLite")

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the schema and, on PostgreSQL, installs the range-exclusion
// constraint that backs up the transactional availability check. Two bookings
// on the same room with overlapping [start_date, end_date) intervals cannot
// both be inserted even if they pass the application-level check concurrently.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Hotel{},
		&domain.RoomType{},
		&domain.Room{},
		&domain.Guest{},
		&domain.Booking{},
		&domain.BookingGuest{},
		&domain.Payment{},
		&domain.Invoice{},
		&domain.InvoiceLine{},
		&domain.Promotion{},
		&domain.AuditLog{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,
		`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_no_overlap`,
		`ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
			EXCLUDE USING gist (
				room_id WITH =,
				tstzrange(start_date, end_date, '[)') WITH &&
			) WHERE (status NOT IN ('cancelled', 'no_show'))`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
