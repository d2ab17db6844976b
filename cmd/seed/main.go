package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"hotelops/internal/config"
	"hotelops/internal/database"
	"hotelops/internal/domain"
	"hotelops/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	logger.Init(cfg.AppEnv)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	log.Info().Msg("cleaning old data")
	for _, table := range []string{
		"audit_logs", "payments", "invoice_lines", "invoices", "promotions",
		"booking_guests", "bookings", "guests", "rooms", "room_types", "users", "hotels",
	} {
		db.Exec("DELETE FROM " + table)
	}

	hotel := domain.Hotel{
		Name:    "Riverside Grand",
		Address: "12 Embankment St",
		Phone:   "+84 28 3555 0101",
		VATRate: 10,
	}
	db.Create(&hotel)

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	db.Create(&domain.User{
		HotelID:      hotel.ID,
		Email:        "admin@riverside.example",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Admin",
	})
	frontHash, _ := bcrypt.GenerateFromPassword([]byte("front123"), bcrypt.DefaultCost)
	db.Create(&domain.User{
		HotelID:      hotel.ID,
		Email:        "frontdesk@riverside.example",
		PasswordHash: string(frontHash),
		Role:         domain.RoleReceptionist,
		Name:         "Front Desk",
	})
	log.Info().Msg("users created: admin@riverside.example / admin123, frontdesk@riverside.example / front123")

	standard := domain.RoomType{HotelID: hotel.ID, Name: "Standard", BasePrice: 550000, Capacity: 2}
	deluxe := domain.RoomType{HotelID: hotel.ID, Name: "Deluxe", BasePrice: 850000, Capacity: 3}
	suite := domain.RoomType{HotelID: hotel.ID, Name: "Suite", BasePrice: 1400000, Capacity: 4}
	db.Create(&standard)
	db.Create(&deluxe)
	db.Create(&suite)

	for floor := 1; floor <= 3; floor++ {
		for n := 1; n <= 4; n++ {
			rt := standard
			if n == 3 {
				rt = deluxe
			}
			if n == 4 && floor == 3 {
				rt = suite
			}
			db.Create(&domain.Room{
				HotelID:    hotel.ID,
				RoomTypeID: rt.ID,
				Number:     fmt.Sprintf("%d%02d", floor, n),
				Floor:      floor,
				Status:     domain.RoomAvailable,
			})
		}
	}

	now := time.Now()
	db.Create(&domain.Promotion{
		HotelID:         hotel.ID,
		Code:            "WELCOME10",
		Description:     "10% off for new stays",
		Type:            domain.PromotionPercentage,
		Value:           10,
		MinimumSpend:    500000,
		MaximumDiscount: 300000,
		ValidFrom:       now.AddDate(0, 0, -1),
		ValidTo:         now.AddDate(0, 3, 0),
		UsageLimit:      100,
		Active:          true,
	})

	log.Info().Msg("seed complete")
}
