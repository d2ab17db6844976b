package repository

import (
	"errors"

	"gorm.io/gorm"

	"hotelops/internal/domain"
)

// mapErr normalizes the driver's not-found error into the domain sentinel so
// service layers never import gorm.
func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func isPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == "postgres"
}
