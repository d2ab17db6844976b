package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelops/internal/domain"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *AuditRepository) ListByHotel(ctx context.Context, hotelID int64, limit int) ([]domain.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var entries []domain.AuditLog
	err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
