package invoice

import (
	"context"
	"errors"
	"time"

	"hotelops/internal/domain"
)

const promotionDateLayout = "2006-01-02"

func promotionFromRequest(req PromotionRequest) (*domain.Promotion, error) {
	from, err := time.Parse(promotionDateLayout, req.ValidFrom)
	if err != nil {
		return nil, ErrValidation
	}
	to, err := time.Parse(promotionDateLayout, req.ValidTo)
	if err != nil {
		return nil, ErrValidation
	}
	if !from.Before(to) {
		return nil, ErrValidation
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	return &domain.Promotion{
		HotelID:         req.HotelID,
		Code:            req.Code,
		Description:     req.Description,
		Type:            req.Type,
		Value:           req.Value,
		MinimumSpend:    req.MinimumSpend,
		MaximumDiscount: req.MaximumDiscount,
		ValidFrom:       from,
		ValidTo:         to.Add(24*time.Hour - time.Nanosecond),
		UsageLimit:      req.UsageLimit,
		Active:          active,
	}, nil
}

func (s *Service) CreatePromotion(ctx context.Context, req PromotionRequest) (*domain.Promotion, error) {
	if req.Type != domain.PromotionPercentage && req.Type != domain.PromotionFixedAmount {
		return nil, ErrValidation
	}
	p, err := promotionFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreatePromotion(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdatePromotion(ctx context.Context, id int64, req PromotionRequest) (*domain.Promotion, error) {
	existing, err := s.store.GetPromotion(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrPromotionInvalid
		}
		return nil, err
	}

	p, err := promotionFromRequest(req)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.UsageCount = existing.UsageCount
	if err := s.store.UpdatePromotion(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListPromotions(ctx context.Context, hotelID int64) ([]domain.Promotion, error) {
	return s.store.ListPromotions(ctx, hotelID)
}
