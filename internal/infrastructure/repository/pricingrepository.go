package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"genturix/internal/domain/billing"
	"genturix/internal/infrastructure/persistence/models"
	"genturix/internal/shared/db"
)

// PricingRepositoryImpl persists the single global pricing row. The
// configured default seeds the row on first read so pricing is always
// resolvable.
type PricingRepositoryImpl struct {
	db       *gorm.DB
	seedWith billing.GlobalPricing
}

func NewPricingRepository(database *gorm.DB, seedWith billing.GlobalPricing) billing.PricingRepository {
	return &PricingRepositoryImpl{
		db:       database,
		seedWith: seedWith,
	}
}

func (r *PricingRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *PricingRepositoryImpl) GetGlobal(ctx context.Context) (billing.GlobalPricing, error) {
	var model models.GlobalPricingModel
	err := r.conn(ctx).Order("id ASC").First(&model).Error
	if err == nil {
		return billing.GlobalPricing{
			SeatPriceCents: model.SeatPriceCents,
			Currency:       model.Currency,
		}, nil
	}
	if err != gorm.ErrRecordNotFound {
		return billing.GlobalPricing{}, fmt.Errorf("failed to get global pricing: %w", err)
	}

	seed := models.GlobalPricingModel{
		SeatPriceCents: r.seedWith.SeatPriceCents,
		Currency:       r.seedWith.Currency,
	}
	if err := r.conn(ctx).Create(&seed).Error; err != nil {
		return billing.GlobalPricing{}, fmt.Errorf("failed to seed global pricing: %w", err)
	}
	return r.seedWith, nil
}

func (r *PricingRepositoryImpl) SetGlobal(ctx context.Context, p billing.GlobalPricing) error {
	var model models.GlobalPricingModel
	err := r.conn(ctx).Order("id ASC").First(&model).Error
	if err == gorm.ErrRecordNotFound {
		model = models.GlobalPricingModel{
			SeatPriceCents: p.SeatPriceCents,
			Currency:       p.Currency,
		}
		if err := r.conn(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to create global pricing: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get global pricing: %w", err)
	}

	model.SeatPriceCents = p.SeatPriceCents
	model.Currency = p.Currency
	if err := r.conn(ctx).Save(&model).Error; err != nil {
		return fmt.Errorf("failed to update global pricing: %w", err)
	}
	return nil
}
