package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"genturix/internal/domain/panicalert"
	"genturix/internal/infrastructure/persistence/mappers"
	"genturix/internal/infrastructure/persistence/models"
	"genturix/internal/shared/db"
	"genturix/internal/shared/errors"
)

type PanicEventRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PanicEventMapper
}

func NewPanicEventRepository(database *gorm.DB) panicalert.Repository {
	return &PanicEventRepositoryImpl{
		db:     database,
		mapper: mappers.NewPanicEventMapper(),
	}
}

func (r *PanicEventRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *PanicEventRepositoryImpl) Create(ctx context.Context, e *panicalert.Event) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return fmt.Errorf("failed to map panic event to model: %w", err)
	}

	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create panic event: %w", err)
	}

	if err := e.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set panic event ID: %w", err)
	}
	return nil
}

func (r *PanicEventRepositoryImpl) GetByID(ctx context.Context, id uint) (*panicalert.Event, error) {
	var model models.PanicEventModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get panic event by ID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *PanicEventRepositoryImpl) GetByUUID(ctx context.Context, uid string) (*panicalert.Event, error) {
	var model models.PanicEventModel
	if err := r.conn(ctx).Where("uuid = ?", uid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get panic event by UUID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *PanicEventRepositoryImpl) Update(ctx context.Context, e *panicalert.Event) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return fmt.Errorf("failed to map panic event to model: %w", err)
	}

	result := r.conn(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update panic event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("panic event not found")
	}
	return nil
}

func (r *PanicEventRepositoryImpl) ListByCondominium(ctx context.Context, condominiumID uint, activeOnly bool, page, pageSize int) ([]*panicalert.Event, int64, error) {
	query := r.conn(ctx).Model(&models.PanicEventModel{}).Where("condominium_id = ?", condominiumID)
	if activeOnly {
		query = query.Where("status = ?", string(panicalert.StatusActive))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count panic events: %w", err)
	}

	var modelList []*models.PanicEventModel
	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list panic events: %w", err)
	}

	events := make([]*panicalert.Event, 0, len(modelList))
	for _, m := range modelList {
		e, err := r.mapper.ToDomain(m)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to map panic event model: %w", err)
		}
		events = append(events, e)
	}
	return events, total, nil
}
