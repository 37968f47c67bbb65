package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"genturix/internal/domain/shift"
	"genturix/internal/infrastructure/persistence/mappers"
	"genturix/internal/infrastructure/persistence/models"
	"genturix/internal/shared/db"
	"genturix/internal/shared/errors"
)

type ShiftRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ShiftMapper
}

func NewShiftRepository(database *gorm.DB) shift.Repository {
	return &ShiftRepositoryImpl{
		db:     database,
		mapper: mappers.NewShiftMapper(),
	}
}

func (r *ShiftRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *ShiftRepositoryImpl) Create(ctx context.Context, s *shift.Shift) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		return fmt.Errorf("failed to map shift to model: %w", err)
	}

	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set shift ID: %w", err)
	}
	return nil
}

func (r *ShiftRepositoryImpl) GetByID(ctx context.Context, id uint) (*shift.Shift, error) {
	var model models.ShiftModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shift by ID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ShiftRepositoryImpl) GetByUUID(ctx context.Context, uid string) (*shift.Shift, error) {
	var model models.ShiftModel
	if err := r.conn(ctx).Where("uuid = ?", uid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shift by UUID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ShiftRepositoryImpl) Update(ctx context.Context, s *shift.Shift) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		return fmt.Errorf("failed to map shift to model: %w", err)
	}

	result := r.conn(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update shift: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("shift not found")
	}
	return nil
}

func (r *ShiftRepositoryImpl) List(ctx context.Context, condominiumID uint, filter shift.ListFilter) ([]*shift.Shift, int64, error) {
	query := r.conn(ctx).Model(&models.ShiftModel{}).Where("condominium_id = ?", condominiumID)

	if filter.GuardID != nil {
		query = query.Where("guard_id = ?", *filter.GuardID)
	}
	if filter.ActiveOnly {
		query = query.Where("status = ?", string(shift.StatusActive))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count shifts: %w", err)
	}

	var modelList []*models.ShiftModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("start_time ASC").Limit(filter.PageSize).Offset(offset).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list shifts: %w", err)
	}

	shifts := make([]*shift.Shift, 0, len(modelList))
	for _, m := range modelList {
		s, err := r.mapper.ToDomain(m)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to map shift model: %w", err)
		}
		shifts = append(shifts, s)
	}
	return shifts, total, nil
}
