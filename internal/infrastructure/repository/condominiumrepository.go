package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"genturix/internal/domain/condominium"
	"genturix/internal/infrastructure/persistence/mappers"
	"genturix/internal/infrastructure/persistence/models"
	"genturix/internal/shared/authorization"
	"genturix/internal/shared/db"
	"genturix/internal/shared/errors"
)

type CondominiumRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CondominiumMapper
}

func NewCondominiumRepository(database *gorm.DB) condominium.Repository {
	return &CondominiumRepositoryImpl{
		db:     database,
		mapper: mappers.NewCondominiumMapper(),
	}
}

func (r *CondominiumRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *CondominiumRepositoryImpl) Create(ctx context.Context, c *condominium.Condominium) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map condominium to model: %w", err)
	}

	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create condominium: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set condominium ID: %w", err)
	}
	return nil
}

func (r *CondominiumRepositoryImpl) GetByID(ctx context.Context, id uint) (*condominium.Condominium, error) {
	var model models.CondominiumModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get condominium by ID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *CondominiumRepositoryImpl) GetByUUID(ctx context.Context, uid string) (*condominium.Condominium, error) {
	var model models.CondominiumModel
	if err := r.conn(ctx).Where("uuid = ?", uid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get condominium by UUID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *CondominiumRepositoryImpl) Update(ctx context.Context, c *condominium.Condominium) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map condominium to model: %w", err)
	}

	result := r.conn(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update condominium: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("condominium not found")
	}
	return nil
}

func (r *CondominiumRepositoryImpl) List(ctx context.Context, page, pageSize int) ([]*condominium.Condominium, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&models.CondominiumModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count condominiums: %w", err)
	}

	var modelList []*models.CondominiumModel
	offset := (page - 1) * pageSize
	err := r.conn(ctx).
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list condominiums: %w", err)
	}

	condos := make([]*condominium.Condominium, 0, len(modelList))
	for _, m := range modelList {
		c, err := r.mapper.ToDomain(m)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to map condominium model: %w", err)
		}
		condos = append(condos, c)
	}
	return condos, total, nil
}

// CountActiveSeatUsers counts active users of the tenant holding at least one
// seat-occupying role. SuperAdmins are platform operators and never count.
func (r *CondominiumRepositoryImpl) CountActiveSeatUsers(ctx context.Context, condominiumID uint) (int64, error) {
	query := r.conn(ctx).
		Model(&models.UserModel{}).
		Where("condominium_id = ? AND is_active = ?", condominiumID, true)

	var seatConds []string
	var seatArgs []interface{}
	for _, role := range authorization.AllRoles() {
		if !role.RequiresSeat() {
			continue
		}
		seatConds = append(seatConds, "roles LIKE ?")
		seatArgs = append(seatArgs, "%"+string(role)+"%")
	}
	query = query.Where(strings.Join(seatConds, " OR "), seatArgs...)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count seat users: %w", err)
	}
	return count, nil
}
