package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"genturix/internal/domain/visitor"
	"genturix/internal/infrastructure/persistence/mappers"
	"genturix/internal/infrastructure/persistence/models"
	"genturix/internal/shared/db"
)

type AuthorizationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AuthorizationMapper
}

func NewAuthorizationRepository(database *gorm.DB) visitor.AuthorizationRepository {
	return &AuthorizationRepositoryImpl{
		db:     database,
		mapper: mappers.NewAuthorizationMapper(),
	}
}

func (r *AuthorizationRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *AuthorizationRepositoryImpl) Create(ctx context.Context, a *visitor.Authorization) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return fmt.Errorf("failed to map authorization to model: %w", err)
	}

	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create authorization: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set authorization ID: %w", err)
	}
	return nil
}

func (r *AuthorizationRepositoryImpl) GetByID(ctx context.Context, id uint) (*visitor.Authorization, error) {
	var model models.AuthorizationModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get authorization by ID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *AuthorizationRepositoryImpl) GetByUUID(ctx context.Context, uid string) (*visitor.Authorization, error) {
	var model models.AuthorizationModel
	if err := r.conn(ctx).Where("uuid = ?", uid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get authorization by UUID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *AuthorizationRepositoryImpl) ListByCreator(ctx context.Context, createdBy uint, page, pageSize int) ([]*visitor.Authorization, int64, error) {
	return r.list(ctx, "created_by = ?", createdBy, page, pageSize)
}

func (r *AuthorizationRepositoryImpl) ListByCondominium(ctx context.Context, condominiumID uint, page, pageSize int) ([]*visitor.Authorization, int64, error) {
	return r.list(ctx, "condominium_id = ?", condominiumID, page, pageSize)
}

func (r *AuthorizationRepositoryImpl) list(ctx context.Context, cond string, arg uint, page, pageSize int) ([]*visitor.Authorization, int64, error) {
	query := r.conn(ctx).Model(&models.AuthorizationModel{}).Where(cond, arg)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count authorizations: %w", err)
	}

	var modelList []*models.AuthorizationModel
	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list authorizations: %w", err)
	}

	auths := make([]*visitor.Authorization, 0, len(modelList))
	for _, m := range modelList {
		a, err := r.mapper.ToDomain(m)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to map authorization model: %w", err)
		}
		auths = append(auths, a)
	}
	return auths, total, nil
}

// DeleteIfNoVisitorInside deletes the authorization only when no linked entry
// is still inside. The guard condition lives in the DELETE itself so a
// concurrent check-in committed before this statement keeps the row alive.
func (r *AuthorizationRepositoryImpl) DeleteIfNoVisitorInside(ctx context.Context, id uint) error {
	result := r.conn(ctx).
		Where("id = ?", id).
		Where("NOT EXISTS (SELECT 1 FROM visitor_entries WHERE visitor_entries.authorization_id = visitor_authorizations.id AND visitor_entries.status = ?)", "inside").
		Delete(&models.AuthorizationModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete authorization: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		inside, err := r.HasVisitorInside(ctx, id)
		if err != nil {
			return err
		}
		if inside {
			return visitor.ErrVisitorInside
		}
		return visitor.ErrAuthorizationGone
	}
	return nil
}

func (r *AuthorizationRepositoryImpl) HasVisitorInside(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&models.VisitorEntryModel{}).
		Where("authorization_id = ? AND status = ?", id, "inside").
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check for visitors inside: %w", err)
	}
	return count > 0, nil
}
