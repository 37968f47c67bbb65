package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"genturix/internal/domain/billing"
	"genturix/internal/infrastructure/persistence/mappers"
	"genturix/internal/infrastructure/persistence/models"
	"genturix/internal/shared/db"
)

type UpgradeRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SeatUpgradeMapper
}

func NewUpgradeRepository(database *gorm.DB) billing.UpgradeRepository {
	return &UpgradeRepositoryImpl{
		db:     database,
		mapper: mappers.NewSeatUpgradeMapper(),
	}
}

func (r *UpgradeRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

// Create inserts a pending request. The pending check and insert share one
// transaction so two concurrent requests cannot both land as pending.
func (r *UpgradeRepositoryImpl) Create(ctx context.Context, req *billing.SeatUpgradeRequest) error {
	model, err := r.mapper.ToModel(req)
	if err != nil {
		return fmt.Errorf("failed to map seat upgrade request to model: %w", err)
	}

	err = r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.SeatUpgradeRequestModel{}).
			Where("condominium_id = ? AND status = ?", req.CondominiumID(), string(billing.UpgradePending)).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check pending requests: %w", err)
		}
		if count > 0 {
			return billing.ErrPendingExists
		}
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create seat upgrade request: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := req.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set seat upgrade request ID: %w", err)
	}
	return nil
}

func (r *UpgradeRepositoryImpl) GetByID(ctx context.Context, id uint) (*billing.SeatUpgradeRequest, error) {
	var model models.SeatUpgradeRequestModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get seat upgrade request by ID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *UpgradeRepositoryImpl) GetByUUID(ctx context.Context, uid string) (*billing.SeatUpgradeRequest, error) {
	var model models.SeatUpgradeRequestModel
	if err := r.conn(ctx).Where("uuid = ?", uid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get seat upgrade request by UUID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// UpdateDecision persists a decision conditionally on the row still being
// pending. The losing side of two concurrent decisions gets ErrRequestDecided.
func (r *UpgradeRepositoryImpl) UpdateDecision(ctx context.Context, req *billing.SeatUpgradeRequest) error {
	model, err := r.mapper.ToModel(req)
	if err != nil {
		return fmt.Errorf("failed to map seat upgrade request to model: %w", err)
	}

	result := r.conn(ctx).
		Model(&models.SeatUpgradeRequestModel{}).
		Where("id = ? AND status = ?", model.ID, string(billing.UpgradePending)).
		Updates(map[string]interface{}{
			"status":         model.Status,
			"decided_by":     model.DecidedBy,
			"decision_notes": model.DecisionNotes,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update seat upgrade decision: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return billing.ErrRequestDecided
	}
	return nil
}

func (r *UpgradeRepositoryImpl) HasPending(ctx context.Context, condominiumID uint) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&models.SeatUpgradeRequestModel{}).
		Where("condominium_id = ? AND status = ?", condominiumID, string(billing.UpgradePending)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check pending requests: %w", err)
	}
	return count > 0, nil
}

func (r *UpgradeRepositoryImpl) List(ctx context.Context, condominiumID *uint, page, pageSize int) ([]*billing.SeatUpgradeRequest, int64, error) {
	query := r.conn(ctx).Model(&models.SeatUpgradeRequestModel{})
	if condominiumID != nil {
		query = query.Where("condominium_id = ?", *condominiumID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count seat upgrade requests: %w", err)
	}

	var modelList []*models.SeatUpgradeRequestModel
	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list seat upgrade requests: %w", err)
	}

	requests := make([]*billing.SeatUpgradeRequest, 0, len(modelList))
	for _, m := range modelList {
		req, err := r.mapper.ToDomain(m)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to map seat upgrade request model: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, total, nil
}
