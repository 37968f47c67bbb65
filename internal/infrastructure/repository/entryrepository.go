package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"genturix/internal/domain/visitor"
	"genturix/internal/infrastructure/persistence/mappers"
	"genturix/internal/infrastructure/persistence/models"
	"genturix/internal/shared/db"
)

type EntryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.EntryMapper
}

func NewEntryRepository(database *gorm.DB) visitor.EntryRepository {
	return &EntryRepositoryImpl{
		db:     database,
		mapper: mappers.NewEntryMapper(),
	}
}

func (r *EntryRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *EntryRepositoryImpl) Create(ctx context.Context, e *visitor.Entry) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return fmt.Errorf("failed to map entry to model: %w", err)
	}

	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create entry: %w", err)
	}

	if err := e.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set entry ID: %w", err)
	}
	return nil
}

func (r *EntryRepositoryImpl) GetByID(ctx context.Context, id uint) (*visitor.Entry, error) {
	var model models.VisitorEntryModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entry by ID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *EntryRepositoryImpl) GetByUUID(ctx context.Context, uid string) (*visitor.Entry, error) {
	var model models.VisitorEntryModel
	if err := r.conn(ctx).Where("uuid = ?", uid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entry by UUID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// CheckOut is a single conditional update on status=inside. A concurrent
// checkout that already flipped the row leaves RowsAffected at zero, which
// surfaces as not found rather than a double exit.
func (r *EntryRepositoryImpl) CheckOut(ctx context.Context, id uint, exitAt time.Time, notes string) error {
	updates := map[string]interface{}{
		"status":  string(visitor.EntryExited),
		"exit_at": exitAt.UnixMilli(),
	}
	if notes != "" {
		updates["notes"] = notes
	}

	result := r.conn(ctx).
		Model(&models.VisitorEntryModel{}).
		Where("id = ? AND status = ?", id, string(visitor.EntryInside)).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to check out entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return visitor.ErrEntryNotFound
	}
	return nil
}

func (r *EntryRepositoryImpl) ListInside(ctx context.Context, condominiumID uint) ([]*visitor.Entry, error) {
	var modelList []*models.VisitorEntryModel
	err := r.conn(ctx).
		Where("condominium_id = ? AND status = ?", condominiumID, string(visitor.EntryInside)).
		Order("entry_at DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list entries inside: %w", err)
	}
	return r.toDomainList(modelList)
}

func (r *EntryRepositoryImpl) ListBetween(ctx context.Context, condominiumID uint, from, to time.Time, page, pageSize int) ([]*visitor.Entry, int64, error) {
	query := r.conn(ctx).
		Model(&models.VisitorEntryModel{}).
		Where("condominium_id = ? AND entry_at >= ? AND entry_at < ?", condominiumID, from.UnixMilli(), to.UnixMilli())
	return r.page(query, page, pageSize)
}

func (r *EntryRepositoryImpl) ListHistory(ctx context.Context, condominiumID uint, page, pageSize int) ([]*visitor.Entry, int64, error) {
	query := r.conn(ctx).
		Model(&models.VisitorEntryModel{}).
		Where("condominium_id = ?", condominiumID)
	return r.page(query, page, pageSize)
}

func (r *EntryRepositoryImpl) page(query *gorm.DB, page, pageSize int) ([]*visitor.Entry, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count entries: %w", err)
	}

	var modelList []*models.VisitorEntryModel
	offset := (page - 1) * pageSize
	if err := query.Order("entry_at DESC").Limit(pageSize).Offset(offset).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list entries: %w", err)
	}

	entries, err := r.toDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *EntryRepositoryImpl) toDomainList(modelList []*models.VisitorEntryModel) ([]*visitor.Entry, error) {
	entries := make([]*visitor.Entry, 0, len(modelList))
	for _, m := range modelList {
		e, err := r.mapper.ToDomain(m)
		if err != nil {
			return nil, fmt.Errorf("failed to map entry model: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
