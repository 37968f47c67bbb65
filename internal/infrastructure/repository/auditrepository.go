package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"genturix/internal/domain/audit"
	"genturix/internal/infrastructure/persistence/mappers"
	"genturix/internal/infrastructure/persistence/models"
	"genturix/internal/shared/db"
)

type AuditRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AuditMapper
}

func NewAuditRepository(database *gorm.DB) audit.Repository {
	return &AuditRepositoryImpl{
		db:     database,
		mapper: mappers.NewAuditMapper(),
	}
}

func (r *AuditRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *AuditRepositoryImpl) Append(ctx context.Context, e *audit.Entry) error {
	model := r.mapper.ToModel(e)
	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	e.ID = model.ID
	return nil
}

func (r *AuditRepositoryImpl) List(ctx context.Context, filter audit.Filter, limit int) ([]*audit.Entry, error) {
	query := r.applyFilter(r.conn(ctx).Model(&models.AuditLogModel{}), filter)

	var modelList []*models.AuditLogModel
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Order("created_at ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]*audit.Entry, 0, len(modelList))
	for _, m := range modelList {
		entries = append(entries, r.mapper.ToDomain(m))
	}
	return entries, nil
}

func (r *AuditRepositoryImpl) Count(ctx context.Context, filter audit.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.conn(ctx).Model(&models.AuditLogModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count audit entries: %w", err)
	}
	return count, nil
}

func (r *AuditRepositoryImpl) applyFilter(query *gorm.DB, filter audit.Filter) *gorm.DB {
	if filter.CondominiumID != nil {
		query = query.Where("condominium_id = ?", *filter.CondominiumID)
	}
	if filter.EventType != "" {
		query = query.Where("event_type = ?", string(filter.EventType))
	}
	if !filter.From.IsZero() {
		query = query.Where("created_at >= ?", filter.From.UnixMilli())
	}
	if !filter.To.IsZero() {
		query = query.Where("created_at < ?", filter.To.UnixMilli())
	}
	return query
}
