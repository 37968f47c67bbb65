package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"genturix/internal/domain/billing"
	"genturix/internal/infrastructure/persistence/mappers"
	"genturix/internal/infrastructure/persistence/models"
	"genturix/internal/shared/db"
	"genturix/internal/shared/errors"
)

type LedgerRepositoryImpl struct {
	db        *gorm.DB
	txMapper  mappers.TransactionMapper
	runMapper mappers.SchedulerRunMapper
}

func NewLedgerRepository(database *gorm.DB) billing.LedgerRepository {
	return &LedgerRepositoryImpl{
		db:        database,
		txMapper:  mappers.NewTransactionMapper(),
		runMapper: mappers.NewSchedulerRunMapper(),
	}
}

func (r *LedgerRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *LedgerRepositoryImpl) Append(ctx context.Context, t *billing.Transaction) error {
	model := r.txMapper.ToModel(t)
	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append billing transaction: %w", err)
	}
	t.ID = model.ID
	return nil
}

func (r *LedgerRepositoryImpl) Balance(ctx context.Context, condominiumID uint) (int64, error) {
	var balance struct {
		Total int64
	}
	err := r.conn(ctx).
		Model(&models.BillingTransactionModel{}).
		Select("COALESCE(SUM(amount_cents), 0) AS total").
		Where("condominium_id = ?", condominiumID).
		Scan(&balance).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute balance: %w", err)
	}
	return balance.Total, nil
}

func (r *LedgerRepositoryImpl) ListByCondominium(ctx context.Context, condominiumID uint, page, pageSize int) ([]*billing.Transaction, int64, error) {
	query := r.conn(ctx).Model(&models.BillingTransactionModel{}).Where("condominium_id = ?", condominiumID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count billing transactions: %w", err)
	}

	var modelList []*models.BillingTransactionModel
	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list billing transactions: %w", err)
	}

	txs := make([]*billing.Transaction, 0, len(modelList))
	for _, m := range modelList {
		txs = append(txs, r.txMapper.ToDomain(m))
	}
	return txs, total, nil
}

// RecordRun relies on the unique (condominium_id, period) index: the losing
// insert of two overlapping runs comes back as a duplicate, reported as
// already-charged rather than an error.
func (r *LedgerRepositoryImpl) RecordRun(ctx context.Context, run *billing.SchedulerRun) (bool, error) {
	model := r.runMapper.ToModel(run)
	if err := r.conn(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to record scheduler run: %w", err)
	}
	run.ID = model.ID
	return true, nil
}

func (r *LedgerRepositoryImpl) ListRuns(ctx context.Context, page, pageSize int) ([]*billing.SchedulerRun, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&models.SchedulerRunModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count scheduler runs: %w", err)
	}

	var modelList []*models.SchedulerRunModel
	offset := (page - 1) * pageSize
	err := r.conn(ctx).
		Order("ran_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list scheduler runs: %w", err)
	}

	runs := make([]*billing.SchedulerRun, 0, len(modelList))
	for _, m := range modelList {
		runs = append(runs, r.runMapper.ToDomain(m))
	}
	return runs, total, nil
}

func (r *LedgerRepositoryImpl) LastRun(ctx context.Context) (*billing.SchedulerRun, error) {
	var model models.SchedulerRunModel
	err := r.conn(ctx).Order("ran_at DESC").First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last scheduler run: %w", err)
	}
	return r.runMapper.ToDomain(&model), nil
}
