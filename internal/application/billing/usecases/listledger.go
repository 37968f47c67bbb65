package usecases

import (
	"context"
	"fmt"
	"time"

	"genturix/internal/domain/billing"
	"genturix/internal/domain/condominium"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/logger"
)

// LedgerEntryView is the read model for one ledger transaction.
type LedgerEntryView struct {
	UUID        string
	Type        billing.TransactionType
	AmountCents int64
	Currency    string
	Partial     bool
	Notes       string
	CreatedAt   time.Time
}

type ListLedgerCommand struct {
	CondominiumUUID string
	Page            int
	PageSize        int
}

type ListLedgerResult struct {
	Entries      []LedgerEntryView
	BalanceCents int64
	Total        int64
}

// ListLedgerUseCase pages over a tenant's billing ledger with the running
// balance, newest entries first.
type ListLedgerUseCase struct {
	condoRepo  condominium.Repository
	ledgerRepo billing.LedgerRepository
	logger     logger.Interface
}

func NewListLedgerUseCase(condoRepo condominium.Repository, ledgerRepo billing.LedgerRepository, log logger.Interface) *ListLedgerUseCase {
	return &ListLedgerUseCase{
		condoRepo:  condoRepo,
		ledgerRepo: ledgerRepo,
		logger:     log,
	}
}

func (uc *ListLedgerUseCase) Execute(ctx context.Context, cmd ListLedgerCommand) (*ListLedgerResult, error) {
	condo, err := uc.condoRepo.GetByUUID(ctx, cmd.CondominiumUUID)
	if err != nil {
		uc.logger.Errorw("failed to get condominium", "error", err)
		return nil, fmt.Errorf("failed to get condominium: %w", err)
	}
	if condo == nil {
		return nil, errors.NewNotFoundError("condominium not found")
	}

	txs, total, err := uc.ledgerRepo.ListByCondominium(ctx, condo.ID(), cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list ledger", "error", err)
		return nil, fmt.Errorf("failed to list ledger: %w", err)
	}

	balance, err := uc.ledgerRepo.Balance(ctx, condo.ID())
	if err != nil {
		uc.logger.Errorw("failed to get ledger balance", "error", err)
		return nil, fmt.Errorf("failed to get ledger balance: %w", err)
	}

	entries := make([]LedgerEntryView, 0, len(txs))
	for _, t := range txs {
		entries = append(entries, LedgerEntryView{
			UUID:        t.UUID,
			Type:        t.Type,
			AmountCents: t.AmountCents,
			Currency:    t.Currency,
			Partial:     t.Partial,
			Notes:       t.Notes,
			CreatedAt:   t.CreatedAt,
		})
	}
	return &ListLedgerResult{Entries: entries, BalanceCents: balance, Total: total}, nil
}
