package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"genturix/internal/domain/audit"
	"genturix/internal/domain/visitor"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/i18n"
	"genturix/internal/shared/logger"

	auditusecases "genturix/internal/application/audit/usecases"
)

type CheckOutCommand struct {
	EntryUUID     string
	CondominiumID uint
	Notes         string

	ActorUUID string
	IPAddress string
	UserAgent string
}

type CheckOutResult struct {
	Entry EntryView
}

// CheckOutUseCase transitions an inside entry to exited. Exited is terminal,
// so checking out an already-exited entry reports not found.
type CheckOutUseCase struct {
	entryRepo visitor.EntryRepository
	recorder  *auditusecases.Recorder
	logger    logger.Interface
}

func NewCheckOutUseCase(entryRepo visitor.EntryRepository, recorder *auditusecases.Recorder, log logger.Interface) *CheckOutUseCase {
	return &CheckOutUseCase{
		entryRepo: entryRepo,
		recorder:  recorder,
		logger:    log,
	}
}

func (uc *CheckOutUseCase) Execute(ctx context.Context, cmd CheckOutCommand) (*CheckOutResult, error) {
	entry, err := uc.entryRepo.GetByUUID(ctx, cmd.EntryUUID)
	if err != nil {
		uc.logger.Errorw("failed to get entry", "error", err)
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	if entry == nil || entry.CondominiumID() != cmd.CondominiumID {
		return nil, errors.NewNotFoundError(i18n.MsgEntryNotFound, i18n.Default(i18n.MsgEntryNotFound))
	}

	exitAt := time.Now()
	if err := uc.entryRepo.CheckOut(ctx, entry.ID(), exitAt, cmd.Notes); err != nil {
		if stderrors.Is(err, visitor.ErrEntryNotFound) {
			// Lost a race with another guard or the entry already exited.
			return nil, errors.NewNotFoundError(i18n.MsgEntryNotFound, i18n.Default(i18n.MsgEntryNotFound))
		}
		uc.logger.Errorw("failed to check out entry", "entry_uuid", cmd.EntryUUID, "error", err)
		return nil, fmt.Errorf("failed to check out entry: %w", err)
	}

	if err := entry.CheckOut(exitAt, cmd.Notes); err != nil {
		return nil, errors.NewNotFoundError(i18n.MsgEntryNotFound, i18n.Default(i18n.MsgEntryNotFound))
	}

	condoID := cmd.CondominiumID
	uc.recorder.Record(ctx, audit.EventVisitorCheckOut, cmd.ActorUUID, &condoID,
		fmt.Sprintf("visitor_entry/%s", entry.UUID()),
		fmt.Sprintf("visitor %s checked out", entry.VisitorName()),
		cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("visitor checked out",
		"entry_uuid", entry.UUID(),
		"condominium_id", cmd.CondominiumID)

	return &CheckOutResult{Entry: toEntryView(entry)}, nil
}
