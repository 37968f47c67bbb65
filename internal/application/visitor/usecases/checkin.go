package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"genturix/internal/domain/audit"
	"genturix/internal/domain/visitor"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/logger"

	auditusecases "genturix/internal/application/audit/usecases"
)

type CheckInCommand struct {
	CondominiumID        uint
	GuardID              uint
	AuthorizationUUID    string // empty for manual, ad-hoc entries
	VisitorName          string
	IdentificationNumber string
	VehiclePlate         string
	Destination          string
	Notes                string

	ActorUUID string
	IPAddress string
	UserAgent string
}

type CheckInResult struct {
	Entry EntryView
}

// CheckInUseCase records a visitor coming inside. A check-in never fails for
// authorization reasons: an unmatched, expired or inactive authorization
// still produces an entry, flagged unauthorized, so guard visibility keeps
// every entry attempt.
type CheckInUseCase struct {
	authRepo  visitor.AuthorizationRepository
	entryRepo visitor.EntryRepository
	recorder  *auditusecases.Recorder
	logger    logger.Interface
}

func NewCheckInUseCase(
	authRepo visitor.AuthorizationRepository,
	entryRepo visitor.EntryRepository,
	recorder *auditusecases.Recorder,
	log logger.Interface,
) *CheckInUseCase {
	return &CheckInUseCase{
		authRepo:  authRepo,
		entryRepo: entryRepo,
		recorder:  recorder,
		logger:    log,
	}
}

func (uc *CheckInUseCase) Execute(ctx context.Context, cmd CheckInCommand) (*CheckInResult, error) {
	visitorName := strings.TrimSpace(cmd.VisitorName)
	identification := strings.TrimSpace(cmd.IdentificationNumber)
	plate := NormalizePlate(cmd.VehiclePlate)

	var authorizationID *uint
	isAuthorized := false

	if cmd.AuthorizationUUID != "" {
		auth, err := uc.authRepo.GetByUUID(ctx, cmd.AuthorizationUUID)
		if err != nil {
			uc.logger.Errorw("failed to get authorization", "error", err)
			return nil, fmt.Errorf("failed to get authorization: %w", err)
		}
		if auth != nil && auth.CondominiumID() == cmd.CondominiumID {
			id := auth.ID()
			authorizationID = &id
			isAuthorized = auth.IsCurrentlyValid(time.Now())

			// The authorization is the source of truth for identity fields
			// the guard did not retype.
			if visitorName == "" {
				visitorName = auth.VisitorName()
			}
			if identification == "" {
				identification = auth.IdentificationNumber()
			}
			if plate == "" {
				plate = auth.VehiclePlate()
			}
		} else {
			uc.logger.Warnw("check-in referenced unknown authorization, recording manual entry",
				"authorization_uuid", cmd.AuthorizationUUID,
				"condominium_id", cmd.CondominiumID)
		}
	}

	entry, err := visitor.NewEntry(
		cmd.CondominiumID,
		cmd.GuardID,
		authorizationID,
		visitorName,
		identification,
		plate,
		strings.TrimSpace(cmd.Destination),
		isAuthorized,
		cmd.Notes,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		uc.logger.Errorw("failed to create entry", "error", err)
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	condoID := cmd.CondominiumID
	uc.recorder.Record(ctx, audit.EventVisitorCheckIn, cmd.ActorUUID, &condoID,
		fmt.Sprintf("visitor_entry/%s", entry.UUID()),
		fmt.Sprintf("visitor %s checked in (%s, authorized=%t)", entry.VisitorName(), entry.Type(), entry.IsAuthorized()),
		cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("visitor checked in",
		"entry_uuid", entry.UUID(),
		"condominium_id", cmd.CondominiumID,
		"entry_type", entry.Type(),
		"is_authorized", entry.IsAuthorized())

	return &CheckInResult{Entry: toEntryView(entry)}, nil
}
