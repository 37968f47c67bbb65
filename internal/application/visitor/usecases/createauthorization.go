package usecases

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"genturix/internal/domain/audit"
	"genturix/internal/domain/notification"
	"genturix/internal/domain/visitor"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/i18n"
	"genturix/internal/shared/logger"

	auditusecases "genturix/internal/application/audit/usecases"
	notificationusecases "genturix/internal/application/notification/usecases"
)

// platePattern accepts regional plate formats: 3 to 10 uppercase letters,
// digits and dashes after normalization.
var platePattern = regexp.MustCompile(`^[A-Z0-9-]{3,10}$`)

type CreateAuthorizationCommand struct {
	CondominiumID        uint
	ResidentID           uint
	VisitorName          string
	IdentificationNumber string
	VehiclePlate         string
	AuthorizationType    string
	ValidFrom            time.Time
	ValidTo              time.Time
	Notes                string

	ActorUUID string
	IPAddress string
	UserAgent string
}

type CreateAuthorizationResult struct {
	Authorization AuthorizationView
}

// CreateAuthorizationUseCase registers an advance visitor permission and
// fans the pre-registration out to the tenant's guards before returning.
type CreateAuthorizationUseCase struct {
	authRepo visitor.AuthorizationRepository
	fanout   *notificationusecases.Fanout
	recorder *auditusecases.Recorder
	logger   logger.Interface
}

func NewCreateAuthorizationUseCase(
	authRepo visitor.AuthorizationRepository,
	fanout *notificationusecases.Fanout,
	recorder *auditusecases.Recorder,
	log logger.Interface,
) *CreateAuthorizationUseCase {
	return &CreateAuthorizationUseCase{
		authRepo: authRepo,
		fanout:   fanout,
		recorder: recorder,
		logger:   log,
	}
}

func (uc *CreateAuthorizationUseCase) Execute(ctx context.Context, cmd CreateAuthorizationCommand) (*CreateAuthorizationResult, error) {
	if strings.TrimSpace(cmd.VisitorName) == "" {
		return nil, errors.NewValidationError("visitor name is required")
	}

	plate := NormalizePlate(cmd.VehiclePlate)
	if plate != "" && !platePattern.MatchString(plate) {
		return nil, errors.NewValidationError(i18n.MsgPlateInvalid, i18n.Default(i18n.MsgPlateInvalid))
	}

	auth, err := visitor.NewAuthorization(
		cmd.CondominiumID,
		cmd.ResidentID,
		strings.TrimSpace(cmd.VisitorName),
		strings.TrimSpace(cmd.IdentificationNumber),
		plate,
		visitor.AuthorizationType(cmd.AuthorizationType),
		cmd.ValidFrom,
		cmd.ValidTo,
		cmd.Notes,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.authRepo.Create(ctx, auth); err != nil {
		uc.logger.Errorw("failed to create authorization", "error", err)
		return nil, fmt.Errorf("failed to create authorization: %w", err)
	}

	// Guards learn about the pre-registration before the resident gets the
	// response back.
	if err := uc.fanout.NotifyGuards(ctx, cmd.CondominiumID,
		notification.TypeVisitorPreregistration,
		"Visitante pre-registrado",
		fmt.Sprintf("%s fue pre-registrado como visitante", auth.VisitorName()),
		map[string]string{
			"authorization_id": auth.UUID(),
			"visitor_name":     auth.VisitorName(),
		},
	); err != nil {
		uc.logger.Errorw("guard fan-out failed", "authorization_uuid", auth.UUID(), "error", err)
	}

	condoID := cmd.CondominiumID
	uc.recorder.Record(ctx, audit.EventAuthorizationMade, cmd.ActorUUID, &condoID,
		fmt.Sprintf("authorization/%s", auth.UUID()),
		fmt.Sprintf("authorization created for visitor %s", auth.VisitorName()),
		cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("authorization created",
		"authorization_uuid", auth.UUID(),
		"condominium_id", cmd.CondominiumID,
		"type", auth.Type())

	return &CreateAuthorizationResult{
		Authorization: toAuthorizationView(auth, time.Now(), false),
	}, nil
}

// NormalizePlate uppercases a plate and strips spaces so lookups and
// validation see one canonical form.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(plate), " ", ""))
}

// ValidPlate reports whether a normalized plate matches the accepted format.
func ValidPlate(plate string) bool {
	return platePattern.MatchString(plate)
}
