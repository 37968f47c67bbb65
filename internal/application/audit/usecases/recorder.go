package usecases

import (
	"context"

	"genturix/internal/domain/audit"
	"genturix/internal/shared/logger"
)

// Recorder appends audit entries on behalf of other use cases. Recording is
// best effort: a failed append is logged and never fails the operation that
// produced it.
type Recorder struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewRecorder(auditRepo audit.Repository, log logger.Interface) *Recorder {
	return &Recorder{
		auditRepo: auditRepo,
		logger:    log,
	}
}

func (r *Recorder) Record(ctx context.Context, eventType audit.EventType, userUUID string, condominiumID *uint, resource, details, ip, userAgent string) {
	entry := audit.NewEntry(eventType, userUUID, condominiumID, resource, details, ip, userAgent)
	if err := r.auditRepo.Append(ctx, entry); err != nil {
		r.logger.Errorw("failed to record audit entry",
			"error", err,
			"event_type", eventType,
			"user_uuid", userUUID,
		)
	}
}
