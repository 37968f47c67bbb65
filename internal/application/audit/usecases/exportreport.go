package usecases

import (
	"context"
	"fmt"
	"time"

	"genturix/internal/domain/audit"
	"genturix/internal/shared/authorization"
	"genturix/internal/shared/errors"
	"genturix/internal/shared/i18n"
	"genturix/internal/shared/logger"
)

// ReportBuilder renders audit entries into a downloadable document.
type ReportBuilder interface {
	Build(scope string, entries []*audit.Entry, generatedAt time.Time) ([]byte, error)
}

type ExportReportCommand struct {
	RequesterRoles []authorization.UserRole
	CondominiumID  *uint // requester's tenant, nil for SuperAdmins
	EventType      string
	FromDate       time.Time
	ToDate         time.Time
}

type ExportReportResult struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportReportUseCase renders the audit log as a PDF. SuperAdmins see every
// tenant, Admins only their own, and Guards are refused outright.
type ExportReportUseCase struct {
	auditRepo audit.Repository
	builder   ReportBuilder
	logger    logger.Interface
}

const exportLimit = 5000

func NewExportReportUseCase(auditRepo audit.Repository, builder ReportBuilder, log logger.Interface) *ExportReportUseCase {
	return &ExportReportUseCase{
		auditRepo: auditRepo,
		builder:   builder,
		logger:    log,
	}
}

func (uc *ExportReportUseCase) Execute(ctx context.Context, cmd ExportReportCommand) (*ExportReportResult, error) {
	if authorization.HasRole(cmd.RequesterRoles, authorization.RoleGuard) &&
		!authorization.HasRole(cmd.RequesterRoles, authorization.RoleAdmin) &&
		!authorization.HasRole(cmd.RequesterRoles, authorization.RoleSuperAdmin) {
		return nil, errors.NewForbiddenError(i18n.MsgExportForbidden, i18n.Default(i18n.MsgExportForbidden))
	}

	filter := audit.Filter{
		EventType: audit.EventType(cmd.EventType),
		From:      cmd.FromDate,
		To:        cmd.ToDate,
	}

	scope := "all condominiums"
	if !authorization.HasRole(cmd.RequesterRoles, authorization.RoleSuperAdmin) {
		if cmd.CondominiumID == nil {
			return nil, errors.NewForbiddenError(i18n.MsgExportForbidden, i18n.Default(i18n.MsgExportForbidden))
		}
		filter.CondominiumID = cmd.CondominiumID
		scope = fmt.Sprintf("condominium %d", *cmd.CondominiumID)
	}

	entries, err := uc.auditRepo.List(ctx, filter, exportLimit)
	if err != nil {
		uc.logger.Errorw("failed to list audit entries for export", "error", err)
		return nil, err
	}

	now := time.Now()
	content, err := uc.builder.Build(scope, entries, now)
	if err != nil {
		uc.logger.Errorw("failed to build audit report", "error", err)
		return nil, err
	}

	uc.logger.Infow("audit report exported", "entries", len(entries), "scope", scope)

	return &ExportReportResult{
		Filename:    fmt.Sprintf("audit-report-%s.pdf", now.UTC().Format("20060102-150405")),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}
