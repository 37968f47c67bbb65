package usecases

import (
	"context"
	"time"

	auditusecases "genturix/internal/application/audit/usecases"
	notificationusecases "genturix/internal/application/notification/usecases"
	"genturix/internal/domain/audit"
	"genturix/internal/domain/notification"
	"genturix/internal/domain/user"
	"genturix/internal/domain/visitor"
	"genturix/internal/shared/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                 {}
func (noopLogger) Info(msg string, args ...any)                  {}
func (noopLogger) Warn(msg string, args ...any)                  {}
func (noopLogger) Error(msg string, args ...any)                 {}
func (l noopLogger) With(args ...any) logger.Interface           { return l }
func (l noopLogger) Named(name string) logger.Interface          { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type mockAuthorizationRepository struct {
	CreateFunc                  func(ctx context.Context, a *visitor.Authorization) error
	GetByIDFunc                 func(ctx context.Context, id uint) (*visitor.Authorization, error)
	GetByUUIDFunc               func(ctx context.Context, uid string) (*visitor.Authorization, error)
	ListByCreatorFunc           func(ctx context.Context, createdBy uint, page, pageSize int) ([]*visitor.Authorization, int64, error)
	ListByCondominiumFunc       func(ctx context.Context, condominiumID uint, page, pageSize int) ([]*visitor.Authorization, int64, error)
	DeleteIfNoVisitorInsideFunc func(ctx context.Context, id uint) error
	HasVisitorInsideFunc        func(ctx context.Context, id uint) (bool, error)
}

func (m *mockAuthorizationRepository) Create(ctx context.Context, a *visitor.Authorization) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAuthorizationRepository) GetByID(ctx context.Context, id uint) (*visitor.Authorization, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAuthorizationRepository) GetByUUID(ctx context.Context, uid string) (*visitor.Authorization, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, uid)
	}
	return nil, nil
}

func (m *mockAuthorizationRepository) ListByCreator(ctx context.Context, createdBy uint, page, pageSize int) ([]*visitor.Authorization, int64, error) {
	if m.ListByCreatorFunc != nil {
		return m.ListByCreatorFunc(ctx, createdBy, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockAuthorizationRepository) ListByCondominium(ctx context.Context, condominiumID uint, page, pageSize int) ([]*visitor.Authorization, int64, error) {
	if m.ListByCondominiumFunc != nil {
		return m.ListByCondominiumFunc(ctx, condominiumID, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockAuthorizationRepository) DeleteIfNoVisitorInside(ctx context.Context, id uint) error {
	if m.DeleteIfNoVisitorInsideFunc != nil {
		return m.DeleteIfNoVisitorInsideFunc(ctx, id)
	}
	return nil
}

func (m *mockAuthorizationRepository) HasVisitorInside(ctx context.Context, id uint) (bool, error) {
	if m.HasVisitorInsideFunc != nil {
		return m.HasVisitorInsideFunc(ctx, id)
	}
	return false, nil
}

type mockEntryRepository struct {
	CreateFunc      func(ctx context.Context, e *visitor.Entry) error
	GetByIDFunc     func(ctx context.Context, id uint) (*visitor.Entry, error)
	GetByUUIDFunc   func(ctx context.Context, uid string) (*visitor.Entry, error)
	CheckOutFunc    func(ctx context.Context, id uint, exitAt time.Time, notes string) error
	ListInsideFunc  func(ctx context.Context, condominiumID uint) ([]*visitor.Entry, error)
	ListBetweenFunc func(ctx context.Context, condominiumID uint, from, to time.Time, page, pageSize int) ([]*visitor.Entry, int64, error)
	ListHistoryFunc func(ctx context.Context, condominiumID uint, page, pageSize int) ([]*visitor.Entry, int64, error)
}

func (m *mockEntryRepository) Create(ctx context.Context, e *visitor.Entry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, e)
	}
	return nil
}

func (m *mockEntryRepository) GetByID(ctx context.Context, id uint) (*visitor.Entry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEntryRepository) GetByUUID(ctx context.Context, uid string) (*visitor.Entry, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, uid)
	}
	return nil, nil
}

func (m *mockEntryRepository) CheckOut(ctx context.Context, id uint, exitAt time.Time, notes string) error {
	if m.CheckOutFunc != nil {
		return m.CheckOutFunc(ctx, id, exitAt, notes)
	}
	return nil
}

func (m *mockEntryRepository) ListInside(ctx context.Context, condominiumID uint) ([]*visitor.Entry, error) {
	if m.ListInsideFunc != nil {
		return m.ListInsideFunc(ctx, condominiumID)
	}
	return nil, nil
}

func (m *mockEntryRepository) ListBetween(ctx context.Context, condominiumID uint, from, to time.Time, page, pageSize int) ([]*visitor.Entry, int64, error) {
	if m.ListBetweenFunc != nil {
		return m.ListBetweenFunc(ctx, condominiumID, from, to, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockEntryRepository) ListHistory(ctx context.Context, condominiumID uint, page, pageSize int) ([]*visitor.Entry, int64, error) {
	if m.ListHistoryFunc != nil {
		return m.ListHistoryFunc(ctx, condominiumID, page, pageSize)
	}
	return nil, 0, nil
}

type mockNotificationRepository struct {
	CreateBatchFunc func(ctx context.Context, notifications []*notification.Notification) error
}

func (m *mockNotificationRepository) CreateBatch(ctx context.Context, notifications []*notification.Notification) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, notifications)
	}
	return nil
}

func (m *mockNotificationRepository) ListByRecipient(ctx context.Context, recipientID uint, unreadOnly bool, page, pageSize int) ([]*notification.Notification, int64, error) {
	return nil, 0, nil
}

func (m *mockNotificationRepository) MarkRead(ctx context.Context, recipientID uint, notificationUUID string) error {
	return nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	return 0, nil
}

type mockUserRepository struct {
	ListGuardsFunc func(ctx context.Context, condominiumID uint) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) GetByUUID(ctx context.Context, uid string) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}
func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (m *mockUserRepository) ListGuardsByCondominium(ctx context.Context, condominiumID uint) ([]*user.User, error) {
	if m.ListGuardsFunc != nil {
		return m.ListGuardsFunc(ctx, condominiumID)
	}
	return nil, nil
}

type mockAuditRepository struct {
	AppendFunc func(ctx context.Context, e *audit.Entry) error
}

func (m *mockAuditRepository) Append(ctx context.Context, e *audit.Entry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, e)
	}
	return nil
}

func (m *mockAuditRepository) List(ctx context.Context, filter audit.Filter, limit int) ([]*audit.Entry, error) {
	return nil, nil
}

func (m *mockAuditRepository) Count(ctx context.Context, filter audit.Filter) (int64, error) {
	return 0, nil
}

func newTestRecorder() *auditusecases.Recorder {
	return auditusecases.NewRecorder(&mockAuditRepository{}, noopLogger{})
}

func newTestFanout(notificationRepo *mockNotificationRepository, userRepo *mockUserRepository) *notificationusecases.Fanout {
	return notificationusecases.NewFanout(notificationRepo, userRepo, noopLogger{})
}
