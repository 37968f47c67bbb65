package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"genturix/internal/domain/audit"
	"genturix/internal/domain/condominium"
	"genturix/internal/domain/notification"
	"genturix/internal/domain/panicalert"
	"genturix/internal/domain/user"
	"genturix/internal/infrastructure/email"
	"genturix/internal/shared/authorization"
	"genturix/internal/shared/logger"

	auditusecases "genturix/internal/application/audit/usecases"
	notificationusecases "genturix/internal/application/notification/usecases"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type mockPanicRepository struct {
	CreateFunc            func(ctx context.Context, e *panicalert.Event) error
	GetByUUIDFunc         func(ctx context.Context, uid string) (*panicalert.Event, error)
	UpdateFunc            func(ctx context.Context, e *panicalert.Event) error
	ListByCondominiumFunc func(ctx context.Context, condominiumID uint, activeOnly bool, page, pageSize int) ([]*panicalert.Event, int64, error)
}

func (m *mockPanicRepository) Create(ctx context.Context, e *panicalert.Event) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, e)
	}
	return nil
}

func (m *mockPanicRepository) GetByID(ctx context.Context, id uint) (*panicalert.Event, error) {
	return nil, nil
}

func (m *mockPanicRepository) GetByUUID(ctx context.Context, uid string) (*panicalert.Event, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, uid)
	}
	return nil, nil
}

func (m *mockPanicRepository) Update(ctx context.Context, e *panicalert.Event) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockPanicRepository) ListByCondominium(ctx context.Context, condominiumID uint, activeOnly bool, page, pageSize int) ([]*panicalert.Event, int64, error) {
	if m.ListByCondominiumFunc != nil {
		return m.ListByCondominiumFunc(ctx, condominiumID, activeOnly, page, pageSize)
	}
	return nil, 0, nil
}

type mockCondominiumRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*condominium.Condominium, error)
}

func (m *mockCondominiumRepository) Create(ctx context.Context, c *condominium.Condominium) error {
	return nil
}
func (m *mockCondominiumRepository) GetByID(ctx context.Context, id uint) (*condominium.Condominium, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}
func (m *mockCondominiumRepository) GetByUUID(ctx context.Context, uid string) (*condominium.Condominium, error) {
	return nil, nil
}
func (m *mockCondominiumRepository) Update(ctx context.Context, c *condominium.Condominium) error {
	return nil
}
func (m *mockCondominiumRepository) List(ctx context.Context, page, pageSize int) ([]*condominium.Condominium, int64, error) {
	return nil, 0, nil
}
func (m *mockCondominiumRepository) CountActiveSeatUsers(ctx context.Context, condominiumID uint) (int64, error) {
	return 0, nil
}

type mockUserRepository struct {
	ListFunc                    func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
	ListGuardsByCondominiumFunc func(ctx context.Context, condominiumID uint) ([]*user.User, error)
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
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}
func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (m *mockUserRepository) ListGuardsByCondominium(ctx context.Context, condominiumID uint) ([]*user.User, error) {
	if m.ListGuardsByCondominiumFunc != nil {
		return m.ListGuardsByCondominiumFunc(ctx, condominiumID)
	}
	return nil, nil
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

type mockMailer struct {
	SendPanicAlertEmailFunc func(to, condominiumName, panicType, location string) error
}

func (m *mockMailer) SendWelcomeEmail(to, fullName, condominiumName string) error { return nil }
func (m *mockMailer) SendPanicAlertEmail(to, condominiumName, panicType, location string) error {
	if m.SendPanicAlertEmailFunc != nil {
		return m.SendPanicAlertEmailFunc(to, condominiumName, panicType, location)
	}
	return nil
}
func (m *mockMailer) Status() email.Status { return email.Status{Configured: true} }

type mockAuditRepository struct{}

func (m *mockAuditRepository) Append(ctx context.Context, e *audit.Entry) error { return nil }
func (m *mockAuditRepository) List(ctx context.Context, filter audit.Filter, limit int) ([]*audit.Entry, error) {
	return nil, nil
}
func (m *mockAuditRepository) Count(ctx context.Context, filter audit.Filter) (int64, error) {
	return 0, nil
}

func newTestRecorder() *auditusecases.Recorder {
	return auditusecases.NewRecorder(&mockAuditRepository{}, noopLogger{})
}

func newTestFanout(notificationRepo notification.Repository, userRepo user.Repository) *notificationusecases.Fanout {
	return notificationusecases.NewFanout(notificationRepo, userRepo, noopLogger{})
}

func testGuard(t *testing.T, id uint) *user.User {
	t.Helper()
	condoID := uint(1)
	u, err := user.Reconstruct(
		id, fmt.Sprintf("guard-%d", id), fmt.Sprintf("guard%d@example.com", id), "Pedro Lima", "$2a$12$hash",
		[]authorization.UserRole{authorization.RoleGuard}, &condoID, true,
		user.RoleData{BadgeNumber: "G-100"}, time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return u
}

func testAdmin(t *testing.T) *user.User {
	t.Helper()
	condoID := uint(1)
	u, err := user.Reconstruct(
		3, "admin-uuid", "admin@example.com", "Marta Ruiz", "$2a$12$hash",
		[]authorization.UserRole{authorization.RoleAdmin}, &condoID, true,
		user.RoleData{}, time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return u
}
