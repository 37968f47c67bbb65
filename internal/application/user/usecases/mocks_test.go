package usecases

import (
	"context"
	"testing"
	"time"

	"genturix/internal/domain/audit"
	"genturix/internal/domain/condominium"
	"genturix/internal/domain/user"
	"genturix/internal/infrastructure/email"
	"genturix/internal/shared/authorization"
	"genturix/internal/shared/logger"

	auditusecases "genturix/internal/application/audit/usecases"
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

type mockUserRepository struct {
	CreateFunc    func(ctx context.Context, u *user.User) error
	GetByUUIDFunc func(ctx context.Context, uid string) (*user.User, error)
	UpdateFunc    func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}
func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) GetByUUID(ctx context.Context, uid string) (*user.User, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, uid)
	}
	return nil, nil
}
func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}
func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}
func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (m *mockUserRepository) ListGuardsByCondominium(ctx context.Context, condominiumID uint) ([]*user.User, error) {
	return nil, nil
}

type mockCondominiumRepository struct {
	GetByIDFunc              func(ctx context.Context, id uint) (*condominium.Condominium, error)
	CountActiveSeatUsersFunc func(ctx context.Context, condominiumID uint) (int64, error)
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
	if m.CountActiveSeatUsersFunc != nil {
		return m.CountActiveSeatUsersFunc(ctx, condominiumID)
	}
	return 0, nil
}

type mockHasher struct{}

func (mockHasher) Hash(password string) (string, error) { return "$2a$12$hash", nil }

type mockMailer struct {
	SendWelcomeEmailFunc func(to, fullName, condominiumName string) error
}

func (m *mockMailer) SendWelcomeEmail(to, fullName, condominiumName string) error {
	if m.SendWelcomeEmailFunc != nil {
		return m.SendWelcomeEmailFunc(to, fullName, condominiumName)
	}
	return nil
}
func (m *mockMailer) SendPanicAlertEmail(to, condominiumName, panicType, location string) error {
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

func testCondo(t *testing.T, seatCount int) *condominium.Condominium {
	t.Helper()
	c, err := condominium.Reconstruct(
		1, "condo-uuid", "Las Palmas", condominium.BillingActive,
		seatCount, "USD", nil, nil, time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func tenantUser(t *testing.T, condominiumID uint, active bool) *user.User {
	t.Helper()
	u, err := user.Reconstruct(
		9, "target-uuid", "pedro@example.com", "Pedro Lima", "$2a$12$hash",
		[]authorization.UserRole{authorization.RoleGuard}, &condominiumID, active,
		user.RoleData{BadgeNumber: "G-100"}, time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return u
}
