package usecases

import (
	"context"
	"testing"
	"time"

	"genturix/internal/domain/audit"
	"genturix/internal/domain/user"
	"genturix/internal/infrastructure/auth"
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
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	GetByUUIDFunc  func(ctx context.Context, uid string) (*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
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
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
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
	return nil, nil
}

type mockLimiter struct {
	AllowFunc         func(ctx context.Context, email, ip string) (bool, error)
	RecordFailureFunc func(ctx context.Context, email, ip string)
}

func (m *mockLimiter) Allow(ctx context.Context, email, ip string) (bool, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, email, ip)
	}
	return true, nil
}

func (m *mockLimiter) RecordFailure(ctx context.Context, email, ip string) {
	if m.RecordFailureFunc != nil {
		m.RecordFailureFunc(ctx, email, ip)
	}
}

type mockHasher struct {
	VerifyFunc func(password, hash string) error
}

func (m *mockHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenService struct {
	GenerateFunc func(userUUID string, roles []authorization.UserRole, condominiumID *uint) (*TokenPair, error)
}

func (m *mockTokenService) Generate(userUUID string, roles []authorization.UserRole, condominiumID *uint) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userUUID, roles, condominiumID)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

type mockVerifier struct {
	VerifyRefreshFunc func(tokenString string) (*auth.Claims, error)
}

func (m *mockVerifier) VerifyRefresh(tokenString string) (*auth.Claims, error) {
	if m.VerifyRefreshFunc != nil {
		return m.VerifyRefreshFunc(tokenString)
	}
	return nil, nil
}

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

func testResident(t *testing.T, active bool) *user.User {
	t.Helper()
	condoID := uint(1)
	u, err := user.Reconstruct(
		9, "user-uuid", "ana@example.com", "Ana Torres", "$2a$12$hash",
		[]authorization.UserRole{authorization.RoleResident}, &condoID, active,
		user.RoleData{ApartmentNumber: "4B"}, time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return u
}
