package usecases

import (
	"context"
	"time"

	auditusecases "genturix/internal/application/audit/usecases"
	"genturix/internal/domain/audit"
	"genturix/internal/domain/billing"
	"genturix/internal/domain/condominium"
	"genturix/internal/shared/logger"
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

type mockCondominiumRepository struct {
	CreateFunc               func(ctx context.Context, c *condominium.Condominium) error
	GetByIDFunc              func(ctx context.Context, id uint) (*condominium.Condominium, error)
	GetByUUIDFunc            func(ctx context.Context, uid string) (*condominium.Condominium, error)
	UpdateFunc               func(ctx context.Context, c *condominium.Condominium) error
	ListFunc                 func(ctx context.Context, page, pageSize int) ([]*condominium.Condominium, int64, error)
	CountActiveSeatUsersFunc func(ctx context.Context, condominiumID uint) (int64, error)
}

func (m *mockCondominiumRepository) Create(ctx context.Context, c *condominium.Condominium) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCondominiumRepository) GetByID(ctx context.Context, id uint) (*condominium.Condominium, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCondominiumRepository) GetByUUID(ctx context.Context, uid string) (*condominium.Condominium, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, uid)
	}
	return nil, nil
}

func (m *mockCondominiumRepository) Update(ctx context.Context, c *condominium.Condominium) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCondominiumRepository) List(ctx context.Context, page, pageSize int) ([]*condominium.Condominium, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockCondominiumRepository) CountActiveSeatUsers(ctx context.Context, condominiumID uint) (int64, error) {
	if m.CountActiveSeatUsersFunc != nil {
		return m.CountActiveSeatUsersFunc(ctx, condominiumID)
	}
	return 0, nil
}

type mockPricingRepository struct {
	GetGlobalFunc func(ctx context.Context) (billing.GlobalPricing, error)
	SetGlobalFunc func(ctx context.Context, p billing.GlobalPricing) error
}

func (m *mockPricingRepository) GetGlobal(ctx context.Context) (billing.GlobalPricing, error) {
	if m.GetGlobalFunc != nil {
		return m.GetGlobalFunc(ctx)
	}
	return billing.GlobalPricing{SeatPriceCents: 500, Currency: "USD"}, nil
}

func (m *mockPricingRepository) SetGlobal(ctx context.Context, p billing.GlobalPricing) error {
	if m.SetGlobalFunc != nil {
		return m.SetGlobalFunc(ctx, p)
	}
	return nil
}

type mockUpgradeRepository struct {
	CreateFunc         func(ctx context.Context, r *billing.SeatUpgradeRequest) error
	GetByIDFunc        func(ctx context.Context, id uint) (*billing.SeatUpgradeRequest, error)
	GetByUUIDFunc      func(ctx context.Context, uid string) (*billing.SeatUpgradeRequest, error)
	UpdateDecisionFunc func(ctx context.Context, r *billing.SeatUpgradeRequest) error
	HasPendingFunc     func(ctx context.Context, condominiumID uint) (bool, error)
	ListFunc           func(ctx context.Context, condominiumID *uint, page, pageSize int) ([]*billing.SeatUpgradeRequest, int64, error)
}

func (m *mockUpgradeRepository) Create(ctx context.Context, r *billing.SeatUpgradeRequest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockUpgradeRepository) GetByID(ctx context.Context, id uint) (*billing.SeatUpgradeRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUpgradeRepository) GetByUUID(ctx context.Context, uid string) (*billing.SeatUpgradeRequest, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, uid)
	}
	return nil, nil
}

func (m *mockUpgradeRepository) UpdateDecision(ctx context.Context, r *billing.SeatUpgradeRequest) error {
	if m.UpdateDecisionFunc != nil {
		return m.UpdateDecisionFunc(ctx, r)
	}
	return nil
}

func (m *mockUpgradeRepository) HasPending(ctx context.Context, condominiumID uint) (bool, error) {
	if m.HasPendingFunc != nil {
		return m.HasPendingFunc(ctx, condominiumID)
	}
	return false, nil
}

func (m *mockUpgradeRepository) List(ctx context.Context, condominiumID *uint, page, pageSize int) ([]*billing.SeatUpgradeRequest, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, condominiumID, page, pageSize)
	}
	return nil, 0, nil
}

type mockLedgerRepository struct {
	AppendFunc            func(ctx context.Context, t *billing.Transaction) error
	BalanceFunc           func(ctx context.Context, condominiumID uint) (int64, error)
	ListByCondominiumFunc func(ctx context.Context, condominiumID uint, page, pageSize int) ([]*billing.Transaction, int64, error)
	RecordRunFunc         func(ctx context.Context, run *billing.SchedulerRun) (bool, error)
	ListRunsFunc          func(ctx context.Context, page, pageSize int) ([]*billing.SchedulerRun, int64, error)
	LastRunFunc           func(ctx context.Context) (*billing.SchedulerRun, error)
}

func (m *mockLedgerRepository) Append(ctx context.Context, t *billing.Transaction) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, t)
	}
	return nil
}

func (m *mockLedgerRepository) Balance(ctx context.Context, condominiumID uint) (int64, error) {
	if m.BalanceFunc != nil {
		return m.BalanceFunc(ctx, condominiumID)
	}
	return 0, nil
}

func (m *mockLedgerRepository) ListByCondominium(ctx context.Context, condominiumID uint, page, pageSize int) ([]*billing.Transaction, int64, error) {
	if m.ListByCondominiumFunc != nil {
		return m.ListByCondominiumFunc(ctx, condominiumID, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockLedgerRepository) RecordRun(ctx context.Context, run *billing.SchedulerRun) (bool, error) {
	if m.RecordRunFunc != nil {
		return m.RecordRunFunc(ctx, run)
	}
	return true, nil
}

func (m *mockLedgerRepository) ListRuns(ctx context.Context, page, pageSize int) ([]*billing.SchedulerRun, int64, error) {
	if m.ListRunsFunc != nil {
		return m.ListRunsFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockLedgerRepository) LastRun(ctx context.Context) (*billing.SchedulerRun, error) {
	if m.LastRunFunc != nil {
		return m.LastRunFunc(ctx)
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

func testCondominium(t interface{ Fatalf(string, ...any) }, id uint, override *int64) *condominium.Condominium {
	condo, err := condominium.Reconstruct(
		id, "condo-uuid", "Las Palmas", condominium.BillingActive, 10, "USD",
		nil, override, time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return condo
}
