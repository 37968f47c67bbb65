package billing

import "context"

// PricingRepository persists the single global pricing record.
type PricingRepository interface {
	// GetGlobal returns the current global pricing, seeding from the given
	// default when no record exists yet.
	GetGlobal(ctx context.Context) (GlobalPricing, error)

	// SetGlobal replaces the global pricing record.
	SetGlobal(ctx context.Context, p GlobalPricing) error
}

// UpgradeRepository persists seat upgrade requests.
type UpgradeRepository interface {
	// Create inserts a pending request; returns ErrPendingExists when the
	// condominium already has one. The uniqueness check and insert run in
	// one transaction.
	Create(ctx context.Context, r *SeatUpgradeRequest) error

	GetByID(ctx context.Context, id uint) (*SeatUpgradeRequest, error)

	GetByUUID(ctx context.Context, uid string) (*SeatUpgradeRequest, error)

	// UpdateDecision persists a decision with a conditional update on
	// status=pending; returns ErrRequestDecided when another decision won.
	UpdateDecision(ctx context.Context, r *SeatUpgradeRequest) error

	// HasPending reports whether the condominium has a pending request.
	HasPending(ctx context.Context, condominiumID uint) (bool, error)

	// List returns requests, optionally filtered by condominium, newest first.
	List(ctx context.Context, condominiumID *uint, page, pageSize int) ([]*SeatUpgradeRequest, int64, error)
}

// LedgerRepository persists billing transactions and scheduler runs.
type LedgerRepository interface {
	// Append writes a transaction; entries are never updated or deleted.
	Append(ctx context.Context, t *Transaction) error

	// Balance returns the tenant's running balance in cents (charges
	// positive, payments negative).
	Balance(ctx context.Context, condominiumID uint) (int64, error)

	// ListByCondominium returns the tenant's ledger, newest first.
	ListByCondominium(ctx context.Context, condominiumID uint, page, pageSize int) ([]*Transaction, int64, error)

	// RecordRun inserts a scheduler run guarded by the unique
	// (condominium, period) pair; returns false without error when the
	// period was already charged.
	RecordRun(ctx context.Context, run *SchedulerRun) (bool, error)

	// ListRuns returns scheduler run history, newest first.
	ListRuns(ctx context.Context, page, pageSize int) ([]*SchedulerRun, int64, error)

	// LastRun returns the most recent scheduler run, or nil when none exists.
	LastRun(ctx context.Context) (*SchedulerRun, error)
}
