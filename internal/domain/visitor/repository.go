package visitor

import (
	"context"
	"time"
)

// AuthorizationRepository persists visitor authorizations.
type AuthorizationRepository interface {
	Create(ctx context.Context, a *Authorization) error

	GetByID(ctx context.Context, id uint) (*Authorization, error)

	GetByUUID(ctx context.Context, uid string) (*Authorization, error)

	// ListByCreator returns the authorizations a resident created, newest first.
	ListByCreator(ctx context.Context, createdBy uint, page, pageSize int) ([]*Authorization, int64, error)

	// ListByCondominium returns the tenant's authorizations, newest first.
	ListByCondominium(ctx context.Context, condominiumID uint, page, pageSize int) ([]*Authorization, int64, error)

	// DeleteIfNoVisitorInside atomically deletes the authorization unless a
	// linked entry is still inside. Returns ErrVisitorInside when the guard
	// condition fails and ErrAuthorizationGone when the row does not exist.
	// The conditional delete runs as a single statement so a concurrent
	// check-in cannot race the deletion.
	DeleteIfNoVisitorInside(ctx context.Context, id uint) error

	// HasVisitorInside reports whether any linked entry is currently inside.
	HasVisitorInside(ctx context.Context, id uint) (bool, error)
}

// EntryRepository persists visitor entries.
type EntryRepository interface {
	Create(ctx context.Context, e *Entry) error

	GetByID(ctx context.Context, id uint) (*Entry, error)

	GetByUUID(ctx context.Context, uid string) (*Entry, error)

	// CheckOut transitions an inside entry to exited with a single
	// conditional update; returns ErrEntryNotFound when the entry does not
	// exist or already exited, so concurrent checkouts lose cleanly.
	CheckOut(ctx context.Context, id uint, exitAt time.Time, notes string) error

	// ListInside returns the tenant's entries currently inside.
	ListInside(ctx context.Context, condominiumID uint) ([]*Entry, error)

	// ListBetween returns the tenant's entries whose entry time falls in
	// [from, to), newest first.
	ListBetween(ctx context.Context, condominiumID uint, from, to time.Time, page, pageSize int) ([]*Entry, int64, error)

	// ListHistory returns all of the tenant's entries, newest first.
	ListHistory(ctx context.Context, condominiumID uint, page, pageSize int) ([]*Entry, int64, error)
}
