package panicalert

import "context"

// Repository defines the interface for panic event data operations
type Repository interface {
	Create(ctx context.Context, e *Event) error

	GetByID(ctx context.Context, id uint) (*Event, error)

	GetByUUID(ctx context.Context, uid string) (*Event, error)

	Update(ctx context.Context, e *Event) error

	// ListByCondominium returns the tenant's events, newest first. When
	// activeOnly is set only unresolved events are returned.
	ListByCondominium(ctx context.Context, condominiumID uint, activeOnly bool, page, pageSize int) ([]*Event, int64, error)
}
