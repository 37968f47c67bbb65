package shift

import "context"

// ListFilter narrows shift listings.
type ListFilter struct {
	Page       int
	PageSize   int
	GuardID    *uint
	ActiveOnly bool
}

// Repository defines the interface for shift data operations
type Repository interface {
	Create(ctx context.Context, s *Shift) error

	GetByID(ctx context.Context, id uint) (*Shift, error)

	GetByUUID(ctx context.Context, uid string) (*Shift, error)

	Update(ctx context.Context, s *Shift) error

	// List returns the tenant's shifts ordered by start time. When
	// filter.ActiveOnly is set, cancelled shifts are excluded.
	List(ctx context.Context, condominiumID uint, filter ListFilter) ([]*Shift, int64, error)
}
