package condominium

import "context"

// Repository defines the interface for condominium data operations
type Repository interface {
	// Create creates a new condominium
	Create(ctx context.Context, c *Condominium) error

	// GetByID retrieves a condominium by internal ID
	GetByID(ctx context.Context, id uint) (*Condominium, error)

	// GetByUUID retrieves a condominium by public UUID
	GetByUUID(ctx context.Context, uid string) (*Condominium, error)

	// Update persists changes to an existing condominium
	Update(ctx context.Context, c *Condominium) error

	// List retrieves all condominiums, newest first
	List(ctx context.Context, page, pageSize int) ([]*Condominium, int64, error)

	// CountActiveSeatUsers counts active tenant users that occupy a seat
	CountActiveSeatUsers(ctx context.Context, condominiumID uint) (int64, error)
}
