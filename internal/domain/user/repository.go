package user

import "context"

// ListFilter represents filtering and pagination options for the user list
type ListFilter struct {
	Page          int
	PageSize      int
	CondominiumID *uint
	Role          string
	Email         string
	ActiveOnly    bool
}

// Repository defines the interface for user data operations
type Repository interface {
	// Create creates a new user. Returns ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, u *User) error

	// GetByID retrieves a user by internal ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByUUID retrieves a user by public UUID
	GetByUUID(ctx context.Context, uid string) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update persists changes to an existing user
	Update(ctx context.Context, u *User) error

	// List retrieves a paginated, filtered list of users
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)

	// ExistsByEmail checks if a user exists by email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ListGuardsByCondominium returns the active guards of a tenant,
	// used by the notification fan-out
	ListGuardsByCondominium(ctx context.Context, condominiumID uint) ([]*User, error)
}
