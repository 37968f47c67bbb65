package audit

import (
	"context"
	"time"
)

// Filter narrows audit queries for export.
type Filter struct {
	CondominiumID *uint // nil = all tenants (SuperAdmin scope)
	EventType     EventType
	From          time.Time
	To            time.Time
}

// Repository defines the interface for audit log data operations.
// The log is append-only: no update or delete operations exist.
type Repository interface {
	Append(ctx context.Context, e *Entry) error

	// List returns entries matching the filter, oldest first, capped at limit.
	List(ctx context.Context, filter Filter, limit int) ([]*Entry, error)

	// Count returns the number of entries matching the filter.
	Count(ctx context.Context, filter Filter) (int64, error)
}
