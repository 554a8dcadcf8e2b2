package note

import (
	"context"
)

// Repository persists notes. Every query is owner-scoped: a note is only
// visible through the owner id it was created with.
type Repository interface {
	List(ctx context.Context, ownerID string) ([]Note, error)
	Get(ctx context.Context, ownerID, noteID string) (*Note, error)
	Create(ctx context.Context, n *Note) error
	Update(ctx context.Context, n *Note) error
	Delete(ctx context.Context, ownerID, noteID string) error
}

// ListCache is an optional read-through cache for per-owner note lists.
// Implementations must be safe to skip entirely (the service treats a nil
// cache as a miss on every call).
type ListCache interface {
	Get(ctx context.Context, ownerID string) ([]Note, bool)
	Set(ctx context.Context, ownerID string, notes []Note)
	Invalidate(ctx context.Context, ownerID string)
}
