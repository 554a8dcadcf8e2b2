package session

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, id, userID string, expiresAt time.Time) error
	Find(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
}
