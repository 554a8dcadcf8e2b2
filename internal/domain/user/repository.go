package user

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, email, passwordHash string) (string, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
}
