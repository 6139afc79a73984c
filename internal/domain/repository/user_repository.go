package repository

import (
	"context"

	"airnova-service/internal/domain/entity"
)

// UserRepository defines access to registered users.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail returns nil when no user has the given email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
