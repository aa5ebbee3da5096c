package repository

import (
	"context"

	"gamehub/internal/domain/entity"
	"gamehub/internal/errors"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines user-related database operations.
type UserRepository interface {
	// FindUserByID retrieves a user by its identity.
	FindUserByID(ctx context.Context, id int64) (*entity.User, error)
}
