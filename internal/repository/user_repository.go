package repository

import (
	"context"

	"github.com/pressroom/news-service/internal/domain"
)

// UserRepository provides read-only access to users. The API surface never
// creates or mutates users.
type UserRepository interface {
	// List retrieves all users ordered by username.
	List(ctx context.Context) ([]*domain.User, error)

	// GetByUsername retrieves a user by username.
	// Returns domain.ErrNotFound if no matching user exists.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
