package ports

import (
	"context"

	"github.com/techconnect/club-portal/internal/core/domain"
)

// UserRepository defines persistence operations for portal accounts.
type UserRepository interface {
	// Create inserts a new user. A duplicate email yields domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
