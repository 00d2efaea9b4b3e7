package ports

import (
	"context"

	"github.com/techconnect/club-portal/internal/core/domain"
)

// AuthService implements registration and login for portal accounts.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token plus the
	// authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
