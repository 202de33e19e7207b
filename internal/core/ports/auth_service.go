package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// AuthService implements registration and login. Both mint a token so a fresh
// account is usable immediately.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
