package ports

import (
	"context"

	"github.com/communityfund/fund-nexus/internal/core/domain"
)

// AuthService resolves a login attempt to an actor identity and a
// session token. Password is only checked for the ADMIN account.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.Actor, error)
}
