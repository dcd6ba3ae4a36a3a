package ports

import (
	"context"

	"github.com/communityfund/fund-nexus/internal/core/domain"
)

// UserRepository defines the roster lookup used by authentication.
// FindByUsername matches case-insensitively.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}
