package ports

import (
	"context"

	"github.com/communityfund/fund-nexus/internal/core/domain"
)

// ListFilter carries the visibility scope for listing records.
// Village is always resolved by the service layer from the actor's
// scope: empty = no filter (CORE/ADMIN); non-empty = scoped (MANAGER).
type ListFilter struct {
	Village domain.Village
}

// ContributionRepository defines persistence operations for
// contributions. Implementations own identity assignment on Create and
// have no awareness of actors or scoping.
type ContributionRepository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Contribution, error)
	FindByID(ctx context.Context, id int64) (*domain.Contribution, error)
	Create(ctx context.Context, c *domain.Contribution) error
	Update(ctx context.Context, c *domain.Contribution) error
	Delete(ctx context.Context, id int64) error
}
