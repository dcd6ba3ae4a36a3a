package ports

import (
	"context"

	"github.com/communityfund/fund-nexus/internal/core/domain"
)

// CreateLocalityInput carries the fields for a new locality.
type CreateLocalityInput struct {
	Name    string
	Village domain.Village
}

// LocalityService defines the scoped operations for localities. Reads
// are village-scoped like every entity; writes are CORE/ADMIN only and
// fail with ErrForbidden for managers.
type LocalityService interface {
	List(ctx context.Context, actor domain.Actor) ([]domain.Locality, error)
	Create(ctx context.Context, actor domain.Actor, in CreateLocalityInput) (*domain.Locality, error)
	Update(ctx context.Context, actor domain.Actor, l domain.Locality) (*domain.Locality, error)
	Delete(ctx context.Context, actor domain.Actor, id int64) error
}
