package ports

import (
	"context"

	"github.com/communityfund/fund-nexus/internal/core/domain"
)

// LocalityRepository defines persistence operations for localities.
type LocalityRepository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Locality, error)
	FindByID(ctx context.Context, id int64) (*domain.Locality, error)
	Create(ctx context.Context, l *domain.Locality) error
	Update(ctx context.Context, l *domain.Locality) error
	Delete(ctx context.Context, id int64) error
}
