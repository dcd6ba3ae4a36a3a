package ports

import (
	"context"

	"github.com/communityfund/fund-nexus/internal/core/domain"
)

// CreateContributionInput carries the fields for a new contribution.
// Village is advisory for managers: the service pins it to the actor's
// assigned village. Date defaults to today when empty.
type CreateContributionInput struct {
	DonorName    string
	DonorContact string
	Village      domain.Village
	Locality     string
	Amount       float64
	PaymentType  domain.PaymentType
	Date         string
}

// ContributionService defines the scoped CRUD operations for
// contributions. Every read is pre-filtered and every write
// pre-validated against the actor's scope.
type ContributionService interface {
	List(ctx context.Context, actor domain.Actor) ([]domain.Contribution, error)
	Create(ctx context.Context, actor domain.Actor, in CreateContributionInput) (*domain.Contribution, error)
	Update(ctx context.Context, actor domain.Actor, c domain.Contribution) (*domain.Contribution, error)
	Delete(ctx context.Context, actor domain.Actor, id int64) error
}
