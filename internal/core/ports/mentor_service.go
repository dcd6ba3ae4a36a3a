package ports

import (
	"context"

	"github.com/communityfund/fund-nexus/internal/core/domain"
)

// CreateMentorInput carries the fields for a new mentor. Village is
// pinned to the actor's assigned village for managers.
type CreateMentorInput struct {
	Name     string
	Contact  string
	Village  domain.Village
	Locality string
}

// MentorService defines the scoped CRUD operations for mentors.
type MentorService interface {
	List(ctx context.Context, actor domain.Actor) ([]domain.Mentor, error)
	Create(ctx context.Context, actor domain.Actor, in CreateMentorInput) (*domain.Mentor, error)
	Update(ctx context.Context, actor domain.Actor, m domain.Mentor) (*domain.Mentor, error)
	Delete(ctx context.Context, actor domain.Actor, id int64) error
}
