package ports

import (
	"context"

	"github.com/communityfund/fund-nexus/internal/core/domain"
)

// MentorRepository defines persistence operations for mentors.
type MentorRepository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Mentor, error)
	FindByID(ctx context.Context, id int64) (*domain.Mentor, error)
	Create(ctx context.Context, m *domain.Mentor) error
	Update(ctx context.Context, m *domain.Mentor) error
	Delete(ctx context.Context, id int64) error
}
