package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
)

// MentorService is the scoped repository for mentors. The rules match
// contributions: village-scoped reads for managers, pinned village on
// manager writes, ADMIN-only deletes.
type MentorService struct {
	repo ports.MentorRepository
	log  zerolog.Logger
}

func NewMentorService(repo ports.MentorRepository, log zerolog.Logger) *MentorService {
	return &MentorService{repo: repo, log: log}
}

func (s *MentorService) List(ctx context.Context, actor domain.Actor) ([]domain.Mentor, error) {
	filter := ports.ListFilter{}
	if scope, limited := actor.VillageScope(); limited {
		filter.Village = scope
	}
	return s.repo.List(ctx, filter)
}

func (s *MentorService) Create(ctx context.Context, actor domain.Actor, in ports.CreateMentorInput) (*domain.Mentor, error) {
	if !actor.CanCreate(domain.EntityMentor) {
		return nil, domain.ErrForbidden
	}

	m := domain.Mentor{
		Name:     in.Name,
		Contact:  in.Contact,
		Village:  actor.PinVillage(in.Village),
		Locality: in.Locality,
	}
	if err := validateMentor(&m); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &m); err != nil {
		s.log.Error().Err(err).Msg("failed to create mentor")
		return nil, err
	}

	s.log.Info().Int64("id", m.ID).Str("village", string(m.Village)).Str("actor", actor.Username).Msg("mentor created")
	return &m, nil
}

func (s *MentorService) Update(ctx context.Context, actor domain.Actor, m domain.Mentor) (*domain.Mentor, error) {
	if !actor.CanUpdate(domain.EntityMentor) {
		return nil, domain.ErrForbidden
	}

	existing, err := s.repo.FindByID(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	if !actor.CanSee(existing.Village) {
		return nil, domain.ErrMentorNotFound
	}

	m.Village = actor.PinVillage(m.Village)
	if err := validateMentor(&m); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &m); err != nil {
		return nil, err
	}

	s.log.Info().Int64("id", m.ID).Str("actor", actor.Username).Msg("mentor updated")
	return &m, nil
}

func (s *MentorService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if !actor.CanDelete() {
		return domain.ErrForbidden
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int64("id", id).Str("actor", actor.Username).Msg("mentor deleted")
	return nil
}

func validateMentor(m *domain.Mentor) error {
	if m.Name == "" {
		return domain.Validationf("name", "is required")
	}
	if m.Contact == "" {
		return domain.Validationf("contact", "is required")
	}
	if !m.Village.Valid() {
		return domain.Validationf("village", "must be a known village")
	}
	if m.Locality == "" {
		return domain.Validationf("locality", "is required")
	}
	return nil
}
