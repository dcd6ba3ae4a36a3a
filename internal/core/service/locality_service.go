package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
)

// LocalityService is the scoped repository for localities. Reads follow
// the uniform village-scope rule (a manager sees the own village's
// localities, which the contribution form needs); all writes are hard
// role-gated to CORE and ADMIN, deletes to ADMIN.
type LocalityService struct {
	repo ports.LocalityRepository
	log  zerolog.Logger
}

func NewLocalityService(repo ports.LocalityRepository, log zerolog.Logger) *LocalityService {
	return &LocalityService{repo: repo, log: log}
}

func (s *LocalityService) List(ctx context.Context, actor domain.Actor) ([]domain.Locality, error) {
	filter := ports.ListFilter{}
	if scope, limited := actor.VillageScope(); limited {
		filter.Village = scope
	}
	return s.repo.List(ctx, filter)
}

func (s *LocalityService) Create(ctx context.Context, actor domain.Actor, in ports.CreateLocalityInput) (*domain.Locality, error) {
	if !actor.CanCreate(domain.EntityLocality) {
		return nil, domain.ErrForbidden
	}

	l := domain.Locality{Name: in.Name, Village: in.Village}
	if err := validateLocality(&l); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &l); err != nil {
		s.log.Error().Err(err).Msg("failed to create locality")
		return nil, err
	}

	s.log.Info().Int64("id", l.ID).Str("village", string(l.Village)).Str("actor", actor.Username).Msg("locality created")
	return &l, nil
}

func (s *LocalityService) Update(ctx context.Context, actor domain.Actor, l domain.Locality) (*domain.Locality, error) {
	if !actor.CanUpdate(domain.EntityLocality) {
		return nil, domain.ErrForbidden
	}

	if _, err := s.repo.FindByID(ctx, l.ID); err != nil {
		return nil, err
	}
	if err := validateLocality(&l); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &l); err != nil {
		return nil, err
	}

	s.log.Info().Int64("id", l.ID).Str("actor", actor.Username).Msg("locality updated")
	return &l, nil
}

func (s *LocalityService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if !actor.CanDelete() {
		return domain.ErrForbidden
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int64("id", id).Str("actor", actor.Username).Msg("locality deleted")
	return nil
}

func validateLocality(l *domain.Locality) error {
	if l.Name == "" {
		return domain.Validationf("name", "is required")
	}
	if !l.Village.Valid() {
		return domain.Validationf("village", "must be a known village")
	}
	return nil
}
