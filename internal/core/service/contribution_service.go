package service

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
)

// ReportInvalidator drops cached dashboards whose scope covers the
// given villages. Writes call it best-effort; failures are logged, not
// surfaced.
type ReportInvalidator interface {
	Invalidate(ctx context.Context, villages ...domain.Village) error
}

// ContributionService is the scoped repository for contributions:
// every read is pre-filtered and every write pre-validated against the
// actor's scope before the store is touched.
type ContributionService struct {
	repo    ports.ContributionRepository
	reports ReportInvalidator
	log     zerolog.Logger
}

// NewContributionService wires the store and the report cache
// invalidator. reports may be nil when no cache is configured.
func NewContributionService(repo ports.ContributionRepository, reports ReportInvalidator, log zerolog.Logger) *ContributionService {
	return &ContributionService{repo: repo, reports: reports, log: log}
}

func (s *ContributionService) List(ctx context.Context, actor domain.Actor) ([]domain.Contribution, error) {
	filter := ports.ListFilter{}
	if scope, limited := actor.VillageScope(); limited {
		filter.Village = scope
	}
	return s.repo.List(ctx, filter)
}

func (s *ContributionService) Create(ctx context.Context, actor domain.Actor, in ports.CreateContributionInput) (*domain.Contribution, error) {
	if !actor.CanCreate(domain.EntityContribution) {
		return nil, domain.ErrForbidden
	}

	c := domain.Contribution{
		DonorName:    in.DonorName,
		DonorContact: in.DonorContact,
		Village:      actor.PinVillage(in.Village),
		Locality:     in.Locality,
		Amount:       in.Amount,
		PaymentType:  in.PaymentType,
		Date:         in.Date,
	}
	if c.Date == "" {
		c.Date = domain.Today()
	}
	if err := validateContribution(&c); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &c); err != nil {
		s.log.Error().Err(err).Msg("failed to create contribution")
		return nil, err
	}

	s.invalidate(ctx, c.Village)
	s.log.Info().
		Int64("id", c.ID).
		Str("village", string(c.Village)).
		Float64("amount", c.Amount).
		Str("actor", actor.Username).
		Msg("contribution created")

	return &c, nil
}

func (s *ContributionService) Update(ctx context.Context, actor domain.Actor, c domain.Contribution) (*domain.Contribution, error) {
	if !actor.CanUpdate(domain.EntityContribution) {
		return nil, domain.ErrForbidden
	}

	existing, err := s.repo.FindByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	// A record outside the actor's scope is answered exactly like a
	// missing one, so ids in other villages cannot be probed.
	if !actor.CanSee(existing.Village) {
		return nil, domain.ErrContributionNotFound
	}

	c.Village = actor.PinVillage(c.Village)
	if err := validateContribution(&c); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &c); err != nil {
		return nil, err
	}

	s.invalidate(ctx, existing.Village, c.Village)
	s.log.Info().Int64("id", c.ID).Str("actor", actor.Username).Msg("contribution updated")

	return &c, nil
}

func (s *ContributionService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if !actor.CanDelete() {
		return domain.ErrForbidden
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, existing.Village)
	s.log.Info().Int64("id", id).Str("actor", actor.Username).Msg("contribution deleted")

	return nil
}

func (s *ContributionService) invalidate(ctx context.Context, villages ...domain.Village) {
	if s.reports == nil {
		return
	}
	if err := s.reports.Invalidate(ctx, villages...); err != nil {
		s.log.Warn().Err(err).Msg("report cache invalidation failed")
	}
}

func validateContribution(c *domain.Contribution) error {
	if c.DonorName == "" {
		return domain.Validationf("donor_name", "is required")
	}
	if !c.Village.Valid() {
		return domain.Validationf("village", "must be a known village")
	}
	if c.Locality == "" {
		return domain.Validationf("locality", "is required")
	}
	if !(c.Amount > 0) || math.IsInf(c.Amount, 0) || math.IsNaN(c.Amount) {
		return domain.Validationf("amount", "must be a positive number")
	}
	if !c.PaymentType.Valid() {
		return domain.Validationf("payment_type", "must be one of Cash, Online, Other")
	}
	if !domain.ValidDate(c.Date) {
		return domain.Validationf("date", "must be a calendar date in YYYY-MM-DD form")
	}
	return nil
}
