package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
	"github.com/communityfund/fund-nexus/internal/core/report"
)

// DashboardCache abstracts the rendered-dashboard cache (Redis). A nil
// dashboard with a nil error means a miss.
type DashboardCache interface {
	Get(ctx context.Context, scope string) (*report.Dashboard, error)
	Set(ctx context.Context, scope string, d *report.Dashboard) error
}

// ReportService renders dashboards over the actor's visible
// contributions. The aggregation itself never applies access control —
// scoping happens once, in the contribution listing.
type ReportService struct {
	contributions ports.ContributionService
	cache         DashboardCache
	log           zerolog.Logger
}

// NewReportService wires the scoped contribution listing and an
// optional cache (nil disables caching).
func NewReportService(contributions ports.ContributionService, cache DashboardCache, log zerolog.Logger) *ReportService {
	return &ReportService{contributions: contributions, cache: cache, log: log}
}

func (s *ReportService) Dashboard(ctx context.Context, actor domain.Actor) (*report.Dashboard, error) {
	scope := scopeKey(actor)

	if s.cache != nil {
		d, err := s.cache.Get(ctx, scope)
		if err != nil {
			s.log.Warn().Err(err).Str("scope", scope).Msg("report cache read failed, recomputing")
		} else if d != nil {
			return d, nil
		}
	}

	contributions, err := s.contributions.List(ctx, actor)
	if err != nil {
		return nil, err
	}

	d := report.BuildDashboard(contributions)

	if s.cache != nil {
		if err := s.cache.Set(ctx, scope, d); err != nil {
			s.log.Warn().Err(err).Str("scope", scope).Msg("report cache write failed")
		}
	}

	return d, nil
}

// scopeKey names the cache entry for an actor's visibility scope. All
// unrestricted roles share one entry; each manager village has its own.
func scopeKey(actor domain.Actor) string {
	if scope, limited := actor.VillageScope(); limited {
		return "village:" + string(scope)
	}
	return "all"
}
