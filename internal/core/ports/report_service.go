package ports

import (
	"context"

	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/report"
)

// ReportService renders aggregate dashboard views over the actor's
// visible contributions.
type ReportService interface {
	Dashboard(ctx context.Context, actor domain.Actor) (*report.Dashboard, error)
}
