package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-dealer-dashboard/components/dashboard"
)

type dashboardService interface {
	Dashboard(ctx context.Context, session dashboard.SessionContext) (dashboard.RenderedDashboard, error)
}

// DashboardQuery renders the dashboard for a session.
type DashboardQuery struct {
	service dashboardService
}

// NewDashboardQuery builds the query.
func NewDashboardQuery(service dashboardService) *DashboardQuery {
	return &DashboardQuery{service: service}
}

var _ gocommand.Querier[dashboard.SessionContext, dashboard.RenderedDashboard] = (*DashboardQuery)(nil)

// Query resolves the dashboard for the session.
func (q *DashboardQuery) Query(ctx context.Context, session dashboard.SessionContext) (dashboard.RenderedDashboard, error) {
	return q.service.Dashboard(ctx, session)
}
