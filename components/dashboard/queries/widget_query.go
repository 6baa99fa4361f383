package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-dealer-dashboard/components/dashboard"
)

type widgetService interface {
	RenderWidget(ctx context.Context, widget dashboard.Widget) (dashboard.VisualElement, error)
}

// RenderWidgetQuery renders a single widget outside any dashboard.
type RenderWidgetQuery struct {
	service widgetService
}

// NewRenderWidgetQuery builds the query.
func NewRenderWidgetQuery(service widgetService) *RenderWidgetQuery {
	return &RenderWidgetQuery{service: service}
}

var _ gocommand.Querier[dashboard.Widget, dashboard.VisualElement] = (*RenderWidgetQuery)(nil)

// Query validates and renders the widget.
func (q *RenderWidgetQuery) Query(ctx context.Context, widget dashboard.Widget) (dashboard.VisualElement, error) {
	return q.service.RenderWidget(ctx, widget)
}
