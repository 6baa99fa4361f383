package queries

import (
	"context"
	"testing"

	dashboard "github.com/goliatone/go-dealer-dashboard/components/dashboard"
)

func TestDashboardQuery(t *testing.T) {
	service := dashboard.NewService(dashboard.Options{})
	query := NewDashboardQuery(service)
	d, err := query.Query(context.Background(), dashboard.SessionContext{ID: "s1"})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(d.Sections()) != 5 {
		t.Fatalf("expected 5 sections, got %d", len(d.Sections()))
	}
	if d.ActiveIndex() != 0 {
		t.Fatalf("expected first section active, got %d", d.ActiveIndex())
	}
}

func TestRenderWidgetQuery(t *testing.T) {
	query := NewRenderWidgetQuery(dashboard.NewService(dashboard.Options{}))
	el, err := query.Query(context.Background(), dashboard.NewMetricWidget(dashboard.MetricCard{
		Label: "Inventory Days",
		Value: dashboard.Int(28),
		Delta: "-3 vs LY",
	}))
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if el.Card == nil || el.Card.Trend != dashboard.TrendDown {
		t.Fatalf("expected downward trend card, got %#v", el.Card)
	}
	if _, err := query.Query(context.Background(), dashboard.Widget{Kind: "gauge"}); err == nil {
		t.Fatalf("expected validation error for unknown kind")
	}
}
