package terminal

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-dealer-dashboard/components/dashboard"
)

func buildDealer(t *testing.T) dashboard.RenderedDashboard {
	t.Helper()
	model := dashboard.DefaultDealerModel(time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC))
	d, err := dashboard.NewComposer().Build(model)
	require.NoError(t, err)
	return d
}

func TestRenderActiveSection(t *testing.T) {
	d := buildDealer(t)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, d, Options{}))

	out := buf.String()
	assert.Contains(t, out, "OEM Dealer Performance Dashboard")
	assert.Contains(t, out, "Last updated: 05 Jun 2025")
	assert.Contains(t, out, "DLR-001")
	assert.Contains(t, out, "1 Sales Performance")
	assert.Contains(t, out, "5 Issues Tracking")
	assert.Contains(t, out, "Sales Performance Dashboard")
	assert.Contains(t, out, "Retail Target")
	assert.Contains(t, out, "Jan")
	assert.Contains(t, out, "Overall Achievement")
	assert.Contains(t, out, "96%")
	assert.NotContains(t, out, "Staffing Levels")
}

func TestRenderSelectedSection(t *testing.T) {
	d := buildDealer(t)
	d, err := dashboard.NewComposer().SelectSection(d, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, d, Options{Width: 80}))
	out := buf.String()
	assert.Contains(t, out, "Manpower Dashboard")
	assert.Contains(t, out, "Staffing Levels")
	assert.Contains(t, out, "Management")
	assert.Contains(t, out, "20%")
	assert.Contains(t, out, "EV Workshop")
}

func TestRenderSectionPanelsAndCards(t *testing.T) {
	d := buildDealer(t)
	sections := d.Sections()
	require.Len(t, sections, 5)

	var buf bytes.Buffer
	require.NoError(t, RenderSection(&buf, sections[4], Options{}))
	out := buf.String()
	assert.Contains(t, out, "Issues & Complaints Dashboard")
	assert.Contains(t, out, "Deviation Tracking")
	assert.Contains(t, out, "▸ Stock Variance")
	assert.Contains(t, out, "2.5% below target")
	assert.Contains(t, out, "75%")

	buf.Reset()
	require.NoError(t, RenderSection(&buf, sections[1], Options{}))
	out = buf.String()
	assert.Contains(t, out, "Company Snapshot")
	assert.Contains(t, out, "Inventory Days")
	assert.Contains(t, out, "▼ -3 vs LY")
	assert.Contains(t, out, "▲ 8.5% vs LY")
	assert.Contains(t, out, "Competitor C")
}

func TestRenderWithoutSections(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, dashboard.RenderedDashboard{}, Options{})
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestRenderProgressBounds(t *testing.T) {
	assert.Equal(t, "["+spaces(barWidth)+"] 0%", renderProgress(dashboard.ProgressElement{}))
	full := renderProgress(dashboard.ProgressElement{Value: 100, Label: "Done"})
	assert.Contains(t, full, "Done [========================] 100%")
}

func TestRenderElementWithoutPayload(t *testing.T) {
	_, err := renderElement(dashboard.VisualElement{Kind: dashboard.KindTable}, Options{})
	require.Error(t, err)
}

func spaces(n int) string {
	return string(bytes.Repeat([]byte(" "), n))
}
