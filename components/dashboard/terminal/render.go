// Package terminal renders composed dashboards as plain terminal text.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/goliatone/go-dealer-dashboard/components/dashboard"
)

const (
	barWidth     = 24
	defaultWidth = 100
)

var errNoSection = errors.New("terminal: dashboard has no active section")

// Options tunes terminal output.
type Options struct {
	// Width bounds the horizontal layout of cards and bars.
	Width int
}

func (o Options) normalized() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	return o
}

// Render writes the header, headline cards, tab strip and active section.
func Render(w io.Writer, d dashboard.RenderedDashboard, opts Options) error {
	opts = opts.normalized()
	section, ok := d.ActiveSection()
	if !ok {
		return errNoSection
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(d.Title()))
	b.WriteString("\n")
	if updated := d.LastUpdatedText(); updated != "" {
		b.WriteString(styles.Subtle.Render("Last updated: " + updated))
		b.WriteString("\n")
	}
	if cards := d.Headline(); len(cards) > 0 {
		b.WriteString(renderCards(cards, opts.Width))
		b.WriteString("\n")
	}
	b.WriteString(renderTabs(d.Tabs()))
	b.WriteString("\n\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	return RenderSection(w, section, opts)
}

// RenderSection writes one rendered section, element by element.
func RenderSection(w io.Writer, section dashboard.RenderedSection, opts Options) error {
	opts = opts.normalized()
	var b strings.Builder
	heading := section.Heading
	if heading == "" {
		heading = section.Title
	}
	b.WriteString(styles.Heading.Render(heading))
	b.WriteString("\n\n")

	var pendingCards []dashboard.CardElement
	flushCards := func() {
		if len(pendingCards) == 0 {
			return
		}
		b.WriteString(renderCards(pendingCards, opts.Width))
		b.WriteString("\n\n")
		pendingCards = nil
	}

	for _, el := range section.Elements {
		if el.Kind == dashboard.KindMetric && el.Card != nil && el.Title == "" {
			pendingCards = append(pendingCards, *el.Card)
			continue
		}
		flushCards()
		if el.Title != "" {
			b.WriteString(styles.Widget.Render(el.Title))
			b.WriteString("\n")
		}
		body, err := renderElement(el, opts)
		if err != nil {
			return err
		}
		if el.Kind == dashboard.KindMetric {
			pendingCards = append(pendingCards, *el.Card)
			continue
		}
		b.WriteString(body)
		b.WriteString("\n\n")
	}
	flushCards()

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderElement writes a single rendered widget with its title.
func RenderElement(w io.Writer, el dashboard.VisualElement, opts Options) error {
	opts = opts.normalized()
	body, err := renderElement(el, opts)
	if err != nil {
		return err
	}
	if el.Kind == dashboard.KindMetric {
		body = renderCards([]dashboard.CardElement{*el.Card}, opts.Width)
	}
	var b strings.Builder
	if el.Title != "" {
		b.WriteString(styles.Widget.Render(el.Title))
		b.WriteString("\n")
	}
	b.WriteString(body)
	b.WriteString("\n")
	_, err = io.WriteString(w, b.String())
	return err
}

func renderElement(el dashboard.VisualElement, opts Options) (string, error) {
	switch el.Kind {
	case dashboard.KindChart:
		if el.Chart == nil {
			break
		}
		return renderChart(*el.Chart), nil
	case dashboard.KindTable:
		if el.Table == nil {
			break
		}
		return renderTable(*el.Table), nil
	case dashboard.KindMetric:
		if el.Card == nil {
			break
		}
		return "", nil
	case dashboard.KindProgress:
		if el.Progress == nil {
			break
		}
		return renderProgress(*el.Progress), nil
	case dashboard.KindPanel:
		if el.Panel == nil {
			break
		}
		return renderPanel(*el.Panel), nil
	}
	return "", fmt.Errorf("terminal: element %q has no payload", el.Kind)
}

// renderChart prints the chart as a category/series table followed by a
// bar per category for the first series.
func renderChart(chart dashboard.ChartElement) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	header := table.Row{chart.Category}
	for _, s := range chart.Series {
		header = append(header, s.Name)
	}
	t.AppendHeader(header)

	for i, category := range chart.Categories {
		row := table.Row{category}
		for _, s := range chart.Series {
			row = append(row, formatNumber(valueAt(s.Values, i)))
		}
		t.AppendRow(row)
	}

	out := t.Render()
	if len(chart.Series) == 0 || len(chart.Categories) == 0 {
		return out
	}
	first := chart.Series[0]
	peak := 0.0
	for _, v := range first.Values {
		peak = math.Max(peak, math.Abs(v))
	}
	labelWidth := 0
	for _, category := range chart.Categories {
		labelWidth = max(labelWidth, lipgloss.Width(category))
	}
	color := lipgloss.NewStyle().Foreground(lipgloss.Color(first.Color))
	var b strings.Builder
	b.WriteString(out)
	b.WriteString("\n")
	for i, category := range chart.Categories {
		v := valueAt(first.Values, i)
		n := 0
		if peak > 0 {
			n = int(math.Round(math.Abs(v) / peak * barWidth))
		}
		fmt.Fprintf(&b, "%-*s %s %s\n", labelWidth, category, color.Render(strings.Repeat("█", n)), formatNumber(v))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderTable(tbl dashboard.TableElement) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	header := make(table.Row, len(tbl.Columns))
	for i, col := range tbl.Columns {
		header[i] = col
	}
	t.AppendHeader(header)
	for _, cells := range tbl.Rows {
		row := make(table.Row, len(cells))
		for i, cell := range cells {
			row[i] = renderCell(cell)
		}
		t.AppendRow(row)
	}
	return t.Render()
}

func renderCell(cell dashboard.Cell) string {
	if cell.Tint == "" || cell.Style != dashboard.HighlightBar {
		return cell.Display
	}
	n := int(math.Round(cell.Fill * 10))
	return cell.Display + " " + strings.Repeat("▮", n)
}

func renderCards(cards []dashboard.CardElement, width int) string {
	if len(cards) == 0 {
		return ""
	}
	cardWidth := max(width/len(cards)-2, 14)
	blocks := make([]string, len(cards))
	for i, card := range cards {
		lines := []string{
			styles.Subtle.Render(card.Label),
			styles.CardValue.Render(card.Value),
		}
		if card.Delta != "" {
			lines = append(lines, trendStyle(card.Trend).Render(trendArrow(card.Trend)+" "+card.Delta))
		}
		blocks[i] = styles.Card.Width(cardWidth).Render(strings.Join(lines, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func renderTabs(tabs []dashboard.Tab) string {
	parts := make([]string, len(tabs))
	for i, tab := range tabs {
		label := fmt.Sprintf("%d %s", tab.Index+1, tab.Title)
		if tab.Active {
			parts[i] = styles.TabActive.Render(label)
			continue
		}
		parts[i] = styles.Tab.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderProgress(p dashboard.ProgressElement) string {
	filled := int(math.Round(p.Value / 100 * barWidth))
	filled = min(max(filled, 0), barWidth)
	bar := "[" + strings.Repeat("=", filled) + strings.Repeat(" ", barWidth-filled) + "]"
	line := fmt.Sprintf("%s %.0f%%", bar, p.Value)
	if p.Label != "" {
		line = p.Label + " " + line
	}
	return line
}

func renderPanel(p dashboard.PanelElement) string {
	marker := "▸"
	if !p.Collapsed {
		marker = "▾"
	}
	lines := []string{marker + " " + p.Title, "  " + p.Body}
	if p.Progress != nil {
		lines = append(lines, "  "+renderProgress(*p.Progress))
	}
	return strings.Join(lines, "\n")
}

func trendStyle(trend dashboard.Trend) lipgloss.Style {
	switch trend {
	case dashboard.TrendUp:
		return styles.Up
	case dashboard.TrendDown:
		return styles.Down
	default:
		return styles.Flat
	}
}

func trendArrow(trend dashboard.Trend) string {
	switch trend {
	case dashboard.TrendUp:
		return "▲"
	case dashboard.TrendDown:
		return "▼"
	default:
		return "•"
	}
}

func valueAt(values []float64, i int) float64 {
	if i < 0 || i >= len(values) {
		return 0
	}
	return values[i]
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
