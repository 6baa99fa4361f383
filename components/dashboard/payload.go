package dashboard

import (
	"errors"
	"fmt"
	"strings"
)

// WidgetData is the map payload handed to templates and JSON clients.
type WidgetData map[string]any

type payloadOptions struct {
	basePath string
	theme    *Theme
	charts   ChartRenderer
}

// buildPayload flattens a rendered dashboard into template data. Chart HTML
// is only rendered when a ChartRenderer is set.
func buildPayload(d RenderedDashboard, o payloadOptions) (WidgetData, error) {
	headline := make([]WidgetData, 0, len(d.Headline()))
	for _, card := range d.Headline() {
		headline = append(headline, cardPayload(card, o.theme))
	}

	tabs := make([]WidgetData, 0, len(d.Sections()))
	for _, tab := range d.Tabs() {
		tabs = append(tabs, WidgetData{
			"index":  tab.Index,
			"title":  tab.Title,
			"slug":   tab.Slug,
			"active": tab.Active,
			"href":   sectionHref(o.basePath, tab.Index),
		})
	}

	payload := WidgetData{
		"title":        d.Title(),
		"last_updated": d.LastUpdatedText(),
		"headline":     headline,
		"tabs":         tabs,
		"active":       d.ActiveIndex(),
		"state":        d.State().String(),
		"base_path":    o.basePath,
	}
	if o.theme != nil {
		payload["theme"] = WidgetData{
			"name":        o.theme.Name,
			"chart_theme": o.theme.ChartTheme,
			"css_vars":    o.theme.CSSVariablesInline(),
		}
	}

	section, ok := d.ActiveSection()
	if !ok {
		return payload, nil
	}
	elements := make([]WidgetData, 0, len(section.Elements))
	for _, el := range section.Elements {
		data, err := elementPayload(el, o)
		if err != nil {
			return nil, err
		}
		elements = append(elements, data)
	}
	payload["section"] = WidgetData{
		"title":    section.Title,
		"heading":  section.Heading,
		"slug":     section.Slug,
		"elements": elements,
	}
	return payload, nil
}

func elementPayload(el VisualElement, o payloadOptions) (WidgetData, error) {
	data := WidgetData{
		"kind":  string(el.Kind),
		"title": el.Title,
		"width": el.Width,
	}
	switch el.Kind {
	case KindChart:
		chart := WidgetData{
			"type":       string(el.Chart.Type),
			"category":   el.Chart.Category,
			"categories": el.Chart.Categories,
			"series":     seriesPayload(el.Chart.Series),
		}
		if o.charts != nil {
			html, err := o.charts.RenderChart(*el.Chart)
			if err != nil {
				return nil, err
			}
			chart["html"] = html
		}
		data["chart"] = chart
	case KindTable:
		data["table"] = tablePayload(el.Table, o.theme)
	case KindMetric:
		data["card"] = cardPayload(*el.Card, o.theme)
	case KindProgress:
		data["progress"] = progressPayload(*el.Progress)
	case KindPanel:
		panel := WidgetData{
			"title":     el.Panel.Title,
			"body":      el.Panel.Body,
			"collapsed": el.Panel.Collapsed,
		}
		if el.Panel.Progress != nil {
			panel["progress"] = progressPayload(*el.Panel.Progress)
		}
		data["panel"] = panel
	default:
		return nil, fmt.Errorf("dashboard: unknown element kind %q", el.Kind)
	}
	return data, nil
}

func seriesPayload(series []SeriesElement) []WidgetData {
	out := make([]WidgetData, len(series))
	for i, s := range series {
		out[i] = WidgetData{
			"name":   s.Name,
			"values": s.Values,
			"color":  s.Color,
		}
	}
	return out
}

func tablePayload(table *TableElement, theme *Theme) WidgetData {
	rows := make([][]WidgetData, len(table.Rows))
	for i, row := range table.Rows {
		cells := make([]WidgetData, len(row))
		for j, cell := range row {
			cells[j] = WidgetData{
				"value":   cell.Raw.Interface(),
				"display": cell.Display,
			}
			if bg := theme.CellBackground(cell); bg != "" {
				cells[j]["background"] = bg
			}
		}
		rows[i] = cells
	}
	return WidgetData{
		"columns": table.Columns,
		"rows":    rows,
	}
}

func cardPayload(card CardElement, theme *Theme) WidgetData {
	data := WidgetData{
		"label": card.Label,
		"value": card.Value,
		"delta": card.Delta,
		"trend": string(card.Trend),
	}
	if card.ColorHint != "" {
		data["color"] = theme.ResolveColor(card.ColorHint)
	}
	if card.Delta != "" {
		data["trend_color"] = theme.ResolveColor(string(card.Trend))
	}
	return data
}

func progressPayload(p ProgressElement) WidgetData {
	return WidgetData{
		"value": p.Value,
		"label": p.Label,
		"text":  fmt.Sprintf("%.0f%%", p.Value),
	}
}

// ErrorPayload describes a failure for the error template and JSON clients.
func ErrorPayload(err error) WidgetData {
	data := WidgetData{"error": err.Error()}
	var validation *ValidationError
	if errors.As(err, &validation) {
		issues := make([]WidgetData, len(validation.Issues))
		for i, issue := range validation.Issues {
			issues[i] = WidgetData{"path": issue.Path, "message": issue.Message}
		}
		data["error"] = "dashboard model is invalid"
		data["issues"] = issues
	}
	var index *IndexOutOfRangeError
	if errors.As(err, &index) {
		data["index"] = index.Index
		data["count"] = index.Count
	}
	return data
}

func sectionHref(basePath string, index int) string {
	return fmt.Sprintf("%s/dashboard/sections/%d", strings.TrimRight(basePath, "/"), index)
}
