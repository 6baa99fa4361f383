package dashboard

import (
	"fmt"
	"math"
	"sort"
)

type issueCollector struct {
	issues []ValidationIssue
}

func (c *issueCollector) add(path, format string, args ...any) {
	c.issues = append(c.issues, ValidationIssue{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (c *issueCollector) err() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks every model invariant and returns a *ValidationError
// listing all violations, or nil.
func Validate(model DashboardModel) error {
	c := &issueCollector{}
	for i, card := range model.Headline {
		validateCard(c, fmt.Sprintf("headline[%d]", i), card)
	}
	if len(model.Sections) == 0 {
		c.add("sections", "at least one section is required")
	}
	for i, section := range model.Sections {
		path := fmt.Sprintf("sections[%d]", i)
		for j, widget := range section.Widgets {
			validateWidget(c, fmt.Sprintf("%s.widgets[%d]", path, j), widget)
		}
	}
	return c.err()
}

// ValidateWidget checks a single widget's invariants.
func ValidateWidget(widget Widget) error {
	c := &issueCollector{}
	validateWidget(c, "widget", widget)
	return c.err()
}

func validateWidget(c *issueCollector, path string, w Widget) {
	if w.payloadCount() > 1 {
		c.add(path, "widget of kind %q carries more than one payload", w.Kind)
	}
	switch w.Kind {
	case KindChart:
		if w.Chart == nil {
			c.add(path+".chart", "is required for kind chart")
			return
		}
		validateChart(c, path+".chart", *w.Chart)
	case KindTable:
		if w.Table == nil {
			c.add(path+".table", "is required for kind table")
			return
		}
		validateTable(c, path+".table", *w.Table)
	case KindMetric:
		if w.Metric == nil {
			c.add(path+".metric", "is required for kind metric")
			return
		}
		validateCard(c, path+".metric", *w.Metric)
	case KindProgress:
		if w.Progress == nil {
			c.add(path+".progress", "is required for kind progress")
			return
		}
		validatePercent(c, path+".progress.value", w.Progress.Value)
	case KindPanel:
		if w.Panel == nil {
			c.add(path+".panel", "is required for kind panel")
			return
		}
		if w.Panel.Progress != nil {
			validatePercent(c, path+".panel.progress", *w.Panel.Progress)
		}
	default:
		c.add(path+".kind", "unknown widget kind %q", w.Kind)
	}
}

func validateCard(c *issueCollector, path string, card MetricCard) {
	validateFinite(c, path+".value", card.Value)
}

// validateFinite rejects NaN and infinities, which have no JSON encoding.
func validateFinite(c *issueCollector, path string, v Value) {
	if f, ok := v.Float(); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		c.add(path, "must be a finite number, got %v", f)
	}
}

func validatePercent(c *issueCollector, path string, v float64) {
	if math.IsNaN(v) || v < 0 || v > 100 {
		c.add(path, "must be within [0, 100], got %v", v)
	}
}

func validateChart(c *issueCollector, path string, chart Chart) {
	switch chart.Type {
	case ChartBar, ChartLine, ChartArea:
	default:
		c.add(path+".type", "unsupported chart type %q", chart.Type)
	}
	if chart.Category == "" {
		c.add(path+".category", "is required")
	}
	for i, row := range chart.Rows {
		rowPath := fmt.Sprintf("%s.rows[%d]", path, i)
		if chart.Category != "" {
			if _, ok := row[chart.Category]; !ok {
				c.add(rowPath, "missing category field %q", chart.Category)
			}
		}
		for _, field := range chart.Series {
			v, ok := row[field]
			if !ok {
				c.add(rowPath, "missing series field %q", field)
				continue
			}
			if !v.IsNumber() {
				c.add(rowPath, "series field %q must be numeric, got %q", field, v.String())
				continue
			}
			validateFinite(c, rowPath+"."+field, v)
		}
	}
	for i, color := range chart.Palette {
		if color == "" {
			c.add(fmt.Sprintf("%s.palette[%d]", path, i), "color must not be empty")
		}
	}
}

func validateTable(c *issueCollector, path string, table Table) {
	columns := make(map[string]struct{}, len(table.Columns))
	for _, col := range table.Columns {
		columns[col] = struct{}{}
	}
	for i, row := range table.Rows {
		for _, col := range table.Columns {
			if v, ok := row[col]; ok {
				validateFinite(c, fmt.Sprintf("%s.rows[%d].%s", path, i, col), v)
			}
		}
	}
	for _, key := range sortedKeys(table.Formats) {
		if _, ok := columns[key]; !ok {
			c.add(path+".formats", "format key %q is not a column", key)
		}
		if _, err := parseCellFormat(table.Formats[key]); err != nil {
			c.add(path+".formats."+key, "%v", err)
		}
	}
	for _, key := range sortedKeys(table.Highlights) {
		if _, ok := columns[key]; !ok {
			c.add(path+".highlights", "highlight key %q is not a column", key)
		}
		switch table.Highlights[key].Style {
		case HighlightGradient, HighlightBar:
		default:
			c.add(path+".highlights."+key, "unknown highlight style %q", table.Highlights[key].Style)
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
