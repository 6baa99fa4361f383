package dashboard

import (
	"context"
	"time"
)

// ModelSource produces a fresh DashboardModel for every render.
type ModelSource interface {
	Model(ctx context.Context) (DashboardModel, error)
}

// SessionStore keeps the active section per viewer session.
type SessionStore interface {
	ActiveSection(ctx context.Context, session SessionContext) (int, bool, error)
	SaveActiveSection(ctx context.Context, session SessionContext, index int) error
}

// SessionContext identifies the viewer session a render belongs to.
type SessionContext struct {
	ID     string
	Locale string
}

// DashboardModel is the complete, immutable description of a dashboard.
type DashboardModel struct {
	Title       string       `json:"title" yaml:"title"`
	LastUpdated time.Time    `json:"last_updated" yaml:"last_updated"`
	Headline    []MetricCard `json:"headline,omitempty" yaml:"headline,omitempty"`
	Sections    []Section    `json:"sections" yaml:"sections"`
}

// MetricCard is a single label/value statistic, optionally with a delta.
type MetricCard struct {
	Label     string `json:"label" yaml:"label"`
	Value     Value  `json:"value" yaml:"value"`
	Delta     string `json:"delta,omitempty" yaml:"delta,omitempty"`
	ColorHint string `json:"color_hint,omitempty" yaml:"color_hint,omitempty"`
}

// Section is one navigable tab. Widget order is display order.
type Section struct {
	Title   string   `json:"title" yaml:"title"`
	Heading string   `json:"heading,omitempty" yaml:"heading,omitempty"`
	Widgets []Widget `json:"widgets" yaml:"widgets"`
}

// ChartType enumerates the supported chart renderings.
type ChartType string

const (
	ChartBar  ChartType = "bar"
	ChartLine ChartType = "line"
	ChartArea ChartType = "area"
)

// Chart plots one or more numeric series against a category field.
type Chart struct {
	Type     ChartType `json:"type" yaml:"type"`
	Category string    `json:"category" yaml:"category"`
	Series   []string  `json:"series" yaml:"series"`
	Rows     []Row     `json:"rows" yaml:"rows"`
	Palette  []string  `json:"palette,omitempty" yaml:"palette,omitempty"`
}

// Table is a tabular widget with optional per-column display rules.
type Table struct {
	Columns    []string             `json:"columns" yaml:"columns"`
	Rows       []Row                `json:"rows" yaml:"rows"`
	Formats    map[string]string    `json:"formats,omitempty" yaml:"formats,omitempty"`
	Highlights map[string]Highlight `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// HighlightStyle selects how a highlighted column is shaded.
type HighlightStyle string

const (
	HighlightGradient HighlightStyle = "gradient"
	HighlightBar      HighlightStyle = "bar"
)

// Highlight shades the cells of a numeric column relative to its range.
type Highlight struct {
	Style HighlightStyle `json:"style" yaml:"style"`
	Color string         `json:"color,omitempty" yaml:"color,omitempty"`
}

// ProgressPanel shows a percentage in [0,100].
type ProgressPanel struct {
	Value float64 `json:"value" yaml:"value"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
}

// ExpandablePanel is a collapsed-by-default text panel.
type ExpandablePanel struct {
	Title    string   `json:"title" yaml:"title"`
	Body     string   `json:"body" yaml:"body"`
	Progress *float64 `json:"progress,omitempty" yaml:"progress,omitempty"`
}
