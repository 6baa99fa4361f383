package dashboard

// WidgetKind tags the Widget variant.
type WidgetKind string

const (
	KindChart    WidgetKind = "chart"
	KindTable    WidgetKind = "table"
	KindMetric   WidgetKind = "metric"
	KindProgress WidgetKind = "progress"
	KindPanel    WidgetKind = "panel"
)

const gridColumns = 12

// Widget is a tagged variant: Kind selects which payload is set.
type Widget struct {
	Kind     WidgetKind       `json:"kind" yaml:"kind"`
	Title    string           `json:"title,omitempty" yaml:"title,omitempty"`
	Width    int              `json:"width,omitempty" yaml:"width,omitempty"`
	Chart    *Chart           `json:"chart,omitempty" yaml:"chart,omitempty"`
	Table    *Table           `json:"table,omitempty" yaml:"table,omitempty"`
	Metric   *MetricCard      `json:"metric,omitempty" yaml:"metric,omitempty"`
	Progress *ProgressPanel   `json:"progress,omitempty" yaml:"progress,omitempty"`
	Panel    *ExpandablePanel `json:"panel,omitempty" yaml:"panel,omitempty"`
}

// WidgetOption customizes widgets built by the New*Widget constructors.
type WidgetOption func(*Widget)

// WithTitle sets the subheader shown above the widget.
func WithTitle(title string) WidgetOption {
	return func(w *Widget) {
		w.Title = title
	}
}

// WithWidth sets the grid span (1-12).
func WithWidth(width int) WidgetOption {
	return func(w *Widget) {
		w.Width = width
	}
}

func newWidget(kind WidgetKind, opts []WidgetOption) Widget {
	w := Widget{Kind: kind}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// NewChartWidget wraps a chart.
func NewChartWidget(chart Chart, opts ...WidgetOption) Widget {
	w := newWidget(KindChart, opts)
	w.Chart = &chart
	return w
}

// NewTableWidget wraps a table.
func NewTableWidget(table Table, opts ...WidgetOption) Widget {
	w := newWidget(KindTable, opts)
	w.Table = &table
	return w
}

// NewMetricWidget wraps a metric card shown inside a section.
func NewMetricWidget(card MetricCard, opts ...WidgetOption) Widget {
	w := newWidget(KindMetric, opts)
	w.Metric = &card
	return w
}

// NewProgressWidget wraps a progress panel.
func NewProgressWidget(panel ProgressPanel, opts ...WidgetOption) Widget {
	w := newWidget(KindProgress, opts)
	w.Progress = &panel
	return w
}

// NewPanelWidget wraps an expandable panel.
func NewPanelWidget(panel ExpandablePanel, opts ...WidgetOption) Widget {
	w := newWidget(KindPanel, opts)
	w.Panel = &panel
	return w
}

// payloadCount reports how many variant payloads are set.
func (w Widget) payloadCount() int {
	n := 0
	if w.Chart != nil {
		n++
	}
	if w.Table != nil {
		n++
	}
	if w.Metric != nil {
		n++
	}
	if w.Progress != nil {
		n++
	}
	if w.Panel != nil {
		n++
	}
	return n
}

func (w Widget) span() int {
	switch {
	case w.Width <= 0, w.Width > gridColumns:
		return gridColumns
	default:
		return w.Width
	}
}
