package dashboard

// VisualElement is the rendered form of one Widget. Kind selects the
// populated element.
type VisualElement struct {
	Kind     WidgetKind       `json:"kind"`
	Title    string           `json:"title,omitempty"`
	Width    int              `json:"width"`
	Chart    *ChartElement    `json:"chart,omitempty"`
	Table    *TableElement    `json:"table,omitempty"`
	Card     *CardElement     `json:"card,omitempty"`
	Progress *ProgressElement `json:"progress,omitempty"`
	Panel    *PanelElement    `json:"panel,omitempty"`
}

// ChartElement holds the domain axis and parallel series of a chart.
type ChartElement struct {
	Type       ChartType       `json:"type"`
	Title      string          `json:"title,omitempty"`
	Category   string          `json:"category"`
	Categories []string        `json:"categories"`
	Series     []SeriesElement `json:"series"`
}

// SeriesElement is one plotted series with its resolved color.
type SeriesElement struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Color  string    `json:"color"`
}

// TableElement holds display-ready cells in the original row/column order.
type TableElement struct {
	Columns []string `json:"columns"`
	Rows    [][]Cell `json:"rows"`
}

// Cell is one table cell. Fill is the highlight intensity in [0,1] when the
// column is highlighted.
type Cell struct {
	Raw     Value          `json:"raw"`
	Display string         `json:"display"`
	Tint    string         `json:"tint,omitempty"`
	Style   HighlightStyle `json:"style,omitempty"`
	Fill    float64        `json:"fill,omitempty"`
}

// CardElement is a rendered metric card.
type CardElement struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Delta     string `json:"delta,omitempty"`
	Trend     Trend  `json:"trend"`
	ColorHint string `json:"color_hint,omitempty"`
}

// ProgressElement is a rendered progress bar.
type ProgressElement struct {
	Value float64 `json:"value"`
	Label string  `json:"label,omitempty"`
}

// PanelElement is a rendered expandable panel; it starts collapsed.
type PanelElement struct {
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Collapsed bool             `json:"collapsed"`
	Progress  *ProgressElement `json:"progress,omitempty"`
}

// Tab is one entry of the section tab strip.
type Tab struct {
	Index  int    `json:"index"`
	Title  string `json:"title"`
	Slug   string `json:"slug"`
	Active bool   `json:"active"`
}

// RenderedSection is a section with its widgets rendered.
type RenderedSection struct {
	Title    string          `json:"title"`
	Heading  string          `json:"heading,omitempty"`
	Slug     string          `json:"slug"`
	Elements []VisualElement `json:"elements"`
}

func (s RenderedSection) clone() RenderedSection {
	if s.Elements == nil {
		return s
	}
	elements := make([]VisualElement, len(s.Elements))
	for i, el := range s.Elements {
		elements[i] = el.clone()
	}
	s.Elements = elements
	return s
}

func (el VisualElement) clone() VisualElement {
	if el.Chart != nil {
		chart := *el.Chart
		chart.Categories = append([]string(nil), chart.Categories...)
		chart.Series = make([]SeriesElement, len(el.Chart.Series))
		for i, s := range el.Chart.Series {
			s.Values = append([]float64(nil), s.Values...)
			chart.Series[i] = s
		}
		el.Chart = &chart
	}
	if el.Table != nil {
		table := TableElement{
			Columns: append([]string(nil), el.Table.Columns...),
			Rows:    make([][]Cell, len(el.Table.Rows)),
		}
		for i, row := range el.Table.Rows {
			table.Rows[i] = append([]Cell(nil), row...)
		}
		el.Table = &table
	}
	if el.Card != nil {
		card := *el.Card
		el.Card = &card
	}
	if el.Progress != nil {
		progress := *el.Progress
		el.Progress = &progress
	}
	if el.Panel != nil {
		panel := *el.Panel
		if panel.Progress != nil {
			progress := *panel.Progress
			panel.Progress = &progress
		}
		el.Panel = &panel
	}
	return el
}
