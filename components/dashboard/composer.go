package dashboard

import (
	"fmt"
	"time"

	"github.com/ettle/strcase"
	"golang.org/x/text/language"
)

// DefaultTimeFormat renders the last-updated stamp, e.g. "05 Jun 2025".
const DefaultTimeFormat = "02 Jan 2006"

// StateKind distinguishes the two section states.
type StateKind int

const (
	NoSectionSelected StateKind = iota
	SectionActive
)

// State is the interactive state of a rendered dashboard.
type State struct {
	Kind  StateKind
	Index int
}

func (s State) String() string {
	if s.Kind == NoSectionSelected {
		return "NoSectionSelected"
	}
	return fmt.Sprintf("SectionActive(%d)", s.Index)
}

// RenderedDashboard is an immutable, fully rendered dashboard plus the
// active section. The zero value is NoSectionSelected.
type RenderedDashboard struct {
	title       string
	lastUpdated time.Time
	updatedText string
	headline    []CardElement
	sections    []RenderedSection
	state       State
}

// Title returns the header title.
func (d RenderedDashboard) Title() string { return d.title }

// LastUpdated returns the model timestamp.
func (d RenderedDashboard) LastUpdated() time.Time { return d.lastUpdated }

// LastUpdatedText returns the formatted timestamp.
func (d RenderedDashboard) LastUpdatedText() string { return d.updatedText }

// Headline returns a copy of the headline cards in insertion order.
func (d RenderedDashboard) Headline() []CardElement {
	return append([]CardElement(nil), d.headline...)
}

// Sections returns a deep copy of every rendered section.
func (d RenderedDashboard) Sections() []RenderedSection {
	if d.sections == nil {
		return nil
	}
	sections := make([]RenderedSection, len(d.sections))
	for i, section := range d.sections {
		sections[i] = section.clone()
	}
	return sections
}

// State returns the current section state.
func (d RenderedDashboard) State() State { return d.state }

// ActiveIndex returns the active section index, or -1 when none is selected.
func (d RenderedDashboard) ActiveIndex() int {
	if d.state.Kind != SectionActive {
		return -1
	}
	return d.state.Index
}

// ActiveSection returns the active section.
func (d RenderedDashboard) ActiveSection() (RenderedSection, bool) {
	idx := d.ActiveIndex()
	if idx < 0 || idx >= len(d.sections) {
		return RenderedSection{}, false
	}
	return d.sections[idx].clone(), true
}

// ActiveElements returns the widgets of the active section.
func (d RenderedDashboard) ActiveElements() []VisualElement {
	section, ok := d.ActiveSection()
	if !ok {
		return nil
	}
	return section.Elements
}

// Tabs returns the tab strip with the active tab flagged.
func (d RenderedDashboard) Tabs() []Tab {
	tabs := make([]Tab, len(d.sections))
	active := d.ActiveIndex()
	for i, section := range d.sections {
		tabs[i] = Tab{
			Index:  i,
			Title:  section.Title,
			Slug:   section.Slug,
			Active: i == active,
		}
	}
	return tabs
}

// Composer turns a DashboardModel into a RenderedDashboard. It holds only
// presentation settings and is safe for concurrent use.
type Composer struct {
	palette    []string
	formatter  Formatter
	timeFormat string
}

// ComposerOption customizes a Composer.
type ComposerOption func(*Composer)

// WithPalette replaces the fallback series color cycle.
func WithPalette(colors ...string) ComposerOption {
	return func(c *Composer) {
		if len(colors) > 0 {
			c.palette = append([]string(nil), colors...)
		}
	}
}

// WithLocale selects the locale used for number formatting.
func WithLocale(tag language.Tag) ComposerOption {
	return func(c *Composer) {
		c.formatter = NewFormatter(tag)
	}
}

// WithTimeFormat sets the layout used for the last-updated stamp.
func WithTimeFormat(layout string) ComposerOption {
	return func(c *Composer) {
		if layout != "" {
			c.timeFormat = layout
		}
	}
}

// ForLocale returns a copy of c formatting numbers for the given locale.
func (c *Composer) ForLocale(tag language.Tag) *Composer {
	clone := *c
	clone.formatter = NewFormatter(tag)
	return &clone
}

// NewComposer builds a Composer with English formatting and the default palette.
func NewComposer(opts ...ComposerOption) *Composer {
	c := &Composer{
		palette:    DefaultPalette,
		formatter:  NewFormatter(language.English),
		timeFormat: DefaultTimeFormat,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Build validates the model and renders every section. Validation runs
// before any widget is rendered, so an invalid model yields no output.
func (c *Composer) Build(model DashboardModel) (RenderedDashboard, error) {
	if err := Validate(model); err != nil {
		return RenderedDashboard{}, err
	}
	out := RenderedDashboard{
		title:       model.Title,
		lastUpdated: model.LastUpdated,
		headline:    make([]CardElement, len(model.Headline)),
		sections:    make([]RenderedSection, len(model.Sections)),
	}
	if !model.LastUpdated.IsZero() {
		out.updatedText = model.LastUpdated.Format(c.timeFormat)
	}
	for i, card := range model.Headline {
		out.headline[i] = c.renderCard(card)
	}
	for i, section := range model.Sections {
		rendered := RenderedSection{
			Title:    section.Title,
			Heading:  section.Heading,
			Slug:     strcase.ToKebab(section.Title),
			Elements: make([]VisualElement, len(section.Widgets)),
		}
		for j, widget := range section.Widgets {
			rendered.Elements[j] = c.renderValid(widget)
		}
		out.sections[i] = rendered
	}
	out.state = State{Kind: SectionActive, Index: 0}
	return out, nil
}

// SelectSection returns a copy of d with section index active. On an invalid
// index it returns *IndexOutOfRangeError and d is left as it was.
func (c *Composer) SelectSection(d RenderedDashboard, index int) (RenderedDashboard, error) {
	if index < 0 || index >= len(d.sections) {
		return d, &IndexOutOfRangeError{Index: index, Count: len(d.sections)}
	}
	d.state = State{Kind: SectionActive, Index: index}
	return d, nil
}

// RenderWidget validates a widget and converts it into its visual element.
func (c *Composer) RenderWidget(widget Widget) (VisualElement, error) {
	if err := ValidateWidget(widget); err != nil {
		return VisualElement{}, err
	}
	return c.renderValid(widget), nil
}

func (c *Composer) renderValid(w Widget) VisualElement {
	el := VisualElement{Kind: w.Kind, Title: w.Title, Width: w.span()}
	switch w.Kind {
	case KindChart:
		el.Chart = c.renderChart(w.Title, *w.Chart)
	case KindTable:
		el.Table = c.renderTable(*w.Table)
	case KindMetric:
		card := c.renderCard(*w.Metric)
		el.Card = &card
	case KindProgress:
		el.Progress = &ProgressElement{Value: w.Progress.Value, Label: w.Progress.Label}
	case KindPanel:
		panel := &PanelElement{Title: w.Panel.Title, Body: w.Panel.Body, Collapsed: true}
		if w.Panel.Progress != nil {
			panel.Progress = &ProgressElement{Value: *w.Panel.Progress}
		}
		el.Panel = panel
	}
	return el
}

func (c *Composer) renderChart(title string, chart Chart) *ChartElement {
	el := &ChartElement{
		Type:       chart.Type,
		Title:      title,
		Category:   chart.Category,
		Categories: make([]string, len(chart.Rows)),
		Series:     make([]SeriesElement, len(chart.Series)),
	}
	for i, row := range chart.Rows {
		el.Categories[i] = row[chart.Category].String()
	}
	colors := seriesColors(len(chart.Series), chart.Palette, c.palette)
	for i, field := range chart.Series {
		values := make([]float64, len(chart.Rows))
		for j, row := range chart.Rows {
			values[j], _ = row[field].Float()
		}
		el.Series[i] = SeriesElement{Name: field, Values: values, Color: colors[i]}
	}
	return el
}

func (c *Composer) renderTable(table Table) *TableElement {
	el := &TableElement{
		Columns: append([]string(nil), table.Columns...),
		Rows:    make([][]Cell, len(table.Rows)),
	}
	for i, row := range table.Rows {
		cells := make([]Cell, len(table.Columns))
		for j, col := range table.Columns {
			v, ok := row[col]
			if !ok {
				continue
			}
			cells[j] = Cell{Raw: v, Display: c.formatter.Format(v, table.Formats[col])}
		}
		el.Rows[i] = cells
	}
	for j, col := range table.Columns {
		if hl, ok := table.Highlights[col]; ok {
			applyHighlight(el.Rows, j, hl)
		}
	}
	return el
}

func (c *Composer) renderCard(card MetricCard) CardElement {
	return CardElement{
		Label:     card.Label,
		Value:     c.formatter.FormatPlain(card.Value),
		Delta:     card.Delta,
		Trend:     deltaTrend(card.Delta),
		ColorHint: card.ColorHint,
	}
}
