package dashboard

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const defaultChartHeight = "360px"

var sharedChartCache = NewChartCache(5 * time.Minute)

// ChartRenderer turns a chart element into embeddable HTML.
type ChartRenderer interface {
	RenderChart(chart ChartElement) (string, error)
}

// EChartsRenderer renders chart elements server-side with go-echarts.
type EChartsRenderer struct {
	cache      RenderCache
	theme      string
	assetsHost string
	height     string
}

// EChartsOption customizes renderer behavior.
type EChartsOption func(*EChartsRenderer)

// WithChartCache injects a render cache. Nil disables caching.
func WithChartCache(cache RenderCache) EChartsOption {
	return func(r *EChartsRenderer) {
		r.cache = cache
	}
}

// WithChartTheme sets the ECharts theme (defaults to Westeros).
func WithChartTheme(theme string) EChartsOption {
	return func(r *EChartsRenderer) {
		if theme != "" {
			r.theme = theme
		}
	}
}

// WithChartAssetsHost rewrites the assets host so ECharts JS loads from a CDN.
func WithChartAssetsHost(host string) EChartsOption {
	return func(r *EChartsRenderer) {
		r.assetsHost = ensureTrailingSlash(host)
	}
}

// WithChartHeight overrides the chart container height.
func WithChartHeight(height string) EChartsOption {
	return func(r *EChartsRenderer) {
		if height != "" {
			r.height = height
		}
	}
}

// NewEChartsRenderer builds a renderer with the shared cache.
func NewEChartsRenderer(options ...EChartsOption) *EChartsRenderer {
	r := &EChartsRenderer{
		cache:      sharedChartCache,
		theme:      types.ThemeWesteros,
		assetsHost: DefaultEChartsAssetsHost(),
		height:     defaultChartHeight,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Theme reports the configured chart theme.
func (r *EChartsRenderer) Theme() string { return r.theme }

// RenderChart implements ChartRenderer.
func (r *EChartsRenderer) RenderChart(chart ChartElement) (string, error) {
	renderFn := func() (string, error) {
		return r.render(chart)
	}
	if r.cache == nil {
		return renderFn()
	}
	key, ok := r.cacheKey(chart)
	if !ok {
		return renderFn()
	}
	return r.cache.GetOrRender(key, renderFn)
}

func (r *EChartsRenderer) render(chart ChartElement) (string, error) {
	switch chart.Type {
	case ChartBar:
		return r.renderBar(chart)
	case ChartLine, ChartArea:
		return r.renderLine(chart)
	default:
		return "", fmt.Errorf("dashboard: unsupported chart type %q", chart.Type)
	}
}

func (r *EChartsRenderer) renderBar(chart ChartElement) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(r.globalChartOptions(chart)...)
	bar.SetXAxis(chart.Categories)
	for _, s := range chart.Series {
		bar.AddSeries(s.Name, toBarData(chart.Categories, s.Values),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
	}
	return renderEChart(bar)
}

func (r *EChartsRenderer) renderLine(chart ChartElement) (string, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(r.globalChartOptions(chart)...)
	line.SetXAxis(chart.Categories)
	for _, s := range chart.Series {
		seriesOpts := []charts.SeriesOpts{
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
		}
		if chart.Type == ChartArea {
			seriesOpts = append(seriesOpts, charts.WithAreaStyleOpts(opts.AreaStyle{}))
		}
		line.AddSeries(s.Name, toLineData(chart.Categories, s.Values), seriesOpts...)
	}
	if chart.Type == ChartLine {
		line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}))
	}
	return renderEChart(line)
}

func renderEChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", fmt.Errorf("dashboard: render chart: %w", err)
	}
	return buf.String(), nil
}

func (r *EChartsRenderer) globalChartOptions(chart ChartElement) []charts.GlobalOpts {
	initOpts := opts.Initialization{
		Theme:  r.theme,
		Width:  "100%",
		Height: r.height,
	}
	if r.assetsHost != "" {
		initOpts.AssetsHost = r.assetsHost
	}
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: chart.Title}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(len(chart.Series) > 1)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: chart.Category}),
	}
}

// cacheKey hashes everything that influences the output so identical charts
// share one entry. Charts that cannot be hashed are not cached.
func (r *EChartsRenderer) cacheKey(chart ChartElement) (string, bool) {
	b, err := json.Marshal(struct {
		Chart      ChartElement
		Theme      string
		AssetsHost string
		Height     string
	}{chart, r.theme, r.assetsHost, r.height})
	if err != nil {
		return "", false
	}
	sum := sha1.Sum(b)
	return string(chart.Type) + ":" + hex.EncodeToString(sum[:]), true
}

func toBarData(categories []string, values []float64) []opts.BarData {
	data := make([]opts.BarData, len(values))
	for i, value := range values {
		data[i] = opts.BarData{Name: categoryAt(categories, i), Value: value}
	}
	return data
}

func toLineData(categories []string, values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, value := range values {
		data[i] = opts.LineData{Name: categoryAt(categories, i), Value: value}
	}
	return data
}

func categoryAt(categories []string, i int) string {
	if i < len(categories) {
		return categories[i]
	}
	return ""
}
