package dashboard

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleChartElement(kind ChartType) ChartElement {
	return ChartElement{
		Type:       kind,
		Title:      "Retail Performance",
		Category:   "Month",
		Categories: []string{"Jan", "Feb", "Mar"},
		Series: []SeriesElement{
			{Name: "Retail Target", Values: []float64{120, 130, 125}, Color: "#0068c9"},
			{Name: "Retail Actual", Values: []float64{115, 125, 130}, Color: "#83c9ff"},
		},
	}
}

func TestEChartsRendererRendersSeries(t *testing.T) {
	renderer := NewEChartsRenderer(WithChartCache(nil), WithChartAssetsHost("https://cdn.example.com/echarts"))
	for _, kind := range []ChartType{ChartBar, ChartLine, ChartArea} {
		html, err := renderer.RenderChart(sampleChartElement(kind))
		require.NoError(t, err, kind)
		assert.Contains(t, html, "Retail Target")
		assert.Contains(t, html, "Retail Actual")
		assert.Contains(t, html, "https://cdn.example.com/echarts/")
	}
}

func TestEChartsRendererUsesCache(t *testing.T) {
	cache := NewChartCache(time.Minute)
	renderer := NewEChartsRenderer(WithChartCache(cache), WithChartTheme("dark"))
	assert.Equal(t, "dark", renderer.Theme())

	first, err := renderer.RenderChart(sampleChartElement(ChartBar))
	require.NoError(t, err)
	second, err := renderer.RenderChart(sampleChartElement(ChartBar))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())

	_, err = renderer.RenderChart(sampleChartElement(ChartLine))
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())
}

func TestEChartsCacheKeySkipsUnencodableCharts(t *testing.T) {
	renderer := NewEChartsRenderer(WithChartCache(NewChartCache(time.Minute)))

	alpha := sampleChartElement(ChartLine)
	alpha.Series[0].Values[0] = math.NaN()
	beta := sampleChartElement(ChartLine)
	beta.Series[0].Name = "Beta"
	beta.Series[0].Values[0] = math.NaN()

	_, ok := renderer.cacheKey(alpha)
	assert.False(t, ok)
	_, ok = renderer.cacheKey(beta)
	assert.False(t, ok)

	first, ok := renderer.cacheKey(sampleChartElement(ChartLine))
	require.True(t, ok)
	renamed := sampleChartElement(ChartLine)
	renamed.Series[0].Name = "Beta"
	second, ok := renderer.cacheKey(renamed)
	require.True(t, ok)
	assert.NotEqual(t, first, second)
}

func TestEChartsRendererRejectsUnknownType(t *testing.T) {
	renderer := NewEChartsRenderer(WithChartCache(nil))
	_, err := renderer.RenderChart(sampleChartElement("pie"))
	assert.Error(t, err)
}

func TestDefaultEChartsAssetsHost(t *testing.T) {
	t.Setenv(envEChartsCDN, "https://assets.example.com/echarts")
	assert.Equal(t, "https://assets.example.com/echarts/", DefaultEChartsAssetsHost())

	t.Setenv(envEChartsCDN, "")
	assert.Equal(t, DefaultEChartsCDN, DefaultEChartsAssetsHost())
}
