package dashboard

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `
version: "1"
dashboard:
  title: Dealer Snapshot
  last_updated: 2025-06-05T09:00:00Z
  headline:
    - label: Dealer Code
      value: DLR-001
    - label: Evaluation Score
      value: "87/100"
      color_hint: success
  sections:
    - title: Sales Performance
      heading: Sales Performance Dashboard
      widgets:
        - kind: chart
          title: Retail Performance
          width: 8
          chart:
            type: bar
            category: Month
            series: [Retail Target, Retail Actual]
            rows:
              - {Month: Jan, Retail Target: 120, Retail Actual: 115}
              - {Month: Feb, Retail Target: 130, Retail Actual: 125}
        - kind: table
          table:
            columns: [Role, Vacancy %]
            rows:
              - {Role: Sales, Vacancy %: 20}
              - {Role: "2024", Vacancy %: 17.5}
            formats:
              Vacancy %: percent
            highlights:
              Vacancy %: {style: bar}
        - kind: progress
          progress: {value: 96, label: Overall Achievement}
`

func TestDecodeModel(t *testing.T) {
	doc, err := DecodeModel(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, DocumentVersion, doc.Version)
	model := doc.Model
	assert.Equal(t, "Dealer Snapshot", model.Title)
	assert.Equal(t, time.Date(2025, time.June, 5, 9, 0, 0, 0, time.UTC), model.LastUpdated.UTC())
	require.Len(t, model.Headline, 2)
	assert.Equal(t, Text("87/100"), model.Headline[1].Value)

	widgets := model.Sections[0].Widgets
	require.Len(t, widgets, 3)
	assert.Equal(t, KindChart, widgets[0].Kind)
	assert.Equal(t, Int(120), widgets[0].Chart.Rows[0]["Retail Target"])
	assert.Equal(t, Text("Jan"), widgets[0].Chart.Rows[0]["Month"])

	table := widgets[1].Table
	require.NotNil(t, table)
	assert.Equal(t, Text("2024"), table.Rows[1]["Role"])
	assert.Equal(t, Number(17.5), table.Rows[1]["Vacancy %"])
	assert.Equal(t, HighlightBar, table.Highlights["Vacancy %"].Style)
}

func TestDecodeModelDefaultsVersion(t *testing.T) {
	doc, err := DecodeModel(strings.NewReader(strings.Replace(sampleDocument, `version: "1"`, "", 1)))
	require.NoError(t, err)
	assert.Equal(t, DocumentVersion, doc.Version)
}

func TestDecodeModelRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"unknown field": strings.Replace(sampleDocument, "title: Dealer Snapshot", "title: Dealer Snapshot\n  owner: ops", 1),
		"bad chart type": strings.Replace(sampleDocument, "type: bar", "type: pie", 1),
		"progress range": strings.Replace(sampleDocument, "value: 96", "value: 196", 1),
		"no sections":    "version: \"1\"\ndashboard:\n  title: Empty\n  sections: []\n",
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeModel(strings.NewReader(payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestDecodeModelRejectsModelViolations(t *testing.T) {
	payload := strings.Replace(sampleDocument, "series: [Retail Target, Retail Actual]", "series: [Retail Target, Wholesale]", 1)
	_, err := DecodeModel(strings.NewReader(payload))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), `missing series field "Wholesale"`)
}

func TestDecodeModelRejectsUnsupportedVersion(t *testing.T) {
	_, err := DecodeModel(strings.NewReader(strings.Replace(sampleDocument, `version: "1"`, `version: "2"`, 1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported model document version")
}

func TestDecodeModelEmpty(t *testing.T) {
	_, err := DecodeModel(strings.NewReader("  \n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestEncodeModelRoundTrip(t *testing.T) {
	model := DefaultDealerModel(time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC))
	var buf bytes.Buffer
	require.NoError(t, EncodeModel(&buf, model))

	doc, err := DecodeModel(&buf)
	require.NoError(t, err)
	assert.Equal(t, model.Title, doc.Model.Title)
	require.Len(t, doc.Model.Sections, len(model.Sections))

	table := doc.Model.Sections[1].Widgets[4].Table
	require.NotNil(t, table)
	assert.Equal(t, []string{"Brand", "Volume", "Growth LY", "MS Change"}, table.Columns)
	assert.Equal(t, Text("Competitor A"), table.Rows[1]["Brand"])
	assert.Equal(t, Number(-0.3), table.Rows[1]["MS Change"])
}

func TestReadModelFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dealer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o600))

	doc, err := ReadModelFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Source)

	_, err = ReadModelFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open model")
}

func TestJSONPointerToPath(t *testing.T) {
	assert.Equal(t, "dashboard.sections[0].widgets[2].progress.value", jsonPointerToPath("/dashboard/sections/0/widgets/2/progress/value"))
	assert.Equal(t, "", jsonPointerToPath(""))
	assert.Equal(t, "a/b", jsonPointerToPath("/a~1b"))
}

func TestDecodeModelIntegerLiterals(t *testing.T) {
	payload := strings.Replace(sampleDocument,
		"{Month: Jan, Retail Target: 120, Retail Actual: 115}",
		"{Month: Jan, Retail Target: 0x1F, Retail Actual: 0o17}", 1)
	doc, err := DecodeModel(strings.NewReader(payload))
	require.NoError(t, err)
	row := doc.Model.Sections[0].Widgets[0].Chart.Rows[0]
	assert.Equal(t, Int(31), row["Retail Target"])
	assert.Equal(t, Int(15), row["Retail Actual"])
}

func TestDecodeModelAllowsEmptyTitles(t *testing.T) {
	payload := "version: \"1\"\ndashboard:\n  title: \"\"\n  sections:\n    - title: \"\"\n      widgets: []\n"
	doc, err := DecodeModel(strings.NewReader(payload))
	require.NoError(t, err)
	assert.Empty(t, doc.Model.Title)
	require.Len(t, doc.Model.Sections, 1)
}
