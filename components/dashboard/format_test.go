package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatterRules(t *testing.T) {
	f := NewFormatter(language.English)

	cases := []struct {
		name  string
		value Value
		rule  string
		want  string
	}{
		{"text passes through", Text("DLR-001"), FormatInteger, "DLR-001"},
		{"default number", Number(1234.567), "", "1,234.57"},
		{"integer", Number(15200), FormatInteger, "15,200"},
		{"percent", Number(12.1), FormatPercent, "12.1%"},
		{"signed positive", Number(1.1), FormatSigned, "+1.1"},
		{"signed negative", Number(-0.3), FormatSigned, "-0.3"},
		{"signed zero", Number(0), FormatSigned, "0"},
		{"text rule on number", Number(7.25), FormatText, "7.25"},
		{"unknown rule falls back", Number(3), "roman", "3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.Format(tc.value, tc.rule))
		})
	}
}

func TestFormatterCurrency(t *testing.T) {
	f := NewFormatter(language.English)
	assert.Contains(t, f.Format(Number(12.5), FormatCurrency), "$")
	assert.Contains(t, f.Format(Number(12.5), "currency:eur"), "€")
}

func TestParseCellFormat(t *testing.T) {
	_, err := parseCellFormat("currency:XYZ1")
	assert.Error(t, err)
	_, err = parseCellFormat("percent:2")
	assert.Error(t, err)
	format, err := parseCellFormat(" Integer ")
	assert.NoError(t, err)
	assert.Equal(t, FormatInteger, format.kind)
}

func TestDeltaTrend(t *testing.T) {
	assert.Equal(t, TrendDown, deltaTrend("-3 vs LY"))
	assert.Equal(t, TrendUp, deltaTrend("+2"))
	assert.Equal(t, TrendUp, deltaTrend("0.7pp vs LY"))
	assert.Equal(t, TrendFlat, deltaTrend(""))
	assert.Equal(t, TrendFlat, deltaTrend("0 vs LY"))
}
