package dashboard

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Cell format rules accepted in Table.Formats.
const (
	FormatText     = "text"
	FormatNumber   = "number"
	FormatInteger  = "integer"
	FormatPercent  = "percent"
	FormatSigned   = "signed"
	FormatCurrency = "currency"
)

const defaultCurrency = "USD"

type cellFormat struct {
	kind     string
	currency currency.Unit
}

func parseCellFormat(rule string) (cellFormat, error) {
	rule = strings.TrimSpace(strings.ToLower(rule))
	kind, arg, _ := strings.Cut(rule, ":")
	switch kind {
	case FormatText, FormatNumber, FormatInteger, FormatPercent, FormatSigned:
		if arg != "" {
			return cellFormat{}, fmt.Errorf("format %q takes no argument", kind)
		}
		return cellFormat{kind: kind}, nil
	case FormatCurrency:
		code := defaultCurrency
		if arg != "" {
			code = strings.ToUpper(arg)
		}
		unit, err := currency.ParseISO(code)
		if err != nil {
			return cellFormat{}, fmt.Errorf("unknown currency %q", code)
		}
		return cellFormat{kind: kind, currency: unit}, nil
	default:
		return cellFormat{}, fmt.Errorf("unknown format rule %q", rule)
	}
}

// Formatter renders values for display using locale-aware number rules.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter builds a formatter for the given locale tag.
func NewFormatter(tag language.Tag) Formatter {
	return Formatter{printer: message.NewPrinter(tag)}
}

// Format applies a format rule to v. Strings pass through untouched and an
// empty rule falls back to the number rule for numeric values.
func (f Formatter) Format(v Value, rule string) string {
	num, ok := v.Float()
	if !ok {
		return v.String()
	}
	format := cellFormat{kind: FormatNumber}
	if rule != "" {
		parsed, err := parseCellFormat(rule)
		if err == nil {
			format = parsed
		}
	}
	switch format.kind {
	case FormatText:
		return v.String()
	case FormatInteger:
		return f.printer.Sprint(number.Decimal(num, number.MaxFractionDigits(0)))
	case FormatPercent:
		return f.printer.Sprint(number.Decimal(num, number.MaxFractionDigits(1))) + "%"
	case FormatSigned:
		out := f.printer.Sprint(number.Decimal(num, number.MaxFractionDigits(2)))
		if num > 0 {
			out = "+" + out
		}
		return out
	case FormatCurrency:
		return f.printer.Sprint(currency.Symbol(format.currency.Amount(num)))
	default:
		return f.printer.Sprint(number.Decimal(num, number.MaxFractionDigits(2)))
	}
}

// FormatPlain renders a value with the default number rule.
func (f Formatter) FormatPlain(v Value) string {
	return f.Format(v, "")
}

// Trend classifies a delta label by its sign.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// deltaTrend reads the leading sign of a delta such as "-3 vs LY" or
// "0.7pp vs LY". Unsigned non-zero deltas count as up.
func deltaTrend(delta string) Trend {
	delta = strings.TrimSpace(delta)
	if delta == "" {
		return TrendFlat
	}
	switch delta[0] {
	case '-':
		return TrendDown
	case '+':
		return TrendUp
	}
	if strings.HasPrefix(delta, "0 ") || delta == "0" || strings.HasPrefix(delta, "0%") {
		return TrendFlat
	}
	return TrendUp
}
