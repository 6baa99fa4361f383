package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const defaultBarColor = "#ff6961"

// red-yellow-green stops used when a gradient highlight has no color.
var gradientStops = [3][3]float64{
	{0xd7, 0x30, 0x27},
	{0xff, 0xff, 0xbf},
	{0x1a, 0x98, 0x50},
}

func applyHighlight(rows [][]Cell, col int, hl Highlight) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range rows {
		if v, ok := row[col].Raw.Float(); ok {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return
	}
	for i := range rows {
		cell := &rows[i][col]
		v, ok := cell.Raw.Float()
		if !ok {
			continue
		}
		fill := 0.5
		if hi > lo {
			fill = (v - lo) / (hi - lo)
		}
		cell.Style = hl.Style
		cell.Fill = fill
		switch {
		case hl.Color != "":
			cell.Tint = hl.Color
		case hl.Style == HighlightBar:
			cell.Tint = defaultBarColor
		default:
			cell.Tint = gradientColor(fill)
		}
	}
}

func gradientColor(fill float64) string {
	fill = math.Max(0, math.Min(1, fill))
	from, to, t := gradientStops[0], gradientStops[1], fill*2
	if fill > 0.5 {
		from, to, t = gradientStops[1], gradientStops[2], (fill-0.5)*2
	}
	var b strings.Builder
	b.WriteByte('#')
	for i := 0; i < 3; i++ {
		channel := int(math.Round(from[i] + (to[i]-from[i])*t))
		b.WriteString(fmt.Sprintf("%02x", channel))
	}
	return b.String()
}

// hexToRGB parses #rrggbb; ok is false for anything else.
func hexToRGB(color string) (r, g, b uint8, ok bool) {
	color = strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(color) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(color, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
