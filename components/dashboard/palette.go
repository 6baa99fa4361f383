package dashboard

// DefaultPalette is the fallback color cycle for chart series.
var DefaultPalette = []string{
	"#0068c9",
	"#83c9ff",
	"#ff2b2b",
	"#ffabab",
	"#29b09d",
	"#7defa1",
	"#ff8700",
	"#ffd16a",
	"#6d3fc0",
	"#d5dae5",
}

// seriesColors assigns palette entries positionally; series past the end of
// palette take fallback[i % len(fallback)].
func seriesColors(count int, palette, fallback []string) []string {
	if len(fallback) == 0 {
		fallback = DefaultPalette
	}
	colors := make([]string, count)
	for i := range colors {
		if i < len(palette) {
			colors[i] = palette[i]
			continue
		}
		colors[i] = fallback[i%len(fallback)]
	}
	return colors
}
