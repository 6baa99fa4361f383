package dashboard

import (
	"fmt"
	"sort"
	"strings"
)

// Theme carries presentation tokens for HTML and terminal sinks. Color hints
// on cards and tables are resolved against Colors; anything else is passed
// through as a literal CSS color.
type Theme struct {
	Name       string
	ChartTheme string
	Colors     map[string]string
	Tokens     map[string]string
}

// DefaultTheme mirrors the dealer report's original look.
func DefaultTheme() *Theme {
	return &Theme{
		Name:       "dealer",
		ChartTheme: "westeros",
		Colors: map[string]string{
			"primary": "#2a3f5f",
			"success": "#4caf50",
			"warning": "#ff8700",
			"danger":  "#ff6961",
			"muted":   "#6b7280",
			"up":      "#09ab3b",
			"down":    "#ff2b2b",
			"flat":    "#6b7280",
		},
		Tokens: map[string]string{
			"header-color":   "#2a3f5f",
			"card-bg":        "white",
			"card-radius":    "10px",
			"card-shadow":    "0 4px 6px rgba(0,0,0,0.1)",
			"progress-track": "#e0e0e0",
			"progress-fill":  "#4caf50",
		},
	}
}

// ResolveColor maps a hint name to a color; unknown hints are returned as-is.
func (theme *Theme) ResolveColor(hint string) string {
	hint = strings.TrimSpace(hint)
	if theme == nil || hint == "" {
		return hint
	}
	if color, ok := theme.Colors[strings.ToLower(hint)]; ok {
		return color
	}
	return hint
}

// CSSVariables normalizes token keys into CSS variable names.
func (theme *Theme) CSSVariables() map[string]string {
	if theme == nil || len(theme.Tokens) == 0 {
		return nil
	}
	vars := make(map[string]string, len(theme.Tokens))
	for key, value := range theme.Tokens {
		name := normalizeCSSVariable(key)
		if name == "" {
			continue
		}
		vars[name] = value
	}
	return vars
}

// CSSVariablesInline renders the CSS variable map as a style string, sorted
// by name so output is stable.
func (theme *Theme) CSSVariablesInline() string {
	vars := theme.CSSVariables()
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var builder strings.Builder
	for _, key := range keys {
		value := vars[key]
		if value == "" {
			continue
		}
		builder.WriteString(key)
		builder.WriteString(": ")
		builder.WriteString(value)
		builder.WriteString("; ")
	}
	return strings.TrimSpace(builder.String())
}

// CellBackground returns a CSS background for a highlighted cell, or "".
func (theme *Theme) CellBackground(cell Cell) string {
	if cell.Tint == "" {
		return ""
	}
	color := theme.ResolveColor(cell.Tint)
	switch cell.Style {
	case HighlightBar:
		pct := int(cell.Fill*100 + 0.5)
		return fmt.Sprintf("linear-gradient(90deg, %s %d%%, transparent %d%%)", color, pct, pct)
	default:
		if r, g, b, ok := hexToRGB(color); ok {
			return fmt.Sprintf("rgba(%d, %d, %d, 0.85)", r, g, b)
		}
		return color
	}
}

func normalizeCSSVariable(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "--") {
		return name
	}
	return "--" + name
}
