package terminal

import "github.com/charmbracelet/lipgloss"

// styles contains the lipgloss styles used by the terminal sink.
var styles = struct {
	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Heading   lipgloss.Style
	Widget    lipgloss.Style
	Card      lipgloss.Style
	CardValue lipgloss.Style
	TabActive lipgloss.Style
	Tab       lipgloss.Style
	Up        lipgloss.Style
	Down      lipgloss.Style
	Flat      lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#2a3f5f")),

	Subtle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")),

	Heading: lipgloss.NewStyle().
		Bold(true).
		Underline(true),

	Widget: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")),

	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1),

	CardValue: lipgloss.NewStyle().
		Bold(true),

	TabActive: lipgloss.NewStyle().
		Bold(true).
		Reverse(true).
		Padding(0, 1),

	Tab: lipgloss.NewStyle().
		Padding(0, 1),

	Up: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#09ab3b")),

	Down: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ff2b2b")),

	Flat: lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")),
}
