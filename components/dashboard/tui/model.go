// Package tui is an interactive terminal viewer for the dealer dashboard.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-dealer-dashboard/components/dashboard"
	"github.com/goliatone/go-dealer-dashboard/components/dashboard/terminal"
)

// Resolver is the part of dashboard.Service the viewer needs.
type Resolver interface {
	Dashboard(ctx context.Context, session dashboard.SessionContext) (dashboard.RenderedDashboard, error)
	SelectSection(ctx context.Context, session dashboard.SessionContext, index int) (dashboard.RenderedDashboard, error)
}

const footerLines = 2

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff8700"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model is the bubbletea model for the dashboard viewer.
type Model struct {
	ctx      context.Context
	resolver Resolver
	session  dashboard.SessionContext

	current dashboard.RenderedDashboard
	status  string
	err     error

	viewport viewport.Model
	width    int
	ready    bool
}

// New loads the session's dashboard and returns a viewer model.
func New(ctx context.Context, resolver Resolver, session dashboard.SessionContext) (Model, error) {
	if resolver == nil {
		return Model{}, fmt.Errorf("tui: resolver is required")
	}
	d, err := resolver.Dashboard(ctx, session)
	if err != nil {
		return Model{}, err
	}
	vp := viewport.New(0, 0)
	vp.KeyMap = scrollKeyMap()
	m := Model{
		ctx:      ctx,
		resolver: resolver,
		session:  session,
		current:  d,
		viewport: vp,
	}
	m.refreshContent()
	return m, nil
}

// Run starts the viewer on the alternate screen and blocks until it quits.
func Run(ctx context.Context, resolver Resolver, session dashboard.SessionContext) error {
	m, err := New(ctx, resolver, session)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// Current returns the dashboard on screen.
func (m Model) Current() dashboard.RenderedDashboard { return m.current }

// Status returns the status line text.
func (m Model) Status() string { return m.status }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-footerLines, 1)
		m.ready = true
		m.refreshContent()
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Next):
		return m.selectSection(m.step(1)), nil
	case key.Matches(msg, keys.Prev):
		return m.selectSection(m.step(-1)), nil
	case isScrollKey(msg):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if n, ok := sectionNumber(msg); ok {
		return m.selectSection(n - 1), nil
	}
	return m, nil
}

func (m Model) step(delta int) int {
	count := len(m.current.Sections())
	if count == 0 {
		return 0
	}
	return ((m.current.ActiveIndex()+delta)%count + count) % count
}

// selectSection asks the resolver for a new section. A rejected index keeps
// the section on screen and reports it on the status line.
func (m Model) selectSection(index int) Model {
	d, err := m.resolver.SelectSection(m.ctx, m.session, index)
	switch {
	case err == nil:
		m.current = d
		m.status = ""
		m.err = nil
	case dashboard.IsIndexOutOfRange(err):
		m.current = d
		m.status = fmt.Sprintf("section %d does not exist (1-%d)", index+1, len(d.Sections()))
	default:
		m.err = err
		m.status = err.Error()
	}
	m.refreshContent()
	m.viewport.GotoTop()
	return m
}

func (m *Model) refreshContent() {
	var b strings.Builder
	if err := terminal.Render(&b, m.current, terminal.Options{Width: m.width}); err != nil {
		b.Reset()
		b.WriteString(err.Error())
	}
	m.viewport.SetContent(b.String())
}

// View implements tea.Model.
func (m Model) View() string {
	body := m.viewport.View()
	if !m.ready {
		var b strings.Builder
		_ = terminal.Render(&b, m.current, terminal.Options{})
		body = b.String()
	}
	footer := hintStyle.Render("←/→ tab: switch section · 1-9: jump · ↑/↓: scroll · q: quit")
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "\n" + footer
	}
	return body + "\n" + footer
}
