package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-dealer-dashboard/components/dashboard"
)

func newViewer(t *testing.T) Model {
	t.Helper()
	service := dashboard.NewService(dashboard.Options{})
	m, err := New(context.Background(), service, dashboard.SessionContext{ID: "tui"})
	require.NoError(t, err)
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNavigateSections(t *testing.T) {
	m := newViewer(t)
	assert.Equal(t, 0, m.Current().ActiveIndex())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Current().ActiveIndex())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 2, m.Current().ActiveIndex())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.Current().ActiveIndex())

	m = press(t, m, runes("5"))
	assert.Equal(t, 4, m.Current().ActiveIndex())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.Current().ActiveIndex(), "next wraps to the first section")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 4, m.Current().ActiveIndex(), "previous wraps to the last section")
}

func TestInvalidNumberKeepsSection(t *testing.T) {
	m := newViewer(t)
	m = press(t, m, runes("3"))
	require.Equal(t, 2, m.Current().ActiveIndex())

	m = press(t, m, runes("9"))
	assert.Equal(t, 2, m.Current().ActiveIndex())
	assert.Equal(t, "section 9 does not exist (1-5)", m.Status())
	assert.Contains(t, m.View(), "section 9 does not exist")

	m = press(t, m, runes("0"))
	assert.Equal(t, 2, m.Current().ActiveIndex())
	assert.Contains(t, m.Status(), "section 0 does not exist")

	m = press(t, m, runes("1"))
	assert.Equal(t, 0, m.Current().ActiveIndex())
	assert.Empty(t, m.Status())
}

func TestQuitKeys(t *testing.T) {
	m := newViewer(t)
	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := m.Update(runes(k))
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestViewRendersActiveSection(t *testing.T) {
	m := newViewer(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 200})
	m = next.(Model)

	view := m.View()
	assert.Contains(t, view, "Sales Performance Dashboard")
	assert.Contains(t, view, "q: quit")

	m = press(t, m, runes("4"))
	view = m.View()
	assert.Contains(t, view, "Digital Engagement Dashboard")
	assert.False(t, strings.Contains(view, "Sales Performance Dashboard"))
}

func TestNewRequiresValidModel(t *testing.T) {
	broken := dashboard.NewService(dashboard.Options{
		Source: dashboard.ModelFunc(func(context.Context) (dashboard.DashboardModel, error) {
			return dashboard.DashboardModel{}, nil
		}),
	})
	_, err := New(context.Background(), broken, dashboard.SessionContext{})
	require.Error(t, err)
	assert.True(t, dashboard.IsValidationError(err))

	_, err = New(context.Background(), nil, dashboard.SessionContext{})
	require.Error(t, err)
}
