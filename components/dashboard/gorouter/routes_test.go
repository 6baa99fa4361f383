package gorouter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	router "github.com/goliatone/go-router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-dealer-dashboard/components/dashboard"
)

func TestRegisterValidatesConfig(t *testing.T) {
	err := Register(Config[struct{}]{})
	if err == nil {
		t.Fatalf("expected error when router/controller missing")
	}
}

func TestDefaultRouteConfig(t *testing.T) {
	routes := defaultRouteConfig(RouteConfig{Layout: "/layout.json"})
	assert.Equal(t, "/dashboard", routes.HTML)
	assert.Equal(t, "/layout.json", routes.Layout)
	assert.Equal(t, "/dashboard/sections/:index", routes.Section)
}

func TestDashboardHandler(t *testing.T) {
	h, renderer := newHandlers(nil)
	ctx := newMockContext()
	require.NoError(t, h.dashboard(ctx, dashboard.SessionContext{ID: "s1"}))
	assert.Equal(t, "text/html; charset=utf-8", ctx.headers["Content-Type"])
	assert.Equal(t, "ok", string(ctx.body))
	assert.Equal(t, 1, renderer.calls)
}

func TestDashboardHandlerInvalidModel(t *testing.T) {
	broken := dashboard.ModelFunc(func(context.Context) (dashboard.DashboardModel, error) {
		return dashboard.DashboardModel{Title: "Broken"}, nil
	})
	h, renderer := newHandlers(broken)
	ctx := newMockContext()
	require.NoError(t, h.dashboard(ctx, dashboard.SessionContext{ID: "s1"}))
	assert.Equal(t, http.StatusInternalServerError, ctx.status)
	assert.Contains(t, string(ctx.body), "dashboard model is invalid")
	assert.Zero(t, renderer.calls)
}

func TestSelectHandlers(t *testing.T) {
	h, _ := newHandlers(nil)
	session := dashboard.SessionContext{ID: "s1"}

	ctx := newMockContext()
	ctx.params["index"] = "3"
	require.NoError(t, h.selectRedirect(ctx, session))
	assert.Equal(t, http.StatusSeeOther, ctx.status)
	assert.Equal(t, "/dealer/dashboard", ctx.headers["Location"])

	ctx = newMockContext()
	ctx.params["index"] = "7"
	require.NoError(t, h.selectSection(ctx, session))
	assert.Equal(t, http.StatusBadRequest, ctx.status)
	var rejected map[string]any
	require.NoError(t, json.Unmarshal(ctx.body, &rejected))
	assert.Equal(t, float64(3), rejected["dashboard"].(map[string]any)["active"])

	ctx = newMockContext()
	ctx.params["index"] = "1"
	require.NoError(t, h.selectSection(ctx, session))
	assert.Equal(t, http.StatusOK, ctx.status)

	ctx = newMockContext()
	require.NoError(t, h.layout(ctx, session))
	var payload map[string]any
	require.NoError(t, json.Unmarshal(ctx.body, &payload))
	assert.Equal(t, float64(1), payload["active"])

	ctx = newMockContext()
	ctx.params["index"] = "x"
	require.NoError(t, h.selectSection(ctx, session))
	assert.Equal(t, http.StatusBadRequest, ctx.status)
}

// --- Test helpers ---

func newHandlers(source dashboard.ModelSource) (handlers, *stubRenderer) {
	renderer := &stubRenderer{}
	controller := dashboard.NewController(dashboard.ControllerOptions{
		Service:  dashboard.NewService(dashboard.Options{Source: source}),
		Renderer: renderer,
	})
	return handlers{controller: controller}, renderer
}

type mockContext struct {
	ctx     context.Context
	headers map[string]string
	body    []byte
	params  map[string]string
	status  int
}

func newMockContext() *mockContext {
	return &mockContext{
		ctx:     context.Background(),
		headers: map[string]string{},
		params:  map[string]string{},
	}
}

func (m *mockContext) Context() context.Context {
	return m.ctx
}

func (m *mockContext) SetHeader(k, v string) router.Context {
	m.headers[k] = v
	return nil
}

func (m *mockContext) Send(b []byte) error {
	m.body = append([]byte{}, b...)
	return nil
}

func (m *mockContext) JSON(code int, v any) error {
	m.status = code
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.body = data
	return nil
}

func (m *mockContext) Param(name string, defaultValue ...string) string {
	if v, ok := m.params[name]; ok {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

type stubRenderer struct {
	calls int
}

func (s *stubRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	s.calls++
	if len(out) > 0 && out[0] != nil {
		out[0].Write([]byte("ok"))
	}
	return "ok", nil
}
