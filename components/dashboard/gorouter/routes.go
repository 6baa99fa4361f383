package gorouter

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-dealer-dashboard/components/dashboard"
)

// SessionResolver converts a router.Context into a dashboard.SessionContext.
type SessionResolver func(router.Context) dashboard.SessionContext

// Config wires go-router with the dashboard controller.
type Config[T any] struct {
	Router          router.Router[T]
	Controller      *dashboard.Controller
	SessionResolver SessionResolver
	Routes          RouteConfig
}

// RouteConfig customizes the relative paths used for dashboard endpoints.
type RouteConfig struct {
	HTML    string
	Layout  string
	Section string
}

// Register mounts the dashboard routes under the controller's base path.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	routes := defaultRouteConfig(cfg.Routes)
	resolver := cfg.SessionResolver
	if resolver == nil {
		resolver = defaultSessionResolver
	}
	h := handlers{controller: cfg.Controller}

	group := cfg.Router.Group(cfg.Controller.BasePath())

	group.Get(routes.HTML, router.WrapHandler(func(ctx router.Context) error {
		return h.dashboard(ctx, resolver(ctx))
	}))
	group.Get(routes.Layout, router.WrapHandler(func(ctx router.Context) error {
		return h.layout(ctx, resolver(ctx))
	}))
	group.Get(routes.Section, router.WrapHandler(func(ctx router.Context) error {
		return h.selectRedirect(ctx, resolver(ctx))
	}))
	group.Post(routes.Section, router.WrapHandler(func(ctx router.Context) error {
		return h.selectSection(ctx, resolver(ctx))
	}))
	return nil
}

// requestContext is the part of router.Context the handlers use.
type requestContext interface {
	Context() context.Context
	SetHeader(string, string) router.Context
	Send([]byte) error
	JSON(int, any) error
	Param(name string, defaultValue ...string) string
}

type handlers struct {
	controller *dashboard.Controller
}

func (h handlers) dashboard(ctx requestContext, session dashboard.SessionContext) error {
	var buf bytes.Buffer
	if err := h.controller.RenderTemplate(ctx.Context(), session, &buf); err != nil {
		return respondError(ctx, http.StatusInternalServerError, err)
	}
	ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.Send(buf.Bytes())
}

func (h handlers) layout(ctx requestContext, session dashboard.SessionContext) error {
	payload, err := h.controller.LayoutPayload(ctx.Context(), session)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, err)
	}
	return ctx.JSON(http.StatusOK, payload)
}

// selectRedirect answers tab links with a 303 back to the page; an invalid
// index leaves the section unchanged.
func (h handlers) selectRedirect(ctx requestContext, session dashboard.SessionContext) error {
	if index, err := strconv.Atoi(ctx.Param("index")); err == nil {
		if _, err := h.controller.SelectSection(ctx.Context(), session, index); err != nil && !dashboard.IsIndexOutOfRange(err) {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
	}
	location := h.controller.DashboardPath()
	ctx.SetHeader("Location", location)
	return ctx.JSON(http.StatusSeeOther, map[string]string{"location": location})
}

func (h handlers) selectSection(ctx requestContext, session dashboard.SessionContext) error {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, errors.New("section index must be an integer"))
	}
	payload, err := h.controller.SelectSection(ctx.Context(), session, index)
	switch {
	case err == nil:
		return ctx.JSON(http.StatusOK, payload)
	case dashboard.IsIndexOutOfRange(err):
		body := dashboard.ErrorPayload(err)
		body["dashboard"] = payload
		return ctx.JSON(http.StatusBadRequest, body)
	default:
		return respondError(ctx, http.StatusInternalServerError, err)
	}
}

func defaultSessionResolver(ctx router.Context) dashboard.SessionContext {
	var session dashboard.SessionContext
	if id, ok := ctx.Locals(sessionLocalsKey).(string); ok && id != "" {
		session.ID = id
	} else if id := strings.TrimSpace(ctx.Query("session")); id != "" {
		session.ID = id
	} else {
		session.ID = strings.TrimSpace(ctx.Header("X-Dashboard-Session"))
	}
	session.Locale = inferLocale(ctx)
	return session
}

func inferLocale(ctx router.Context) string {
	if locale, ok := ctx.Locals("locale").(string); ok && locale != "" {
		return locale
	}
	if locale := strings.TrimSpace(ctx.Query("locale")); locale != "" {
		return strings.ToLower(locale)
	}
	return ctx.Header("Accept-Language")
}

func respondError(ctx requestContext, status int, err error) error {
	return ctx.JSON(status, dashboard.ErrorPayload(err))
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.HTML == "" {
		routes.HTML = "/dashboard"
	}
	if routes.Layout == "" {
		routes.Layout = "/dashboard/_layout"
	}
	if routes.Section == "" {
		routes.Section = "/dashboard/sections/:index"
	}
	return routes
}
