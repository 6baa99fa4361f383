package dashboard

import (
	"context"
	"errors"
	"io"
	"strings"
)

const (
	defaultDashboardTemplate = "dashboard.html"
	defaultErrorTemplate     = "error.html"
	// DefaultBasePath is where transports mount the dashboard routes.
	DefaultBasePath = "/dealer"
)

// DashboardResolver is the service surface the controller needs.
type DashboardResolver interface {
	Dashboard(ctx context.Context, session SessionContext) (RenderedDashboard, error)
	SelectSection(ctx context.Context, session SessionContext, index int) (RenderedDashboard, error)
}

// ControllerOptions configures the HTML/JSON controller.
type ControllerOptions struct {
	Service       DashboardResolver
	Renderer      Renderer
	Charts        ChartRenderer
	Theme         *Theme
	Template      string
	ErrorTemplate string
	BasePath      string
}

// Controller turns rendered dashboards into HTML pages and JSON payloads for
// the transports.
type Controller struct {
	opts ControllerOptions
}

// NewController wires the service into a controller.
func NewController(opts ControllerOptions) *Controller {
	if opts.Template == "" {
		opts.Template = defaultDashboardTemplate
	}
	if opts.ErrorTemplate == "" {
		opts.ErrorTemplate = defaultErrorTemplate
	}
	if opts.Theme == nil {
		opts.Theme = DefaultTheme()
	}
	opts.BasePath = normalizeBasePath(opts.BasePath)
	return &Controller{opts: opts}
}

// BasePath returns the route prefix used for tab links.
func (c *Controller) BasePath() string { return c.opts.BasePath }

// DashboardPath returns the page URL.
func (c *Controller) DashboardPath() string {
	return strings.TrimRight(c.opts.BasePath, "/") + "/dashboard"
}

// RenderTemplate renders the dashboard page for a session. Nothing is written
// when the dashboard cannot be built; callers render the error page instead.
func (c *Controller) RenderTemplate(ctx context.Context, session SessionContext, out io.Writer) error {
	d, err := c.resolve(ctx, session)
	if err != nil {
		return err
	}
	return c.RenderDashboard(d, out)
}

// RenderDashboard renders an already built dashboard.
func (c *Controller) RenderDashboard(d RenderedDashboard, out io.Writer) error {
	if c.opts.Renderer == nil {
		return errors.New("dashboard: renderer not configured")
	}
	payload, err := buildPayload(d, c.payloadOptions(true))
	if err != nil {
		return err
	}
	_, err = c.opts.Renderer.Render(c.opts.Template, payload, out)
	return err
}

// RenderError renders the full-page error state.
func (c *Controller) RenderError(err error, out io.Writer) error {
	if c.opts.Renderer == nil {
		return errors.New("dashboard: renderer not configured")
	}
	payload := ErrorPayload(err)
	payload["title"] = "Dashboard unavailable"
	payload["dashboard_path"] = c.DashboardPath()
	_, renderErr := c.opts.Renderer.Render(c.opts.ErrorTemplate, payload, out)
	return renderErr
}

// LayoutPayload returns the dashboard payload without chart HTML.
func (c *Controller) LayoutPayload(ctx context.Context, session SessionContext) (WidgetData, error) {
	d, err := c.resolve(ctx, session)
	if err != nil {
		return nil, err
	}
	return buildPayload(d, c.payloadOptions(false))
}

// SelectSection switches the session's section and returns the payload of the
// resulting dashboard. On an invalid index the payload reflects the unchanged
// dashboard and the error matches ErrIndexOutOfRange.
func (c *Controller) SelectSection(ctx context.Context, session SessionContext, index int) (WidgetData, error) {
	if c.opts.Service == nil {
		return nil, errors.New("dashboard: service not configured")
	}
	d, err := c.opts.Service.SelectSection(ctx, session, index)
	if err != nil && !IsIndexOutOfRange(err) {
		return nil, err
	}
	payload, payloadErr := buildPayload(d, c.payloadOptions(false))
	if payloadErr != nil {
		return nil, payloadErr
	}
	return payload, err
}

func (c *Controller) resolve(ctx context.Context, session SessionContext) (RenderedDashboard, error) {
	if c.opts.Service == nil {
		return RenderedDashboard{}, errors.New("dashboard: service not configured")
	}
	return c.opts.Service.Dashboard(ctx, session)
}

func (c *Controller) payloadOptions(withCharts bool) payloadOptions {
	o := payloadOptions{basePath: c.opts.BasePath, theme: c.opts.Theme}
	if withCharts {
		o.charts = c.opts.Charts
	}
	return o
}

func normalizeBasePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultBasePath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" {
		path = strings.TrimRight(path, "/")
	}
	return path
}
