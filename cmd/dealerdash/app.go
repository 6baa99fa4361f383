package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goliatone/go-dealer-dashboard/components/dashboard"
	"github.com/goliatone/go-dealer-dashboard/internal/config"
	"github.com/goliatone/go-dealer-dashboard/internal/logging"
	"github.com/goliatone/go-dealer-dashboard/pkg/remote"
)

// app carries the resolved configuration and collaborators shared by the
// commands.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	logs      *logging.Result
	telemetry dashboard.Telemetry
	source    dashboard.ModelSource
	service   *dashboard.Service
	out       io.Writer
}

func newApp(g Globals) (*app, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.Model != "" {
		cfg.Model = g.Model
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.Locale != "" {
		cfg.Locale = g.Locale
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logs, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	return newAppWith(cfg, logs.Logger, logs, os.Stdout)
}

func newAppWith(cfg *config.Config, logger *slog.Logger, logs *logging.Result, out io.Writer) (*app, error) {
	source, err := resolveSource(cfg.Model)
	if err != nil {
		return nil, err
	}
	telemetry := dashboard.NewSlogTelemetry(logger)
	return &app{
		cfg:       cfg,
		logger:    logger,
		logs:      logs,
		telemetry: telemetry,
		source:    source,
		service: dashboard.NewService(dashboard.Options{
			Source:    source,
			Telemetry: telemetry,
		}),
		out: out,
	}, nil
}

func resolveSource(ref string) (dashboard.ModelSource, error) {
	if remote.IsURL(ref) {
		return remote.NewHTTPSource(remote.HTTPConfig{
			URL:    ref,
			APIKey: os.Getenv(config.EnvPrefix + "MODEL_TOKEN"),
		})
	}
	return dashboard.NewSourceRegistry().Resolve(ref), nil
}

// session is the viewer identity used by the terminal commands.
func (a *app) session() dashboard.SessionContext {
	return dashboard.SessionContext{ID: "cli", Locale: a.cfg.Locale}
}

func (a *app) theme() *dashboard.Theme {
	theme := dashboard.DefaultTheme()
	if name := strings.TrimSpace(a.cfg.Charts.Theme); name != "" {
		theme.ChartTheme = name
	}
	return theme
}

func (a *app) chartRenderer() *dashboard.EChartsRenderer {
	options := []dashboard.EChartsOption{
		dashboard.WithChartCache(dashboard.NewChartCache(a.cfg.Charts.CacheTTL)),
		dashboard.WithChartTheme(a.theme().ChartTheme),
		dashboard.WithChartHeight(a.cfg.Charts.Height),
	}
	if a.cfg.Charts.CDN != "" {
		options = append(options, dashboard.WithChartAssetsHost(a.cfg.Charts.CDN))
	}
	return dashboard.NewEChartsRenderer(options...)
}

func (a *app) controller(basePath string) (*dashboard.Controller, error) {
	renderer, err := dashboard.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	if basePath == "" {
		basePath = a.cfg.Server.BasePath
	}
	return dashboard.NewController(dashboard.ControllerOptions{
		Service:  a.service,
		Renderer: renderer,
		Charts:   a.chartRenderer(),
		Theme:    a.theme(),
		BasePath: basePath,
	}), nil
}

// Close flushes the log file, if any.
func (a *app) Close() error {
	return a.logs.Close()
}
