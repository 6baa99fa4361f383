// Package dashboard re-exports the dealer dashboard API for host applications.
package dashboard

import (
	core "github.com/goliatone/go-dealer-dashboard/components/dashboard"
)

// Service exposes the underlying components/dashboard.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

// Model and rendered types.
type (
	DashboardModel    = core.DashboardModel
	Section           = core.Section
	Widget            = core.Widget
	MetricCard        = core.MetricCard
	RenderedDashboard = core.RenderedDashboard
	SessionContext    = core.SessionContext
	ModelSource       = core.ModelSource
	Controller        = core.Controller
	ControllerOptions = core.ControllerOptions
)

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}

// NewController proxies to the internal constructor.
func NewController(opts ControllerOptions) *Controller {
	return core.NewController(opts)
}

// NewFileSource serves a YAML model document from disk.
func NewFileSource(path string) ModelSource {
	return core.NewFileSource(path)
}
