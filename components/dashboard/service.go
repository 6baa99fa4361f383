package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var errMissingSource = errors.New("dashboard: model source not configured")

// Options configures the dashboard Service. Every collaborator is provided via
// interface so hosts can swap the model source or session backend.
type Options struct {
	Source    ModelSource
	Sessions  SessionStore
	Composer  *Composer
	Telemetry Telemetry
}

// Service fetches the model, renders it, and keeps each session's active
// section.
type Service struct {
	opts Options
}

// NewService builds a Service instance with safe defaults.
func NewService(opts Options) *Service {
	if opts.Source == nil {
		opts.Source = NewDefaultSource()
	}
	if opts.Sessions == nil {
		opts.Sessions = NewInMemorySessionStore()
	}
	if opts.Composer == nil {
		opts.Composer = NewComposer()
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	return &Service{opts: opts}
}

// Composer exposes the composer used by the service.
func (s *Service) Composer() *Composer {
	return s.opts.Composer
}

// Dashboard renders the dashboard for a session, restoring the section the
// session last selected. A stored index the current model no longer has
// falls back to the first section.
func (s *Service) Dashboard(ctx context.Context, session SessionContext) (RenderedDashboard, error) {
	composer := s.composerFor(session)
	rendered, err := s.build(ctx, composer)
	if err != nil {
		return RenderedDashboard{}, err
	}
	index, ok, err := s.opts.Sessions.ActiveSection(ctx, session)
	if err != nil {
		return RenderedDashboard{}, fmt.Errorf("dashboard: load session state: %w", err)
	}
	if ok {
		if selected, selErr := composer.SelectSection(rendered, index); selErr == nil {
			rendered = selected
		}
	}
	s.recordTelemetry(ctx, "dashboard.build", map[string]any{
		"session":  session.ID,
		"sections": len(rendered.Sections()),
		"active":   rendered.ActiveIndex(),
	})
	return rendered, nil
}

// SelectSection activates a section for the session. On an invalid index the
// returned error matches ErrIndexOutOfRange, nothing is persisted, and the
// dashboard is returned with its prior state.
func (s *Service) SelectSection(ctx context.Context, session SessionContext, index int) (RenderedDashboard, error) {
	current, err := s.Dashboard(ctx, session)
	if err != nil {
		return RenderedDashboard{}, err
	}
	selected, err := s.opts.Composer.SelectSection(current, index)
	if err != nil {
		s.recordTelemetry(ctx, "dashboard.section.rejected", map[string]any{
			"session": session.ID,
			"index":   index,
			"count":   len(current.Sections()),
		})
		return current, err
	}
	if session.ID != "" {
		if err := s.opts.Sessions.SaveActiveSection(ctx, session, index); err != nil {
			return current, fmt.Errorf("dashboard: save session state: %w", err)
		}
	}
	s.recordTelemetry(ctx, "dashboard.section.select", map[string]any{
		"session": session.ID,
		"index":   index,
	})
	return selected, nil
}

// RenderWidget renders a single widget outside any dashboard.
func (s *Service) RenderWidget(ctx context.Context, widget Widget) (VisualElement, error) {
	el, err := s.opts.Composer.RenderWidget(widget)
	if err != nil {
		s.recordTelemetry(ctx, "dashboard.widget.invalid", map[string]any{
			"kind":  string(widget.Kind),
			"error": err.Error(),
		})
		return VisualElement{}, err
	}
	return el, nil
}

// composerFor formats numbers in the session's locale when one is given.
func (s *Service) composerFor(session SessionContext) *Composer {
	if strings.TrimSpace(session.Locale) == "" {
		return s.opts.Composer
	}
	return s.opts.Composer.ForLocale(ResolveLocale(session.Locale))
}

func (s *Service) build(ctx context.Context, composer *Composer) (RenderedDashboard, error) {
	if s.opts.Source == nil {
		return RenderedDashboard{}, errMissingSource
	}
	model, err := s.opts.Source.Model(ctx)
	if err != nil {
		return RenderedDashboard{}, fmt.Errorf("dashboard: load model: %w", err)
	}
	rendered, err := composer.Build(model)
	if err != nil {
		s.recordTelemetry(ctx, "dashboard.build.invalid", map[string]any{
			"title": model.Title,
			"error": err.Error(),
		})
		return RenderedDashboard{}, err
	}
	return rendered, nil
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}
