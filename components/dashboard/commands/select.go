package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-dealer-dashboard/components/dashboard"
)

// SelectSectionInput identifies the session and the section to activate.
type SelectSectionInput struct {
	Session dashboard.SessionContext `json:"session"`
	Index   int                      `json:"index"`
}

type sectionService interface {
	SelectSection(ctx context.Context, session dashboard.SessionContext, index int) (dashboard.RenderedDashboard, error)
}

// SelectSectionCommand switches the active section of a session so
// transports and the TUI can invoke it without linking the service.
type SelectSectionCommand struct {
	service   sectionService
	telemetry Telemetry
}

// NewSelectSectionCommand creates the command.
func NewSelectSectionCommand(service sectionService, telemetry Telemetry) *SelectSectionCommand {
	return &SelectSectionCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SelectSectionInput] = (*SelectSectionCommand)(nil)

// Execute delegates to the dashboard service. An invalid index is returned
// as an error matching dashboard.ErrIndexOutOfRange and leaves the session
// untouched.
func (c *SelectSectionCommand) Execute(ctx context.Context, msg SelectSectionInput) error {
	if c.service == nil {
		return errors.New("select section command requires service")
	}
	if _, err := c.service.SelectSection(ctx, msg.Session, msg.Index); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "dashboard.command.select_section", map[string]any{
		"session": msg.Session.ID,
		"index":   msg.Index,
	})
	return nil
}
