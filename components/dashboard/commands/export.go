package commands

import (
	"context"
	"errors"
	"io"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-dealer-dashboard/components/dashboard"
)

// ExportModelInput selects the source to export and the destination.
type ExportModelInput struct {
	Source dashboard.ModelSource
	Out    io.Writer
}

// ExportModelCommand writes a source's current model as a YAML document that
// can be edited and served back through a FileSource.
type ExportModelCommand struct {
	telemetry Telemetry
}

// NewExportModelCommand creates the command.
func NewExportModelCommand(telemetry Telemetry) *ExportModelCommand {
	return &ExportModelCommand{telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ExportModelInput] = (*ExportModelCommand)(nil)

// Execute validates the model before encoding so exports always load back.
func (c *ExportModelCommand) Execute(ctx context.Context, msg ExportModelInput) error {
	if msg.Source == nil {
		return errors.New("export command requires a model source")
	}
	if msg.Out == nil {
		return errors.New("export command requires an output writer")
	}
	model, err := msg.Source.Model(ctx)
	if err != nil {
		return err
	}
	if err := dashboard.Validate(model); err != nil {
		return err
	}
	if err := dashboard.EncodeModel(msg.Out, model); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "dashboard.model.export", map[string]any{
		"title":    model.Title,
		"sections": len(model.Sections),
	})
	return nil
}
