package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-dealer-dashboard/components/dashboard"
)

// ValidateModelInput names the model document to check.
type ValidateModelInput struct {
	Path string `json:"path"`
}

// ValidateModelCommand checks a model document against the schema and every
// model invariant without rendering it.
type ValidateModelCommand struct {
	telemetry Telemetry
}

// NewValidateModelCommand creates the command.
func NewValidateModelCommand(telemetry Telemetry) *ValidateModelCommand {
	return &ValidateModelCommand{telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ValidateModelInput] = (*ValidateModelCommand)(nil)

// Execute reads and validates the document.
func (c *ValidateModelCommand) Execute(ctx context.Context, msg ValidateModelInput) error {
	if msg.Path == "" {
		return errors.New("validate command requires a model path")
	}
	doc, err := dashboard.ReadModelFile(msg.Path)
	if err != nil {
		c.telemetry.Record(ctx, "dashboard.model.invalid", map[string]any{
			"path":  msg.Path,
			"error": err.Error(),
		})
		return err
	}
	c.telemetry.Record(ctx, "dashboard.model.valid", map[string]any{
		"path":     msg.Path,
		"sections": len(doc.Model.Sections),
	})
	return nil
}
