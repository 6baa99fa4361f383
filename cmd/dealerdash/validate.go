package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-dealer-dashboard/components/dashboard"
	"github.com/goliatone/go-dealer-dashboard/components/dashboard/commands"
)

type validateCmd struct {
	File string `arg:"" type:"existingfile" help:"Model document to validate."`
}

func (c *validateCmd) Run(a *app) error {
	cmd := commands.NewValidateModelCommand(a.telemetry)
	if err := cmd.Execute(context.Background(), commands.ValidateModelInput{Path: c.File}); err != nil {
		for _, issue := range validationIssues(err) {
			fmt.Fprintf(a.out, "  %s\n", issue)
		}
		return err
	}
	fmt.Fprintf(a.out, "%s: ok\n", c.File)
	return nil
}

func validationIssues(err error) []dashboard.ValidationIssue {
	var verr *dashboard.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	return verr.Issues
}
