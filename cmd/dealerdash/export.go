package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-dealer-dashboard/components/dashboard/commands"
)

type exportCmd struct {
	Out string `short:"o" type:"path" help:"Write to this file instead of stdout."`
}

func (c *exportCmd) Run(a *app) (err error) {
	var out io.Writer = a.out
	if c.Out != "" && c.Out != "-" {
		f, createErr := os.Create(c.Out)
		if createErr != nil {
			return fmt.Errorf("dealerdash: create %s: %w", c.Out, createErr)
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		out = f
	}
	cmd := commands.NewExportModelCommand(a.telemetry)
	return cmd.Execute(context.Background(), commands.ExportModelInput{Source: a.source, Out: out})
}
