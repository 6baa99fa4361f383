package main

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-dealer-dashboard/components/dashboard"
	"github.com/goliatone/go-dealer-dashboard/components/dashboard/queries"
	"github.com/goliatone/go-dealer-dashboard/components/dashboard/terminal"
)

type widgetCmd struct {
	File  string `arg:"" type:"existingfile" help:"YAML document holding a single widget."`
	Width int    `default:"100" help:"Terminal width used for card layout."`
}

func (c *widgetCmd) Run(a *app) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("dealerdash: open widget: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	var widget dashboard.Widget
	if err := decoder.Decode(&widget); err != nil {
		return fmt.Errorf("dealerdash: decode widget %s: %w", c.File, err)
	}

	el, err := queries.NewRenderWidgetQuery(a.service).Query(context.Background(), widget)
	if err != nil {
		for _, issue := range validationIssues(err) {
			fmt.Fprintf(a.out, "  %s\n", issue)
		}
		return err
	}
	return terminal.RenderElement(a.out, el, terminal.Options{Width: c.Width})
}
