package main

import (
	"context"
	"fmt"

	"github.com/goliatone/go-dealer-dashboard/components/dashboard/queries"
	"github.com/goliatone/go-dealer-dashboard/components/dashboard/terminal"
)

type printCmd struct {
	Section int `default:"1" help:"Section to print, counting from 1."`
	Width   int `default:"100" help:"Layout width in columns."`
}

func (c *printCmd) Run(a *app) error {
	ctx := context.Background()
	d, err := queries.NewDashboardQuery(a.service).Query(ctx, a.session())
	if err != nil {
		return err
	}
	d, err = a.service.Composer().SelectSection(d, c.Section-1)
	if err != nil {
		return fmt.Errorf("dealerdash: --section %d: %w", c.Section, err)
	}
	return terminal.Render(a.out, d, terminal.Options{Width: c.Width})
}
