package main

import (
	"context"

	"github.com/goliatone/go-dealer-dashboard/components/dashboard/tui"
)

type tuiCmd struct{}

func (c *tuiCmd) Run(a *app) error {
	return tui.Run(context.Background(), a.service, a.session())
}
