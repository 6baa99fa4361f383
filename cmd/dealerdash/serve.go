package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-dealer-dashboard/components/dashboard"
	"github.com/goliatone/go-dealer-dashboard/components/dashboard/commands"
	"github.com/goliatone/go-dealer-dashboard/components/dashboard/gorouter"
	"github.com/goliatone/go-dealer-dashboard/components/dashboard/httpapi"
	"github.com/goliatone/go-dealer-dashboard/components/dashboard/queries"
	"github.com/goliatone/go-dealer-dashboard/internal/config"
)

type serveCmd struct {
	Addr      string `help:"Listen address (overrides server.addr)."`
	Transport string `help:"HTTP transport: chi or fiber (overrides server.transport)."`
	BasePath  string `name:"base-path" help:"Route prefix (overrides server.base_path)."`
}

func (c *serveCmd) Run(a *app) error {
	addr := firstNonEmpty(c.Addr, a.cfg.Server.Addr)
	transport := firstNonEmpty(c.Transport, a.cfg.Server.Transport)

	if transport != config.TransportChi && transport != config.TransportFiber {
		return fmt.Errorf("dealerdash: unknown transport %q (want chi or fiber)", transport)
	}

	controller, err := a.controller(c.BasePath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info("starting dashboard server",
		"addr", addr,
		"transport", transport,
		"dashboard", controller.DashboardPath(),
	)
	if transport == config.TransportFiber {
		return a.serveFiber(ctx, addr, controller)
	}
	return a.serveChi(ctx, addr, controller)
}

func (a *app) chiHandler(controller *dashboard.Controller) http.Handler {
	sessions := httpapi.NewCookieSessions([]byte(a.cfg.Session.Secret))
	sessions.Name = a.cfg.Session.Name
	return httpapi.NewRouter(&httpapi.Handlers{
		Controller: controller,
		Select:     commands.NewSelectSectionCommand(a.service, a.telemetry),
		Render:     queries.NewRenderWidgetQuery(a.service),
		Sessions:   sessions,
	})
}

func (a *app) serveChi(ctx context.Context, addr string, controller *dashboard.Controller) error {
	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: a.chiHandler(controller),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("dealerdash: server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		a.logger.Info("shutting down dashboard server")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

func (a *app) fiberServer(controller *dashboard.Controller) (router.Server[*fiber.App], error) {
	server := router.NewFiberAdapter()
	if err := gorouter.Register(gorouter.Config[*fiber.App]{
		Router:          server.Router(),
		Controller:      controller,
		SessionResolver: gorouter.CookieSessionResolver(a.cfg.Session.Name),
	}); err != nil {
		return nil, fmt.Errorf("dealerdash: register routes: %w", err)
	}
	return server, nil
}

func (a *app) serveFiber(ctx context.Context, addr string, controller *dashboard.Controller) error {
	server, err := a.fiberServer(controller)
	if err != nil {
		return err
	}

	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return server.Serve(addr)
	})
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		a.logger.Info("shutting down dashboard server")
		return server.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
