package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/handrank/internal/server"
)

// ServeCmd runs the evaluation service.
type ServeCmd struct {
	Addr string `help:"Listen address (defaults to server.address)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	eval, err := g.evaluator(cfg, logger)
	if err != nil {
		return err
	}
	addr := c.Addr
	if addr == "" {
		addr = cfg.Server.Address
	}

	ctx := SetupSignalHandler(logger)
	s := server.NewServer(eval, logger, quartz.NewReal())

	serverErr := make(chan error, 1)
	go func() {
		if err := s.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
