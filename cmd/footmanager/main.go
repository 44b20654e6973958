package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/foot-manager/internal/app"
	"github.com/riskibarqy/foot-manager/internal/config"
	"github.com/riskibarqy/foot-manager/internal/interfaces/console"
	"github.com/riskibarqy/foot-manager/internal/observability"
	"github.com/riskibarqy/foot-manager/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	os.Exit(run(cfg))
}

func run(cfg config.Config) int {
	logger := logging.NewJSON(os.Stderr, cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() {
		_ = logger.Sync()
	}()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init tracing", "error", err)
		return 1
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("shutdown tracing", "error", err)
		}
	}()

	game, err := app.NewGame(cfg, os.Stdin, os.Stdout, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runCtx, span := observability.StartSeasonSpan(ctx, cfg)
	defer span.End()

	done := make(chan error, 1)
	go func() {
		done <- game.Run(runCtx)
	}()

	// Reads from stdin do not observe ctx, so a signal ends the game here.
	select {
	case err = <-done:
	case <-ctx.Done():
		logger.Info("game interrupted")
		return 130
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, console.ErrInputClosed):
		logger.Info("input closed, game ended early")
		return 0
	default:
		span.RecordError(err)
		logger.Error("game failed", "error", err)
		return 1
	}
}
