package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/football-manager/internal/app"
	"github.com/riskibarqy/football-manager/internal/config"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := checkStoreDriver(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.MetricsEnabled = false

	logger := logging.NewJSONWriter(cfg.LogLevel, os.Stderr).With("service", "football-manager-cli")
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(func(ctx context.Context) (*app.App, error) {
		return app.New(ctx, cfg, logger)
	})
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var errEphemeralStore = errors.New("the CLI needs STORE_DRIVER=postgres: the memory store is discarded when the command exits")

// checkStoreDriver rejects stores that do not persist between invocations.
func checkStoreDriver(cfg config.Config) error {
	if cfg.StoreDriver == config.StoreDriverMemory {
		return errEphemeralStore
	}
	return nil
}
