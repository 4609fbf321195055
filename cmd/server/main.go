package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/webapi"
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	fiberApp, err := setup(cfg)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr()
	slog.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)
	return fiberApp.Listen(addr)
}

// setup wires dependencies, seeds the ledger when configured and returns the
// HTTP application ready to listen.
func setup(cfg *config.App) (*fiber.App, error) {
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	a := app.New(deps, cfg)
	if cfg.Ledger.Seed {
		if err := a.Seed(context.Background()); err != nil {
			return nil, err
		}
	}
	return webapi.SetupApp(a), nil
}
