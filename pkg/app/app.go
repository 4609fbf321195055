package app

import (
	"log/slog"

	"github.com/amirasaad/ledger/pkg/config"
	repoaccount "github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/amirasaad/ledger/pkg/service/account"
	"github.com/gofiber/fiber/v2"
)

// Deps contains the infrastructure the application is assembled from.
type Deps struct {
	AccountRepository repoaccount.Repository
	// RateLimitStorage backs the request limiter. Nil selects Fiber's
	// in-memory storage.
	RateLimitStorage fiber.Storage
	Logger           *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AccountService *account.Service
}

func New(deps *Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.AccountRepository == nil {
		deps.AccountRepository = repoaccount.NewMemoryRepository()
	}
	return &App{
		Deps:           deps,
		Config:         cfg,
		AccountService: account.New(deps.AccountRepository, deps.Logger),
	}
}
