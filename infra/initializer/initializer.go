package initializer

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/ledger/infra/ratelimit"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	repoaccount "github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/redis/go-redis/v9"
)

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := setupLogger(cfg.Log)
	return initializeDependencies(cfg, logger)
}

func initializeDependencies(cfg *config.App, logger *slog.Logger) (*app.Deps, error) {
	deps := &app.Deps{
		AccountRepository: repoaccount.NewMemoryRepository(),
		Logger:            logger,
	}
	logger.Info("Using in-memory account ledger")

	if url := cfg.RateLimit.RedisURL; url != "" {
		opt, err := redis.ParseURL(url)
		if err != nil {
			logger.Error("Invalid Redis URL for rate limiting", "error", err)
			return nil, fmt.Errorf("failed to parse rate limit redis url: %w", err)
		}
		deps.RateLimitStorage = ratelimit.NewRedisStorage(opt, cfg.RateLimit.KeyPrefix, logger)
		logger.Info("Using Redis for rate limit counters", "addr", opt.Addr)
	} else {
		logger.Info("Using in-memory rate limit counters")
	}
	return deps, nil
}
