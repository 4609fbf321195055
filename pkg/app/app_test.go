package app_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	domainaccount "github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *app.App {
	return app.New(
		&app.Deps{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))},
		&config.App{},
	)
}

func TestNew_DefaultsRepository(t *testing.T) {
	t.Parallel()
	a := newTestApp()
	require.NotNil(t, a.Deps.AccountRepository)
	require.NotNil(t, a.AccountService)
}

func TestSeed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a := newTestApp()

	require.NoError(t, a.Seed(ctx))
	require.NoError(t, a.Seed(ctx), "seeding twice is idempotent")

	all, err := a.AccountService.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	george, err := a.AccountService.GetAccount(ctx, 123456789)
	require.NoError(t, err)
	assert.Equal(t, "George Baird", george.CustomerName)
	assert.True(t, george.Balance.Equal(decimal.RequireFromString("354.23")))
	assert.Equal(t, domainaccount.StatusOpen, george.Status)
}
