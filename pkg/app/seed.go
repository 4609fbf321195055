package app

import (
	"context"
	"fmt"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/shopspring/decimal"
)

// SeedAccounts returns fresh copies of the reference accounts created at startup.
func SeedAccounts() []*account.Account {
	return []*account.Account{
		account.New(123456789, 987654321, "George Baird", decimal.RequireFromString("354.23")),
		account.New(121212121, 888777666, "Mary Taylor", decimal.RequireFromString("560.03")),
		account.New(545454545, 222444999, "Diana Rigg", decimal.RequireFromString("422.00")),
	}
}

// Seed creates the reference accounts through the account service. Running it
// twice is harmless since creating an identical identity is a no-op.
func (a *App) Seed(ctx context.Context) error {
	for _, acc := range SeedAccounts() {
		if _, err := a.AccountService.CreateAccount(ctx, acc); err != nil {
			return fmt.Errorf("failed to seed account %d: %w", acc.Number, err)
		}
	}
	a.Deps.Logger.Info("Seeded reference accounts", "count", len(SeedAccounts()))
	return nil
}
