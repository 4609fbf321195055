package account_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainaccount "github.com/amirasaad/ledger/pkg/domain/account"
	repoaccount "github.com/amirasaad/ledger/pkg/repository/account"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newBenchService(b *testing.B) *accountsvc.Service {
	b.Helper()
	svc := accountsvc.New(
		repoaccount.NewMemoryRepository(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	_, err := svc.CreateAccount(context.Background(),
		domainaccount.New(1, 1, "bench", decimal.NewFromInt(1_000_000_000)))
	require.NoError(b, err)
	return svc
}

func BenchmarkCreateAccount(b *testing.B) {
	require := require.New(b)
	svc := newBenchService(b)
	ctx := context.Background()
	var n int64 = 1
	for b.Loop() {
		n++
		_, err := svc.CreateAccount(ctx, domainaccount.New(n, n, "bench", decimal.Zero))
		require.NoError(err)
	}
}

func BenchmarkDeposit(b *testing.B) {
	require := require.New(b)
	svc := newBenchService(b)
	ctx := context.Background()
	for b.Loop() {
		_, err := svc.Deposit(ctx, 1, "100.00")
		require.NoError(err)
	}
}

func BenchmarkWithdraw(b *testing.B) {
	require := require.New(b)
	svc := newBenchService(b)
	ctx := context.Background()
	for b.Loop() {
		_, err := svc.Withdraw(ctx, 1, "0.01")
		require.NoError(err)
	}
}

func BenchmarkGetAccountParallel(b *testing.B) {
	svc := newBenchService(b)
	ctx := context.Background()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.GetAccount(ctx, 1); err != nil {
				b.Error(err)
			}
		}
	})
}
