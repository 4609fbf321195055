// Package account provides the ledger operations used by the transport layer:
// listing, looking up, creating and deleting accounts, and moving funds in and
// out of them.
//
// Validation lives here. The domain entity mutates its own state without
// checks, so every precondition (a supplied account number, a parseable
// non-negative amount, sufficient funds) is verified by the service inside the
// same repository critical section that applies the mutation.
package account

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain/account"
	repoaccount "github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/shopspring/decimal"
)

// Amounts and balances are bounded so that decimal arithmetic under the store
// lock stays cheap: at most maxAmountScale fractional digits and
// maxAmountIntegerDigits integer digits.
const (
	maxAmountScale         = 18
	maxAmountIntegerDigits = 30
)

// Service provides the ledger operations on top of an account repository.
type Service struct {
	repo   repoaccount.Repository
	logger *slog.Logger
}

// New creates a new Service.
func New(repo repoaccount.Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ListAccounts returns a snapshot of every account.
func (s *Service) ListAccounts(ctx context.Context) ([]*account.Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "ListAccounts failed", "error", err)
		return nil, err
	}
	return accounts, nil
}

// GetAccount returns the account with the given number or a NotFound error.
func (s *Service) GetAccount(ctx context.Context, number int64) (*account.Account, error) {
	a, ok, err := s.repo.Get(ctx, number)
	if err != nil {
		s.logger.ErrorContext(ctx, "GetAccount failed: repository error", "accountNumber", number, "error", err)
		return nil, err
	}
	if !ok {
		return nil, account.NotFound(number)
	}
	return a, nil
}

// CreateAccount stores a new account.
//
// A missing account number is rejected with InvalidArgument. Creating an
// account whose (number, customer number) identity is already stored is a
// no-op that returns the stored account. A number already held by a different
// customer is rejected with Conflict.
func (s *Service) CreateAccount(ctx context.Context, a *account.Account) (*account.Account, error) {
	if a == nil || !a.HasNumber() {
		s.logger.WarnContext(ctx, "CreateAccount rejected: missing account number")
		return nil, account.ErrAccountNumberRequired
	}
	logger := s.logger.With("accountNumber", a.Number, "customerNumber", a.CustomerNumber)
	if !inRange(a.Balance) {
		logger.WarnContext(ctx, "CreateAccount rejected: balance out of range")
		return nil, account.ErrAmountOutOfRange
	}

	stored, inserted, err := s.repo.Insert(ctx, a)
	if err != nil {
		logger.ErrorContext(ctx, "CreateAccount failed: repository error", "error", err)
		return nil, err
	}
	if !inserted {
		if !stored.SameIdentity(a) {
			logger.WarnContext(ctx, "CreateAccount rejected: number held by another customer",
				"existingCustomerNumber", stored.CustomerNumber)
			return nil, account.NumberTaken(a.Number)
		}
		logger.InfoContext(ctx, "CreateAccount absorbed duplicate identity")
		return stored, nil
	}
	logger.InfoContext(ctx, "CreateAccount successful", "balance", stored.Balance.String())
	return stored, nil
}

// Withdraw removes amount from the account after checking the balance covers it.
func (s *Service) Withdraw(ctx context.Context, number int64, amount string) (*account.Account, error) {
	logger := s.logger.With("accountNumber", number, "amount", amount)
	logger.InfoContext(ctx, "Withdraw started")

	amt, err := ParseAmount(amount)
	if err != nil {
		err = s.rejectAmount(ctx, number, err)
		logger.WarnContext(ctx, "Withdraw failed", "error", err)
		return nil, err
	}
	a, err := s.repo.Update(ctx, number, func(a *account.Account) error {
		if !a.HasSufficientFunds(amt) {
			return account.ErrInsufficientFunds
		}
		a.Withdraw(amt)
		return nil
	})
	if err != nil {
		logger.WarnContext(ctx, "Withdraw failed", "error", err)
		return nil, err
	}
	logger.InfoContext(ctx, "Withdraw successful", "balance", a.Balance.String())
	return a, nil
}

// Deposit adds amount to the account. Closed accounts still accept deposits.
func (s *Service) Deposit(ctx context.Context, number int64, amount string) (*account.Account, error) {
	logger := s.logger.With("accountNumber", number, "amount", amount)
	logger.InfoContext(ctx, "Deposit started")

	amt, err := ParseAmount(amount)
	if err != nil {
		err = s.rejectAmount(ctx, number, err)
		logger.WarnContext(ctx, "Deposit failed", "error", err)
		return nil, err
	}
	a, err := s.repo.Update(ctx, number, func(a *account.Account) error {
		a.Deposit(amt)
		return nil
	})
	if err != nil {
		logger.WarnContext(ctx, "Deposit failed", "error", err)
		return nil, err
	}
	logger.InfoContext(ctx, "Deposit successful", "balance", a.Balance.String())
	return a, nil
}

// CloseAccount zeroes the balance and marks the account closed.
func (s *Service) CloseAccount(ctx context.Context, number int64) (*account.Account, error) {
	return s.transition(ctx, "CloseAccount", number, (*account.Account).Close)
}

// MarkOverdrawn flags the account as overdrawn.
func (s *Service) MarkOverdrawn(ctx context.Context, number int64) (*account.Account, error) {
	return s.transition(ctx, "MarkOverdrawn", number, (*account.Account).MarkOverdrawn)
}

// RemoveOverdrawnStatus clears the overdrawn flag.
func (s *Service) RemoveOverdrawnStatus(ctx context.Context, number int64) (*account.Account, error) {
	return s.transition(ctx, "RemoveOverdrawnStatus", number, (*account.Account).RemoveOverdrawnStatus)
}

// DeleteAccount removes the account or returns NotFound.
func (s *Service) DeleteAccount(ctx context.Context, number int64) error {
	deleted, err := s.repo.Delete(ctx, number)
	if err != nil {
		s.logger.ErrorContext(ctx, "DeleteAccount failed: repository error", "accountNumber", number, "error", err)
		return err
	}
	if !deleted {
		return account.NotFound(number)
	}
	s.logger.InfoContext(ctx, "DeleteAccount successful", "accountNumber", number)
	return nil
}

func (s *Service) transition(
	ctx context.Context,
	op string,
	number int64,
	apply func(*account.Account),
) (*account.Account, error) {
	a, err := s.repo.Update(ctx, number, func(a *account.Account) error {
		apply(a)
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, op+" failed", "accountNumber", number, "error", err)
		return nil, err
	}
	s.logger.InfoContext(ctx, op+" successful", "accountNumber", number, "status", a.Status)
	return a, nil
}

// rejectAmount returns NotFound for a missing account and amountErr
// otherwise. The lookup only takes the store's read lock.
func (s *Service) rejectAmount(ctx context.Context, number int64, amountErr error) error {
	if _, err := s.GetAccount(ctx, number); err != nil {
		return err
	}
	return amountErr
}

// ParseAmount parses amount text as a non-negative decimal within the ledger's
// supported range.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amt, err := decimal.NewFromString(raw)
	if err != nil || amt.IsNegative() || !inRange(amt) {
		return decimal.Zero, account.InvalidAmount(raw)
	}
	return amt, nil
}

// inRange checks d without rescaling it, so huge exponents are rejected
// before any arithmetic runs.
func inRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -maxAmountScale || exp > maxAmountIntegerDigits {
		return false
	}
	// 10^48 needs 160 bits; anything wider cannot fit the digit budget.
	if d.Coefficient().BitLen() > 160 {
		return false
	}
	return int64(d.NumDigits())+exp <= maxAmountIntegerDigits
}
