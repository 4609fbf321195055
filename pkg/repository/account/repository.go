package account

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/account"
)

// UpdateFunc mutates a live account. Returning an error aborts the update and
// leaves the account as it was before the call.
type UpdateFunc func(a *account.Account) error

// Repository defines the account collection used by the ledger service.
// Every account handed out is a snapshot; the only way to change a stored
// account is through Update.
type Repository interface {
	// List returns snapshots of every stored account in no particular order.
	List(ctx context.Context) ([]*account.Account, error)

	// Get returns a snapshot of the account with the given number.
	Get(ctx context.Context, number int64) (*account.Account, bool, error)

	// Insert stores a if its number is free. When the number is taken the
	// stored account is returned with inserted=false and nothing changes.
	Insert(ctx context.Context, a *account.Account) (stored *account.Account, inserted bool, err error)

	// Update runs fn on the stored account as one atomic step.
	Update(ctx context.Context, number int64, fn UpdateFunc) (*account.Account, error)

	// Delete removes the account and reports whether it existed.
	Delete(ctx context.Context, number int64) (bool, error)
}
