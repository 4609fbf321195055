package account

import (
	"context"
	"sync"

	"github.com/amirasaad/ledger/pkg/domain/account"
)

// MemoryRepository implements Repository with a map guarded by a single RWMutex.
// Reads share the lock; inserts, updates and deletes take it exclusively so a
// check and the mutation that depends on it can never interleave with another
// writer.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[int64]*account.Account
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		accounts: make(map[int64]*account.Account),
	}
}

// List returns snapshots of every account.
func (r *MemoryRepository) List(_ context.Context) ([]*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*account.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a.Clone())
	}
	return out, nil
}

// Get returns a snapshot of the account with the given number.
func (r *MemoryRepository) Get(_ context.Context, number int64) (*account.Account, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[number]
	if !ok {
		return nil, false, nil
	}
	return a.Clone(), true, nil
}

// Insert stores a copy of a unless the number is already taken.
func (r *MemoryRepository) Insert(_ context.Context, a *account.Account) (*account.Account, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.accounts[a.Number]; ok {
		return existing.Clone(), false, nil
	}
	stored := a.Clone()
	r.accounts[a.Number] = stored
	return stored.Clone(), true, nil
}

// Update applies fn to a working copy and commits it only when fn succeeds.
func (r *MemoryRepository) Update(_ context.Context, number int64, fn UpdateFunc) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[number]
	if !ok {
		return nil, account.NotFound(number)
	}
	working := a.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	r.accounts[number] = working
	return working.Clone(), nil
}

// Delete removes the account with the given number.
func (r *MemoryRepository) Delete(_ context.Context, number int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[number]; !ok {
		return false, nil
	}
	delete(r.accounts, number)
	return true, nil
}

// Len returns the number of stored accounts.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}
