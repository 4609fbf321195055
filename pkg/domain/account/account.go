package account

import (
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an account.
type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusOverdrawn Status = "OVERDRAWN"
	StatusClosed    Status = "CLOSED"
)

// Account represents one customer's balance record in the ledger.
//
// Invariants:
//   - Number is the lookup key and never changes once the account is stored.
//   - Identity is the (Number, CustomerNumber) pair.
//   - Status is only changed by MarkOverdrawn, RemoveOverdrawnStatus and Close,
//     never derived from the sign of Balance.
//   - A closed account stays closed.
//
// Account carries no lock. The ledger store owns the only live copy of each
// account and serializes every mutation; everything handed out of the store is
// a snapshot produced by Clone.
type Account struct {
	Number         int64
	CustomerNumber int64
	CustomerName   string
	Balance        decimal.Decimal
	Status         Status
}

// New creates an open account from its four identity and balance fields.
// No validation happens here; rejecting a missing account number is the
// ledger's job.
func New(number, customerNumber int64, customerName string, balance decimal.Decimal) *Account {
	return &Account{
		Number:         number,
		CustomerNumber: customerNumber,
		CustomerName:   customerName,
		Balance:        balance,
		Status:         StatusOpen,
	}
}

// Builder provides a fluent API for constructing Account instances.
// It is mostly useful for hydrating accounts in tests and seed data where a
// non-default status is needed.
type Builder struct {
	number         int64
	customerNumber int64
	customerName   string
	balance        decimal.Decimal
	status         Status
}

// NewBuilder creates a Builder for an open account with a zero balance.
func NewBuilder() *Builder {
	return &Builder{
		balance: decimal.Zero,
		status:  StatusOpen,
	}
}

// WithNumber sets the account number.
func (b *Builder) WithNumber(number int64) *Builder {
	b.number = number
	return b
}

// WithCustomerNumber sets the owning customer's number.
func (b *Builder) WithCustomerNumber(customerNumber int64) *Builder {
	b.customerNumber = customerNumber
	return b
}

// WithCustomerName sets the informational customer name.
func (b *Builder) WithCustomerName(name string) *Builder {
	b.customerName = name
	return b
}

// WithBalance sets the starting balance.
func (b *Builder) WithBalance(balance decimal.Decimal) *Builder {
	b.balance = balance
	return b
}

// WithStatus sets the starting status. This is only meant for hydration.
func (b *Builder) WithStatus(status Status) *Builder {
	b.status = status
	return b
}

// Build returns the constructed account.
func (b *Builder) Build() *Account {
	a := New(b.number, b.customerNumber, b.customerName, b.balance)
	a.Status = b.status
	return a
}

// HasNumber reports whether the account number was supplied.
func (a *Account) HasNumber() bool {
	return a.Number != 0
}

// SameIdentity reports whether both accounts share account and customer number.
func (a *Account) SameIdentity(other *Account) bool {
	if a == nil || other == nil {
		return false
	}
	return a.Number == other.Number && a.CustomerNumber == other.CustomerNumber
}

// HasSufficientFunds reports whether the balance covers amount.
func (a *Account) HasSufficientFunds(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// Deposit adds amount to the balance. The status is left untouched.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// Withdraw subtracts amount from the balance.
//
// Precondition: the caller has already checked HasSufficientFunds while holding
// the ledger's lock. Withdraw itself performs no bounds check and will happily
// drive the balance negative.
func (a *Account) Withdraw(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
}

// MarkOverdrawn flags the account as overdrawn. Closed accounts stay closed.
func (a *Account) MarkOverdrawn() {
	if a.Status == StatusClosed {
		return
	}
	a.Status = StatusOverdrawn
}

// RemoveOverdrawnStatus reopens an overdrawn account. Closed accounts stay closed.
func (a *Account) RemoveOverdrawnStatus() {
	if a.Status == StatusClosed {
		return
	}
	a.Status = StatusOpen
}

// Close marks the account closed and zeroes the balance. Remaining funds are
// discarded, not settled anywhere.
func (a *Account) Close() {
	a.Status = StatusClosed
	a.Balance = decimal.Zero
}

// Clone returns an independent copy of the account.
func (a *Account) Clone() *Account {
	cp := *a
	return &cp
}
