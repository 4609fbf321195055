package account

import "fmt"

// Kind classifies ledger errors so the transport can map them to status codes.
type Kind string

const (
	KindNotFound          Kind = "NotFound"
	KindInvalidArgument   Kind = "InvalidArgument"
	KindInvalidAmount     Kind = "InvalidAmount"
	KindInsufficientFunds Kind = "InsufficientFunds"
	KindConflict          Kind = "Conflict"
)

// Error is a classified ledger error carrying a human readable message.
// Two errors match under errors.Is when their kinds are equal, so callers can
// compare against the sentinels below regardless of the message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	// ErrAccountNotFound is returned when no account has the requested number.
	ErrAccountNotFound = &Error{Kind: KindNotFound, Message: "account not found"}

	// ErrAccountNumberRequired is returned when an account is created without a number.
	ErrAccountNumberRequired = &Error{Kind: KindInvalidArgument, Message: "Account number cannot be null."}

	// ErrInvalidAmount is returned when the amount text is not a non-negative decimal.
	ErrInvalidAmount = &Error{Kind: KindInvalidAmount, Message: "invalid amount"}

	// ErrAmountOutOfRange is returned when a balance has too many digits.
	ErrAmountOutOfRange = &Error{Kind: KindInvalidAmount, Message: "Amount is out of range."}

	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	ErrInsufficientFunds = &Error{Kind: KindInsufficientFunds, Message: "Insufficient funds."}

	// ErrAccountNumberTaken is returned when another customer already holds the number.
	ErrAccountNumberTaken = &Error{Kind: KindConflict, Message: "account number already in use"}
)

// NotFound builds a NotFound error naming the missing account number.
func NotFound(number int64) error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("Account with account number %d not found.", number),
	}
}

// InvalidAmount builds an InvalidAmount error quoting the rejected text.
func InvalidAmount(raw string) error {
	return &Error{
		Kind:    KindInvalidAmount,
		Message: fmt.Sprintf("Invalid amount %q: must be a non-negative decimal.", raw),
	}
}

// NumberTaken builds a Conflict error for a number owned by another customer.
func NumberTaken(number int64) error {
	return &Error{
		Kind:    KindConflict,
		Message: fmt.Sprintf("Account number %d is already held by another customer.", number),
	}
}
