// Package account implements a capability typed bank account hierarchy.
//
// Capabilities are modeled as interfaces: every account can receive deposits
// (Depositor) and some accounts can additionally be withdrawn from
// (Withdrawer). Concrete account types satisfy the exact set of capabilities
// their kind supports, which means that holding a Depositor reference to a
// fixed term account makes a withdrawal attempt a compile error rather than
// a runtime refusal.
//
// Account state is derived from its recorded transaction history
// (see the history package) - every successful operation applies a typed
// entry which can be persisted to and rehydrated from the ledger.
package account

import "fmt"

// Depositor is the base account capability - every account
// accepts deposits
type Depositor interface {
	// StringID returns the account id
	StringID() string

	// Balance returns the current account balance in minor units
	Balance() int64

	// Deposit increases the account balance by amount (minor units)
	// It fails only for negative amounts
	Deposit(amount int64) error
}

// Withdrawer is the extended account capability - in addition to deposits,
// the account supports withdrawals.
// Every Withdrawer is usable wherever a Depositor is expected, with an
// identical deposit contract
type Withdrawer interface {
	Depositor

	// Withdraw decreases the account balance by amount (minor units)
	// iff the resulting balance would not be negative, otherwise it
	// fails with ErrInsufficientFunds and leaves the balance unchanged
	Withdraw(amount int64) error
}

// Kind represents a concrete account kind
type Kind string

const (
	// KindSavings denotes a savings account (deposit + withdraw)
	KindSavings Kind = "savings"

	// KindCurrent denotes a current account (deposit + withdraw)
	KindCurrent Kind = "current"

	// KindFixedTerm denotes a fixed term account (deposit only)
	KindFixedTerm Kind = "fixed-term"
)

// Open opens a new account of the provided kind with a validated initial
// balance and returns it through its base Depositor capability.
// It fails with ErrNegativeBalance if initial is negative and with
// ErrUnknownKind for an unrecognized kind
func Open(kind Kind, id ID, holder string, initial int64) (Depositor, error) {
	switch kind {
	case KindSavings:
		return OpenSavings(id, holder, initial)

	case KindCurrent:
		return OpenCurrent(id, holder, initial)

	case KindFixedTerm:
		return OpenFixedTerm(id, holder, initial)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
