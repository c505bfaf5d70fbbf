package account

import "github.com/aneshas/ledger/history"

var _ Depositor = (*FixedTermAccount)(nil)

// OpenFixedTerm opens a new fixed term account with the provided
// initial balance
// It fails with ErrNegativeBalance if initial is negative
func OpenFixedTerm(id ID, holder string, initial int64) (*FixedTermAccount, error) {
	if initial < 0 {
		return nil, ErrNegativeBalance
	}

	var acc FixedTermAccount

	acc.Rehydrate(&acc)

	acc.Apply(
		AccountOpened{
			AccountID: id.String(),
			Kind:      string(KindFixedTerm),
			Holder:    holder,
			Balance:   initial,
		},
	)

	return &acc, nil
}

// FixedTermAccount represents a fixed term deposit account
// It is deposit only - there is no Withdraw method on this type, so funds
// cannot be withdrawn through any reference to it
type FixedTermAccount struct {
	history.Log[ID]

	holder  string
	balance int64
}

// Holder returns the account holder name
func (a *FixedTermAccount) Holder() string { return a.holder }

// Balance returns the current balance in minor units
func (a *FixedTermAccount) Balance() int64 { return a.balance }

// Deposit increases the balance by amount
func (a *FixedTermAccount) Deposit(amount int64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}

	a.Apply(
		DepositMade{
			AccountID: a.StringID(),
			Amount:    amount,
			Balance:   a.balance + amount,
		},
	)

	return nil
}

// OnAccountOpened handler
func (a *FixedTermAccount) OnAccountOpened(e AccountOpened) {
	a.SetID(ParseID(e.AccountID))

	a.holder = e.Holder
	a.balance = e.Balance
}

// OnDepositMade handler
func (a *FixedTermAccount) OnDepositMade(e DepositMade) {
	a.balance = e.Balance
}
