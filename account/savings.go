package account

import "github.com/aneshas/ledger/history"

var _ Withdrawer = (*SavingsAccount)(nil)

// OpenSavings opens a new savings account with the provided initial balance
// It fails with ErrNegativeBalance if initial is negative
func OpenSavings(id ID, holder string, initial int64) (*SavingsAccount, error) {
	if initial < 0 {
		return nil, ErrNegativeBalance
	}

	var acc SavingsAccount

	acc.Rehydrate(&acc)

	acc.Apply(
		AccountOpened{
			AccountID: id.String(),
			Kind:      string(KindSavings),
			Holder:    holder,
			Balance:   initial,
		},
	)

	return &acc, nil
}

// SavingsAccount represents a savings account
// It supports both deposits and withdrawals and maintains a
// non-negative balance at all times
type SavingsAccount struct {
	history.Log[ID]

	holder  string
	balance int64
}

// Holder returns the account holder name
func (a *SavingsAccount) Holder() string { return a.holder }

// Balance returns the current balance in minor units
func (a *SavingsAccount) Balance() int64 { return a.balance }

// Deposit increases the balance by amount
func (a *SavingsAccount) Deposit(amount int64) error {
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

// Withdraw decreases the balance by amount iff sufficient funds are available
func (a *SavingsAccount) Withdraw(amount int64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}

	if a.balance-amount < 0 {
		return ErrInsufficientFunds
	}

	a.Apply(
		WithdrawalMade{
			AccountID: a.StringID(),
			Amount:    amount,
			Balance:   a.balance - amount,
		},
	)

	return nil
}

// OnAccountOpened handler
func (a *SavingsAccount) OnAccountOpened(e AccountOpened) {
	a.SetID(ParseID(e.AccountID))

	a.holder = e.Holder
	a.balance = e.Balance
}

// OnDepositMade handler
func (a *SavingsAccount) OnDepositMade(e DepositMade) {
	a.balance = e.Balance
}

// OnWithdrawalMade handler
func (a *SavingsAccount) OnWithdrawalMade(e WithdrawalMade) {
	a.balance = e.Balance
}
