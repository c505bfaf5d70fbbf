package account

import "github.com/aneshas/ledger/history"

var _ Withdrawer = (*CurrentAccount)(nil)

// OpenCurrent opens a new current account with the provided initial balance
// It fails with ErrNegativeBalance if initial is negative
func OpenCurrent(id ID, holder string, initial int64) (*CurrentAccount, error) {
	if initial < 0 {
		return nil, ErrNegativeBalance
	}

	var acc CurrentAccount

	acc.Rehydrate(&acc)

	acc.Apply(
		AccountOpened{
			AccountID: id.String(),
			Kind:      string(KindCurrent),
			Holder:    holder,
			Balance:   initial,
		},
	)

	return &acc, nil
}

// CurrentAccount represents a current account
// Its funds policy is identical to SavingsAccount - overdrafts are not
// offered, so any withdrawal that would result in a negative balance
// is rejected
type CurrentAccount struct {
	history.Log[ID]

	holder  string
	balance int64
}

// Holder returns the account holder name
func (a *CurrentAccount) Holder() string { return a.holder }

// Balance returns the current balance in minor units
func (a *CurrentAccount) Balance() int64 { return a.balance }

// Deposit increases the balance by amount
func (a *CurrentAccount) Deposit(amount int64) error {
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
func (a *CurrentAccount) Withdraw(amount int64) error {
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
func (a *CurrentAccount) OnAccountOpened(e AccountOpened) {
	a.SetID(ParseID(e.AccountID))

	a.holder = e.Holder
	a.balance = e.Balance
}

// OnDepositMade handler
func (a *CurrentAccount) OnDepositMade(e DepositMade) {
	a.balance = e.Balance
}

// OnWithdrawalMade handler
func (a *CurrentAccount) OnWithdrawalMade(e WithdrawalMade) {
	a.balance = e.Balance
}
