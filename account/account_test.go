package account_test

import (
	"testing"

	"github.com/aneshas/ledger/account"
	"github.com/aneshas/ledger/history"
	"github.com/stretchr/testify/assert"
)

func TestShould_Deposit_And_Withdraw_From_Savings_Account(t *testing.T) {
	acc, err := account.OpenSavings(account.NewID(), "John Doe", 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), acc.Balance())

	assert.NoError(t, acc.Deposit(1000))
	assert.Equal(t, int64(1000), acc.Balance())

	assert.NoError(t, acc.Withdraw(500))
	assert.Equal(t, int64(500), acc.Balance())
}

func TestShould_Reject_Overdrawing_Withdrawal(t *testing.T) {
	acc, err := account.OpenSavings(account.NewID(), "John Doe", 100)

	assert.NoError(t, err)

	err = acc.Withdraw(200)

	assert.ErrorIs(t, err, account.ErrInsufficientFunds)
	assert.Equal(t, int64(100), acc.Balance())
}

func TestShould_Deposit_To_Fixed_Term_Account(t *testing.T) {
	acc, err := account.OpenFixedTerm(account.NewID(), "John Doe", 0)

	assert.NoError(t, err)

	assert.NoError(t, acc.Deposit(5000))
	assert.Equal(t, int64(5000), acc.Balance())
}

func TestFixed_Term_Account_Should_Not_Expose_Withdrawals(t *testing.T) {
	acc, err := account.OpenFixedTerm(account.NewID(), "John Doe", 0)

	assert.NoError(t, err)

	var dep account.Depositor = acc

	_, ok := dep.(account.Withdrawer)

	assert.False(t, ok, "fixed term account must not satisfy the Withdrawer capability")
}

func TestShould_Reject_Negative_Opening_Balance(t *testing.T) {
	for _, kind := range []account.Kind{
		account.KindSavings,
		account.KindCurrent,
		account.KindFixedTerm,
	} {
		t.Run(string(kind), func(t *testing.T) {
			_, err := account.Open(kind, account.NewID(), "John Doe", -1)

			assert.ErrorIs(t, err, account.ErrNegativeBalance)
		})
	}
}

func TestShould_Reject_Negative_Amounts(t *testing.T) {
	acc, err := account.OpenCurrent(account.NewID(), "Jane Doe", 100)

	assert.NoError(t, err)

	assert.ErrorIs(t, acc.Deposit(-1), account.ErrNegativeAmount)
	assert.ErrorIs(t, acc.Withdraw(-1), account.ErrNegativeAmount)
	assert.Equal(t, int64(100), acc.Balance())
}

func TestShould_Open_Account_Of_Any_Kind_Through_Factory(t *testing.T) {
	cases := []struct {
		kind       account.Kind
		withdrawer bool
	}{
		{account.KindSavings, true},
		{account.KindCurrent, true},
		{account.KindFixedTerm, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			id := account.NewID()

			acc, err := account.Open(tc.kind, id, "John Doe", 100)

			assert.NoError(t, err)
			assert.Equal(t, id.String(), acc.StringID())
			assert.Equal(t, int64(100), acc.Balance())

			_, ok := acc.(account.Withdrawer)

			assert.Equal(t, tc.withdrawer, ok)
		})
	}
}

func TestShould_Fail_On_Unknown_Account_Kind(t *testing.T) {
	_, err := account.Open("checking", account.NewID(), "John Doe", 0)

	assert.ErrorIs(t, err, account.ErrUnknownKind)
}

func TestShould_Record_Transaction_History(t *testing.T) {
	id := account.NewID()

	acc, err := account.OpenSavings(id, "John Doe", 100)

	assert.NoError(t, err)
	assert.NoError(t, acc.Deposit(1000))
	assert.NoError(t, acc.Withdraw(500))

	assert.Equal(t, []any{
		account.AccountOpened{
			AccountID: id.String(),
			Kind:      string(account.KindSavings),
			Holder:    "John Doe",
			Balance:   100,
		},
		account.DepositMade{
			AccountID: id.String(),
			Amount:    1000,
			Balance:   1100,
		},
		account.WithdrawalMade{
			AccountID: id.String(),
			Amount:    500,
			Balance:   600,
		},
	}, acc.Pending())
}

func TestShould_Rehydrate_Account_From_Recorded_History(t *testing.T) {
	id := account.NewID()

	var acc account.SavingsAccount

	acc.Rehydrate(
		&acc,
		history.Record{
			Entry: account.AccountOpened{
				AccountID: id.String(),
				Kind:      string(account.KindSavings),
				Holder:    "John Doe",
				Balance:   100,
			},
		},
		history.Record{
			Entry: account.DepositMade{
				AccountID: id.String(),
				Amount:    1000,
				Balance:   1100,
			},
		},
		history.Record{
			Entry: account.WithdrawalMade{
				AccountID: id.String(),
				Amount:    500,
				Balance:   600,
			},
		},
	)

	assert.Equal(t, id.String(), acc.StringID())
	assert.Equal(t, "John Doe", acc.Holder())
	assert.Equal(t, int64(600), acc.Balance())
	assert.Equal(t, 3, acc.Version())
	assert.Empty(t, acc.Pending())
}
