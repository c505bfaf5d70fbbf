package bank_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/aneshas/ledger/account"
	"github.com/aneshas/ledger/bank"
	"github.com/stretchr/testify/assert"
)

type capturingReporter struct {
	outcomes []bank.Outcome
}

func (r *capturingReporter) Report(o bank.Outcome) {
	r.outcomes = append(r.outcomes, o)
}

func TestShould_Process_Transactions_Across_Account_Kinds(t *testing.T) {
	savings, err := account.OpenSavings(account.NewID(), "John Doe", 0)

	assert.NoError(t, err)

	current, err := account.OpenCurrent(account.NewID(), "Jane Doe", 0)

	assert.NoError(t, err)

	fixed, err := account.OpenFixedTerm(account.NewID(), "John Doe", 0)

	assert.NoError(t, err)

	var r capturingReporter

	client := bank.NewClient(
		[]account.Withdrawer{savings, current},
		[]account.Depositor{fixed},
		&r,
	)

	client.ProcessTransactions()

	assert.Equal(t, int64(500), savings.Balance())
	assert.Equal(t, int64(500), current.Balance())
	assert.Equal(t, int64(5000), fixed.Balance())

	assert.Equal(t, []bank.Outcome{
		{Account: savings.StringID(), Op: bank.OpDeposit, Amount: 1000, Balance: 1000},
		{Account: savings.StringID(), Op: bank.OpWithdraw, Amount: 500, Balance: 500},
		{Account: current.StringID(), Op: bank.OpDeposit, Amount: 1000, Balance: 1000},
		{Account: current.StringID(), Op: bank.OpWithdraw, Amount: 500, Balance: 500},
		{Account: fixed.StringID(), Op: bank.OpDeposit, Amount: 5000, Balance: 5000},
	}, r.outcomes)
}

func TestShould_Report_Failed_Transactions_And_Continue(t *testing.T) {
	first, err := account.OpenSavings(account.NewID(), "John Doe", 0)

	assert.NoError(t, err)

	second, err := account.OpenCurrent(account.NewID(), "Jane Doe", 0)

	assert.NoError(t, err)

	var r capturingReporter

	client := bank.NewClient(
		[]account.Withdrawer{first, second},
		nil,
		&r,
		bank.WithDepositAmount(100),
		bank.WithWithdrawAmount(200),
	)

	client.ProcessTransactions()

	assert.Len(t, r.outcomes, 4)

	assert.ErrorIs(t, r.outcomes[1].Err, account.ErrInsufficientFunds)
	assert.ErrorIs(t, r.outcomes[3].Err, account.ErrInsufficientFunds)

	assert.Equal(t, int64(100), first.Balance())
	assert.Equal(t, int64(100), second.Balance())
}

func TestShould_Apply_Configured_Amounts(t *testing.T) {
	savings, err := account.OpenSavings(account.NewID(), "John Doe", 0)

	assert.NoError(t, err)

	fixed, err := account.OpenFixedTerm(account.NewID(), "John Doe", 0)

	assert.NoError(t, err)

	var r capturingReporter

	client := bank.NewClient(
		[]account.Withdrawer{savings},
		[]account.Depositor{fixed},
		&r,
		bank.WithDepositAmount(2000),
		bank.WithWithdrawAmount(1500),
		bank.WithFixedDepositAmount(10000),
	)

	client.ProcessTransactions()

	assert.Equal(t, int64(500), savings.Balance())
	assert.Equal(t, int64(10000), fixed.Balance())
}

func TestLog_Reporter_Should_Log_Outcomes(t *testing.T) {
	var buf bytes.Buffer

	r := bank.NewLogReporter(log.New(&buf, "", 0))

	r.Report(bank.Outcome{
		Account: "acc-1",
		Op:      bank.OpDeposit,
		Amount:  1000,
		Balance: 1000,
	})

	r.Report(bank.Outcome{
		Account: "acc-1",
		Op:      bank.OpWithdraw,
		Amount:  2000,
		Balance: 1000,
		Err:     account.ErrInsufficientFunds,
	})

	assert.Contains(t, buf.String(), "deposit ok | account: #acc-1 | amount: 1000 | balance: 1000")
	assert.Contains(t, buf.String(), "withdraw failed | account: #acc-1 | amount: 2000 | reason: insufficient funds")
}
