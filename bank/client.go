// Package bank provides a transaction driving client which operates on
// accounts strictly through their capability interfaces.
//
// The client never inspects concrete account types - holding a Withdrawer
// entitles it to deposit and withdraw, holding a Depositor entitles it to
// deposit only, so any conforming variant can be substituted freely
package bank

import (
	"github.com/aneshas/ledger/account"
)

// Op represents a transaction operation
type Op string

const (
	// OpDeposit denotes a deposit transaction
	OpDeposit Op = "deposit"

	// OpWithdraw denotes a withdrawal transaction
	OpWithdraw Op = "withdraw"
)

// Cfg represents client configuration
type Cfg struct {
	DepositAmount      int64
	WithdrawAmount     int64
	FixedDepositAmount int64
}

// Option represents client configuration option
type Option func(Cfg) Cfg

// WithDepositAmount configures the amount deposited to each
// withdrawable account
func WithDepositAmount(amount int64) Option {
	return func(cfg Cfg) Cfg {
		cfg.DepositAmount = amount

		return cfg
	}
}

// WithWithdrawAmount configures the amount withdrawn from each
// withdrawable account
func WithWithdrawAmount(amount int64) Option {
	return func(cfg Cfg) Cfg {
		cfg.WithdrawAmount = amount

		return cfg
	}
}

// WithFixedDepositAmount configures the amount deposited to each
// deposit only account
func WithFixedDepositAmount(amount int64) Option {
	return func(cfg Cfg) Cfg {
		cfg.FixedDepositAmount = amount

		return cfg
	}
}

// NewClient constructs a new transaction driving client over the provided
// account collections, reporting outcomes through r
func NewClient(
	withdrawable []account.Withdrawer,
	depositOnly []account.Depositor,
	r Reporter,
	opts ...Option) *Client {

	cfg := Cfg{
		DepositAmount:      1000,
		WithdrawAmount:     500,
		FixedDepositAmount: 5000,
	}

	for _, opt := range opts {
		cfg = opt(cfg)
	}

	if r == nil {
		r = NewLogReporter(nil)
	}

	return &Client{
		withdrawable: withdrawable,
		depositOnly:  depositOnly,
		reporter:     r,
		cfg:          cfg,
	}
}

// Client drives a fixed demonstration sequence of transactions over two
// account collections - one held through the Withdrawer capability and
// one held through the base Depositor capability
type Client struct {
	withdrawable []account.Withdrawer
	depositOnly  []account.Depositor
	reporter     Reporter
	cfg          Cfg
}

// ProcessTransactions deposits to and withdraws from each withdrawable
// account and deposits to each deposit only account.
// Failed transactions are reported and processing continues
func (c *Client) ProcessTransactions() {
	for _, acc := range c.withdrawable {
		c.deposit(acc, c.cfg.DepositAmount)
		c.withdraw(acc, c.cfg.WithdrawAmount)
	}

	for _, acc := range c.depositOnly {
		c.deposit(acc, c.cfg.FixedDepositAmount)
	}
}

func (c *Client) deposit(acc account.Depositor, amount int64) {
	err := acc.Deposit(amount)

	c.reporter.Report(Outcome{
		Account: acc.StringID(),
		Op:      OpDeposit,
		Amount:  amount,
		Balance: acc.Balance(),
		Err:     err,
	})
}

func (c *Client) withdraw(acc account.Withdrawer, amount int64) {
	err := acc.Withdraw(amount)

	c.reporter.Report(Outcome{
		Account: acc.StringID(),
		Op:      OpWithdraw,
		Amount:  amount,
		Balance: acc.Balance(),
		Err:     err,
	})
}
