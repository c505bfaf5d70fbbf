// Package accounttest provides reusable behavioral contract checks for
// account variants.
//
// Any variant exposing the Withdrawer capability must be substitutable for
// any other - deposits always succeed, withdrawals succeed iff funds are
// sufficient and the balance never goes negative. Variants that overdraw
// or categorically refuse withdrawals fail these checks
package accounttest

import (
	"errors"
	"fmt"

	"github.com/aneshas/ledger/account"
)

// CheckDepositor runs the base capability contract against an account
// variant and reports the first violation encountered.
// open should open a fresh account of the tested variant with the
// provided initial balance
func CheckDepositor(open func(initial int64) (account.Depositor, error)) error {
	if _, err := open(-1); err == nil {
		return fmt.Errorf("opening an account with a negative balance should fail")
	}

	acc, err := open(0)
	if err != nil {
		return fmt.Errorf("opening an account with a zero balance should succeed: %w", err)
	}

	if err := acc.Deposit(5000); err != nil {
		return fmt.Errorf("deposit should always succeed: %w", err)
	}

	if got := acc.Balance(); got != 5000 {
		return fmt.Errorf("balance should be 5000, got %d", got)
	}

	if err := acc.Deposit(0); err != nil {
		return fmt.Errorf("zero deposit should succeed: %w", err)
	}

	if err := acc.Deposit(-1); err == nil {
		return fmt.Errorf("negative deposit should fail")
	}

	if got := acc.Balance(); got != 5000 {
		return fmt.Errorf("rejected deposits should leave the balance unchanged, got %d", got)
	}

	return nil
}

// CheckWithdrawer runs the extended capability contract (which includes
// the base one) against an account variant and reports the first
// violation encountered
func CheckWithdrawer(open func(initial int64) (account.Withdrawer, error)) error {
	err := CheckDepositor(func(initial int64) (account.Depositor, error) {
		return open(initial)
	})
	if err != nil {
		return err
	}

	acc, err := open(0)
	if err != nil {
		return err
	}

	if err := acc.Deposit(1000); err != nil {
		return fmt.Errorf("deposit should always succeed: %w", err)
	}

	if err := acc.Withdraw(500); err != nil {
		return fmt.Errorf("withdrawal with sufficient funds should succeed: %w", err)
	}

	if got := acc.Balance(); got != 500 {
		return fmt.Errorf("balance should be 500, got %d", got)
	}

	acc, err = open(100)
	if err != nil {
		return err
	}

	if err := acc.Withdraw(200); !errors.Is(err, account.ErrInsufficientFunds) {
		return fmt.Errorf("overdrawing withdrawal should fail with ErrInsufficientFunds, got: %v", err)
	}

	if got := acc.Balance(); got != 100 {
		return fmt.Errorf("failed withdrawal should leave the balance unchanged, got %d", got)
	}

	if err := acc.Withdraw(-1); err == nil {
		return fmt.Errorf("negative withdrawal should fail")
	}

	for _, amount := range []int64{100, 1, 50, 100} {
		_ = acc.Withdraw(amount)

		if acc.Balance() < 0 {
			return fmt.Errorf("balance went negative: %d", acc.Balance())
		}
	}

	return nil
}
