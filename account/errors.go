package account

import "errors"

var (
	// ErrNegativeBalance is returned when opening an account
	// with a negative initial balance
	ErrNegativeBalance = errors.New("initial balance cannot be negative")

	// ErrNegativeAmount is returned when a negative amount is passed
	// to Deposit or Withdraw
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInsufficientFunds is returned when a withdrawal would drive
	// the account balance below zero
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnknownKind is returned by Open for an unrecognized account kind
	ErrUnknownKind = errors.New("unknown account kind")
)
