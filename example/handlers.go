// Package example shows how the ledger, history store and account packages
// fit together behind an http api
package example

import (
	"errors"
	"net/http"

	"github.com/aneshas/ledger"
	"github.com/aneshas/ledger/account"
	"github.com/aneshas/ledger/history"
	"github.com/labstack/echo/v4"
)

// OpenReq is the open account request
type OpenReq struct {
	Kind           string `json:"kind"`
	Holder         string `json:"holder"`
	InitialBalance int64  `json:"initial_balance"`
}

// TxReq is the deposit / withdrawal request
type TxReq struct {
	Amount int64 `json:"amount"`
}

// AccountResp is the account response
type AccountResp struct {
	ID      string `json:"id"`
	Balance int64  `json:"balance"`
}

// Stores bundles per variant account stores over a shared ledger
type Stores struct {
	Savings   *history.Store[*account.SavingsAccount]
	Current   *history.Store[*account.CurrentAccount]
	FixedTerm *history.Store[*account.FixedTermAccount]
}

// NewStores constructs account stores over the provided ledger
func NewStores(l *ledger.Ledger) Stores {
	return Stores{
		Savings:   history.NewStore[*account.SavingsAccount](l),
		Current:   history.NewStore[*account.CurrentAccount](l),
		FixedTerm: history.NewStore[*account.FixedTermAccount](l),
	}
}

// NewOpenAccountHandlerFunc creates the account opening endpoint
func NewOpenAccountHandlerFunc(stores Stores) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req OpenReq

		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		id := account.NewID()

		var (
			acc account.Depositor
			err error
		)

		switch account.Kind(req.Kind) {
		case account.KindSavings:
			var sa *account.SavingsAccount

			sa, err = account.OpenSavings(id, req.Holder, req.InitialBalance)
			if err == nil {
				err = stores.Savings.Save(c.Request().Context(), sa)
			}

			acc = sa

		case account.KindCurrent:
			var ca *account.CurrentAccount

			ca, err = account.OpenCurrent(id, req.Holder, req.InitialBalance)
			if err == nil {
				err = stores.Current.Save(c.Request().Context(), ca)
			}

			acc = ca

		case account.KindFixedTerm:
			var fa *account.FixedTermAccount

			fa, err = account.OpenFixedTerm(id, req.Holder, req.InitialBalance)
			if err == nil {
				err = stores.FixedTerm.Save(c.Request().Context(), fa)
			}

			acc = fa

		default:
			err = account.ErrUnknownKind
		}

		if err != nil {
			return toHTTPError(err)
		}

		return c.JSON(http.StatusCreated, AccountResp{
			ID:      acc.StringID(),
			Balance: acc.Balance(),
		})
	}
}

// NewDepositHandlerFunc creates a deposit endpoint for any account variant
func NewDepositHandlerFunc[T interface {
	history.Keeper
	account.Depositor
}](store *history.Store[T], zero func() T) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req TxReq

		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		ctx := c.Request().Context()
		acc := zero()

		if err := store.ByID(ctx, c.Param("id"), acc); err != nil {
			return toHTTPError(err)
		}

		if err := acc.Deposit(req.Amount); err != nil {
			return toHTTPError(err)
		}

		if err := store.Save(ctx, acc); err != nil {
			return toHTTPError(err)
		}

		return c.JSON(http.StatusOK, AccountResp{
			ID:      acc.StringID(),
			Balance: acc.Balance(),
		})
	}
}

// NewWithdrawHandlerFunc creates a withdrawal endpoint for withdrawable
// account variants.
// Deposit only variants cannot be routed here at all since their concrete
// types do not satisfy the Withdrawer capability
func NewWithdrawHandlerFunc[T interface {
	history.Keeper
	account.Withdrawer
}](store *history.Store[T], zero func() T) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req TxReq

		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		ctx := c.Request().Context()
		acc := zero()

		if err := store.ByID(ctx, c.Param("id"), acc); err != nil {
			return toHTTPError(err)
		}

		if err := acc.Withdraw(req.Amount); err != nil {
			return toHTTPError(err)
		}

		if err := store.Save(ctx, acc); err != nil {
			return toHTTPError(err)
		}

		return c.JSON(http.StatusOK, AccountResp{
			ID:      acc.StringID(),
			Balance: acc.Balance(),
		})
	}
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, history.ErrAccountNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, account.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	case errors.Is(err, account.ErrNegativeAmount),
		errors.Is(err, account.ErrNegativeBalance),
		errors.Is(err, account.ErrUnknownKind):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	default:
		return err
	}
}
