package main

import (
	"log"

	"github.com/aneshas/ledger"
	"github.com/aneshas/ledger/account"
	example "github.com/aneshas/ledger-example"
	"github.com/labstack/echo/v4"
)

func main() {
	l, err := ledger.New(
		ledger.NewJSONCodec(
			account.AccountOpened{},
			account.DepositMade{},
			account.WithdrawalMade{},
		),
		ledger.WithSQLiteDB("exampledb"),
	)
	checkErr(err)

	defer l.Close()

	stores := example.NewStores(l)

	e := echo.New()

	e.POST("/accounts", example.NewOpenAccountHandlerFunc(stores))

	e.POST("/accounts/savings/:id/deposits", example.NewDepositHandlerFunc(
		stores.Savings,
		func() *account.SavingsAccount { return &account.SavingsAccount{} },
	))
	e.POST("/accounts/savings/:id/withdrawals", example.NewWithdrawHandlerFunc(
		stores.Savings,
		func() *account.SavingsAccount { return &account.SavingsAccount{} },
	))

	e.POST("/accounts/current/:id/deposits", example.NewDepositHandlerFunc(
		stores.Current,
		func() *account.CurrentAccount { return &account.CurrentAccount{} },
	))
	e.POST("/accounts/current/:id/withdrawals", example.NewWithdrawHandlerFunc(
		stores.Current,
		func() *account.CurrentAccount { return &account.CurrentAccount{} },
	))

	// No withdrawal route exists for fixed term accounts - their concrete
	// type does not satisfy the Withdrawer capability
	e.POST("/accounts/fixed-term/:id/deposits", example.NewDepositHandlerFunc(
		stores.FixedTerm,
		func() *account.FixedTermAccount { return &account.FixedTermAccount{} },
	))

	log.Fatal(e.Start(":8080"))
}

func checkErr(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
