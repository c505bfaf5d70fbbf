package main

import (
	"context"
	"log"

	"github.com/aneshas/ledger"
	"github.com/aneshas/ledger/account"
	"github.com/aneshas/ledger/bank"
	example "github.com/aneshas/ledger-example"
)

// Opens a couple of accounts of different kinds, runs the transaction
// driving client over them through their capability interfaces only and
// persists the resulting histories to a sqlite ledger
func main() {
	l, err := ledger.New(
		ledger.NewJSONCodec(
			account.AccountOpened{},
			account.DepositMade{},
			account.WithdrawalMade{},
		),
		ledger.WithSQLiteDB("demodb"),
	)
	checkErr(err)

	defer l.Close()

	savings, err := account.OpenSavings(account.NewID(), "John Doe", 0)
	checkErr(err)

	current, err := account.OpenCurrent(account.NewID(), "Jane Doe", 100)
	checkErr(err)

	fixed, err := account.OpenFixedTerm(account.NewID(), "John Doe", 0)
	checkErr(err)

	// Savings and current accounts are interchangeable behind the
	// Withdrawer capability, and all three accounts are interchangeable
	// behind Depositor
	client := bank.NewClient(
		[]account.Withdrawer{savings, current},
		[]account.Depositor{fixed},
		bank.NewLogReporter(nil),
	)

	client.ProcessTransactions()

	ctx := context.Background()
	stores := example.NewStores(l)

	checkErr(stores.Savings.Save(ctx, savings))
	checkErr(stores.Current.Save(ctx, current))
	checkErr(stores.FixedTerm.Save(ctx, fixed))

	txs, err := l.ReadAccount(ctx, savings.StringID())
	checkErr(err)

	for _, tx := range txs {
		log.Printf("%s | v%d | %#v", tx.Type, tx.AccountVersion, tx.Entry)
	}
}

func checkErr(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
