package main

import (
	"context"
	"fmt"
	"log"

	"github.com/aneshas/ledger"
	"github.com/aneshas/ledger/account"
)

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

	ctx, cancel := context.WithCancel(context.Background())

	defer cancel()

	p := ledger.NewProjector(l)

	p.Add(
		NewConsoleStatementProjection(),
	)

	checkErr(p.Run(ctx))
}

func checkErr(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

// NewConsoleStatementProjection constructs an example projection that
// prints account statement lines to the console. It might as well write
// to any kind of database, disk, memory etc...
func NewConsoleStatementProjection() ledger.Projection {
	return func(tx ledger.StoredTransaction) error {
		switch entry := tx.Entry.(type) {
		case account.AccountOpened:
			fmt.Printf("Account: #%s (%s) | Holder: <%s> | Opening balance: %d\n",
				entry.AccountID, entry.Kind, entry.Holder, entry.Balance)

		case account.DepositMade:
			fmt.Printf("Account: #%s | Deposited: %d | Balance: %d\n",
				entry.AccountID, entry.Amount, entry.Balance)

		case account.WithdrawalMade:
			fmt.Printf("Account: #%s | Withdrawn: %d | Balance: %d\n",
				entry.AccountID, entry.Amount, entry.Balance)

		default:
			fmt.Println("not interested in this entry")
		}

		return nil
	}
}
