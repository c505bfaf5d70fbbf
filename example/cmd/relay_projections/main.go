package main

import (
	"fmt"
	"log"

	"github.com/aneshas/ledger"
	"github.com/aneshas/ledger/account"
	"github.com/aneshas/ledger/relay"
	"github.com/aneshas/ledger/relay/echorelay"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	e := echo.New()

	e.Use(middleware.BasicAuth(func(username, password string, c echo.Context) (bool, error) {
		if username == "user" && password == "pass" {
			return true, nil
		}

		return false, nil
	}))

	hf := echorelay.Wrap(
		relay.New(ledger.NewJSONCodec(entrySubscriptions...)),
	)

	e.POST("/projections/statements/v1", hf(NewConsoleStatementProjection()))

	log.Fatal(e.Start(":8181"))
}

var entrySubscriptions = []any{
	account.AccountOpened{},
	account.DepositMade{},
	account.WithdrawalMade{},
}

// NewConsoleStatementProjection constructs an example projection that
// prints pushed statement lines to the console
func NewConsoleStatementProjection() ledger.Projection {
	return func(tx ledger.StoredTransaction) error {
		switch entry := tx.Entry.(type) {
		case account.AccountOpened:
			fmt.Printf("Account: #%s (%s) | Holder: <%s>\n",
				entry.AccountID, entry.Kind, entry.Holder)

		case account.DepositMade:
			fmt.Printf("Account: #%s | Deposited: %d\n", entry.AccountID, entry.Amount)

		case account.WithdrawalMade:
			fmt.Printf("Account: #%s | Withdrawn: %d\n", entry.AccountID, entry.Amount)

		default:
			fmt.Println("not interested in this entry")
		}

		return nil
	}
}
