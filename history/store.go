package history

import (
	"context"
	"errors"

	"github.com/aneshas/ledger"
)

// ErrAccountNotFound is returned by the store when no history
// exists for the requested account
var ErrAccountNotFound = errors.New("account not found")

// Ledger represents the account transaction ledger
type Ledger interface {
	Append(ctx context.Context, account string, expectedVer int, txs []ledger.Transaction) error
	ReadAccount(ctx context.Context, account string) ([]ledger.StoredTransaction, error)
}

// Keeper is implemented by any account type that keeps its history
// by embedding Log
type Keeper interface {
	StringID() string
	Version() int
	Pending() []any
	Rehydrate(accountPtr any, records ...Record)
}

// NewStore constructs a new history backed account store
func NewStore[T Keeper](l Ledger) *Store[T] {
	return &Store[T]{
		ledger: l,
	}
}

// Store persists accounts by appending their pending entries to the
// ledger and rehydrates them by replaying their recorded history
type Store[T Keeper] struct {
	ledger Ledger
}

// Save appends the account's pending entries to the ledger
func (s *Store[T]) Save(ctx context.Context, account T) error {
	var txs []ledger.Transaction

	for _, entry := range account.Pending() {
		txs = append(txs, ledger.Transaction{
			Entry: entry,
		})
	}

	return s.ledger.Append(
		ctx,
		account.StringID(),
		account.Version(),
		txs,
	)
}

// ByID reads the recorded history of the account identified by id and
// rehydrates the supplied (zero valued) account with it
func (s *Store[T]) ByID(ctx context.Context, id string, account T) error {
	txs, err := s.ledger.ReadAccount(ctx, id)
	if err != nil {
		if errors.Is(err, ledger.ErrNoSuchAccount) {
			return ErrAccountNotFound
		}

		return err
	}

	var records []Record

	for _, tx := range txs {
		records = append(records, Record{
			ID:            tx.ID,
			Entry:         tx.Entry,
			OccurredOn:    tx.OccurredOn,
			CausationID:   tx.CausationID,
			CorrelationID: tx.CorrelationID,
			Meta:          tx.Meta,
		})
	}

	account.Rehydrate(account, records...)

	return nil
}
