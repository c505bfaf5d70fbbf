package ledger_test

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"testing"
	"time"

	"github.com/aneshas/ledger"
)

type streamer struct {
	txs       []any
	err       error
	streamErr error
	noClose   bool
	delay     *time.Duration
}

func (s streamer) SubscribeAll(ctx context.Context, opts ...ledger.SubAllOpt) (ledger.Subscription, error) {
	if s.err != nil {
		return ledger.Subscription{}, s.err
	}

	sub := ledger.Subscription{
		Err:          make(chan error, 1),
		Transactions: make(chan ledger.StoredTransaction),
	}

	go func() {
		if s.delay != nil {
			time.Sleep(*s.delay)
		}

		for _, tx := range s.txs {
			sub.Transactions <- ledger.StoredTransaction{
				Entry: tx,
			}

			if s.streamErr != nil {
				sub.Err <- s.streamErr
				continue
			}

			sub.Err <- io.EOF
		}

		if !s.noClose {
			sub.Err <- ledger.ErrSubscriptionClosedByClient
		}
	}()

	return sub, nil
}

func TestShouldProjectTransactionsToProjections(t *testing.T) {
	txs := []any{
		SomeEntry{Account: "acc-1", Amount: 100},
		SomeEntry{Account: "acc-2", Amount: 200},
		SomeEntry{Account: "acc-3", Amount: 300},
	}

	s := streamer{
		txs: txs,
	}

	p := ledger.NewProjector(s)

	var got []any
	var anotherGot []any

	p.Add(
		func(tx ledger.StoredTransaction) error {
			got = append(got, tx.Entry)

			return nil
		},
		func(tx ledger.StoredTransaction) error {
			anotherGot = append(anotherGot, tx.Entry)

			return nil
		},
	)

	p.Run(context.TODO())

	if !reflect.DeepEqual(got, txs) ||
		!reflect.DeepEqual(anotherGot, txs) {
		t.Fatal("all projections should have received all transactions")
	}
}

func TestShouldRetryAndRestartIfProjectionErrorsOut(t *testing.T) {
	txs := []any{
		SomeEntry{Account: "acc-1", Amount: 100},
	}

	s := streamer{
		txs: txs,
	}

	p := ledger.NewProjector(s)

	var got []any

	var times int

	p.Add(
		func(tx ledger.StoredTransaction) error {
			if times < 3 {
				times++
				return fmt.Errorf("some transient error")
			}

			got = append(got, tx.Entry)

			return nil
		},
	)

	p.Run(context.TODO())

	if !reflect.DeepEqual(got, txs) {
		t.Fatal("projection should have caught up after erroring out")
	}
}

func TestShouldRetrySubscriptionIfProjectionFailsToSubscribe(t *testing.T) {
	someErr := fmt.Errorf("some terminal error")

	s := streamer{
		err: someErr,
	}

	p := ledger.NewProjector(s)

	p.Add(
		func(tx ledger.StoredTransaction) error {
			return nil
		},
	)

	p.Run(context.TODO())
}

func TestShouldExitIfContextIsCanceled(t *testing.T) {
	txs := []any{
		SomeEntry{Account: "acc-1", Amount: 100},
	}

	s := streamer{
		txs:     txs,
		noClose: true,
	}

	p := ledger.NewProjector(s)

	p.Add(
		func(tx ledger.StoredTransaction) error {
			return nil
		},
		func(tx ledger.StoredTransaction) error {
			return nil
		},
	)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)

	defer cancel()

	p.Run(ctx)
}

func TestShouldContinueProjectingIfStreamingErrorOccurs(t *testing.T) {
	txs := []any{
		SomeEntry{Account: "acc-1", Amount: 100},
		SomeEntry{Account: "acc-2", Amount: 200},
		SomeEntry{Account: "acc-3", Amount: 300},
	}

	s := streamer{
		txs:       txs,
		streamErr: fmt.Errorf("some error"),
	}

	p := ledger.NewProjector(s)

	var got []any

	p.Add(
		func(tx ledger.StoredTransaction) error {
			got = append(got, tx.Entry)

			return nil
		},
	)

	p.Run(context.TODO())

	if !reflect.DeepEqual(got, txs) {
		t.Fatal("projection should have caught up after erroring out")
	}
}

func TestFlushAfterShouldFlushPeriodically(t *testing.T) {
	var flushed int

	p := ledger.FlushAfter(
		func(tx ledger.StoredTransaction) error {
			return nil
		},
		func() error {
			flushed++

			return nil
		},
		50*time.Millisecond,
	)

	_ = p(ledger.StoredTransaction{})

	time.Sleep(200 * time.Millisecond)

	_ = p(ledger.StoredTransaction{})

	if flushed == 0 {
		t.Fatal("projection should have been flushed")
	}
}
