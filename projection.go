package ledger

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"time"
)

// TransactionStreamer represents a transaction stream that can be subscribed to
// This package offers Ledger as a TransactionStreamer implementation
type TransactionStreamer interface {
	SubscribeAll(context.Context, ...SubAllOpt) (Subscription, error)
}

// NewProjector constructs a Projector
func NewProjector(s TransactionStreamer) *Projector {
	return &Projector{
		streamer: s,
		logger:   log.Default(),
	}
}

// Projector is a transaction projector which will subscribe to a
// transaction stream (the ledger) and project transactions to each
// individual projection in an asynchronous manner
type Projector struct {
	streamer    TransactionStreamer
	projections []Projection
	logger      *log.Logger
}

// Projection represents a statement projection that should be able to handle
// projected transactions
type Projection func(StoredTransaction) error

// Add effectively registers a projection with the projector
// Make sure to add all of your projections before calling Run
func (p *Projector) Add(projections ...Projection) {
	p.projections = append(p.projections, projections...)
}

// Run will start the projector
func (p *Projector) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	for _, projection := range p.projections {
		wg.Add(1)

		go func(projection Projection) {
			defer wg.Done()

			for {
				sub, err := p.streamer.SubscribeAll(ctx)
				if err != nil {
					p.logErr(err)

					return
				}

				defer sub.Close()

				if err := p.run(ctx, sub, projection); err != nil {
					continue
				}

				return
			}
		}(projection)
	}

	wg.Wait()

	return nil
}

func (p *Projector) run(ctx context.Context, sub Subscription, projection Projection) error {
	for {
		select {
		case tx := <-sub.Transactions:
			err := projection(tx)
			if err != nil {
				p.logErr(err)

				return err
			}

		case err := <-sub.Err:
			if err != nil {
				if errors.Is(err, io.EOF) {
					break
				}

				if errors.Is(err, ErrSubscriptionClosedByClient) {
					return nil
				}

				p.logErr(err)
			}

		case <-ctx.Done():
			return nil
		}
	}
}

func (p *Projector) logErr(err error) {
	p.logger.Printf("projector error: %v", err)
}

// FlushAfter wraps the projection passed in and it calls
// the projection itself as new transactions come (as usual) in addition to
// calling the provided flush function periodically each time flush
// interval expires (eg. to batch statement writes)
func FlushAfter(
	p Projection,
	flush func() error,
	flushInt time.Duration) Projection {
	var err error

	work := make(chan StoredTransaction)

	go func() {
		for {
			select {
			case <-time.After(flushInt):
				err = flush()

			case w := <-work:
				err = p(w)
			}
		}
	}()

	return func(tx StoredTransaction) error {
		if err != nil {
			return err
		}

		work <- tx

		return nil
	}
}
