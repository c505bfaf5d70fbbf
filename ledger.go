// Package ledger provides a simple light-weight append-only account
// transaction ledger backed by sqlite or postgres.
// Apart from the ledger itself, mechanisms for building statement
// projections and working with event sourced accounts are provided
// (see history and account packages).
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	// ErrNoSuchAccount indicates that no transactions exist for the requested account
	ErrNoSuchAccount = errors.New("account not found")

	// ErrConflict indicates that a transaction with the expected account version
	// has already been recorded (optimistic concurrency check failed)
	ErrConflict = errors.New("optimistic concurrency check failed: account version exists")

	// ErrSubscriptionClosedByClient is produced by sub.Err if client cancels the subscription using sub.Close()
	ErrSubscriptionClosedByClient = errors.New("subscription closed by client")
)

// EncodedTx represents an encoded transaction entry used by a specific codec implementation
type EncodedTx struct {
	Data string
	Type string
}

// Codec is used by the ledger in order to correctly marshal
// and unmarshal transaction entry types
type Codec interface {
	Encode(any) (*EncodedTx, error)
	Decode(*EncodedTx) (any, error)
}

// New constructs a new ledger
// c - a specific codec implementation (see bundled JSONCodec)
func New(c Codec, opts ...Option) (*Ledger, error) {
	if c == nil {
		return nil, fmt.Errorf("codec implementation must be provided")
	}

	var cfg Cfg

	for _, opt := range opts {
		cfg = opt(cfg)
	}

	if cfg.PostgresDSN == "" && cfg.SQLitePath == "" {
		return nil, fmt.Errorf("either postgres dsn or sqlite path must be provided")
	}

	var dial gorm.Dialector

	if cfg.PostgresDSN != "" {
		dial = postgres.Open(cfg.PostgresDSN)
	}

	if cfg.SQLitePath != "" {
		dial = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return &Ledger{
		db:    db,
		codec: c,
	}, db.AutoMigrate(&gormTransaction{})
}

// Cfg represents ledger configuration
type Cfg struct {
	PostgresDSN string
	SQLitePath  string
}

// Option represents ledger configuration option
type Option func(Cfg) Cfg

// WithPostgresDB is a ledger option that can be used to configure
// the ledger to use postgres as a backing storage (pgx driver)
func WithPostgresDB(dsn string) Option {
	return func(cfg Cfg) Cfg {
		cfg.PostgresDSN = dsn

		return cfg
	}
}

// WithSQLiteDB is a ledger option that can be used to configure
// the ledger to use sqlite as a backing storage
func WithSQLiteDB(path string) Option {
	return func(cfg Cfg) Cfg {
		cfg.SQLitePath = path

		return cfg
	}
}

// Ledger represents a sql backed append-only account transaction ledger
type Ledger struct {
	db    *gorm.DB
	codec Codec
}

// Close should be called as a part of cleanup process
// in order to close the underlying sql connection
func (l *Ledger) Close() error {
	sqlDB, err := l.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

type gormTransaction struct {
	ID             string `gorm:"unique"`
	Sequence       uint64 `gorm:"autoIncrement;primaryKey"`
	Type           string
	Data           string
	Meta           *string
	CausationID    *string
	CorrelationID  *string
	Account        string    `gorm:"index:idx_optimistic_check,unique;index"`
	AccountVersion int       `gorm:"index:idx_optimistic_check,unique"`
	OccurredOn     time.Time `gorm:"autoCreateTime"`
}

// TableName returns gorm table name
func (gt *gormTransaction) TableName() string { return "ledger_transaction" }

const (
	// InitialAccountVersion can be used as an initial expectedVer for
	// accounts with no recorded transactions (as an argument to Append)
	InitialAccountVersion int = 0
)

// Append will encode provided transaction entries and try to append them to
// the indicated account's stream. If the account has no transactions yet, its
// stream will be created. Otherwise an optimistic concurrency check is
// performed using a compound key (account-expectedVer).
// expectedVer should be InitialAccountVersion for new accounts and the latest
// recorded account version for existing ones, otherwise ErrConflict is returned
func (l *Ledger) Append(
	ctx context.Context,
	account string,
	expectedVer int,
	txs []Transaction) error {

	if len(account) == 0 {
		return fmt.Errorf("account must be provided")
	}

	if expectedVer < InitialAccountVersion {
		return fmt.Errorf("expected version cannot be less than 0")
	}

	if len(txs) == 0 {
		return nil
	}

	toSave := make([]gormTransaction, len(txs))

	for i, tx := range txs {
		encoded, err := l.codec.Encode(tx.Entry)
		if err != nil {
			return err
		}

		expectedVer++

		record := gormTransaction{
			ID:             tx.ID,
			Type:           encoded.Type,
			Data:           encoded.Data,
			Account:        account,
			AccountVersion: expectedVer,
			OccurredOn:     tx.OccurredOn,
		}

		if tx.CorrelationID != "" {
			record.CorrelationID = &tx.CorrelationID
		}

		if tx.CausationID != "" {
			record.CausationID = &tx.CausationID
		}

		if tx.Meta != nil {
			m, err := json.Marshal(tx.Meta)
			if err != nil {
				return err
			}

			ms := string(m)

			record.Meta = &ms
		}

		if record.ID == "" {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}

			record.ID = id.String()
		}

		if record.OccurredOn.IsZero() {
			record.OccurredOn = time.Now().UTC()
		}

		toSave[i] = record
	}

	res := l.db.WithContext(ctx).Create(&toSave)

	err := res.Error

	if e, ok := err.(sqlite3.Error); ok && e.Code == sqlite3.ErrConstraint {
		return ErrConflict
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}

	return err
}

// SubAllConfig (configure using SubAllOpt)
type SubAllConfig struct {
	offset       int
	batchSize    int
	pollInterval time.Duration
}

// SubAllOpt represents subscribe to all transactions option
type SubAllOpt func(SubAllConfig) SubAllConfig

// WithOffset is a subscription / read all option that indicates an offset in
// the ledger from which to start reading transactions (exclusive)
func WithOffset(offset int) SubAllOpt {
	return func(cfg SubAllConfig) SubAllConfig {
		cfg.offset = offset

		return cfg
	}
}

// WithBatchSize is a subscription / read all option that specifies the read
// batch size (limit) when reading transactions from the ledger
func WithBatchSize(size int) SubAllOpt {
	return func(cfg SubAllConfig) SubAllConfig {
		cfg.batchSize = size

		return cfg
	}
}

// WithPollInterval is a subscription / read all option that specifies the
// polling interval of the underlying sql database
func WithPollInterval(d time.Duration) SubAllOpt {
	return func(cfg SubAllConfig) SubAllConfig {
		cfg.pollInterval = d

		return cfg
	}
}

// Subscription represents a ReadAll subscription that is used for streaming
// incoming transactions
type Subscription struct {
	// Err chan will produce any errors that might occur while reading transactions
	// If Err produces io.EOF, that indicates that we have caught up
	// with the ledger and that there are no more transactions to read, after which
	// the subscription itself will continue polling the ledger for new transactions
	// each time we empty the Err channel. This means that reading from Err (in
	// case of io.EOF) can be strategically used in order to achieve backpressure
	Err          chan error
	Transactions chan StoredTransaction

	close chan struct{}
}

// Close closes the subscription and halts the polling of the sql db
func (s Subscription) Close() {
	if s.close == nil {
		return
	}

	s.close <- struct{}{}
}

// ReadAll will read all transactions from the ledger by internally creating a
// subscription and depleting it until io.EOF is encountered
// WARNING: Use with caution as this method will read the entire ledger
// in a blocking fashion (probably best used in combination with offset option)
func (l *Ledger) ReadAll(ctx context.Context, opts ...SubAllOpt) ([]StoredTransaction, error) {
	sub, err := l.SubscribeAll(ctx, opts...)
	if err != nil {
		return nil, err
	}

	defer sub.Close()

	var txs []StoredTransaction

	for {
		select {
		case data := <-sub.Transactions:
			txs = append(txs, data)

		case err := <-sub.Err:
			if errors.Is(err, io.EOF) {
				return txs, nil
			}

			return nil, err
		}
	}
}

// SubscribeAll will create a subscription which can be used to stream all
// recorded transactions in an orderly fashion. This mechanism should mostly be
// useful for building statement projections
func (l *Ledger) SubscribeAll(ctx context.Context, opts ...SubAllOpt) (Subscription, error) {
	cfg := SubAllConfig{
		offset:       0,
		batchSize:    100,
		pollInterval: 100 * time.Millisecond,
	}

	for _, opt := range opts {
		cfg = opt(cfg)
	}

	if cfg.batchSize < 1 {
		return Subscription{}, fmt.Errorf("batch size should be at least 1")
	}

	sub := Subscription{
		Err:          make(chan error, 1),
		Transactions: make(chan StoredTransaction, cfg.batchSize),
		close:        make(chan struct{}, 1),
	}

	go func() {
		var done error

		for {
			select {
			case <-sub.close:
				sub.Err <- ErrSubscriptionClosedByClient

				return
			case <-ctx.Done():
				sub.Err <- ctx.Err()

				return
			case <-time.After(cfg.pollInterval):
				// Make sure client reads all buffered transactions
				if done != nil {
					if len(sub.Transactions) != 0 {
						break
					}

					sub.Err <- done

					return
				}

				var txs []gormTransaction

				if err := l.db.
					Where("sequence > ?", cfg.offset).
					Order("sequence asc").
					Limit(cfg.batchSize).
					Find(&txs).Error; err != nil {
					done = err

					break
				}

				if len(txs) == 0 {
					sub.Err <- io.EOF

					break
				}

				cfg.offset = cfg.offset + len(txs)

				decoded, err := l.decodeTransactions(txs)
				if err != nil {
					done = err

					break
				}

				for _, tx := range decoded {
					sub.Transactions <- tx
				}
			}
		}
	}()

	return sub, nil
}

// ReadAccount will read all transactions recorded for the provided account
// If there are no transactions stored for the account ErrNoSuchAccount is returned
func (l *Ledger) ReadAccount(ctx context.Context, account string) ([]StoredTransaction, error) {
	var txs []gormTransaction

	if len(account) == 0 {
		return nil, fmt.Errorf("account must be provided")
	}

	if err := l.db.
		WithContext(ctx).
		Where("account = ?", account).
		Order("sequence asc").
		Find(&txs).Error; err != nil {

		return nil, err
	}

	if len(txs) == 0 {
		return nil, ErrNoSuchAccount
	}

	return l.decodeTransactions(txs)
}

func (l *Ledger) decodeTransactions(txs []gormTransaction) ([]StoredTransaction, error) {
	out := make([]StoredTransaction, len(txs))

	for i, tx := range txs {
		entry, err := l.codec.Decode(&EncodedTx{
			Data: tx.Data,
			Type: tx.Type,
		})
		if err != nil {
			return nil, err
		}

		var meta map[string]string

		if tx.Meta != nil {
			err = json.Unmarshal([]byte(*tx.Meta), &meta)
			if err != nil {
				return nil, err
			}
		}

		out[i] = StoredTransaction{
			Entry:          entry,
			Meta:           meta,
			ID:             tx.ID,
			Sequence:       tx.Sequence,
			Type:           tx.Type,
			CausationID:    tx.CausationID,
			CorrelationID:  tx.CorrelationID,
			Account:        tx.Account,
			AccountVersion: tx.AccountVersion,
			OccurredOn:     tx.OccurredOn,
		}
	}

	return out, nil
}
