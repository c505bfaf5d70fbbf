package ledger

import "time"

// Transaction represents a transaction entry that is to be appended
// to an account's ledger stream
type Transaction struct {
	Entry any

	// Optional
	ID            string
	CausationID   string
	CorrelationID string
	Meta          map[string]string
	OccurredOn    time.Time
}

// StoredTransaction holds a stored transaction entry along with its meta data
type StoredTransaction struct {
	Entry any
	Meta  map[string]string

	ID             string
	Sequence       uint64
	Type           string
	CausationID    *string
	CorrelationID  *string
	Account        string
	AccountVersion int
	OccurredOn     time.Time
}
