package history

import "time"

// Record represents a single recorded entry of an account's history
type Record struct {
	ID         string
	Entry      any
	OccurredOn time.Time

	CausationID   *string
	CorrelationID *string
	Meta          map[string]string
}
