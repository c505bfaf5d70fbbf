// Package relay implements a push based projection feed.
//
// An external data relay (eg. a cdc pipeline tailing the ledger table)
// delivers stored transactions over http as json payloads, and this package
// decodes them and hands them to regular ledger projections, responding
// with an appropriate delivery policy (success, retry, keep going)
package relay

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/aneshas/ledger"
	"github.com/relvacode/iso8601"
)

var (
	// ErrNoRetry is the error returned when we don't want the relay to
	// retry delivering the transaction in case of a projection error.
	// This is also the default behavior when an error is returned but this
	// error can be used if we also want to wrap the error eg. for logging
	ErrNoRetry = errors.New("no retry")

	// ErrKeepGoing is the error returned when we want the relay to keep
	// delivering subsequent transactions in case of a projection error
	ErrKeepGoing = errors.New("keep it going")
)

// SuccessResp is the success delivery policy response
var SuccessResp = `{
  "result": {
    "success": {}
  }
}`

// RetryResp is the retry delivery policy response
var RetryResp = `{
  "result": {
    "error": {
      "policy": "must_retry",
      "class": "must retry it",
      "description": "must retry it"
    }
  }
}`

// KeepGoingResp is the keep going delivery policy response
var KeepGoingResp = `{
  "result": {
    "error": {
      "policy": "keep_going",
      "class": "keep it going",
      "description": "keep it going"
    }
  }
}`

// New constructs a new Relay projection handler
func New(dec Decoder) *Relay {
	return &Relay{dec: dec}
}

// Decoder is an interface for decoding transaction entries
type Decoder interface {
	Decode(*ledger.EncodedTx) (any, error)
}

// Relay is a projection handler for pushed ledger transactions
type Relay struct {
	dec Decoder
}

// Req is the relay projection request
type Req struct {
	Payload Payload `json:"payload"`
}

// Payload is the relay projection request payload
type Payload struct {
	Entry          string  `json:"data"`
	Meta           *string `json:"meta"`
	ID             string  `json:"id"`
	Sequence       uint64  `json:"sequence"`
	Type           string  `json:"type"`
	CausationID    *string `json:"causation_id"`
	CorrelationID  *string `json:"correlation_id"`
	Account        string  `json:"account"`
	AccountVersion int     `json:"account_version"`
	OccurredOn     string  `json:"occurred_on"`
}

// Project projects a pushed transaction to the provided projection
// Transactions with unregistered entry types are acknowledged and skipped
func (a *Relay) Project(_ context.Context, projection ledger.Projection, data []byte) error {
	var req Req

	err := json.Unmarshal(data, &req)
	if err != nil {
		return err
	}

	decoded, err := a.dec.Decode(&ledger.EncodedTx{
		Data: req.Payload.Entry,
		Type: req.Payload.Type,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrTypeNotRegistered) {
			return nil
		}

		return err
	}

	occurredOn, err := iso8601.ParseString(req.Payload.OccurredOn)
	if err != nil {
		return err
	}

	var meta map[string]string

	if req.Payload.Meta != nil {
		err = json.Unmarshal([]byte(*req.Payload.Meta), &meta)
		if err != nil {
			return err
		}
	}

	return projection(ledger.StoredTransaction{
		Entry:          decoded,
		Meta:           meta,
		ID:             req.Payload.ID,
		Sequence:       req.Payload.Sequence,
		Type:           req.Payload.Type,
		CausationID:    req.Payload.CausationID,
		CorrelationID:  req.Payload.CorrelationID,
		Account:        req.Payload.Account,
		AccountVersion: req.Payload.AccountVersion,
		OccurredOn:     occurredOn,
	})
}
