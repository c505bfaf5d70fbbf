package testutil

import (
	"encoding/json"
	"testing"

	"github.com/aneshas/ledger/relay"
)

// TestEntry is a test transaction entry
type TestEntry struct {
	Foo string
	Bar string
}

// Entry is an instance of a test transaction entry
var Entry = TestEntry{
	Foo: "foo",
	Bar: "bar",
}

// RelayPayload is a test payload
var RelayPayload = relay.Payload{
	Entry:          EntryData(),
	Meta:           nil,
	ID:             "tx-id",
	Sequence:       1,
	Type:           "TestEntry",
	CausationID:    nil,
	CorrelationID:  nil,
	Account:        "account-id",
	AccountVersion: 1,
	OccurredOn:     "2024-10-12T20:07:22.436271+00",
}

// EntryData returns the marshaled test entry
func EntryData() string {
	data, err := json.Marshal(Entry)
	if err != nil {
		panic(err)
	}

	return string(data)
}

// Payload creates a relay request payload for testing
func Payload(t *testing.T, p relay.Payload) []byte {
	t.Helper()

	data, err := json.Marshal(relay.Req{
		Payload: p,
	})
	if err != nil {
		t.Fatal(err)
	}

	return data
}
