package ledger_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/aneshas/ledger"
)

type AnotherEntry struct {
	Smth string
}

func TestShouldDecodeEncodedEntry(t *testing.T) {
	c := ledger.NewJSONCodec(SomeEntry{}, AnotherEntry{})

	encodeDecode(t, c, SomeEntry{
		Account: "some-account",
		Amount:  100,
	})

	encodeDecode(t, c, AnotherEntry{
		Smth: "foo",
	})
}

func TestShouldFailToDecodeUnregisteredEntryType(t *testing.T) {
	c := ledger.NewJSONCodec(SomeEntry{})

	_, err := c.Decode(&ledger.EncodedTx{
		Data: "{}",
		Type: "AnotherEntry",
	})

	if !errors.Is(err, ledger.ErrTypeNotRegistered) {
		t.Fatalf("should fail with ErrTypeNotRegistered, got: %v", err)
	}
}

func encodeDecode(t *testing.T, c ledger.Codec, entry any) {
	t.Helper()

	encoded, err := c.Encode(entry)
	if err != nil {
		t.Fatalf("%v", err)
	}

	decoded, err := c.Decode(encoded)
	if err != nil {
		t.Fatalf("%v", err)
	}

	if !reflect.DeepEqual(entry, decoded) {
		t.Fatalf("entry not decoded. want: %#v, got: %#v", entry, decoded)
	}
}
