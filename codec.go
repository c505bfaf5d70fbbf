package ledger

import (
	"encoding/json"
	"errors"
	"reflect"
)

// ErrTypeNotRegistered is returned by JSONCodec upon decoding a transaction
// entry whose type has not been registered with the codec
var ErrTypeNotRegistered = errors.New("transaction entry type not registered")

// NewJSONCodec constructs a json codec with provided entry types registered
func NewJSONCodec(entries ...any) *JSONCodec {
	c := JSONCodec{
		types: make(map[string]reflect.Type),
	}

	for _, entry := range entries {
		t := reflect.TypeOf(entry)
		c.types[t.Name()] = t
	}

	return &c
}

// JSONCodec provides default json Codec implementation
// It will marshal and unmarshal transaction entries to/from json and
// store the entry type name alongside
type JSONCodec struct {
	types map[string]reflect.Type
}

// Encode marshals an incoming transaction entry to its json representation
func (c *JSONCodec) Encode(entry any) (*EncodedTx, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}

	return &EncodedTx{
		Type: reflect.TypeOf(entry).Name(),
		Data: string(data),
	}, nil
}

// Decode unmarshals an incoming transaction entry to its registered go type
func (c *JSONCodec) Decode(tx *EncodedTx) (any, error) {
	t, ok := c.types[tx.Type]
	if !ok {
		return nil, ErrTypeNotRegistered
	}

	v := reflect.New(t)

	err := json.Unmarshal([]byte(tx.Data), v.Interface())
	if err != nil {
		return nil, err
	}

	return v.Elem().Interface(), nil
}
