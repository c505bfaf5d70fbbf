// Package history provides a reusable base type for accounts whose state is
// derived from their recorded transaction history, along with a generic
// ledger backed store used to persist and rehydrate them.
package history

import (
	"fmt"
	"reflect"
)

var (
	// ErrMissingEntryHandler is returned when an account is missing an
	// On{EntryName} handler method for an applied entry
	ErrMissingEntryHandler = fmt.Errorf("missing account entry handler")

	// ErrAccountNotAPointer is returned when the supplied account is not a pointer
	ErrAccountNotAPointer = fmt.Errorf("account needs to be a pointer")

	// ErrAccountNotRehydrated is returned when an account is used before
	// being rehydrated (with the Rehydrate method)
	ErrAccountNotRehydrated = fmt.Errorf("account needs to be rehydrated")
)

// Log represents a reusable account history base type which provides
// helpers for account initialization and entry handler execution.
// Accounts embed it and implement an On{EntryName} handler method for
// every entry type they produce
type Log[T fmt.Stringer] struct {
	ID T

	version int
	pending []any

	ptr reflect.Value
}

// Rehydrate is used to construct and rehydrate the account from its
// recorded history
func (l *Log[T]) Rehydrate(accountPtr any, records ...Record) {
	l.ptr = reflect.ValueOf(accountPtr)

	if l.ptr.Kind() != reflect.Ptr {
		panic(ErrAccountNotAPointer)
	}

	for _, rec := range records {
		l.mutate(rec.Entry)

		l.version++
	}
}

// SetID sets the account id
func (l *Log[T]) SetID(id T) { l.ID = id }

// StringID returns the string representation of the account id
func (l *Log[T]) StringID() string { return l.ID.String() }

// Version returns the current version of the account (incremented every
// time the account is rehydrated with a record)
func (l *Log[T]) Version() int { return l.version }

// Pending returns uncommitted entries (produced by calling Apply)
func (l *Log[T]) Pending() []any {
	if l.pending == nil {
		return []any{}
	}

	return l.pending
}

// Apply mutates the account (calls the respective entry handler) and
// appends the entry to the pending slice, so that it can be persisted
// with Store.Save
//
// If an account produces an entry of type DepositMade it needs to have
// the following handler method implemented:
// func (a *SomeAccount) OnDepositMade(e DepositMade)
func (l *Log[T]) Apply(entries ...any) {
	if !l.ptr.IsValid() {
		panic(ErrAccountNotRehydrated)
	}

	for _, entry := range entries {
		l.mutate(entry)

		l.pending = append(l.pending, entry)
	}
}

func (l *Log[T]) mutate(entry any) {
	t := reflect.TypeOf(entry)

	h := l.ptr.MethodByName(fmt.Sprintf("On%s", t.Name()))

	if !h.IsValid() {
		panic(ErrMissingEntryHandler)
	}

	h.Call([]reflect.Value{
		reflect.ValueOf(entry),
	})
}
