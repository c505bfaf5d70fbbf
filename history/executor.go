package history

import (
	"context"
)

// NewExecutor creates a new executor for the given account store
func NewExecutor[T Keeper](store *Store[T]) Executor[T] {
	return func(ctx context.Context, account T, f func(ctx context.Context) error) error {
		return Exec(ctx, store, account, f)
	}
}

// Executor is a helper function which loads an account from the store,
// executes a function against it and saves the account back to the store
type Executor[T Keeper] func(ctx context.Context, account T, f func(ctx context.Context) error) error

// Exec loads an account from the store, executes a function against it
// and saves the account back to the store
func Exec[T Keeper](ctx context.Context, store *Store[T], account T, f func(ctx context.Context) error) error {
	err := store.ByID(ctx, account.StringID(), account)
	if err != nil {
		return err
	}

	err = f(ctx)
	if err != nil {
		return err
	}

	return store.Save(ctx, account)
}
