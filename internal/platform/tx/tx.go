package tx

import "context"

// Manager wraps transactional boundaries for multi-step store operations.
// Implementations carry the transaction in the context so stores observe
// it without depending on a concrete driver.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

// NoopManager runs fn without a transaction. Unit tests use it when the
// fake stores are already atomic.
type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
