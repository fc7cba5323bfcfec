package out

import "context"

type ConfigStore interface {
	// Get returns the stored value, or apperrors.ErrNotFound when the
	// key has never been set.
	Get(ctx context.Context, key string) (string, error)

	// Set upserts the value.
	Set(ctx context.Context, key, value string) error

	// All returns every stored key-value pair.
	All(ctx context.Context) (map[string]string, error)
}
