package dto

// Entry is a config key with its effective value. IsDefault marks a
// value that comes from the registry rather than the store.
type Entry struct {
	Key       string
	Value     string
	Kind      string
	IsDefault bool
}
