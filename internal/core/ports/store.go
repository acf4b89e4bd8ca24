package ports

// StateStore is a durable key-value store scoped to a single project.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StateStore interface {
	// Get returns the value stored under scope and key.
	// Returns "", nil if nothing was stored.
	Get(scope, key string) (string, error)

	// Put overwrites the value stored under scope and key.
	Put(scope, key, value string) error

	// Close releases the underlying resources.
	Close() error
}
