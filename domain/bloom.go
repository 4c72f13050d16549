package domain

import "context"

// BloomRepository is a probabilistic set of post ids.
type BloomRepository interface {
	// Add puts id into the filter
	Add(ctx context.Context, id string) error

	// Exists reports whether id may exist.
	// true: maybe exists, look it up in cache/db.
	// false: definitely never created, answer NotFound directly.
	Exists(ctx context.Context, id string) (bool, error)

	// BulkAdd adds many ids in one round trip
	BulkAdd(ctx context.Context, ids []string) error
}
