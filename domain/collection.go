package domain

import (
	"context"
	"slices"
)

// CollectionKind tells user-named collections apart from system-managed ones.
type CollectionKind string

const (
	// CollectionKindUser is a collection created and named by its owner
	CollectionKindUser CollectionKind = "user"
	// CollectionKindLikes is the per-user system collection mirroring like edges
	CollectionKindLikes CollectionKind = "likes"

	// LikesTitle is the title of the system likes collection
	LikesTitle = "Likes"
)

// Collection is a named, owned, ordered list of post references.
// Posts may reference deleted posts until the next read-repair.
type Collection struct {
	ID      string
	Title   string
	OwnerID string
	Kind    CollectionKind
	Posts   []string
	Version int64 // bumped on every write, used for compare-and-swap
}

// IsSystem reports whether the collection is managed by the system.
func (c Collection) IsSystem() bool {
	return c.Kind == CollectionKindLikes
}

// Contains reports whether postID is referenced by the collection.
func (c Collection) Contains(postID string) bool {
	return slices.Contains(c.Posts, postID)
}

// CollectionFilter selects collections. Zero fields are ignored.
type CollectionFilter struct {
	OwnerID string
	Title   string
	Kind    CollectionKind
}

// CollectionPatch holds the mutable collection fields.
// When IfVersion is set the update only applies to that version and
// returns ErrStaleWrite otherwise.
type CollectionPatch struct {
	Title     *string
	Posts     []string
	IfVersion *int64
}

// CollectionRepository defines the contract for collection persistence.
// FindMany returns collections in insertion order.
type CollectionRepository interface {
	// Create returns ErrConflict when (Title, OwnerID) already exists.
	Create(ctx context.Context, c *Collection) error
	FindByID(ctx context.Context, id string) (Collection, error)
	FindOne(ctx context.Context, f CollectionFilter) (Collection, error)
	FindMany(ctx context.Context, f CollectionFilter) ([]Collection, error)
	UpdateByID(ctx context.Context, id string, p CollectionPatch) (Collection, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	DeleteMany(ctx context.Context, f CollectionFilter) (int64, error)
}
