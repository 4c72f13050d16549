package domain

import "context"

// Follow is a directed edge: FollowerID reads FollowedID's freets in their feed.
type Follow struct {
	ID         string
	FollowerID string
	FollowedID string
}

// FollowFilter selects follows. Zero fields are ignored.
// Involving matches edges where the user is either endpoint.
type FollowFilter struct {
	FollowerID string
	FollowedID string
	Involving  string
}

// FollowRepository defines the contract for follow edge persistence.
type FollowRepository interface {
	// Create returns ErrConflict when the (FollowerID, FollowedID) pair already exists.
	Create(ctx context.Context, f *Follow) error
	FindByID(ctx context.Context, id string) (Follow, error)
	FindOne(ctx context.Context, f FollowFilter) (Follow, error)
	FindMany(ctx context.Context, f FollowFilter) ([]Follow, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	DeleteMany(ctx context.Context, f FollowFilter) (int64, error)
}
