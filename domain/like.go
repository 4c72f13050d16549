package domain

import "context"

// Like is representing a like edge: UserID marked PostID as liked.
// Every like is mirrored into the user's Likes collection.
type Like struct {
	ID     string
	PostID string
	UserID string
}

// LikeFilter selects likes. Zero fields are ignored.
type LikeFilter struct {
	PostID string
	UserID string
}

// LikeRepository defines the contract for like edge persistence.
type LikeRepository interface {
	// Create returns ErrConflict when the (PostID, UserID) pair already exists.
	Create(ctx context.Context, l *Like) error
	FindByID(ctx context.Context, id string) (Like, error)
	FindOne(ctx context.Context, f LikeFilter) (Like, error)
	FindMany(ctx context.Context, f LikeFilter) ([]Like, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	DeleteMany(ctx context.Context, f LikeFilter) (int64, error)
}
