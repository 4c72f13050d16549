package domain

import "context"

// Store bundles the per-entity repositories the usecases work against.
// No repository knows about another; all cross-entity logic lives in the usecases.
type Store struct {
	Users       UserRepository
	Posts       PostRepository
	Follows     FollowRepository
	Likes       LikeRepository
	Collections CollectionRepository
}

// ConsistencyUsecase owns every cross-entity invariant: the per-user Likes
// collection, like mirroring, read-repair of collections and cascading deletes.
type ConsistencyUsecase interface {
	// CreateUser returns ErrUsernameTaken if the username exists (case-insensitive).
	CreateUser(ctx context.Context, username, password string) (User, error)
	// EnsureLikesCollection returns the system Likes collection, creating it if missing.
	EnsureLikesCollection(ctx context.Context, userID string) (Collection, error)
	// DeleteUser removes the user, their follows, collections and likes.
	// A partial cascade returns a *CascadeError; the other legs still ran.
	DeleteUser(ctx context.Context, userID string) (bool, error)

	CreatePost(ctx context.Context, authorID, content string) (Post, error)
	// DeletePost removes the post and its likes. Collections are repaired lazily.
	DeletePost(ctx context.Context, postID string) (bool, error)
	DeletePostsByAuthor(ctx context.Context, authorID string) (int64, error)

	CreateFollow(ctx context.Context, followerID, followedID string) (Follow, error)
	RemoveFollow(ctx context.Context, followerID, followedID string) error

	CreateLike(ctx context.Context, postID, userID string) (Like, error)
	RemoveLike(ctx context.Context, postID, userID string) error

	CreateCollection(ctx context.Context, title, ownerID string) (Collection, error)
	DeleteCollection(ctx context.Context, title, ownerID string) error
	AddPost(ctx context.Context, title, ownerID, postID string) (Collection, error)
	RemovePost(ctx context.Context, title, ownerID, postID string) (Collection, error)

	// Filter drops dangling post references from c and persists the result.
	Filter(ctx context.Context, c Collection) (Collection, error)
}

// QueryUsecase composes the read side.
type QueryUsecase interface {
	GetUser(ctx context.Context, userID string) (User, error)
	Feed(ctx context.Context, username string) ([]Post, error)
	PostsByAuthor(ctx context.Context, username string) ([]Post, error)
	CollectionsByOwner(ctx context.Context, username string) ([]Collection, error)
	CollectionPosts(ctx context.Context, title, ownerID string) ([]Post, error)
	GetPost(ctx context.Context, postID string) (Post, error)
	LikesByUser(ctx context.Context, username string) ([]Like, error)
	Following(ctx context.Context, username string) ([]User, error)
	Followers(ctx context.Context, username string) ([]User, error)
	// EditPost returns ErrTooManyEdits when content drifts too far from the original.
	EditPost(ctx context.Context, postID, content string) (Post, error)
}
