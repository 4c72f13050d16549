package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxPostLength is the maximum number of characters in a freet
	MaxPostLength = 140
)

// Post is representing the freet data struct
type Post struct {
	ID              string    // Unique identifier
	AuthorID        string    // Author user ID
	Content         string    // Live, editable text
	OriginalContent string    // Text at creation, never changes
	CreatedAt       time.Time // Creation timestamp
	ModifiedAt      time.Time // Last edit timestamp

	Author *User  // Populated by read paths that need it
	Likes  []Like // Populated by GetPost
}

// ValidatePostContent rejects blank content and content over MaxPostLength characters
func ValidatePostContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: freet content must be at least one character long", ErrBadParamInput)
	}
	if utf8.RuneCountInString(content) > MaxPostLength {
		return fmt.Errorf("%w: freet content must be no more than %d characters", ErrBadParamInput, MaxPostLength)
	}
	return nil
}

// PostFilter selects posts. Zero fields are ignored; an empty but non-nil
// slice matches nothing.
type PostFilter struct {
	IDs       []string
	AuthorIDs []string
}

// PostPatch holds the mutable post fields. OriginalContent is deliberately absent.
type PostPatch struct {
	Content    *string
	ModifiedAt *time.Time
}

// PostRepository defines the contract for post data persistence.
// FindMany returns posts ordered by ModifiedAt descending, ties in insertion order.
// FindOne and FindMany are never answered from a cache.
type PostRepository interface {
	Create(ctx context.Context, p *Post) error
	FindByID(ctx context.Context, id string) (Post, error)
	FindOne(ctx context.Context, f PostFilter) (Post, error)
	FindMany(ctx context.Context, f PostFilter) ([]Post, error)
	UpdateByID(ctx context.Context, id string, p PostPatch) (Post, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	DeleteMany(ctx context.Context, f PostFilter) (int64, error)

	// FetchIDs pages through post ids in insertion order, used to warm the bloom filter.
	FetchIDs(ctx context.Context, after int64, limit int) (ids []string, last int64, err error)
}

// PostCache caches single posts with a logical expiry.
type PostCache interface {
	// GetPost returns ErrCacheMiss when the post is not cached.
	GetPost(ctx context.Context, id string) (post Post, expired bool, err error)
	// GetPosts returns the cached subset of ids.
	GetPosts(ctx context.Context, ids []string) (map[string]Post, error)
	SetPost(ctx context.Context, p Post) error
	BatchSetPost(ctx context.Context, ps []Post) error
	DeletePost(ctx context.Context, ids ...string) error
}
