package domain

import (
	"context"
	"strings"
	"time"
)

// User represents a user entity in the system.
// A user can publish freets, follow other users, like freets and curate collections.
type User struct {
	ID       string    // Unique identifier, assigned at creation
	Username string    // Login username (unique, case-insensitive)
	Password string    // Bcrypt hashed password
	JoinedAt time.Time // Account creation timestamp
}

// NormalizeUsername returns the key used for case-insensitive username lookups.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// UserFilter selects users. Zero fields are ignored.
type UserFilter struct {
	IDs      []string
	Username string // matched case-insensitively
}

// UserPatch holds the mutable user fields. Nil fields are left untouched.
type UserPatch struct {
	Username *string
	Password *string
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// Create inserts u and backfills its ID and JoinedAt.
	// Returns ErrConflict if the username already exists.
	Create(ctx context.Context, u *User) error

	// FindByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	FindByID(ctx context.Context, id string) (User, error)

	// FindOne retrieves the first user matching f.
	// Returns ErrNotFound if none matches.
	FindOne(ctx context.Context, f UserFilter) (User, error)

	FindMany(ctx context.Context, f UserFilter) ([]User, error)

	// UpdateByID applies p and returns the updated user.
	// Returns ErrNotFound if the user doesn't exist.
	UpdateByID(ctx context.Context, id string, p UserPatch) (User, error)

	// DeleteByID reports whether a user was removed.
	DeleteByID(ctx context.Context, id string) (bool, error)

	DeleteMany(ctx context.Context, f UserFilter) (int64, error)
}
