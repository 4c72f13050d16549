package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/fritter/domain"
)

func TestStoreFailure(t *testing.T) {
	cause := errors.New("connection reset")
	err := domain.StoreFailure("posts.find_many", cause)

	assert.ErrorIs(t, err, domain.ErrStoreFailure)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "posts.find_many")
	assert.NoError(t, domain.StoreFailure("noop", nil))
}

func TestUsernameTakenIsConflict(t *testing.T) {
	assert.ErrorIs(t, domain.ErrUsernameTaken, domain.ErrConflict)
}

func TestCascadeReport(t *testing.T) {
	t.Run("all legs succeeded", func(t *testing.T) {
		r := domain.CascadeReport{Steps: []domain.CascadeStep{{Name: "follows", Deleted: 2}, {Name: "likes"}}}
		assert.Empty(t, r.Failed())
		assert.NoError(t, r.Err())
	})

	t.Run("some legs failed", func(t *testing.T) {
		r := domain.CascadeReport{Steps: []domain.CascadeStep{
			{Name: "follows", Err: domain.StoreFailure("follows.delete_many", errors.New("boom"))},
			{Name: "collections", Deleted: 1},
			{Name: "likes", Err: domain.StoreFailure("likes.delete_many", errors.New("boom"))},
		}}
		err := r.Err()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrStoreFailure)

		var cascadeErr *domain.CascadeError
		require.ErrorAs(t, err, &cascadeErr)
		assert.Len(t, cascadeErr.Failed, 2)
		assert.True(t, strings.HasPrefix(err.Error(), "cascade incomplete: follows:"))
		assert.Contains(t, err.Error(), "; likes:")
	})
}

func TestValidatePostContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"single character", "a", false},
		{"exactly the limit", strings.Repeat("x", domain.MaxPostLength), false},
		{"limit counted in characters", strings.Repeat("é", domain.MaxPostLength), false},
		{"empty", "", true},
		{"whitespace only", "  \n\t", true},
		{"over the limit", strings.Repeat("x", domain.MaxPostLength+1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidatePostContent(tt.content)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrBadParamInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "alice", domain.NormalizeUsername("  Alice "))
}
