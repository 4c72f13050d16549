package mysql_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/internal/database"
	"github.com/Guyuepp/fritter/internal/repository/mysql"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := mysql.NewUserRepository(setupTestDB(t))

	u := domain.User{Username: "Alice", Password: "hash", JoinedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, &u))
	assert.NotEmpty(t, u.ID)

	t.Run("find by username ignores case", func(t *testing.T) {
		got, err := repo.FindOne(ctx, domain.UserFilter{Username: "  aLiCe "})
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.Equal(t, "Alice", got.Username)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		dup := domain.User{Username: "ALICE", Password: "x", JoinedAt: time.Now()}
		assert.Error(t, repo.Create(ctx, &dup))
	})

	t.Run("missing user is not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NotErrorIs(t, err, domain.ErrStoreFailure)
	})

	t.Run("update", func(t *testing.T) {
		name := "alice2"
		got, err := repo.UpdateByID(ctx, u.ID, domain.UserPatch{Username: &name})
		require.NoError(t, err)
		assert.Equal(t, "alice2", got.Username)

		_, err = repo.UpdateByID(ctx, "nope", domain.UserPatch{Username: &name})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		ok, err := repo.DeleteByID(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.DeleteByID(ctx, u.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestPostRepositoryOrdering(t *testing.T) {
	ctx := context.Background()
	repo := mysql.NewPostDBRepository(setupTestDB(t))

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mk := func(author string, at time.Time) domain.Post {
		content := faker.Sentence()
		p := domain.Post{AuthorID: author, Content: content, OriginalContent: content, CreatedAt: at, ModifiedAt: at}
		require.NoError(t, repo.Create(ctx, &p))
		return p
	}

	first := mk("a", base)
	second := mk("a", base) // same timestamp, inserted later
	newest := mk("b", base.Add(time.Minute))
	mk("c", base.Add(time.Hour))

	res, err := repo.FindMany(ctx, domain.PostFilter{AuthorIDs: []string{"a", "b"}})
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, newest.ID, res[0].ID)
	assert.Equal(t, first.ID, res[1].ID)
	assert.Equal(t, second.ID, res[2].ID)

	t.Run("empty id set matches nothing", func(t *testing.T) {
		res, err := repo.FindMany(ctx, domain.PostFilter{IDs: []string{}})
		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("update keeps original content", func(t *testing.T) {
		content := "edited"
		at := base.Add(2 * time.Hour)
		got, err := repo.UpdateByID(ctx, first.ID, domain.PostPatch{Content: &content, ModifiedAt: &at})
		require.NoError(t, err)
		assert.Equal(t, "edited", got.Content)
		assert.Equal(t, first.OriginalContent, got.OriginalContent)
		assert.True(t, got.ModifiedAt.Equal(at))
	})

	t.Run("fetch ids pages in insertion order", func(t *testing.T) {
		ids, last, err := repo.FetchIDs(ctx, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{first.ID, second.ID}, ids)

		ids, _, err = repo.FetchIDs(ctx, last, 10)
		require.NoError(t, err)
		assert.Len(t, ids, 2)
	})

	t.Run("delete many by author", func(t *testing.T) {
		n, err := repo.DeleteMany(ctx, domain.PostFilter{AuthorIDs: []string{"a"}})
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("delete many refuses an empty filter", func(t *testing.T) {
		_, err := repo.DeleteMany(ctx, domain.PostFilter{})
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	})
}

func TestFollowRepositoryInvolving(t *testing.T) {
	ctx := context.Background()
	repo := mysql.NewFollowRepository(setupTestDB(t))

	for _, f := range []domain.Follow{
		{FollowerID: "u", FollowedID: "a"},
		{FollowerID: "b", FollowedID: "u"},
		{FollowerID: "a", FollowedID: "b"},
	} {
		require.NoError(t, repo.Create(ctx, &f))
	}

	res, err := repo.FindMany(ctx, domain.FollowFilter{Involving: "u"})
	require.NoError(t, err)
	assert.Len(t, res, 2)

	n, err := repo.DeleteMany(ctx, domain.FollowFilter{Involving: "u"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = repo.FindOne(ctx, domain.FollowFilter{FollowerID: "a", FollowedID: "b"})
	assert.NoError(t, err)
}

func TestLikeRepository(t *testing.T) {
	ctx := context.Background()
	repo := mysql.NewLikeRepository(setupTestDB(t))

	l := domain.Like{PostID: "p", UserID: "u"}
	require.NoError(t, repo.Create(ctx, &l))

	got, err := repo.FindOne(ctx, domain.LikeFilter{PostID: "p", UserID: "u"})
	require.NoError(t, err)
	assert.Equal(t, l.ID, got.ID)

	_, err = repo.FindOne(ctx, domain.LikeFilter{PostID: "p", UserID: "other"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	dup := domain.Like{PostID: "p", UserID: "u"}
	assert.Error(t, repo.Create(ctx, &dup))
}

func TestCollectionRepository(t *testing.T) {
	ctx := context.Background()
	repo := mysql.NewCollectionRepository(setupTestDB(t))

	c := domain.Collection{Title: domain.LikesTitle, OwnerID: "u", Kind: domain.CollectionKindLikes}
	require.NoError(t, repo.Create(ctx, &c))
	assert.NotEmpty(t, c.ID)
	assert.Empty(t, c.Posts)
	assert.NotNil(t, c.Posts)

	t.Run("title is unique per owner", func(t *testing.T) {
		dup := domain.Collection{Title: domain.LikesTitle, OwnerID: "u"}
		assert.Error(t, repo.Create(ctx, &dup))

		other := domain.Collection{Title: domain.LikesTitle, OwnerID: "v"}
		assert.NoError(t, repo.Create(ctx, &other))
	})

	t.Run("find by kind", func(t *testing.T) {
		got, err := repo.FindOne(ctx, domain.CollectionFilter{OwnerID: "u", Kind: domain.CollectionKindLikes})
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)
		assert.True(t, got.IsSystem())
	})

	t.Run("versioned update", func(t *testing.T) {
		v := c.Version
		got, err := repo.UpdateByID(ctx, c.ID, domain.CollectionPatch{Posts: []string{"p1", "p2"}, IfVersion: &v})
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p2"}, got.Posts)
		assert.Equal(t, v+1, got.Version)

		_, err = repo.UpdateByID(ctx, c.ID, domain.CollectionPatch{Posts: []string{}, IfVersion: &v})
		assert.ErrorIs(t, err, domain.ErrStaleWrite)

		_, err = repo.UpdateByID(ctx, "missing", domain.CollectionPatch{Posts: []string{}, IfVersion: &v})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete many by owner", func(t *testing.T) {
		n, err := repo.DeleteMany(ctx, domain.CollectionFilter{OwnerID: "u"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}
