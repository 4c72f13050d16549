package query_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/domain/mocks"
	"github.com/Guyuepp/fritter/internal/database"
	"github.com/Guyuepp/fritter/internal/metrics"
	"github.com/Guyuepp/fritter/internal/repository/mysql"
	"github.com/Guyuepp/fritter/internal/usecase/consistency"
	"github.com/Guyuepp/fritter/internal/usecase/query"
)

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Minute)
	return c.now
}

// frozenClock returns the same instant every time
type frozenClock struct{ t time.Time }

func (c frozenClock) Now() time.Time { return c.t }

type fixture struct {
	store domain.Store
	cons  *consistency.Service
	query *query.Service
}

func newFixture(t *testing.T, clock domain.Clock) fixture {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	store := domain.Store{
		Users:       mysql.NewUserRepository(db),
		Posts:       mysql.NewPostDBRepository(db),
		Follows:     mysql.NewFollowRepository(db),
		Likes:       mysql.NewLikeRepository(db),
		Collections: mysql.NewCollectionRepository(db),
	}
	cons := consistency.NewService(store, clock, nil)
	return fixture{
		store: store,
		cons:  cons,
		query: query.NewService(store, cons, clock, nil),
	}
}

func (f fixture) user(t *testing.T, name string) domain.User {
	t.Helper()
	u, err := f.cons.CreateUser(context.TODO(), name, faker.Password())
	require.NoError(t, err)
	return u
}

func (f fixture) post(t *testing.T, authorID string) domain.Post {
	t.Helper()
	p, err := f.cons.CreatePost(context.TODO(), authorID, faker.Word())
	require.NoError(t, err)
	return p
}

func ids(posts []domain.Post) []string {
	res := make([]string, len(posts))
	for i, p := range posts {
		res[i] = p.ID
	}
	return res
}

func TestFeedUnion(t *testing.T) {
	f := newFixture(t, &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	ctx := context.TODO()
	u := f.user(t, "u")
	a := f.user(t, "a")
	b := f.user(t, "b")
	c := f.user(t, "c")

	_, err := f.cons.CreateFollow(ctx, u.ID, a.ID)
	require.NoError(t, err)
	_, err = f.cons.CreateFollow(ctx, u.ID, b.ID)
	require.NoError(t, err)
	_, err = f.cons.CreateFollow(ctx, c.ID, u.ID)
	require.NoError(t, err)

	pa := f.post(t, a.ID)
	pc := f.post(t, c.ID)
	pu := f.post(t, u.ID)
	pb := f.post(t, b.ID)

	feed, err := f.query.Feed(ctx, "U")
	require.NoError(t, err)
	assert.Equal(t, []string{pb.ID, pu.ID, pa.ID}, ids(feed), "newest first")
	assert.NotContains(t, ids(feed), pc.ID)
	for _, p := range feed {
		require.NotNil(t, p.Author)
		assert.Equal(t, p.AuthorID, p.Author.ID)
	}

	t.Run("an edit moves a post to the top", func(t *testing.T) {
		_, err := f.query.EditPost(ctx, pa.ID, pa.OriginalContent+"!")
		require.NoError(t, err)
		feed, err := f.query.Feed(ctx, "u")
		require.NoError(t, err)
		assert.Equal(t, []string{pa.ID, pb.ID, pu.ID}, ids(feed))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.query.Feed(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestFeedTiesKeepInsertionOrder(t *testing.T) {
	f := newFixture(t, frozenClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	ctx := context.TODO()
	u := f.user(t, "u")

	var want []string
	for range 5 {
		want = append(want, f.post(t, u.ID).ID)
	}

	feed, err := f.query.Feed(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, want, ids(feed))
}

func TestPostsByAuthor(t *testing.T) {
	f := newFixture(t, &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	ctx := context.TODO()
	a := f.user(t, "a")
	b := f.user(t, "b")
	p1 := f.post(t, a.ID)
	f.post(t, b.ID)
	p2 := f.post(t, a.ID)

	posts, err := f.query.PostsByAuthor(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{p2.ID, p1.ID}, ids(posts))
	assert.Equal(t, "a", posts[0].Author.Username)
}

func TestCollectionsByOwnerRepairs(t *testing.T) {
	f := newFixture(t, &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	ctx := context.TODO()
	u := f.user(t, "u")
	p1 := f.post(t, u.ID)
	p2 := f.post(t, u.ID)

	_, err := f.cons.CreateCollection(ctx, "keep", u.ID)
	require.NoError(t, err)
	_, err = f.cons.AddPost(ctx, "keep", u.ID, p1.ID)
	require.NoError(t, err)
	_, err = f.cons.AddPost(ctx, "keep", u.ID, p2.ID)
	require.NoError(t, err)
	_, err = f.cons.CreateLike(ctx, p1.ID, u.ID)
	require.NoError(t, err)

	_, err = f.cons.DeletePost(ctx, p1.ID)
	require.NoError(t, err)

	colls, err := f.query.CollectionsByOwner(ctx, "u")
	require.NoError(t, err)
	require.Len(t, colls, 2)
	assert.Equal(t, domain.LikesTitle, colls[0].Title, "insertion order")
	assert.Empty(t, colls[0].Posts)
	assert.Equal(t, []string{p2.ID}, colls[1].Posts)
}

func TestCollectionPosts(t *testing.T) {
	f := newFixture(t, &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	ctx := context.TODO()
	u := f.user(t, "u")
	p1 := f.post(t, u.ID)
	p2 := f.post(t, u.ID)
	p3 := f.post(t, u.ID)

	_, err := f.cons.CreateCollection(ctx, "c", u.ID)
	require.NoError(t, err)
	for _, id := range []string{p3.ID, p1.ID, p2.ID} {
		_, err = f.cons.AddPost(ctx, "c", u.ID, id)
		require.NoError(t, err)
	}
	_, err = f.cons.DeletePost(ctx, p1.ID)
	require.NoError(t, err)

	posts, err := f.query.CollectionPosts(ctx, "c", u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{p3.ID, p2.ID}, ids(posts), "collection order")

	_, err = f.query.CollectionPosts(ctx, "missing", u.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetPostPopulated(t *testing.T) {
	f := newFixture(t, &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	ctx := context.TODO()
	a := f.user(t, "a")
	b := f.user(t, "b")
	p := f.post(t, a.ID)
	_, err := f.cons.CreateLike(ctx, p.ID, b.ID)
	require.NoError(t, err)

	got, err := f.query.GetPost(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Author)
	assert.Equal(t, "a", got.Author.Username)
	require.Len(t, got.Likes, 1)
	assert.Equal(t, b.ID, got.Likes[0].UserID)

	_, err = f.query.GetPost(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	t.Run("author deleted", func(t *testing.T) {
		_, err := f.cons.DeleteUser(ctx, a.ID)
		require.NoError(t, err)
		got, err := f.query.GetPost(ctx, p.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Author)
	})
}

func TestFollowingFollowersLikes(t *testing.T) {
	f := newFixture(t, &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	ctx := context.TODO()
	a := f.user(t, "a")
	b := f.user(t, "b")
	c := f.user(t, "c")

	_, err := f.cons.CreateFollow(ctx, a.ID, b.ID)
	require.NoError(t, err)
	_, err = f.cons.CreateFollow(ctx, c.ID, b.ID)
	require.NoError(t, err)

	following, err := f.query.Following(ctx, "a")
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, b.ID, following[0].ID)

	followers, err := f.query.Followers(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, followers, 2)

	none, err := f.query.Followers(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, none)

	p := f.post(t, b.ID)
	_, err = f.cons.CreateLike(ctx, p.ID, a.ID)
	require.NoError(t, err)
	likes, err := f.query.LikesByUser(ctx, "a")
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, p.ID, likes[0].PostID)
}

func TestEditPost(t *testing.T) {
	f := newFixture(t, &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	ctx := context.TODO()
	u := f.user(t, "u")
	original := strings.Repeat("a", domain.MaxPostLength)
	p, err := f.cons.CreatePost(ctx, u.ID, original)
	require.NoError(t, err)

	substitute := func(n int) string {
		r := []rune(original)
		for i := range n {
			r[i*7] = 'b'
		}
		return string(r)
	}

	edited, err := f.query.EditPost(ctx, p.ID, substitute(9))
	require.NoError(t, err)
	assert.Equal(t, substitute(9), edited.Content)
	assert.Equal(t, original, edited.OriginalContent)
	assert.True(t, edited.ModifiedAt.After(p.ModifiedAt))

	_, err = f.query.EditPost(ctx, p.ID, substitute(10))
	assert.ErrorIs(t, err, domain.ErrTooManyEdits)

	t.Run("drift is measured from the original", func(t *testing.T) {
		// each step is small, but the total reaches 10
		_, err := f.query.EditPost(ctx, p.ID, substitute(9))
		require.NoError(t, err)
		_, err = f.query.EditPost(ctx, p.ID, substitute(10))
		assert.ErrorIs(t, err, domain.ErrTooManyEdits)
	})

	t.Run("invalid content", func(t *testing.T) {
		_, err := f.query.EditPost(ctx, p.ID, "")
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := f.query.EditPost(ctx, "missing", "x")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEditPostRejectionIsCounted(t *testing.T) {
	posts := new(mocks.PostRepository)
	posts.On("FindByID", mock.Anything, "p1").
		Return(domain.Post{ID: "p1", OriginalContent: "short"}, nil).Once()

	col := metrics.NewCollector("test")
	s := query.NewService(domain.Store{Posts: posts}, nil, nil, col)
	_, err := s.EditPost(context.TODO(), "p1", "something else entirely")
	assert.ErrorIs(t, err, domain.ErrTooManyEdits)
	assert.Equal(t, float64(1), testutil.ToFloat64(col.EditRejections))
	posts.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestCollectionsByOwnerFilterFailure(t *testing.T) {
	users := new(mocks.UserRepository)
	colls := new(mocks.CollectionRepository)
	cons := new(mocks.ConsistencyUsecase)

	users.On("FindOne", mock.Anything, domain.UserFilter{Username: "u"}).Return(domain.User{ID: "u1"}, nil).Once()
	colls.On("FindMany", mock.Anything, domain.CollectionFilter{OwnerID: "u1"}).
		Return([]domain.Collection{{ID: "c1", Posts: []string{"p"}}}, nil).Once()
	cons.On("Filter", mock.Anything, mock.Anything).
		Return(domain.Collection{}, domain.StoreFailure("collections.update", assert.AnError)).Once()

	s := query.NewService(domain.Store{Users: users, Collections: colls}, cons, nil, nil)
	_, err := s.CollectionsByOwner(context.TODO(), "u")
	assert.ErrorIs(t, err, domain.ErrStoreFailure)
}
