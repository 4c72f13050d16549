package query

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/internal/editgate"
	"github.com/Guyuepp/fritter/internal/metrics"
)

// Service composes the read side from the repositories. Collections are
// always returned through the consistency Filter so reads repair them.
type Service struct {
	store       domain.Store
	consistency domain.ConsistencyUsecase
	clock       domain.Clock
	metrics     *metrics.Collector
}

var _ domain.QueryUsecase = (*Service)(nil)

// NewService will create a new query service object. m may be nil.
func NewService(store domain.Store, c domain.ConsistencyUsecase, clock domain.Clock, m *metrics.Collector) *Service {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &Service{
		store:       store,
		consistency: c,
		clock:       clock,
		metrics:     m,
	}
}

func (s *Service) userByName(ctx context.Context, username string) (domain.User, error) {
	if username == "" {
		return domain.User{}, domain.ErrBadParamInput
	}
	return s.store.Users.FindOne(ctx, domain.UserFilter{Username: username})
}

func (s *Service) GetUser(ctx context.Context, userID string) (domain.User, error) {
	if userID == "" {
		return domain.User{}, domain.ErrBadParamInput
	}
	return s.store.Users.FindByID(ctx, userID)
}

// Feed resolves the follow set once, then loads every post by the followed
// users and the user in a single query.
func (s *Service) Feed(ctx context.Context, username string) ([]domain.Post, error) {
	user, err := s.userByName(ctx, username)
	if err != nil {
		return nil, err
	}

	follows, err := s.store.Follows.FindMany(ctx, domain.FollowFilter{FollowerID: user.ID})
	if err != nil {
		return nil, err
	}
	authors := make([]string, 0, len(follows)+1)
	authors = append(authors, user.ID)
	for _, f := range follows {
		authors = append(authors, f.FollowedID)
	}

	posts, err := s.store.Posts.FindMany(ctx, domain.PostFilter{AuthorIDs: authors})
	if err != nil {
		return nil, err
	}
	return s.fillAuthors(ctx, posts)
}

func (s *Service) PostsByAuthor(ctx context.Context, username string) ([]domain.Post, error) {
	user, err := s.userByName(ctx, username)
	if err != nil {
		return nil, err
	}
	posts, err := s.store.Posts.FindMany(ctx, domain.PostFilter{AuthorIDs: []string{user.ID}})
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].Author = &user
	}
	return posts, nil
}

func (s *Service) CollectionsByOwner(ctx context.Context, username string) ([]domain.Collection, error) {
	user, err := s.userByName(ctx, username)
	if err != nil {
		return nil, err
	}
	colls, err := s.store.Collections.FindMany(ctx, domain.CollectionFilter{OwnerID: user.ID})
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range colls {
		g.Go(func() error {
			repaired, err := s.consistency.Filter(gctx, colls[i])
			if err != nil {
				return err
			}
			colls[i] = repaired
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return colls, nil
}

// CollectionPosts returns the repaired collection's posts in collection order
func (s *Service) CollectionPosts(ctx context.Context, title, ownerID string) ([]domain.Post, error) {
	coll, err := s.store.Collections.FindOne(ctx, domain.CollectionFilter{OwnerID: ownerID, Title: title})
	if err != nil {
		return nil, err
	}
	coll, err = s.consistency.Filter(ctx, coll)
	if err != nil {
		return nil, err
	}
	if len(coll.Posts) == 0 {
		return []domain.Post{}, nil
	}

	posts, err := s.store.Posts.FindMany(ctx, domain.PostFilter{IDs: coll.Posts})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}
	ordered := make([]domain.Post, 0, len(coll.Posts))
	for _, id := range coll.Posts {
		// a post deleted since the repair is skipped
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return s.fillAuthors(ctx, ordered)
}

// GetPost returns the post with its author and likes populated
func (s *Service) GetPost(ctx context.Context, postID string) (domain.Post, error) {
	post, err := s.store.Posts.FindByID(ctx, postID)
	if err != nil {
		return domain.Post{}, err
	}

	var (
		author domain.User
		likes  []domain.Like
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		author, err = s.store.Users.FindByID(gctx, post.AuthorID)
		if errors.Is(err, domain.ErrNotFound) {
			// author deleted; their posts outlive them until cleaned up
			return nil
		}
		return err
	})
	g.Go(func() error {
		var err error
		likes, err = s.store.Likes.FindMany(gctx, domain.LikeFilter{PostID: postID})
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Post{}, err
	}

	if author.ID != "" {
		post.Author = &author
	}
	post.Likes = likes
	return post, nil
}

func (s *Service) LikesByUser(ctx context.Context, username string) ([]domain.Like, error) {
	user, err := s.userByName(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.store.Likes.FindMany(ctx, domain.LikeFilter{UserID: user.ID})
}

func (s *Service) Following(ctx context.Context, username string) ([]domain.User, error) {
	user, err := s.userByName(ctx, username)
	if err != nil {
		return nil, err
	}
	follows, err := s.store.Follows.FindMany(ctx, domain.FollowFilter{FollowerID: user.ID})
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(follows))
	for i, f := range follows {
		ids[i] = f.FollowedID
	}
	return s.store.Users.FindMany(ctx, domain.UserFilter{IDs: ids})
}

func (s *Service) Followers(ctx context.Context, username string) ([]domain.User, error) {
	user, err := s.userByName(ctx, username)
	if err != nil {
		return nil, err
	}
	follows, err := s.store.Follows.FindMany(ctx, domain.FollowFilter{FollowedID: user.ID})
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(follows))
	for i, f := range follows {
		ids[i] = f.FollowerID
	}
	return s.store.Users.FindMany(ctx, domain.UserFilter{IDs: ids})
}

// EditPost bounds the cumulative drift from the original content, not the
// size of this one edit.
func (s *Service) EditPost(ctx context.Context, postID, content string) (domain.Post, error) {
	if err := domain.ValidatePostContent(content); err != nil {
		return domain.Post{}, err
	}
	post, err := s.store.Posts.FindByID(ctx, postID)
	if err != nil {
		return domain.Post{}, err
	}
	if !editgate.Allowed(post.OriginalContent, content) {
		s.metrics.EditRejected()
		return domain.Post{}, domain.ErrTooManyEdits
	}

	now := s.clock.Now()
	return s.store.Posts.UpdateByID(ctx, postID, domain.PostPatch{
		Content:    &content,
		ModifiedAt: &now,
	})
}

// fillAuthors 批量填充作者信息
func (s *Service) fillAuthors(ctx context.Context, posts []domain.Post) ([]domain.Post, error) {
	if len(posts) == 0 {
		return posts, nil
	}

	ids := make([]string, 0, len(posts))
	seen := make(map[string]bool)
	for _, p := range posts {
		if !seen[p.AuthorID] {
			seen[p.AuthorID] = true
			ids = append(ids, p.AuthorID)
		}
	}

	users, err := s.store.Users.FindMany(ctx, domain.UserFilter{IDs: ids})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	for i := range posts {
		posts[i].Author = byID[posts[i].AuthorID]
	}
	return posts, nil
}
