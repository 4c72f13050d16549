package consistency

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/fritter/domain"
)

const postCascadeParallelism = 8

func (s *Service) CreatePost(ctx context.Context, authorID, content string) (domain.Post, error) {
	if err := domain.ValidatePostContent(content); err != nil {
		return domain.Post{}, err
	}
	if _, err := s.store.Users.FindByID(ctx, authorID); err != nil {
		return domain.Post{}, err
	}

	now := s.clock.Now()
	post := domain.Post{
		AuthorID:        authorID,
		Content:         content,
		OriginalContent: content,
		CreatedAt:       now,
		ModifiedAt:      now,
	}
	if err := s.store.Posts.Create(ctx, &post); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

// DeletePost removes the post and then its likes. The like leg runs even if
// the post was already gone so a retry finishes an interrupted delete.
func (s *Service) DeletePost(ctx context.Context, postID string) (bool, error) {
	ok, err := s.store.Posts.DeleteByID(ctx, postID)
	if err != nil {
		return false, err
	}
	step := s.deletePostLikes(ctx, postID)
	return ok, domain.CascadeReport{Steps: []domain.CascadeStep{step}}.Err()
}

// DeletePostsByAuthor is the explicit author cleanup; DeleteUser never calls it.
func (s *Service) DeletePostsByAuthor(ctx context.Context, authorID string) (int64, error) {
	filter := domain.PostFilter{AuthorIDs: []string{authorID}}
	posts, err := s.store.Posts.FindMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	n, err := s.store.Posts.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}

	steps := make([]domain.CascadeStep, len(posts))
	var g errgroup.Group
	g.SetLimit(postCascadeParallelism)
	for i := range posts {
		g.Go(func() error {
			steps[i] = s.deletePostLikes(ctx, posts[i].ID)
			return nil
		})
	}
	_ = g.Wait()

	return n, domain.CascadeReport{Steps: steps}.Err()
}

func (s *Service) deletePostLikes(ctx context.Context, postID string) domain.CascadeStep {
	name := fmt.Sprintf("likes of post %s", postID)
	n, err := s.store.Likes.DeleteMany(ctx, domain.LikeFilter{PostID: postID})
	if err != nil {
		logrus.WithFields(logrus.Fields{"post": postID, "step": "likes"}).Errorf("cascade leg failed: %v", err)
		s.metrics.CascadeFailed("post_likes")
	}
	return domain.CascadeStep{Name: name, Deleted: n, Err: err}
}
