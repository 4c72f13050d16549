package consistency

import (
	"context"
	"errors"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/fritter/domain"
)

func (s *Service) CreateFollow(ctx context.Context, followerID, followedID string) (domain.Follow, error) {
	if _, err := s.store.Users.FindByID(ctx, followedID); err != nil {
		return domain.Follow{}, err
	}

	filter := domain.FollowFilter{FollowerID: followerID, FollowedID: followedID}
	if err := absent(s.store.Follows.FindOne(ctx, filter)); err != nil {
		return domain.Follow{}, err
	}

	follow := domain.Follow{FollowerID: followerID, FollowedID: followedID}
	if err := s.store.Follows.Create(ctx, &follow); err != nil {
		return domain.Follow{}, err
	}
	return follow, nil
}

func (s *Service) RemoveFollow(ctx context.Context, followerID, followedID string) error {
	follow, err := s.store.Follows.FindOne(ctx, domain.FollowFilter{FollowerID: followerID, FollowedID: followedID})
	if err != nil {
		return err
	}
	ok, err := s.store.Follows.DeleteByID(ctx, follow.ID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// CreateLike writes the edge, then mirrors postID into the user's Likes
// collection. A duplicate still re-mirrors before reporting ErrConflict, so
// retrying after a failed mirror write converges.
func (s *Service) CreateLike(ctx context.Context, postID, userID string) (domain.Like, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return domain.Like{}, err
	}

	filter := domain.LikeFilter{PostID: postID, UserID: userID}
	err := absent(s.store.Likes.FindOne(ctx, filter))
	if err == nil {
		like := domain.Like{PostID: postID, UserID: userID}
		err = s.store.Likes.Create(ctx, &like)
		if err == nil {
			if _, err := s.mirrorLike(ctx, userID, postID, true); err != nil {
				logrus.WithFields(logrus.Fields{"user": userID, "post": postID}).Warnf("like recorded but not mirrored: %v", err)
				return like, err
			}
			return like, nil
		}
	}

	if errors.Is(err, domain.ErrConflict) {
		if _, merr := s.mirrorLike(ctx, userID, postID, false); merr != nil {
			logrus.WithFields(logrus.Fields{"user": userID, "post": postID}).Warnf("failed to heal likes mirror: %v", merr)
		}
	}
	return domain.Like{}, err
}

// RemoveLike deletes the edge, then the mirror entry. A failed mirror removal
// is only logged: read-repair drops Likes entries that have no edge.
func (s *Service) RemoveLike(ctx context.Context, postID, userID string) error {
	like, err := s.store.Likes.FindOne(ctx, domain.LikeFilter{PostID: postID, UserID: userID})
	if err != nil {
		return err
	}
	ok, err := s.store.Likes.DeleteByID(ctx, like.ID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}

	if _, err := s.unmirrorLike(ctx, userID, postID); err != nil {
		logrus.WithFields(logrus.Fields{"user": userID, "post": postID}).Warnf("like removed but still mirrored: %v", err)
	}
	return nil
}

// mirrorLike appends postID to the Likes collection. With touch set it writes
// even when the entry is already listed, bumping the version.
func (s *Service) mirrorLike(ctx context.Context, userID, postID string, touch bool) (domain.Collection, error) {
	coll, err := s.EnsureLikesCollection(ctx, userID)
	if err != nil {
		return coll, err
	}
	return s.mutate(ctx, coll, func(posts []string) ([]string, bool, error) {
		if slices.Contains(posts, postID) {
			return posts, touch, nil
		}
		return append(posts, postID), true, nil
	})
}

func (s *Service) unmirrorLike(ctx context.Context, userID, postID string) (domain.Collection, error) {
	coll, err := s.store.Collections.FindOne(ctx, domain.CollectionFilter{OwnerID: userID, Kind: domain.CollectionKindLikes})
	if errors.Is(err, domain.ErrNotFound) {
		return coll, nil
	} else if err != nil {
		return coll, err
	}
	return s.mutate(ctx, coll, func(posts []string) ([]string, bool, error) {
		kept := without(posts, map[string]bool{postID: true})
		return kept, len(kept) != len(posts), nil
	})
}

// requirePost checks existence with FindOne, which always reads the database;
// FindByID may answer from a cache entry written just before a delete.
func (s *Service) requirePost(ctx context.Context, postID string) error {
	_, err := s.store.Posts.FindOne(ctx, domain.PostFilter{IDs: []string{postID}})
	return err
}

// absent turns a lookup into a uniqueness check: found is ErrConflict,
// not found is nil, anything else is passed through.
func absent[E any](_ E, err error) error {
	switch {
	case err == nil:
		return domain.ErrConflict
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return err
	}
}
