package consistency

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/fritter/domain"
)

// maxCASAttempts bounds the read-modify-write loop on a collection's post list
const maxCASAttempts = 3

func (s *Service) CreateCollection(ctx context.Context, title, ownerID string) (domain.Collection, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Collection{}, fmt.Errorf("%w: collection title is empty", domain.ErrBadParamInput)
	}
	if title == domain.LikesTitle {
		return domain.Collection{}, domain.ErrConflict
	}

	filter := domain.CollectionFilter{OwnerID: ownerID, Title: title}
	if err := absent(s.store.Collections.FindOne(ctx, filter)); err != nil {
		return domain.Collection{}, err
	}

	coll := domain.Collection{
		Title:   title,
		OwnerID: ownerID,
		Kind:    domain.CollectionKindUser,
		Posts:   []string{},
	}
	if err := s.store.Collections.Create(ctx, &coll); err != nil {
		return domain.Collection{}, err
	}
	return coll, nil
}

func (s *Service) DeleteCollection(ctx context.Context, title, ownerID string) error {
	coll, err := s.store.Collections.FindOne(ctx, domain.CollectionFilter{OwnerID: ownerID, Title: title})
	if err != nil {
		return err
	}
	if coll.IsSystem() {
		return domain.ErrForbidden
	}
	ok, err := s.store.Collections.DeleteByID(ctx, coll.ID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// AddPost appends postID to a user collection. The Likes collection only
// changes through CreateLike/RemoveLike.
func (s *Service) AddPost(ctx context.Context, title, ownerID, postID string) (domain.Collection, error) {
	coll, err := s.userCollection(ctx, title, ownerID)
	if err != nil {
		return domain.Collection{}, err
	}
	if err := s.requirePost(ctx, postID); err != nil {
		return domain.Collection{}, err
	}
	return s.mutate(ctx, coll, func(posts []string) ([]string, bool, error) {
		if slices.Contains(posts, postID) {
			return nil, false, domain.ErrConflict
		}
		return append(posts, postID), true, nil
	})
}

func (s *Service) RemovePost(ctx context.Context, title, ownerID, postID string) (domain.Collection, error) {
	coll, err := s.userCollection(ctx, title, ownerID)
	if err != nil {
		return domain.Collection{}, err
	}
	return s.mutate(ctx, coll, func(posts []string) ([]string, bool, error) {
		if !slices.Contains(posts, postID) {
			return nil, false, domain.ErrNotFound
		}
		return without(posts, map[string]bool{postID: true}), true, nil
	})
}

func (s *Service) userCollection(ctx context.Context, title, ownerID string) (domain.Collection, error) {
	coll, err := s.store.Collections.FindOne(ctx, domain.CollectionFilter{OwnerID: ownerID, Title: title})
	if err != nil {
		return domain.Collection{}, err
	}
	if coll.IsSystem() {
		return domain.Collection{}, domain.ErrForbidden
	}
	return coll, nil
}

// Filter drops references to posts that no longer exist. The Likes collection
// is also reconciled with its owner's like edges in both directions: entries
// without an edge are dropped and edges without an entry are appended. The
// list is recomputed from fresh reads on every write attempt and written back
// only when it changed.
func (s *Service) Filter(ctx context.Context, c domain.Collection) (domain.Collection, error) {
	system := c.IsSystem()
	if len(c.Posts) == 0 && !system {
		return c, nil
	}

	var removed, added int
	repaired, err := s.mutate(ctx, c, func(posts []string) ([]string, bool, error) {
		var (
			next []string
			err  error
		)
		if system {
			next, removed, added, err = s.reconcileLikes(ctx, c.OwnerID, posts)
		} else {
			next, removed, err = s.dropMissing(ctx, posts)
			added = 0
		}
		if err != nil {
			return nil, false, err
		}
		return next, removed+added > 0, nil
	})
	if err != nil {
		return c, err
	}

	if removed+added > 0 {
		logrus.WithFields(logrus.Fields{
			"collection": c.ID,
			"owner":      c.OwnerID,
			"removed":    removed,
			"added":      added,
		}).Info("repaired collection references")
		s.metrics.Repaired(removed + added)
	}
	return repaired, nil
}

func (s *Service) dropMissing(ctx context.Context, posts []string) ([]string, int, error) {
	if len(posts) == 0 {
		return posts, 0, nil
	}
	live, err := s.livePosts(ctx, posts)
	if err != nil {
		return nil, 0, err
	}
	kept := make([]string, 0, len(posts))
	for _, id := range posts {
		if live[id] {
			kept = append(kept, id)
		}
	}
	return kept, len(posts) - len(kept), nil
}

// reconcileLikes keeps entries that have a like edge on a live post, in list
// order, then appends live edges missing from the list in edge order.
func (s *Service) reconcileLikes(ctx context.Context, ownerID string, posts []string) ([]string, int, int, error) {
	likes, err := s.store.Likes.FindMany(ctx, domain.LikeFilter{UserID: ownerID})
	if err != nil {
		return nil, 0, 0, err
	}
	ids := slices.Clone(posts)
	for _, l := range likes {
		ids = append(ids, l.PostID)
	}
	if len(ids) == 0 {
		return posts, 0, 0, nil
	}
	live, err := s.livePosts(ctx, ids)
	if err != nil {
		return nil, 0, 0, err
	}

	liked := make(map[string]bool, len(likes))
	for _, l := range likes {
		liked[l.PostID] = true
	}
	seen := make(map[string]bool, len(posts))
	next := make([]string, 0, len(likes))
	for _, id := range posts {
		if live[id] && liked[id] && !seen[id] {
			seen[id] = true
			next = append(next, id)
		}
	}
	removed := len(posts) - len(next)
	for _, l := range likes {
		if live[l.PostID] && !seen[l.PostID] {
			seen[l.PostID] = true
			next = append(next, l.PostID)
		}
	}
	return next, removed, len(next) - (len(posts) - removed), nil
}

func (s *Service) livePosts(ctx context.Context, ids []string) (map[string]bool, error) {
	posts, err := s.store.Posts.FindMany(ctx, domain.PostFilter{IDs: ids})
	if err != nil {
		return nil, err
	}
	live := make(map[string]bool, len(posts))
	for _, p := range posts {
		live[p.ID] = true
	}
	return live, nil
}

// mutate applies fn to the collection's post list and writes the result at
// the version it was read. A lost race reloads and retries.
func (s *Service) mutate(ctx context.Context, c domain.Collection, fn func([]string) ([]string, bool, error)) (domain.Collection, error) {
	for attempt := 1; ; attempt++ {
		posts, changed, err := fn(slices.Clone(c.Posts))
		if err != nil {
			return domain.Collection{}, err
		}
		if !changed {
			return c, nil
		}

		version := c.Version
		updated, err := s.store.Collections.UpdateByID(ctx, c.ID, domain.CollectionPatch{
			Posts:     posts,
			IfVersion: &version,
		})
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, domain.ErrStaleWrite) || attempt >= maxCASAttempts {
			return domain.Collection{}, err
		}

		s.metrics.CASRetried()
		if c, err = s.store.Collections.FindByID(ctx, c.ID); err != nil {
			return domain.Collection{}, err
		}
	}
}

func without(posts []string, drop map[string]bool) []string {
	kept := make([]string, 0, len(posts))
	for _, id := range posts {
		if !drop[id] {
			kept = append(kept, id)
		}
	}
	return kept
}
