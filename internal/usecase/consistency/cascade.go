package consistency

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/fritter/domain"
)

type cascadeLeg struct {
	name string
	run  func(ctx context.Context, userID string) (int64, error)
}

func (s *Service) userLegs() []cascadeLeg {
	return []cascadeLeg{
		{"follows", func(ctx context.Context, id string) (int64, error) {
			return s.store.Follows.DeleteMany(ctx, domain.FollowFilter{Involving: id})
		}},
		{"collections", func(ctx context.Context, id string) (int64, error) {
			return s.store.Collections.DeleteMany(ctx, domain.CollectionFilter{OwnerID: id})
		}},
		{"likes", func(ctx context.Context, id string) (int64, error) {
			return s.store.Likes.DeleteMany(ctx, domain.LikeFilter{UserID: id})
		}},
	}
}

// DeleteUser removes the user record, then its follow edges (either end),
// owned collections and likes. The legs touch disjoint rows and run
// concurrently; a failing leg never stops the others. Authored posts stay.
func (s *Service) DeleteUser(ctx context.Context, userID string) (bool, error) {
	ok, err := s.store.Users.DeleteByID(ctx, userID)
	if err != nil {
		return false, err
	}

	legs := s.userLegs()
	steps := make([]domain.CascadeStep, len(legs))

	// plain Group: no shared cancellation between legs
	var g errgroup.Group
	for i, leg := range legs {
		g.Go(func() error {
			n, err := leg.run(ctx, userID)
			steps[i] = domain.CascadeStep{Name: leg.name, Deleted: n, Err: err}
			if err != nil {
				logrus.WithFields(logrus.Fields{"user": userID, "step": leg.name}).Errorf("cascade leg failed: %v", err)
				s.metrics.CascadeFailed(leg.name)
			}
			return nil
		})
	}
	_ = g.Wait()

	report := domain.CascadeReport{Steps: steps}
	if err := report.Err(); err != nil {
		return ok, err
	}
	logrus.WithFields(logrus.Fields{
		"user":        userID,
		"follows":     steps[0].Deleted,
		"collections": steps[1].Deleted,
		"likes":       steps[2].Deleted,
	}).Info("user deleted")
	return ok, nil
}
