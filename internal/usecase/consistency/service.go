package consistency

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/internal/metrics"
)

// Service keeps users, posts, edges and collections consistent with each
// other without store transactions: writes are idempotent and collections
// repair themselves when read.
type Service struct {
	store   domain.Store
	clock   domain.Clock
	metrics *metrics.Collector
}

var _ domain.ConsistencyUsecase = (*Service)(nil)

// NewService will create a new consistency service object. m may be nil.
func NewService(store domain.Store, clock domain.Clock, m *metrics.Collector) *Service {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &Service{
		store:   store,
		clock:   clock,
		metrics: m,
	}
}

func (s *Service) CreateUser(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, fmt.Errorf("%w: username and password are required", domain.ErrBadParamInput)
	}

	_, err := s.store.Users.FindOne(ctx, domain.UserFilter{Username: username})
	switch {
	case err == nil:
		return domain.User{}, domain.ErrUsernameTaken
	case !errors.Is(err, domain.ErrNotFound):
		return domain.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		Username: username,
		Password: string(hashed),
		JoinedAt: s.clock.Now(),
	}
	if err := s.store.Users.Create(ctx, &user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.User{}, domain.ErrUsernameTaken
		}
		return domain.User{}, err
	}

	// Not rolled back: the caller retries EnsureLikesCollection or deletes the user.
	if _, err := s.EnsureLikesCollection(ctx, user.ID); err != nil {
		logrus.WithFields(logrus.Fields{"user": user.ID}).Errorf("user created without likes collection: %v", err)
		return user, fmt.Errorf("user %s created without likes collection: %w", user.ID, err)
	}
	return user, nil
}

func (s *Service) EnsureLikesCollection(ctx context.Context, userID string) (domain.Collection, error) {
	filter := domain.CollectionFilter{OwnerID: userID, Kind: domain.CollectionKindLikes}
	coll, err := s.store.Collections.FindOne(ctx, filter)
	if err == nil || !errors.Is(err, domain.ErrNotFound) {
		return coll, err
	}

	coll = domain.Collection{
		Title:   domain.LikesTitle,
		OwnerID: userID,
		Kind:    domain.CollectionKindLikes,
		Posts:   []string{},
	}
	err = s.store.Collections.Create(ctx, &coll)
	if errors.Is(err, domain.ErrConflict) {
		// created concurrently
		return s.store.Collections.FindOne(ctx, filter)
	}
	return coll, err
}
