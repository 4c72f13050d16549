package mysql

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/internal/repository/mysql/model"
)

type followRepository struct {
	DB *gorm.DB
}

var _ domain.FollowRepository = (*followRepository)(nil)

func NewFollowRepository(db *gorm.DB) *followRepository {
	return &followRepository{
		DB: db,
	}
}

func (f *followRepository) scopes(filter domain.FollowFilter) []scope {
	var res []scope
	if filter.FollowerID != "" {
		res = append(res, where("follower_id = ?", filter.FollowerID))
	}
	if filter.FollowedID != "" {
		res = append(res, where("followed_id = ?", filter.FollowedID))
	}
	if filter.Involving != "" {
		res = append(res, where("follower_id = ? OR followed_id = ?", filter.Involving, filter.Involving))
	}
	return res
}

func (f *followRepository) Create(ctx context.Context, follow *domain.Follow) error {
	followModel := model.NewFollowFromDomain(follow)
	if followModel.ID == "" {
		followModel.ID = uuid.NewString()
	}
	if err := create(ctx, f.DB, "follows.create", followModel); err != nil {
		return err
	}
	follow.ID = followModel.ID
	return nil
}

func (f *followRepository) FindByID(ctx context.Context, id string) (domain.Follow, error) {
	return findOne[model.Follow, domain.Follow](ctx, f.DB, "follows.find_by_id", "id", where("id = ?", id))
}

func (f *followRepository) FindOne(ctx context.Context, filter domain.FollowFilter) (domain.Follow, error) {
	return findOne[model.Follow, domain.Follow](ctx, f.DB, "follows.find_one", "id", f.scopes(filter)...)
}

func (f *followRepository) FindMany(ctx context.Context, filter domain.FollowFilter) ([]domain.Follow, error) {
	return findMany[model.Follow, domain.Follow](ctx, f.DB, "follows.find_many", "id", f.scopes(filter)...)
}

func (f *followRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	n, err := deleteWhere[model.Follow](ctx, f.DB, "follows.delete_by_id", where("id = ?", id))
	return n > 0, err
}

func (f *followRepository) DeleteMany(ctx context.Context, filter domain.FollowFilter) (int64, error) {
	return deleteWhere[model.Follow](ctx, f.DB, "follows.delete_many", f.scopes(filter)...)
}
