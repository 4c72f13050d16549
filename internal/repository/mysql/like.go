package mysql

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/internal/repository/mysql/model"
)

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{
		DB: db,
	}
}

func (l *likeRepository) scopes(f domain.LikeFilter) []scope {
	var res []scope
	if f.PostID != "" {
		res = append(res, where("post_id = ?", f.PostID))
	}
	if f.UserID != "" {
		res = append(res, where("user_id = ?", f.UserID))
	}
	return res
}

// Create relies on the (post_id, user_id) unique index, so a concurrent
// duplicate surfaces as domain.ErrConflict.
func (l *likeRepository) Create(ctx context.Context, like *domain.Like) error {
	likeModel := model.NewLikeFromDomain(like)
	if likeModel.ID == "" {
		likeModel.ID = uuid.NewString()
	}
	if err := create(ctx, l.DB, "likes.create", likeModel); err != nil {
		return err
	}
	like.ID = likeModel.ID
	return nil
}

func (l *likeRepository) FindByID(ctx context.Context, id string) (domain.Like, error) {
	return findOne[model.Like, domain.Like](ctx, l.DB, "likes.find_by_id", "id", where("id = ?", id))
}

func (l *likeRepository) FindOne(ctx context.Context, f domain.LikeFilter) (domain.Like, error) {
	return findOne[model.Like, domain.Like](ctx, l.DB, "likes.find_one", "id", l.scopes(f)...)
}

func (l *likeRepository) FindMany(ctx context.Context, f domain.LikeFilter) ([]domain.Like, error) {
	return findMany[model.Like, domain.Like](ctx, l.DB, "likes.find_many", "id", l.scopes(f)...)
}

func (l *likeRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	n, err := deleteWhere[model.Like](ctx, l.DB, "likes.delete_by_id", where("id = ?", id))
	return n > 0, err
}

func (l *likeRepository) DeleteMany(ctx context.Context, f domain.LikeFilter) (int64, error) {
	return deleteWhere[model.Like](ctx, l.DB, "likes.delete_many", l.scopes(f)...)
}
