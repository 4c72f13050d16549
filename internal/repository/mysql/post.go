package mysql

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/internal/repository/mysql/model"
)

// Newest edit first, ties in insertion order.
const postOrder = "modified_at DESC, seq ASC"

type postRepository struct {
	DB *gorm.DB
}

// mysql层只负责数据库操作
var _ domain.PostRepository = (*postRepository)(nil)

// NewPostDBRepository creates the database layer for posts
func NewPostDBRepository(db *gorm.DB) *postRepository {
	return &postRepository{db}
}

func (m *postRepository) scopes(f domain.PostFilter) []scope {
	var res []scope
	if f.IDs != nil {
		res = append(res, matchAny("id", f.IDs))
	}
	if f.AuthorIDs != nil {
		res = append(res, matchAny("author_id", f.AuthorIDs))
	}
	return res
}

func (m *postRepository) Create(ctx context.Context, p *domain.Post) error {
	postModel := model.NewPostFromDomain(p)
	if postModel.ID == "" {
		postModel.ID = uuid.NewString()
	}
	if err := create(ctx, m.DB, "posts.create", postModel); err != nil {
		return err
	}
	p.ID = postModel.ID
	p.CreatedAt = postModel.CreatedAt
	p.ModifiedAt = postModel.ModifiedAt
	return nil
}

func (m *postRepository) FindByID(ctx context.Context, id string) (domain.Post, error) {
	return findOne[model.Post, domain.Post](ctx, m.DB, "posts.find_by_id", "seq", where("id = ?", id))
}

func (m *postRepository) FindOne(ctx context.Context, f domain.PostFilter) (domain.Post, error) {
	return findOne[model.Post, domain.Post](ctx, m.DB, "posts.find_one", postOrder, m.scopes(f)...)
}

func (m *postRepository) FindMany(ctx context.Context, f domain.PostFilter) ([]domain.Post, error) {
	return findMany[model.Post, domain.Post](ctx, m.DB, "posts.find_many", postOrder, m.scopes(f)...)
}

func (m *postRepository) UpdateByID(ctx context.Context, id string, p domain.PostPatch) (domain.Post, error) {
	updates := map[string]any{}
	if p.Content != nil {
		updates["content"] = *p.Content
	}
	if p.ModifiedAt != nil {
		updates["modified_at"] = *p.ModifiedAt
	}
	if len(updates) > 0 {
		err := m.DB.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return domain.Post{}, translate("posts.update", err)
		}
	}
	return m.FindByID(ctx, id)
}

func (m *postRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	n, err := deleteWhere[model.Post](ctx, m.DB, "posts.delete_by_id", where("id = ?", id))
	return n > 0, err
}

func (m *postRepository) DeleteMany(ctx context.Context, f domain.PostFilter) (int64, error) {
	return deleteWhere[model.Post](ctx, m.DB, "posts.delete_many", m.scopes(f)...)
}

func (m *postRepository) FetchIDs(ctx context.Context, after int64, limit int) (ids []string, last int64, err error) {
	var rows []model.Post
	err = m.DB.WithContext(ctx).
		Select("seq", "id").
		Where("seq > ?", after).
		Order("seq").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, after, translate("posts.fetch_ids", err)
	}
	ids = make([]string, len(rows))
	last = after
	for i := range rows {
		ids[i] = rows[i].ID
		last = rows[i].Seq
	}
	return ids, last, nil
}
