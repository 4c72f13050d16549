package mysql

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/internal/repository/mysql/model"
)

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) scopes(f domain.UserFilter) []scope {
	var res []scope
	if f.IDs != nil {
		res = append(res, matchAny("id", f.IDs))
	}
	if f.Username != "" {
		res = append(res, where("username_key = ?", domain.NormalizeUsername(f.Username)))
	}
	return res
}

func (m *userRepository) Create(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)
	if userModel.ID == "" {
		userModel.ID = uuid.NewString()
	}
	if err := create(ctx, m.DB, "users.create", userModel); err != nil {
		return err
	}
	u.ID = userModel.ID
	u.JoinedAt = userModel.JoinedAt
	return nil
}

func (m *userRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	return findOne[model.User, domain.User](ctx, m.DB, "users.find_by_id", "id", where("id = ?", id))
}

func (m *userRepository) FindOne(ctx context.Context, f domain.UserFilter) (domain.User, error) {
	return findOne[model.User, domain.User](ctx, m.DB, "users.find_one", "joined_at", m.scopes(f)...)
}

func (m *userRepository) FindMany(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	return findMany[model.User, domain.User](ctx, m.DB, "users.find_many", "joined_at", m.scopes(f)...)
}

func (m *userRepository) UpdateByID(ctx context.Context, id string, p domain.UserPatch) (domain.User, error) {
	updates := map[string]any{}
	if p.Username != nil {
		updates["username"] = *p.Username
		updates["username_key"] = domain.NormalizeUsername(*p.Username)
	}
	if p.Password != nil {
		updates["password"] = *p.Password
	}
	if len(updates) > 0 {
		err := m.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return domain.User{}, translate("users.update", err)
		}
	}
	return m.FindByID(ctx, id)
}

func (m *userRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	n, err := deleteWhere[model.User](ctx, m.DB, "users.delete_by_id", where("id = ?", id))
	return n > 0, err
}

func (m *userRepository) DeleteMany(ctx context.Context, f domain.UserFilter) (int64, error) {
	return deleteWhere[model.User](ctx, m.DB, "users.delete_many", m.scopes(f)...)
}
