package mysql

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/internal/repository/mysql/model"
)

type collectionRepository struct {
	DB *gorm.DB
}

var _ domain.CollectionRepository = (*collectionRepository)(nil)

func NewCollectionRepository(db *gorm.DB) *collectionRepository {
	return &collectionRepository{
		DB: db,
	}
}

func (c *collectionRepository) scopes(f domain.CollectionFilter) []scope {
	var res []scope
	if f.OwnerID != "" {
		res = append(res, where("owner_id = ?", f.OwnerID))
	}
	if f.Title != "" {
		res = append(res, where("title = ?", f.Title))
	}
	if f.Kind != "" {
		res = append(res, where("kind = ?", string(f.Kind)))
	}
	return res
}

func (c *collectionRepository) Create(ctx context.Context, coll *domain.Collection) error {
	collModel := model.NewCollectionFromDomain(coll)
	if collModel.ID == "" {
		collModel.ID = uuid.NewString()
	}
	if collModel.Kind == "" {
		collModel.Kind = string(domain.CollectionKindUser)
	}
	if err := create(ctx, c.DB, "collections.create", collModel); err != nil {
		return err
	}
	*coll = collModel.ToDomain()
	return nil
}

func (c *collectionRepository) FindByID(ctx context.Context, id string) (domain.Collection, error) {
	return findOne[model.Collection, domain.Collection](ctx, c.DB, "collections.find_by_id", "seq", where("id = ?", id))
}

func (c *collectionRepository) FindOne(ctx context.Context, f domain.CollectionFilter) (domain.Collection, error) {
	return findOne[model.Collection, domain.Collection](ctx, c.DB, "collections.find_one", "seq", c.scopes(f)...)
}

func (c *collectionRepository) FindMany(ctx context.Context, f domain.CollectionFilter) ([]domain.Collection, error) {
	return findMany[model.Collection, domain.Collection](ctx, c.DB, "collections.find_many", "seq", c.scopes(f)...)
}

// UpdateByID bumps the version on every write. With IfVersion set the row
// is only touched at that version; a lost race is reported as ErrStaleWrite.
func (c *collectionRepository) UpdateByID(ctx context.Context, id string, p domain.CollectionPatch) (domain.Collection, error) {
	updates := map[string]any{
		"version": gorm.Expr("version + 1"),
	}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Posts != nil {
		posts := datatypes.JSONSlice[string]{}
		updates["posts"] = append(posts, p.Posts...)
	}

	q := c.DB.WithContext(ctx).Model(&model.Collection{}).Where("id = ?", id)
	if p.IfVersion != nil {
		q = q.Where("version = ?", *p.IfVersion)
	}
	result := q.Updates(updates)
	if result.Error != nil {
		return domain.Collection{}, translate("collections.update", result.Error)
	}

	if result.RowsAffected == 0 {
		// Either the row is gone or its version moved on.
		if _, err := c.FindByID(ctx, id); err != nil {
			return domain.Collection{}, err
		}
		return domain.Collection{}, domain.ErrStaleWrite
	}
	return c.FindByID(ctx, id)
}

func (c *collectionRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	n, err := deleteWhere[model.Collection](ctx, c.DB, "collections.delete_by_id", where("id = ?", id))
	return n > 0, err
}

func (c *collectionRepository) DeleteMany(ctx context.Context, f domain.CollectionFilter) (int64, error) {
	return deleteWhere[model.Collection](ctx, c.DB, "collections.delete_many", c.scopes(f)...)
}
