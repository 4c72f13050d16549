package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Guyuepp/fritter/domain"
)

// scope narrows a query; entity repositories turn their filters into scopes.
type scope = func(*gorm.DB) *gorm.DB

// record is a gorm model that converts into its domain entity.
type record[M any, E any] interface {
	*M
	ToDomain() E
}

// translate maps gorm errors onto the domain error kinds.
// Absence and uniqueness violations keep their own kinds; everything else is a store failure.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrConflict
	default:
		return domain.StoreFailure(op, err)
	}
}

func where(query string, args ...any) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	}
}

// matchAny restricts column to values. A nil slice is no restriction,
// an empty one matches nothing.
func matchAny(column string, values []string) scope {
	return func(db *gorm.DB) *gorm.DB {
		if values == nil {
			return db
		}
		if len(values) == 0 {
			return db.Where("1 = 0")
		}
		return db.Where(column+" IN ?", values)
	}
}

func findOne[M any, E any, PM record[M, E]](ctx context.Context, db *gorm.DB, op, order string, scopes ...scope) (E, error) {
	var m M
	err := db.WithContext(ctx).Scopes(scopes...).Order(order).Take(&m).Error
	if err != nil {
		var zero E
		return zero, translate(op, err)
	}
	return PM(&m).ToDomain(), nil
}

func findMany[M any, E any, PM record[M, E]](ctx context.Context, db *gorm.DB, op, order string, scopes ...scope) ([]E, error) {
	var rows []M
	err := db.WithContext(ctx).Scopes(scopes...).Order(order).Find(&rows).Error
	if err != nil {
		return nil, translate(op, err)
	}
	res := make([]E, len(rows))
	for i := range rows {
		res[i] = PM(&rows[i]).ToDomain()
	}
	return res, nil
}

func create[M any](ctx context.Context, db *gorm.DB, op string, m *M) error {
	return translate(op, db.WithContext(ctx).Create(m).Error)
}

func deleteWhere[M any](ctx context.Context, db *gorm.DB, op string, scopes ...scope) (int64, error) {
	if len(scopes) == 0 {
		return 0, domain.ErrBadParamInput
	}
	result := db.WithContext(ctx).Scopes(scopes...).Delete(new(M))
	if result.Error != nil {
		return 0, translate(op, result.Error)
	}
	return result.RowsAffected, nil
}
