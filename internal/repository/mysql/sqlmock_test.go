package mysql_test

import (
	"context"
	"errors"
	"testing"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/internal/repository/mysql"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestFindByIDStoreFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewPostDBRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `posts`").WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByID(context.TODO(), "p1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreFailure)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "username_key", "password", "joined_at"})
	mock.ExpectQuery("SELECT (.+) FROM `users`").WillReturnRows(rows)

	_, err := repo.FindByID(context.TODO(), "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindManyStoreFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewFollowRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `follows`").WillReturnError(errors.New("timeout"))

	res, err := repo.FindMany(context.TODO(), domain.FollowFilter{FollowerID: "u1"})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrStoreFailure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLikeDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewLikeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `likes`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'p1-u1'"})
	mock.ExpectRollback()

	err := repo.Create(context.TODO(), &domain.Like{PostID: "p1", UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NotErrorIs(t, err, domain.ErrStoreFailure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFollowStoreFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewFollowRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `follows`").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Create(context.TODO(), &domain.Follow{FollowerID: "a", FollowedID: "b"})
	assert.ErrorIs(t, err, domain.ErrStoreFailure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteManyRowsAffected(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewLikeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `likes`").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	n, err := repo.DeleteMany(context.TODO(), domain.LikeFilter{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
