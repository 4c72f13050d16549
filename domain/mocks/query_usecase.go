package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/fritter/domain"
)

// QueryUsecase is a mock type for the domain.QueryUsecase type
type QueryUsecase struct {
	mock.Mock
}

// GetUser provides a mock function with given fields: ctx, userID
func (_m *QueryUsecase) GetUser(ctx context.Context, userID string) (domain.User, error) {
	ret := _m.Called(ctx, userID)

	var r0 domain.User
	if rf, ok := ret.Get(0).(func(context.Context, string) domain.User); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Get(0).(domain.User)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Feed provides a mock function with given fields: ctx, username
func (_m *QueryUsecase) Feed(ctx context.Context, username string) ([]domain.Post, error) {
	ret := _m.Called(ctx, username)

	var r0 []domain.Post
	if rf, ok := ret.Get(0).(func(context.Context, string) []domain.Post); ok {
		r0 = rf(ctx, username)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Post)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, username)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PostsByAuthor provides a mock function with given fields: ctx, username
func (_m *QueryUsecase) PostsByAuthor(ctx context.Context, username string) ([]domain.Post, error) {
	ret := _m.Called(ctx, username)

	var r0 []domain.Post
	if rf, ok := ret.Get(0).(func(context.Context, string) []domain.Post); ok {
		r0 = rf(ctx, username)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Post)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, username)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CollectionsByOwner provides a mock function with given fields: ctx, username
func (_m *QueryUsecase) CollectionsByOwner(ctx context.Context, username string) ([]domain.Collection, error) {
	ret := _m.Called(ctx, username)

	var r0 []domain.Collection
	if rf, ok := ret.Get(0).(func(context.Context, string) []domain.Collection); ok {
		r0 = rf(ctx, username)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Collection)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, username)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CollectionPosts provides a mock function with given fields: ctx, title, ownerID
func (_m *QueryUsecase) CollectionPosts(ctx context.Context, title string, ownerID string) ([]domain.Post, error) {
	ret := _m.Called(ctx, title, ownerID)

	var r0 []domain.Post
	if rf, ok := ret.Get(0).(func(context.Context, string, string) []domain.Post); ok {
		r0 = rf(ctx, title, ownerID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Post)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, title, ownerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetPost provides a mock function with given fields: ctx, postID
func (_m *QueryUsecase) GetPost(ctx context.Context, postID string) (domain.Post, error) {
	ret := _m.Called(ctx, postID)

	var r0 domain.Post
	if rf, ok := ret.Get(0).(func(context.Context, string) domain.Post); ok {
		r0 = rf(ctx, postID)
	} else {
		r0 = ret.Get(0).(domain.Post)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, postID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// LikesByUser provides a mock function with given fields: ctx, username
func (_m *QueryUsecase) LikesByUser(ctx context.Context, username string) ([]domain.Like, error) {
	ret := _m.Called(ctx, username)

	var r0 []domain.Like
	if rf, ok := ret.Get(0).(func(context.Context, string) []domain.Like); ok {
		r0 = rf(ctx, username)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Like)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, username)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Following provides a mock function with given fields: ctx, username
func (_m *QueryUsecase) Following(ctx context.Context, username string) ([]domain.User, error) {
	ret := _m.Called(ctx, username)

	var r0 []domain.User
	if rf, ok := ret.Get(0).(func(context.Context, string) []domain.User); ok {
		r0 = rf(ctx, username)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.User)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, username)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Followers provides a mock function with given fields: ctx, username
func (_m *QueryUsecase) Followers(ctx context.Context, username string) ([]domain.User, error) {
	ret := _m.Called(ctx, username)

	var r0 []domain.User
	if rf, ok := ret.Get(0).(func(context.Context, string) []domain.User); ok {
		r0 = rf(ctx, username)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.User)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, username)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// EditPost provides a mock function with given fields: ctx, postID, content
func (_m *QueryUsecase) EditPost(ctx context.Context, postID string, content string) (domain.Post, error) {
	ret := _m.Called(ctx, postID, content)

	var r0 domain.Post
	if rf, ok := ret.Get(0).(func(context.Context, string, string) domain.Post); ok {
		r0 = rf(ctx, postID, content)
	} else {
		r0 = ret.Get(0).(domain.Post)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, postID, content)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

var _ domain.QueryUsecase = (*QueryUsecase)(nil)
