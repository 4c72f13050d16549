package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/fritter/domain"
)

// ConsistencyUsecase is a mock type for the domain.ConsistencyUsecase type
type ConsistencyUsecase struct {
	mock.Mock
}

// CreateUser provides a mock function with given fields: ctx, username, password
func (_m *ConsistencyUsecase) CreateUser(ctx context.Context, username string, password string) (domain.User, error) {
	ret := _m.Called(ctx, username, password)

	var r0 domain.User
	if rf, ok := ret.Get(0).(func(context.Context, string, string) domain.User); ok {
		r0 = rf(ctx, username, password)
	} else {
		r0 = ret.Get(0).(domain.User)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, username, password)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// EnsureLikesCollection provides a mock function with given fields: ctx, userID
func (_m *ConsistencyUsecase) EnsureLikesCollection(ctx context.Context, userID string) (domain.Collection, error) {
	ret := _m.Called(ctx, userID)

	var r0 domain.Collection
	if rf, ok := ret.Get(0).(func(context.Context, string) domain.Collection); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Get(0).(domain.Collection)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteUser provides a mock function with given fields: ctx, userID
func (_m *ConsistencyUsecase) DeleteUser(ctx context.Context, userID string) (bool, error) {
	ret := _m.Called(ctx, userID)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, string) bool); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreatePost provides a mock function with given fields: ctx, authorID, content
func (_m *ConsistencyUsecase) CreatePost(ctx context.Context, authorID string, content string) (domain.Post, error) {
	ret := _m.Called(ctx, authorID, content)

	var r0 domain.Post
	if rf, ok := ret.Get(0).(func(context.Context, string, string) domain.Post); ok {
		r0 = rf(ctx, authorID, content)
	} else {
		r0 = ret.Get(0).(domain.Post)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, authorID, content)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeletePost provides a mock function with given fields: ctx, postID
func (_m *ConsistencyUsecase) DeletePost(ctx context.Context, postID string) (bool, error) {
	ret := _m.Called(ctx, postID)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, string) bool); ok {
		r0 = rf(ctx, postID)
	} else {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, postID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeletePostsByAuthor provides a mock function with given fields: ctx, authorID
func (_m *ConsistencyUsecase) DeletePostsByAuthor(ctx context.Context, authorID string) (int64, error) {
	ret := _m.Called(ctx, authorID)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, string) int64); ok {
		r0 = rf(ctx, authorID)
	} else {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, authorID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateFollow provides a mock function with given fields: ctx, followerID, followedID
func (_m *ConsistencyUsecase) CreateFollow(ctx context.Context, followerID string, followedID string) (domain.Follow, error) {
	ret := _m.Called(ctx, followerID, followedID)

	var r0 domain.Follow
	if rf, ok := ret.Get(0).(func(context.Context, string, string) domain.Follow); ok {
		r0 = rf(ctx, followerID, followedID)
	} else {
		r0 = ret.Get(0).(domain.Follow)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, followerID, followedID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RemoveFollow provides a mock function with given fields: ctx, followerID, followedID
func (_m *ConsistencyUsecase) RemoveFollow(ctx context.Context, followerID string, followedID string) error {
	ret := _m.Called(ctx, followerID, followedID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, followerID, followedID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// CreateLike provides a mock function with given fields: ctx, postID, userID
func (_m *ConsistencyUsecase) CreateLike(ctx context.Context, postID string, userID string) (domain.Like, error) {
	ret := _m.Called(ctx, postID, userID)

	var r0 domain.Like
	if rf, ok := ret.Get(0).(func(context.Context, string, string) domain.Like); ok {
		r0 = rf(ctx, postID, userID)
	} else {
		r0 = ret.Get(0).(domain.Like)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, postID, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RemoveLike provides a mock function with given fields: ctx, postID, userID
func (_m *ConsistencyUsecase) RemoveLike(ctx context.Context, postID string, userID string) error {
	ret := _m.Called(ctx, postID, userID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, postID, userID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// CreateCollection provides a mock function with given fields: ctx, title, ownerID
func (_m *ConsistencyUsecase) CreateCollection(ctx context.Context, title string, ownerID string) (domain.Collection, error) {
	ret := _m.Called(ctx, title, ownerID)

	var r0 domain.Collection
	if rf, ok := ret.Get(0).(func(context.Context, string, string) domain.Collection); ok {
		r0 = rf(ctx, title, ownerID)
	} else {
		r0 = ret.Get(0).(domain.Collection)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, title, ownerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteCollection provides a mock function with given fields: ctx, title, ownerID
func (_m *ConsistencyUsecase) DeleteCollection(ctx context.Context, title string, ownerID string) error {
	ret := _m.Called(ctx, title, ownerID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, title, ownerID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// AddPost provides a mock function with given fields: ctx, title, ownerID, postID
func (_m *ConsistencyUsecase) AddPost(ctx context.Context, title string, ownerID string, postID string) (domain.Collection, error) {
	ret := _m.Called(ctx, title, ownerID, postID)

	var r0 domain.Collection
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) domain.Collection); ok {
		r0 = rf(ctx, title, ownerID, postID)
	} else {
		r0 = ret.Get(0).(domain.Collection)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string, string) error); ok {
		r1 = rf(ctx, title, ownerID, postID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RemovePost provides a mock function with given fields: ctx, title, ownerID, postID
func (_m *ConsistencyUsecase) RemovePost(ctx context.Context, title string, ownerID string, postID string) (domain.Collection, error) {
	ret := _m.Called(ctx, title, ownerID, postID)

	var r0 domain.Collection
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) domain.Collection); ok {
		r0 = rf(ctx, title, ownerID, postID)
	} else {
		r0 = ret.Get(0).(domain.Collection)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string, string) error); ok {
		r1 = rf(ctx, title, ownerID, postID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Filter provides a mock function with given fields: ctx, c
func (_m *ConsistencyUsecase) Filter(ctx context.Context, c domain.Collection) (domain.Collection, error) {
	ret := _m.Called(ctx, c)

	var r0 domain.Collection
	if rf, ok := ret.Get(0).(func(context.Context, domain.Collection) domain.Collection); ok {
		r0 = rf(ctx, c)
	} else {
		r0 = ret.Get(0).(domain.Collection)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.Collection) error); ok {
		r1 = rf(ctx, c)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

var _ domain.ConsistencyUsecase = (*ConsistencyUsecase)(nil)
