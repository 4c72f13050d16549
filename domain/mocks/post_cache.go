package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/fritter/domain"
)

// PostCache is a mock type for the domain.PostCache type
type PostCache struct {
	mock.Mock
}

// GetPost provides a mock function with given fields: ctx, id
func (_m *PostCache) GetPost(ctx context.Context, id string) (domain.Post, bool, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.Post
	if rf, ok := ret.Get(0).(func(context.Context, string) domain.Post); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(domain.Post)
	}

	var r1 bool
	if rf, ok := ret.Get(1).(func(context.Context, string) bool); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Get(1).(bool)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func(context.Context, string) error); ok {
		r2 = rf(ctx, id)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// GetPosts provides a mock function with given fields: ctx, ids
func (_m *PostCache) GetPosts(ctx context.Context, ids []string) (map[string]domain.Post, error) {
	ret := _m.Called(ctx, ids)

	var r0 map[string]domain.Post
	if rf, ok := ret.Get(0).(func(context.Context, []string) map[string]domain.Post); ok {
		r0 = rf(ctx, ids)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]domain.Post)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, []string) error); ok {
		r1 = rf(ctx, ids)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetPost provides a mock function with given fields: ctx, p
func (_m *PostCache) SetPost(ctx context.Context, p domain.Post) error {
	ret := _m.Called(ctx, p)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Post) error); ok {
		r0 = rf(ctx, p)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// BatchSetPost provides a mock function with given fields: ctx, ps
func (_m *PostCache) BatchSetPost(ctx context.Context, ps []domain.Post) error {
	ret := _m.Called(ctx, ps)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []domain.Post) error); ok {
		r0 = rf(ctx, ps)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// DeletePost provides a mock function with given fields: ctx, ids
func (_m *PostCache) DeletePost(ctx context.Context, ids ...string) error {
	_ca := []any{ctx}
	for _, _v := range ids {
		_ca = append(_ca, _v)
	}
	ret := _m.Called(_ca...)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, ...string) error); ok {
		r0 = rf(ctx, ids...)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

var _ domain.PostCache = (*PostCache)(nil)
