package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/fritter/domain"
)

// PostRepository is a mock type for the domain.PostRepository type
type PostRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, p
func (_m *PostRepository) Create(ctx context.Context, p *domain.Post) error {
	ret := _m.Called(ctx, p)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Post) error); ok {
		r0 = rf(ctx, p)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *PostRepository) FindByID(ctx context.Context, id string) (domain.Post, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.Post
	if rf, ok := ret.Get(0).(func(context.Context, string) domain.Post); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(domain.Post)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindOne provides a mock function with given fields: ctx, f
func (_m *PostRepository) FindOne(ctx context.Context, f domain.PostFilter) (domain.Post, error) {
	ret := _m.Called(ctx, f)

	var r0 domain.Post
	if rf, ok := ret.Get(0).(func(context.Context, domain.PostFilter) domain.Post); ok {
		r0 = rf(ctx, f)
	} else {
		r0 = ret.Get(0).(domain.Post)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.PostFilter) error); ok {
		r1 = rf(ctx, f)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindMany provides a mock function with given fields: ctx, f
func (_m *PostRepository) FindMany(ctx context.Context, f domain.PostFilter) ([]domain.Post, error) {
	ret := _m.Called(ctx, f)

	var r0 []domain.Post
	if rf, ok := ret.Get(0).(func(context.Context, domain.PostFilter) []domain.Post); ok {
		r0 = rf(ctx, f)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Post)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.PostFilter) error); ok {
		r1 = rf(ctx, f)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateByID provides a mock function with given fields: ctx, id, p
func (_m *PostRepository) UpdateByID(ctx context.Context, id string, p domain.PostPatch) (domain.Post, error) {
	ret := _m.Called(ctx, id, p)

	var r0 domain.Post
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.PostPatch) domain.Post); ok {
		r0 = rf(ctx, id, p)
	} else {
		r0 = ret.Get(0).(domain.Post)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, domain.PostPatch) error); ok {
		r1 = rf(ctx, id, p)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteByID provides a mock function with given fields: ctx, id
func (_m *PostRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	ret := _m.Called(ctx, id)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, string) bool); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteMany provides a mock function with given fields: ctx, f
func (_m *PostRepository) DeleteMany(ctx context.Context, f domain.PostFilter) (int64, error) {
	ret := _m.Called(ctx, f)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, domain.PostFilter) int64); ok {
		r0 = rf(ctx, f)
	} else {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.PostFilter) error); ok {
		r1 = rf(ctx, f)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FetchIDs provides a mock function with given fields: ctx, after, limit
func (_m *PostRepository) FetchIDs(ctx context.Context, after int64, limit int) ([]string, int64, error) {
	ret := _m.Called(ctx, after, limit)

	var r0 []string
	if rf, ok := ret.Get(0).(func(context.Context, int64, int) []string); ok {
		r0 = rf(ctx, after, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}

	var r1 int64
	if rf, ok := ret.Get(1).(func(context.Context, int64, int) int64); ok {
		r1 = rf(ctx, after, limit)
	} else {
		r1 = ret.Get(1).(int64)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func(context.Context, int64, int) error); ok {
		r2 = rf(ctx, after, limit)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

var _ domain.PostRepository = (*PostRepository)(nil)
