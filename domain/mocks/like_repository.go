package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/fritter/domain"
)

// LikeRepository is a mock type for the domain.LikeRepository type
type LikeRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, l
func (_m *LikeRepository) Create(ctx context.Context, l *domain.Like) error {
	ret := _m.Called(ctx, l)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Like) error); ok {
		r0 = rf(ctx, l)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *LikeRepository) FindByID(ctx context.Context, id string) (domain.Like, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.Like
	if rf, ok := ret.Get(0).(func(context.Context, string) domain.Like); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(domain.Like)
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
func (_m *LikeRepository) FindOne(ctx context.Context, f domain.LikeFilter) (domain.Like, error) {
	ret := _m.Called(ctx, f)

	var r0 domain.Like
	if rf, ok := ret.Get(0).(func(context.Context, domain.LikeFilter) domain.Like); ok {
		r0 = rf(ctx, f)
	} else {
		r0 = ret.Get(0).(domain.Like)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.LikeFilter) error); ok {
		r1 = rf(ctx, f)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindMany provides a mock function with given fields: ctx, f
func (_m *LikeRepository) FindMany(ctx context.Context, f domain.LikeFilter) ([]domain.Like, error) {
	ret := _m.Called(ctx, f)

	var r0 []domain.Like
	if rf, ok := ret.Get(0).(func(context.Context, domain.LikeFilter) []domain.Like); ok {
		r0 = rf(ctx, f)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Like)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.LikeFilter) error); ok {
		r1 = rf(ctx, f)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteByID provides a mock function with given fields: ctx, id
func (_m *LikeRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
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
func (_m *LikeRepository) DeleteMany(ctx context.Context, f domain.LikeFilter) (int64, error) {
	ret := _m.Called(ctx, f)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, domain.LikeFilter) int64); ok {
		r0 = rf(ctx, f)
	} else {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.LikeFilter) error); ok {
		r1 = rf(ctx, f)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

var _ domain.LikeRepository = (*LikeRepository)(nil)
