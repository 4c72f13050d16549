package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/fritter/domain"
)

// FollowRepository is a mock type for the domain.FollowRepository type
type FollowRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, f
func (_m *FollowRepository) Create(ctx context.Context, f *domain.Follow) error {
	ret := _m.Called(ctx, f)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Follow) error); ok {
		r0 = rf(ctx, f)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *FollowRepository) FindByID(ctx context.Context, id string) (domain.Follow, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.Follow
	if rf, ok := ret.Get(0).(func(context.Context, string) domain.Follow); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(domain.Follow)
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
func (_m *FollowRepository) FindOne(ctx context.Context, f domain.FollowFilter) (domain.Follow, error) {
	ret := _m.Called(ctx, f)

	var r0 domain.Follow
	if rf, ok := ret.Get(0).(func(context.Context, domain.FollowFilter) domain.Follow); ok {
		r0 = rf(ctx, f)
	} else {
		r0 = ret.Get(0).(domain.Follow)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.FollowFilter) error); ok {
		r1 = rf(ctx, f)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindMany provides a mock function with given fields: ctx, f
func (_m *FollowRepository) FindMany(ctx context.Context, f domain.FollowFilter) ([]domain.Follow, error) {
	ret := _m.Called(ctx, f)

	var r0 []domain.Follow
	if rf, ok := ret.Get(0).(func(context.Context, domain.FollowFilter) []domain.Follow); ok {
		r0 = rf(ctx, f)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Follow)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.FollowFilter) error); ok {
		r1 = rf(ctx, f)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteByID provides a mock function with given fields: ctx, id
func (_m *FollowRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
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
func (_m *FollowRepository) DeleteMany(ctx context.Context, f domain.FollowFilter) (int64, error) {
	ret := _m.Called(ctx, f)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, domain.FollowFilter) int64); ok {
		r0 = rf(ctx, f)
	} else {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.FollowFilter) error); ok {
		r1 = rf(ctx, f)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

var _ domain.FollowRepository = (*FollowRepository)(nil)
