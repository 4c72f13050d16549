package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/fritter/domain"
)

// UserRepository is a mock type for the domain.UserRepository type
type UserRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, u
func (_m *UserRepository) Create(ctx context.Context, u *domain.User) error {
	ret := _m.Called(ctx, u)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.User) error); ok {
		r0 = rf(ctx, u)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.User
	if rf, ok := ret.Get(0).(func(context.Context, string) domain.User); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(domain.User)
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
func (_m *UserRepository) FindOne(ctx context.Context, f domain.UserFilter) (domain.User, error) {
	ret := _m.Called(ctx, f)

	var r0 domain.User
	if rf, ok := ret.Get(0).(func(context.Context, domain.UserFilter) domain.User); ok {
		r0 = rf(ctx, f)
	} else {
		r0 = ret.Get(0).(domain.User)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.UserFilter) error); ok {
		r1 = rf(ctx, f)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindMany provides a mock function with given fields: ctx, f
func (_m *UserRepository) FindMany(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	ret := _m.Called(ctx, f)

	var r0 []domain.User
	if rf, ok := ret.Get(0).(func(context.Context, domain.UserFilter) []domain.User); ok {
		r0 = rf(ctx, f)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.User)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.UserFilter) error); ok {
		r1 = rf(ctx, f)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateByID provides a mock function with given fields: ctx, id, p
func (_m *UserRepository) UpdateByID(ctx context.Context, id string, p domain.UserPatch) (domain.User, error) {
	ret := _m.Called(ctx, id, p)

	var r0 domain.User
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.UserPatch) domain.User); ok {
		r0 = rf(ctx, id, p)
	} else {
		r0 = ret.Get(0).(domain.User)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, domain.UserPatch) error); ok {
		r1 = rf(ctx, id, p)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteByID provides a mock function with given fields: ctx, id
func (_m *UserRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
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
func (_m *UserRepository) DeleteMany(ctx context.Context, f domain.UserFilter) (int64, error) {
	ret := _m.Called(ctx, f)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, domain.UserFilter) int64); ok {
		r0 = rf(ctx, f)
	} else {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.UserFilter) error); ok {
		r1 = rf(ctx, f)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

var _ domain.UserRepository = (*UserRepository)(nil)
