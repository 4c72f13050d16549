package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/fritter/domain"
)

// CollectionRepository is a mock type for the domain.CollectionRepository type
type CollectionRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, c
func (_m *CollectionRepository) Create(ctx context.Context, c *domain.Collection) error {
	ret := _m.Called(ctx, c)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Collection) error); ok {
		r0 = rf(ctx, c)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *CollectionRepository) FindByID(ctx context.Context, id string) (domain.Collection, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.Collection
	if rf, ok := ret.Get(0).(func(context.Context, string) domain.Collection); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(domain.Collection)
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
func (_m *CollectionRepository) FindOne(ctx context.Context, f domain.CollectionFilter) (domain.Collection, error) {
	ret := _m.Called(ctx, f)

	var r0 domain.Collection
	if rf, ok := ret.Get(0).(func(context.Context, domain.CollectionFilter) domain.Collection); ok {
		r0 = rf(ctx, f)
	} else {
		r0 = ret.Get(0).(domain.Collection)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.CollectionFilter) error); ok {
		r1 = rf(ctx, f)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindMany provides a mock function with given fields: ctx, f
func (_m *CollectionRepository) FindMany(ctx context.Context, f domain.CollectionFilter) ([]domain.Collection, error) {
	ret := _m.Called(ctx, f)

	var r0 []domain.Collection
	if rf, ok := ret.Get(0).(func(context.Context, domain.CollectionFilter) []domain.Collection); ok {
		r0 = rf(ctx, f)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Collection)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.CollectionFilter) error); ok {
		r1 = rf(ctx, f)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateByID provides a mock function with given fields: ctx, id, p
func (_m *CollectionRepository) UpdateByID(ctx context.Context, id string, p domain.CollectionPatch) (domain.Collection, error) {
	ret := _m.Called(ctx, id, p)

	var r0 domain.Collection
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.CollectionPatch) domain.Collection); ok {
		r0 = rf(ctx, id, p)
	} else {
		r0 = ret.Get(0).(domain.Collection)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, domain.CollectionPatch) error); ok {
		r1 = rf(ctx, id, p)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteByID provides a mock function with given fields: ctx, id
func (_m *CollectionRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
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
func (_m *CollectionRepository) DeleteMany(ctx context.Context, f domain.CollectionFilter) (int64, error) {
	ret := _m.Called(ctx, f)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, domain.CollectionFilter) int64); ok {
		r0 = rf(ctx, f)
	} else {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.CollectionFilter) error); ok {
		r1 = rf(ctx, f)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

var _ domain.CollectionRepository = (*CollectionRepository)(nil)
