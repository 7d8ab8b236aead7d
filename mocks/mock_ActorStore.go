package mocks

import (
	"context"
	"github.com/jsamuelsen11/initiative-tracker/internal/domain/actor"
	mock "github.com/stretchr/testify/mock"
)

// MockActorStore is a mock type for the ActorStore type
type MockActorStore struct {
	mock.Mock
}

type MockActorStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockActorStore) EXPECT() *MockActorStore_Expecter {
	return &MockActorStore_Expecter{mock: &_m.Mock}
}

// LoadAll provides a mock function with given fields: ctx
func (_m *MockActorStore) LoadAll(ctx context.Context) ([]actor.Actor, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for LoadAll")
	}

	var r0 []actor.Actor
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]actor.Actor, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []actor.Actor); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]actor.Actor)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockActorStore_LoadAll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LoadAll'
type MockActorStore_LoadAll_Call struct {
	*mock.Call
}

// LoadAll is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockActorStore_Expecter) LoadAll(ctx interface{}) *MockActorStore_LoadAll_Call {
	return &MockActorStore_LoadAll_Call{Call: _e.mock.On("LoadAll", ctx)}
}

func (_c *MockActorStore_LoadAll_Call) Run(run func(ctx context.Context)) *MockActorStore_LoadAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockActorStore_LoadAll_Call) Return(_a0 []actor.Actor, _a1 error) *MockActorStore_LoadAll_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockActorStore_LoadAll_Call) RunAndReturn(run func(context.Context) ([]actor.Actor, error)) *MockActorStore_LoadAll_Call {
	_c.Call.Return(run)
	return _c
}

// Save provides a mock function with given fields: ctx, a
func (_m *MockActorStore) Save(ctx context.Context, a actor.Actor) error {
	ret := _m.Called(ctx, a)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, actor.Actor) error); ok {
		r0 = rf(ctx, a)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockActorStore_Save_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Save'
type MockActorStore_Save_Call struct {
	*mock.Call
}

// Save is a helper method to define mock.On call
//   - ctx context.Context
//   - a actor.Actor
func (_e *MockActorStore_Expecter) Save(ctx interface{}, a interface{}) *MockActorStore_Save_Call {
	return &MockActorStore_Save_Call{Call: _e.mock.On("Save", ctx, a)}
}

func (_c *MockActorStore_Save_Call) Run(run func(ctx context.Context, a actor.Actor)) *MockActorStore_Save_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(actor.Actor))
	})
	return _c
}

func (_c *MockActorStore_Save_Call) Return(_a0 error) *MockActorStore_Save_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockActorStore_Save_Call) RunAndReturn(run func(context.Context, actor.Actor) error) *MockActorStore_Save_Call {
	_c.Call.Return(run)
	return _c
}

// Destroy provides a mock function with given fields: ctx, id
func (_m *MockActorStore) Destroy(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Destroy")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockActorStore_Destroy_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Destroy'
type MockActorStore_Destroy_Call struct {
	*mock.Call
}

// Destroy is a helper method to define mock.On call
//   - ctx context.Context
//   - id string
func (_e *MockActorStore_Expecter) Destroy(ctx interface{}, id interface{}) *MockActorStore_Destroy_Call {
	return &MockActorStore_Destroy_Call{Call: _e.mock.On("Destroy", ctx, id)}
}

func (_c *MockActorStore_Destroy_Call) Run(run func(ctx context.Context, id string)) *MockActorStore_Destroy_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockActorStore_Destroy_Call) Return(_a0 error) *MockActorStore_Destroy_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockActorStore_Destroy_Call) RunAndReturn(run func(context.Context, string) error) *MockActorStore_Destroy_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockActorStore creates a new instance of MockActorStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockActorStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockActorStore {
	mock := &MockActorStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
