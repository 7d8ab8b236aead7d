package mocks

import (
	"context"
	"github.com/jsamuelsen11/initiative-tracker/internal/domain/actor"
	"github.com/jsamuelsen11/initiative-tracker/internal/ports"
	mock "github.com/stretchr/testify/mock"
)

// MockTrackerService is a mock type for the TrackerService type
type MockTrackerService struct {
	mock.Mock
}

type MockTrackerService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTrackerService) EXPECT() *MockTrackerService_Expecter {
	return &MockTrackerService_Expecter{mock: &_m.Mock}
}

// Activate provides a mock function with given fields: ctx, id
func (_m *MockTrackerService) Activate(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Activate")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockTrackerService_Activate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Activate'
type MockTrackerService_Activate_Call struct {
	*mock.Call
}

// Activate is a helper method to define mock.On call
//   - ctx context.Context
//   - id string
func (_e *MockTrackerService_Expecter) Activate(ctx interface{}, id interface{}) *MockTrackerService_Activate_Call {
	return &MockTrackerService_Activate_Call{Call: _e.mock.On("Activate", ctx, id)}
}

func (_c *MockTrackerService_Activate_Call) Run(run func(ctx context.Context, id string)) *MockTrackerService_Activate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockTrackerService_Activate_Call) Return(_a0 error) *MockTrackerService_Activate_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTrackerService_Activate_Call) RunAndReturn(run func(context.Context, string) error) *MockTrackerService_Activate_Call {
	_c.Call.Return(run)
	return _c
}

// AddCondition provides a mock function with given fields: ctx, id, label
func (_m *MockTrackerService) AddCondition(ctx context.Context, id string, label string) (actor.Actor, error) {
	ret := _m.Called(ctx, id, label)

	if len(ret) == 0 {
		panic("no return value specified for AddCondition")
	}

	var r0 actor.Actor
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (actor.Actor, error)); ok {
		return rf(ctx, id, label)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) actor.Actor); ok {
		r0 = rf(ctx, id, label)
	} else {
		r0 = ret.Get(0).(actor.Actor)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, id, label)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTrackerService_AddCondition_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AddCondition'
type MockTrackerService_AddCondition_Call struct {
	*mock.Call
}

// AddCondition is a helper method to define mock.On call
//   - ctx context.Context
//   - id string
//   - label string
func (_e *MockTrackerService_Expecter) AddCondition(ctx interface{}, id interface{}, label interface{}) *MockTrackerService_AddCondition_Call {
	return &MockTrackerService_AddCondition_Call{Call: _e.mock.On("AddCondition", ctx, id, label)}
}

func (_c *MockTrackerService_AddCondition_Call) Run(run func(ctx context.Context, id string, label string)) *MockTrackerService_AddCondition_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockTrackerService_AddCondition_Call) Return(_a0 actor.Actor, _a1 error) *MockTrackerService_AddCondition_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTrackerService_AddCondition_Call) RunAndReturn(run func(context.Context, string, string) (actor.Actor, error)) *MockTrackerService_AddCondition_Call {
	_c.Call.Return(run)
	return _c
}

// ClearConditions provides a mock function with given fields: ctx, id
func (_m *MockTrackerService) ClearConditions(ctx context.Context, id string) (actor.Actor, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for ClearConditions")
	}

	var r0 actor.Actor
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (actor.Actor, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) actor.Actor); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(actor.Actor)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTrackerService_ClearConditions_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ClearConditions'
type MockTrackerService_ClearConditions_Call struct {
	*mock.Call
}

// ClearConditions is a helper method to define mock.On call
//   - ctx context.Context
//   - id string
func (_e *MockTrackerService_Expecter) ClearConditions(ctx interface{}, id interface{}) *MockTrackerService_ClearConditions_Call {
	return &MockTrackerService_ClearConditions_Call{Call: _e.mock.On("ClearConditions", ctx, id)}
}

func (_c *MockTrackerService_ClearConditions_Call) Run(run func(ctx context.Context, id string)) *MockTrackerService_ClearConditions_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockTrackerService_ClearConditions_Call) Return(_a0 actor.Actor, _a1 error) *MockTrackerService_ClearConditions_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTrackerService_ClearConditions_Call) RunAndReturn(run func(context.Context, string) (actor.Actor, error)) *MockTrackerService_ClearConditions_Call {
	_c.Call.Return(run)
	return _c
}

// Create provides a mock function with given fields: ctx, title
func (_m *MockTrackerService) Create(ctx context.Context, title string) (actor.Actor, error) {
	ret := _m.Called(ctx, title)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 actor.Actor
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (actor.Actor, error)); ok {
		return rf(ctx, title)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) actor.Actor); ok {
		r0 = rf(ctx, title)
	} else {
		r0 = ret.Get(0).(actor.Actor)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, title)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTrackerService_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockTrackerService_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - title string
func (_e *MockTrackerService_Expecter) Create(ctx interface{}, title interface{}) *MockTrackerService_Create_Call {
	return &MockTrackerService_Create_Call{Call: _e.mock.On("Create", ctx, title)}
}

func (_c *MockTrackerService_Create_Call) Run(run func(ctx context.Context, title string)) *MockTrackerService_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockTrackerService_Create_Call) Return(_a0 actor.Actor, _a1 error) *MockTrackerService_Create_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTrackerService_Create_Call) RunAndReturn(run func(context.Context, string) (actor.Actor, error)) *MockTrackerService_Create_Call {
	_c.Call.Return(run)
	return _c
}

// Destroy provides a mock function with given fields: ctx, id
func (_m *MockTrackerService) Destroy(ctx context.Context, id string) error {
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

// MockTrackerService_Destroy_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Destroy'
type MockTrackerService_Destroy_Call struct {
	*mock.Call
}

// Destroy is a helper method to define mock.On call
//   - ctx context.Context
//   - id string
func (_e *MockTrackerService_Expecter) Destroy(ctx interface{}, id interface{}) *MockTrackerService_Destroy_Call {
	return &MockTrackerService_Destroy_Call{Call: _e.mock.On("Destroy", ctx, id)}
}

func (_c *MockTrackerService_Destroy_Call) Run(run func(ctx context.Context, id string)) *MockTrackerService_Destroy_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockTrackerService_Destroy_Call) Return(_a0 error) *MockTrackerService_Destroy_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTrackerService_Destroy_Call) RunAndReturn(run func(context.Context, string) error) *MockTrackerService_Destroy_Call {
	_c.Call.Return(run)
	return _c
}

// Get provides a mock function with given fields: ctx, id
func (_m *MockTrackerService) Get(ctx context.Context, id string) (actor.Actor, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 actor.Actor
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (actor.Actor, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) actor.Actor); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(actor.Actor)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTrackerService_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockTrackerService_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - ctx context.Context
//   - id string
func (_e *MockTrackerService_Expecter) Get(ctx interface{}, id interface{}) *MockTrackerService_Get_Call {
	return &MockTrackerService_Get_Call{Call: _e.mock.On("Get", ctx, id)}
}

func (_c *MockTrackerService_Get_Call) Run(run func(ctx context.Context, id string)) *MockTrackerService_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockTrackerService_Get_Call) Return(_a0 actor.Actor, _a1 error) *MockTrackerService_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTrackerService_Get_Call) RunAndReturn(run func(context.Context, string) (actor.Actor, error)) *MockTrackerService_Get_Call {
	_c.Call.Return(run)
	return _c
}

// RemoveCondition provides a mock function with given fields: ctx, id, label
func (_m *MockTrackerService) RemoveCondition(ctx context.Context, id string, label string) (actor.Actor, error) {
	ret := _m.Called(ctx, id, label)

	if len(ret) == 0 {
		panic("no return value specified for RemoveCondition")
	}

	var r0 actor.Actor
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (actor.Actor, error)); ok {
		return rf(ctx, id, label)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) actor.Actor); ok {
		r0 = rf(ctx, id, label)
	} else {
		r0 = ret.Get(0).(actor.Actor)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, id, label)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTrackerService_RemoveCondition_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RemoveCondition'
type MockTrackerService_RemoveCondition_Call struct {
	*mock.Call
}

// RemoveCondition is a helper method to define mock.On call
//   - ctx context.Context
//   - id string
//   - label string
func (_e *MockTrackerService_Expecter) RemoveCondition(ctx interface{}, id interface{}, label interface{}) *MockTrackerService_RemoveCondition_Call {
	return &MockTrackerService_RemoveCondition_Call{Call: _e.mock.On("RemoveCondition", ctx, id, label)}
}

func (_c *MockTrackerService_RemoveCondition_Call) Run(run func(ctx context.Context, id string, label string)) *MockTrackerService_RemoveCondition_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockTrackerService_RemoveCondition_Call) Return(_a0 actor.Actor, _a1 error) *MockTrackerService_RemoveCondition_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTrackerService_RemoveCondition_Call) RunAndReturn(run func(context.Context, string, string) (actor.Actor, error)) *MockTrackerService_RemoveCondition_Call {
	_c.Call.Return(run)
	return _c
}

// Rename provides a mock function with given fields: ctx, id, title
func (_m *MockTrackerService) Rename(ctx context.Context, id string, title string) (actor.Actor, bool, error) {
	ret := _m.Called(ctx, id, title)

	if len(ret) == 0 {
		panic("no return value specified for Rename")
	}

	var r0 actor.Actor
	var r1 bool
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (actor.Actor, bool, error)); ok {
		return rf(ctx, id, title)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) actor.Actor); ok {
		r0 = rf(ctx, id, title)
	} else {
		r0 = ret.Get(0).(actor.Actor)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) bool); ok {
		r1 = rf(ctx, id, title)
	} else {
		r1 = ret.Get(1).(bool)
	}

	if rf, ok := ret.Get(2).(func(context.Context, string, string) error); ok {
		r2 = rf(ctx, id, title)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockTrackerService_Rename_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Rename'
type MockTrackerService_Rename_Call struct {
	*mock.Call
}

// Rename is a helper method to define mock.On call
//   - ctx context.Context
//   - id string
//   - title string
func (_e *MockTrackerService_Expecter) Rename(ctx interface{}, id interface{}, title interface{}) *MockTrackerService_Rename_Call {
	return &MockTrackerService_Rename_Call{Call: _e.mock.On("Rename", ctx, id, title)}
}

func (_c *MockTrackerService_Rename_Call) Run(run func(ctx context.Context, id string, title string)) *MockTrackerService_Rename_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockTrackerService_Rename_Call) Return(_a0 actor.Actor, _a1 bool, _a2 error) *MockTrackerService_Rename_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockTrackerService_Rename_Call) RunAndReturn(run func(context.Context, string, string) (actor.Actor, bool, error)) *MockTrackerService_Rename_Call {
	_c.Call.Return(run)
	return _c
}

// Rotate provides a mock function with given fields: ctx, id
func (_m *MockTrackerService) Rotate(ctx context.Context, id string) (actor.Actor, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Rotate")
	}

	var r0 actor.Actor
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (actor.Actor, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) actor.Actor); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(actor.Actor)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTrackerService_Rotate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Rotate'
type MockTrackerService_Rotate_Call struct {
	*mock.Call
}

// Rotate is a helper method to define mock.On call
//   - ctx context.Context
//   - id string
func (_e *MockTrackerService_Expecter) Rotate(ctx interface{}, id interface{}) *MockTrackerService_Rotate_Call {
	return &MockTrackerService_Rotate_Call{Call: _e.mock.On("Rotate", ctx, id)}
}

func (_c *MockTrackerService_Rotate_Call) Run(run func(ctx context.Context, id string)) *MockTrackerService_Rotate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockTrackerService_Rotate_Call) Return(_a0 actor.Actor, _a1 error) *MockTrackerService_Rotate_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTrackerService_Rotate_Call) RunAndReturn(run func(context.Context, string) (actor.Actor, error)) *MockTrackerService_Rotate_Call {
	_c.Call.Return(run)
	return _c
}

// Select provides a mock function with given fields: ctx, id
func (_m *MockTrackerService) Select(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Select")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockTrackerService_Select_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Select'
type MockTrackerService_Select_Call struct {
	*mock.Call
}

// Select is a helper method to define mock.On call
//   - ctx context.Context
//   - id string
func (_e *MockTrackerService_Expecter) Select(ctx interface{}, id interface{}) *MockTrackerService_Select_Call {
	return &MockTrackerService_Select_Call{Call: _e.mock.On("Select", ctx, id)}
}

func (_c *MockTrackerService_Select_Call) Run(run func(ctx context.Context, id string)) *MockTrackerService_Select_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockTrackerService_Select_Call) Return(_a0 error) *MockTrackerService_Select_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTrackerService_Select_Call) RunAndReturn(run func(context.Context, string) error) *MockTrackerService_Select_Call {
	_c.Call.Return(run)
	return _c
}

// SetOrder provides a mock function with given fields: ctx, id, order
func (_m *MockTrackerService) SetOrder(ctx context.Context, id string, order int) (actor.Actor, error) {
	ret := _m.Called(ctx, id, order)

	if len(ret) == 0 {
		panic("no return value specified for SetOrder")
	}

	var r0 actor.Actor
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int) (actor.Actor, error)); ok {
		return rf(ctx, id, order)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int) actor.Actor); ok {
		r0 = rf(ctx, id, order)
	} else {
		r0 = ret.Get(0).(actor.Actor)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, int) error); ok {
		r1 = rf(ctx, id, order)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTrackerService_SetOrder_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetOrder'
type MockTrackerService_SetOrder_Call struct {
	*mock.Call
}

// SetOrder is a helper method to define mock.On call
//   - ctx context.Context
//   - id string
//   - order int
func (_e *MockTrackerService_Expecter) SetOrder(ctx interface{}, id interface{}, order interface{}) *MockTrackerService_SetOrder_Call {
	return &MockTrackerService_SetOrder_Call{Call: _e.mock.On("SetOrder", ctx, id, order)}
}

func (_c *MockTrackerService_SetOrder_Call) Run(run func(ctx context.Context, id string, order int)) *MockTrackerService_SetOrder_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int))
	})
	return _c
}

func (_c *MockTrackerService_SetOrder_Call) Return(_a0 actor.Actor, _a1 error) *MockTrackerService_SetOrder_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTrackerService_SetOrder_Call) RunAndReturn(run func(context.Context, string, int) (actor.Actor, error)) *MockTrackerService_SetOrder_Call {
	_c.Call.Return(run)
	return _c
}

// Snapshot provides a mock function with given fields: ctx
func (_m *MockTrackerService) Snapshot(ctx context.Context) ports.Snapshot {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Snapshot")
	}

	var r0 ports.Snapshot
	if rf, ok := ret.Get(0).(func(context.Context) ports.Snapshot); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(ports.Snapshot)
	}

	return r0
}

// MockTrackerService_Snapshot_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Snapshot'
type MockTrackerService_Snapshot_Call struct {
	*mock.Call
}

// Snapshot is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockTrackerService_Expecter) Snapshot(ctx interface{}) *MockTrackerService_Snapshot_Call {
	return &MockTrackerService_Snapshot_Call{Call: _e.mock.On("Snapshot", ctx)}
}

func (_c *MockTrackerService_Snapshot_Call) Run(run func(ctx context.Context)) *MockTrackerService_Snapshot_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockTrackerService_Snapshot_Call) Return(_a0 ports.Snapshot) *MockTrackerService_Snapshot_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTrackerService_Snapshot_Call) RunAndReturn(run func(context.Context) ports.Snapshot) *MockTrackerService_Snapshot_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTrackerService creates a new instance of MockTrackerService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTrackerService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTrackerService {
	mock := &MockTrackerService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
