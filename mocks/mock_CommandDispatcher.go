package mocks

import (
	"context"
	"github.com/jsamuelsen11/initiative-tracker/internal/domain/command"
	mock "github.com/stretchr/testify/mock"
)

// MockCommandDispatcher is a mock type for the CommandDispatcher type
type MockCommandDispatcher struct {
	mock.Mock
}

type MockCommandDispatcher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCommandDispatcher) EXPECT() *MockCommandDispatcher_Expecter {
	return &MockCommandDispatcher_Expecter{mock: &_m.Mock}
}

// Dispatch provides a mock function with given fields: ctx, cmd
func (_m *MockCommandDispatcher) Dispatch(ctx context.Context, cmd command.Command) bool {
	ret := _m.Called(ctx, cmd)

	if len(ret) == 0 {
		panic("no return value specified for Dispatch")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, command.Command) bool); ok {
		r0 = rf(ctx, cmd)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// MockCommandDispatcher_Dispatch_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Dispatch'
type MockCommandDispatcher_Dispatch_Call struct {
	*mock.Call
}

// Dispatch is a helper method to define mock.On call
//   - ctx context.Context
//   - cmd command.Command
func (_e *MockCommandDispatcher_Expecter) Dispatch(ctx interface{}, cmd interface{}) *MockCommandDispatcher_Dispatch_Call {
	return &MockCommandDispatcher_Dispatch_Call{Call: _e.mock.On("Dispatch", ctx, cmd)}
}

func (_c *MockCommandDispatcher_Dispatch_Call) Run(run func(ctx context.Context, cmd command.Command)) *MockCommandDispatcher_Dispatch_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(command.Command))
	})
	return _c
}

func (_c *MockCommandDispatcher_Dispatch_Call) Return(_a0 bool) *MockCommandDispatcher_Dispatch_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockCommandDispatcher_Dispatch_Call) RunAndReturn(run func(context.Context, command.Command) bool) *MockCommandDispatcher_Dispatch_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCommandDispatcher creates a new instance of MockCommandDispatcher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCommandDispatcher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCommandDispatcher {
	mock := &MockCommandDispatcher{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
