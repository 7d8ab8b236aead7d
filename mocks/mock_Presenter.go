package mocks

import (
	"context"
	"github.com/jsamuelsen11/initiative-tracker/internal/ports"
	mock "github.com/stretchr/testify/mock"
)

// MockPresenter is a mock type for the Presenter type
type MockPresenter struct {
	mock.Mock
}

type MockPresenter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPresenter) EXPECT() *MockPresenter_Expecter {
	return &MockPresenter_Expecter{mock: &_m.Mock}
}

// Notify provides a mock function with given fields: ctx, n
func (_m *MockPresenter) Notify(ctx context.Context, n ports.Notification) {
	_m.Called(ctx, n)
}

// MockPresenter_Notify_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Notify'
type MockPresenter_Notify_Call struct {
	*mock.Call
}

// Notify is a helper method to define mock.On call
//   - ctx context.Context
//   - n ports.Notification
func (_e *MockPresenter_Expecter) Notify(ctx interface{}, n interface{}) *MockPresenter_Notify_Call {
	return &MockPresenter_Notify_Call{Call: _e.mock.On("Notify", ctx, n)}
}

func (_c *MockPresenter_Notify_Call) Run(run func(ctx context.Context, n ports.Notification)) *MockPresenter_Notify_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(ports.Notification))
	})
	return _c
}

func (_c *MockPresenter_Notify_Call) Return() *MockPresenter_Notify_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockPresenter_Notify_Call) RunAndReturn(run func(context.Context, ports.Notification)) *MockPresenter_Notify_Call {
	_c.Run(run)
	return _c
}

// NewMockPresenter creates a new instance of MockPresenter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPresenter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPresenter {
	mock := &MockPresenter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
