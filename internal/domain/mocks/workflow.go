// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	context "context"

	domain "github.com/RickarySanchez/RusticFourier/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockWorkflow is a mock type for the Workflow type
type MockWorkflow struct {
	mock.Mock
}

// Load provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Load(ctx context.Context, args domain.LoadArgs) error {
	ret := _m.Called(ctx, args)

	return ret.Error(0)
}

// Resolve provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Resolve(ctx context.Context, args domain.ResolveArgs) error {
	ret := _m.Called(ctx, args)

	return ret.Error(0)
}

// Root provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Root(ctx context.Context, args domain.RootArgs) error {
	ret := _m.Called(ctx, args)

	return ret.Error(0)
}

// Scan provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Scan(ctx context.Context, args domain.ScanArgs) error {
	ret := _m.Called(ctx, args)

	return ret.Error(0)
}

// View provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) View(ctx context.Context, args domain.ViewArgs) error {
	ret := _m.Called(ctx, args)

	return ret.Error(0)
}

// NewMockWorkflow creates a new instance of MockWorkflow. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mock := &MockWorkflow{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
