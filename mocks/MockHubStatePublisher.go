package mocks

import (
	mock "github.com/stretchr/testify/mock"
	models "github.com/wheelibin/lightify/internal/models"
)

// MockHubStatePublisher is a mock type for the hub.statePublisher type
type MockHubStatePublisher struct {
	mock.Mock
}

// Publish provides a mock function with given fields: state
func (_m *MockHubStatePublisher) Publish(state models.LightState) error {
	ret := _m.Called(state)

	var r0 error
	if rf, ok := ret.Get(0).(func(models.LightState) error); ok {
		r0 = rf(state)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockHubStatePublisher creates a new instance of MockHubStatePublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockHubStatePublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHubStatePublisher {
	mock := &MockHubStatePublisher{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
