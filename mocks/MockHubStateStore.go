package mocks

import (
	mock "github.com/stretchr/testify/mock"
	models "github.com/wheelibin/lightify/internal/models"
)

// MockHubStateStore is a mock type for the hub.stateStore type
type MockHubStateStore struct {
	mock.Mock
}

// Upsert provides a mock function with given fields: state
func (_m *MockHubStateStore) Upsert(state models.LightState) error {
	ret := _m.Called(state)

	var r0 error
	if rf, ok := ret.Get(0).(func(models.LightState) error); ok {
		r0 = rf(state)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockHubStateStore creates a new instance of MockHubStateStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockHubStateStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHubStateStore {
	mock := &MockHubStateStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
