package mocks

import (
	mock "github.com/stretchr/testify/mock"
	lightify "github.com/wheelibin/lightify/internal/lightify"
)

// MockBridgepollerBridge is a mock type for the bridgepoller.Bridge type
type MockBridgepollerBridge struct {
	mock.Mock
}

// UpdateAllLightStatus provides a mock function with given fields:
func (_m *MockBridgepollerBridge) UpdateAllLightStatus() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Lights provides a mock function with given fields:
func (_m *MockBridgepollerBridge) Lights() map[uint64]*lightify.Light {
	ret := _m.Called()

	var r0 map[uint64]*lightify.Light
	if rf, ok := ret.Get(0).(func() map[uint64]*lightify.Light); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[uint64]*lightify.Light)
	}

	return r0
}

// NewMockBridgepollerBridge creates a new instance of MockBridgepollerBridge. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockBridgepollerBridge(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBridgepollerBridge {
	mock := &MockBridgepollerBridge{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
