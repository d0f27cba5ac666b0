package mocks

import (
	mock "github.com/stretchr/testify/mock"
	models "github.com/wheelibin/lightify/internal/models"
)

// MockApiLightController is a mock type for the api.lightController type
type MockApiLightController struct {
	mock.Mock
}

// TurnOff provides a mock function with given fields: id, opts
func (_m *MockApiLightController) TurnOff(id string, opts models.Options) (models.LightState, error) {
	ret := _m.Called(id, opts)

	var r0 models.LightState
	var r1 error
	if rf, ok := ret.Get(0).(func(string, models.Options) (models.LightState, error)); ok {
		return rf(id, opts)
	}
	if rf, ok := ret.Get(0).(func(string, models.Options) models.LightState); ok {
		r0 = rf(id, opts)
	} else {
		r0 = ret.Get(0).(models.LightState)
	}

	if rf, ok := ret.Get(1).(func(string, models.Options) error); ok {
		r1 = rf(id, opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// TurnOn provides a mock function with given fields: id, opts
func (_m *MockApiLightController) TurnOn(id string, opts models.Options) (models.LightState, error) {
	ret := _m.Called(id, opts)

	var r0 models.LightState
	var r1 error
	if rf, ok := ret.Get(0).(func(string, models.Options) (models.LightState, error)); ok {
		return rf(id, opts)
	}
	if rf, ok := ret.Get(0).(func(string, models.Options) models.LightState); ok {
		r0 = rf(id, opts)
	} else {
		r0 = ret.Get(0).(models.LightState)
	}

	if rf, ok := ret.Get(1).(func(string, models.Options) error); ok {
		r1 = rf(id, opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockApiLightController creates a new instance of MockApiLightController. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockApiLightController(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockApiLightController {
	mock := &MockApiLightController{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
