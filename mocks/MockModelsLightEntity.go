package mocks

import (
	mock "github.com/stretchr/testify/mock"
	models "github.com/wheelibin/lightify/internal/models"
)

// MockModelsLightEntity is a mock type for the models.LightEntity type
type MockModelsLightEntity struct {
	mock.Mock
}

// ID provides a mock function with given fields:
func (_m *MockModelsLightEntity) ID() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// State provides a mock function with given fields:
func (_m *MockModelsLightEntity) State() (models.LightState, error) {
	ret := _m.Called()

	var r0 models.LightState
	var r1 error
	if rf, ok := ret.Get(0).(func() (models.LightState, error)); ok {
		return rf()
	}
	if rf, ok := ret.Get(0).(func() models.LightState); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(models.LightState)
	}

	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// TurnOn provides a mock function with given fields: opts
func (_m *MockModelsLightEntity) TurnOn(opts models.Options) error {
	ret := _m.Called(opts)

	var r0 error
	if rf, ok := ret.Get(0).(func(models.Options) error); ok {
		r0 = rf(opts)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// TurnOff provides a mock function with given fields: opts
func (_m *MockModelsLightEntity) TurnOff(opts models.Options) error {
	ret := _m.Called(opts)

	var r0 error
	if rf, ok := ret.Get(0).(func(models.Options) error); ok {
		r0 = rf(opts)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Update provides a mock function with given fields:
func (_m *MockModelsLightEntity) Update() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockModelsLightEntity creates a new instance of MockModelsLightEntity. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockModelsLightEntity(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockModelsLightEntity {
	mock := &MockModelsLightEntity{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
