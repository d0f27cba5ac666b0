package mocks

import (
	mock "github.com/stretchr/testify/mock"
	models "github.com/wheelibin/lightify/internal/models"
)

// MockApiStateReader is a mock type for the api.stateReader type
type MockApiStateReader struct {
	mock.Mock
}

// Get provides a mock function with given fields: id
func (_m *MockApiStateReader) Get(id string) (models.LightState, error) {
	ret := _m.Called(id)

	var r0 models.LightState
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (models.LightState, error)); ok {
		return rf(id)
	}
	if rf, ok := ret.Get(0).(func(string) models.LightState); ok {
		r0 = rf(id)
	} else {
		r0 = ret.Get(0).(models.LightState)
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetAll provides a mock function with given fields:
func (_m *MockApiStateReader) GetAll() ([]models.LightState, error) {
	ret := _m.Called()

	var r0 []models.LightState
	var r1 error
	if rf, ok := ret.Get(0).(func() ([]models.LightState, error)); ok {
		return rf()
	}
	if rf, ok := ret.Get(0).(func() []models.LightState); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]models.LightState)
		}
	}

	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockApiStateReader creates a new instance of MockApiStateReader. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockApiStateReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockApiStateReader {
	mock := &MockApiStateReader{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
