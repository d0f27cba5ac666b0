package mocks

import mock "github.com/stretchr/testify/mock"

// MockLightsBulb is a mock type for the lights.bulb type
type MockLightsBulb struct {
	mock.Mock
}

// Name provides a mock function with given fields:
func (_m *MockLightsBulb) Name() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// On provides a mock function with given fields:
func (_m *MockLightsBulb) On() bool {
	ret := _m.Called()

	var r0 bool
	if rf, ok := ret.Get(0).(func() bool); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// Lum provides a mock function with given fields:
func (_m *MockLightsBulb) Lum() int {
	ret := _m.Called()

	var r0 int
	if rf, ok := ret.Get(0).(func() int); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(int)
	}

	return r0
}

// Temp provides a mock function with given fields:
func (_m *MockLightsBulb) Temp() int {
	ret := _m.Called()

	var r0 int
	if rf, ok := ret.Get(0).(func() int); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(int)
	}

	return r0
}

// RGB provides a mock function with given fields:
func (_m *MockLightsBulb) RGB() (uint8, uint8, uint8) {
	ret := _m.Called()

	var r0, r1, r2 uint8
	if rf, ok := ret.Get(0).(func() (uint8, uint8, uint8)); ok {
		return rf()
	}
	r0 = ret.Get(0).(uint8)
	r1 = ret.Get(1).(uint8)
	r2 = ret.Get(2).(uint8)

	return r0, r1, r2
}

// SetOnOff provides a mock function with given fields: on
func (_m *MockLightsBulb) SetOnOff(on bool) error {
	ret := _m.Called(on)

	var r0 error
	if rf, ok := ret.Get(0).(func(bool) error); ok {
		r0 = rf(on)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetLuminance provides a mock function with given fields: lum, time
func (_m *MockLightsBulb) SetLuminance(lum int, time int) error {
	ret := _m.Called(lum, time)

	var r0 error
	if rf, ok := ret.Get(0).(func(int, int) error); ok {
		r0 = rf(lum, time)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetTemperature provides a mock function with given fields: kelvin, time
func (_m *MockLightsBulb) SetTemperature(kelvin int, time int) error {
	ret := _m.Called(kelvin, time)

	var r0 error
	if rf, ok := ret.Get(0).(func(int, int) error); ok {
		r0 = rf(kelvin, time)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetRGB provides a mock function with given fields: red, green, blue, time
func (_m *MockLightsBulb) SetRGB(red uint8, green uint8, blue uint8, time int) error {
	ret := _m.Called(red, green, blue, time)

	var r0 error
	if rf, ok := ret.Get(0).(func(uint8, uint8, uint8, int) error); ok {
		r0 = rf(red, green, blue, time)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockLightsBulb creates a new instance of MockLightsBulb. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockLightsBulb(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLightsBulb {
	mock := &MockLightsBulb{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
