package lights_test

import (
	"errors"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/lightify/internal/lightify"
	"github.com/wheelibin/lightify/internal/lights"
	"github.com/wheelibin/lightify/internal/models"
	"github.com/wheelibin/lightify/mocks"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})

func noRefresh(bool) error { return nil }

// a bulb mock that starts off and reports on after the first command
func newSwitchingBulb(t *testing.T) *mocks.MockLightsBulb {
	b := mocks.NewMockLightsBulb(t)
	b.Mock.On("Name").Return("Desk").Maybe()
	b.Mock.On("Lum").Return(0).Maybe()
	b.Mock.On("On").Return(false).Once()
	b.Mock.On("On").Return(true).Maybe()
	return b
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func Test_Reads(t *testing.T) {

	t.Run("luminance 50, temperature 4250, off", func(t *testing.T) {
		t.Parallel()
		// arrange
		handle := lightify.NewLight(1, "Desk", lightify.Status{Lum: 50, Temp: 4250, On: false})
		var refreshes []bool
		refresh := func(force bool) error { refreshes = append(refreshes, force); return nil }
		l := lights.NewLightifyLight(logger, 1, handle, refresh)

		// act
		on, err := l.IsOn()

		// assert
		require.NoError(t, err)
		assert.False(t, on)
		assert.Equal(t, 128, l.Brightness())
		assert.Equal(t, 327, l.ColorTemperature())
		assert.Equal(t, []bool{false}, refreshes)
	})

	t.Run("rgb is passed through unchanged", func(t *testing.T) {
		t.Parallel()
		handle := lightify.NewLight(1, "Desk", lightify.Status{Red: 12, Green: 200, Blue: 7})
		l := lights.NewLightifyLight(logger, 1, handle, noRefresh)

		assert.Equal(t, models.RGB{R: 12, G: 200, B: 7}, l.RGBColor())
	})

	t.Run("refresh error: IsOn should return it", func(t *testing.T) {
		t.Parallel()
		handle := lightify.NewLight(1, "Desk", lightify.Status{On: true})
		l := lights.NewLightifyLight(logger, 1, handle, func(bool) error { return errors.New("gateway unreachable") })

		_, err := l.IsOn()

		assert.EqualError(t, err, "gateway unreachable")
	})

	t.Run("state snapshot", func(t *testing.T) {
		t.Parallel()
		handle := lightify.NewLight(0xab, "Hall", lightify.Status{On: true, Lum: 100, Temp: 6500, Red: 255})
		l := lights.NewLightifyLight(logger, 0xab, handle, noRefresh)

		state, err := l.State()

		require.NoError(t, err)
		assert.Equal(t, "00000000000000ab", state.ID)
		assert.Equal(t, "Hall", state.Name)
		assert.True(t, state.On)
		assert.Equal(t, 255, state.Brightness)
		assert.Equal(t, 500, state.ColorTemperature)
		assert.Equal(t, models.RGB{R: 255}, state.RGBColor)
		assert.InDelta(t, 0.64, state.XYColor.X, 0.001)
	})

	t.Run("new handle: reads should use it", func(t *testing.T) {
		t.Parallel()
		l := lights.NewLightifyLight(logger, 1, lightify.NewLight(1, "old", lightify.Status{}), noRefresh)

		l.SetHandle(lightify.NewLight(1, "new", lightify.Status{Lum: 100}))

		assert.Equal(t, "new", l.Name())
		assert.Equal(t, 255, l.Brightness())
	})
}

func Test_TurnOn(t *testing.T) {

	t.Run("brightness 255: should send luminance 100 and report on", func(t *testing.T) {
		t.Parallel()
		// arrange
		b := newSwitchingBulb(t)
		b.Mock.On("SetOnOff", true).Return(nil).Once()
		b.Mock.On("SetLuminance", 100, 0).Return(nil).Once()
		l := lights.NewLightifyLight(logger, 1, b, noRefresh)

		// act
		err := l.TurnOn(models.Options{Brightness: intPtr(255)})

		// assert
		require.NoError(t, err)
		on, err := l.IsOn()
		require.NoError(t, err)
		assert.True(t, on)
	})

	t.Run("colour, temperature and transition: should convert and send each", func(t *testing.T) {
		t.Parallel()
		// arrange
		b := newSwitchingBulb(t)
		b.Mock.On("SetOnOff", true).Return(nil).Once()
		b.Mock.On("SetRGB", uint8(10), uint8(20), uint8(30), 25).Return(nil).Once()
		b.Mock.On("SetTemperature", 4250, 25).Return(nil).Once()
		l := lights.NewLightifyLight(logger, 1, b, noRefresh)

		// act
		err := l.TurnOn(models.Options{
			RGBColor:          &models.RGB{R: 10, G: 20, B: 30},
			ColorTemperature:  intPtr(327),
			TransitionSeconds: floatPtr(2.5),
		})

		// assert
		require.NoError(t, err)
		b.AssertNotCalled(t, "SetLuminance", mock.Anything, mock.Anything)
	})

	t.Run("random effect: should ignore the explicit colour", func(t *testing.T) {
		t.Parallel()
		// arrange
		b := newSwitchingBulb(t)
		b.Mock.On("SetOnOff", true).Return(nil).Once()
		b.Mock.On("SetRGB", uint8(200), uint8(100), uint8(50), 0).Return(nil).Once()
		l := lights.NewLightifyLight(logger, 1, b, noRefresh)
		channels := []uint8{200, 100, 50}
		l.SetRandomSource(func() uint8 {
			c := channels[0]
			channels = channels[1:]
			return c
		})

		// act
		err := l.TurnOn(models.Options{RGBColor: &models.RGB{R: 1, G: 2, B: 3}, Effect: models.EffectRandom})

		// assert
		require.NoError(t, err)
		b.AssertNotCalled(t, "SetRGB", uint8(1), uint8(2), uint8(3), 0)
		b.AssertNumberOfCalls(t, "SetRGB", 1)
	})

	t.Run("random effect with the default source: should send one colour", func(t *testing.T) {
		t.Parallel()
		b := newSwitchingBulb(t)
		b.Mock.On("SetOnOff", true).Return(nil).Once()
		b.Mock.On("SetRGB", mock.Anything, mock.Anything, mock.Anything, 0).Return(nil).Once()
		l := lights.NewLightifyLight(logger, 1, b, noRefresh)

		err := l.TurnOn(models.Options{Effect: models.EffectRandom})

		require.NoError(t, err)
	})

	t.Run("xy colour: should be converted to rgb", func(t *testing.T) {
		t.Parallel()
		b := newSwitchingBulb(t)
		b.Mock.On("SetOnOff", true).Return(nil).Once()
		b.Mock.On("SetRGB", uint8(255), mock.Anything, mock.Anything, 0).Return(nil).Once()
		l := lights.NewLightifyLight(logger, 1, b, noRefresh)

		err := l.TurnOn(models.Options{XYColor: &models.XY{X: 0.64, Y: 0.33}})

		require.NoError(t, err)
	})

	t.Run("switching on fails: should return the error and send nothing else", func(t *testing.T) {
		t.Parallel()
		// arrange
		b := mocks.NewMockLightsBulb(t)
		b.Mock.On("Name").Return("Desk").Maybe()
		b.Mock.On("Lum").Return(0).Maybe()
		b.Mock.On("On").Return(false)
		b.Mock.On("SetOnOff", true).Return(errors.New("broken pipe")).Once()
		l := lights.NewLightifyLight(logger, 1, b, noRefresh)

		// act
		err := l.TurnOn(models.Options{Brightness: intPtr(10)})

		// assert
		assert.EqualError(t, err, "broken pipe")
		b.AssertNotCalled(t, "SetLuminance", mock.Anything, mock.Anything)
	})
}

func Test_TurnOff(t *testing.T) {

	t.Run("with transition: should fade luminance to zero", func(t *testing.T) {
		t.Parallel()
		// arrange
		b := mocks.NewMockLightsBulb(t)
		b.Mock.On("Name").Return("Desk").Maybe()
		b.Mock.On("Lum").Return(80).Maybe()
		b.Mock.On("On").Return(true).Once()
		b.Mock.On("On").Return(false)
		b.Mock.On("SetLuminance", 0, 30).Return(nil).Once()
		l := lights.NewLightifyLight(logger, 1, b, noRefresh)

		// act
		err := l.TurnOff(models.Options{TransitionSeconds: floatPtr(3)})

		// assert
		require.NoError(t, err)
		b.AssertNotCalled(t, "SetOnOff", mock.Anything)
		on, _ := l.IsOn()
		assert.False(t, on)
	})

	t.Run("without transition: should switch off directly", func(t *testing.T) {
		t.Parallel()
		b := mocks.NewMockLightsBulb(t)
		b.Mock.On("Name").Return("Desk").Maybe()
		b.Mock.On("Lum").Return(80).Maybe()
		b.Mock.On("On").Return(true).Once()
		b.Mock.On("On").Return(false)
		b.Mock.On("SetOnOff", false).Return(nil).Once()
		l := lights.NewLightifyLight(logger, 1, b, noRefresh)

		err := l.TurnOff(models.Options{})

		require.NoError(t, err)
		b.AssertNotCalled(t, "SetLuminance", mock.Anything, mock.Anything)
	})
}

func Test_Update(t *testing.T) {
	var refreshes []bool
	l := lights.NewLightifyLight(logger, 1, lightify.NewLight(1, "Desk", lightify.Status{}), func(force bool) error {
		refreshes = append(refreshes, force)
		return nil
	})

	require.NoError(t, l.Update())

	assert.Equal(t, []bool{true}, refreshes)
}
