package lights

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/lightify/internal/conversion"
	"github.com/wheelibin/lightify/internal/models"
)

// the bridge side handle of a single bulb
type bulb interface {
	Name() string
	On() bool
	Lum() int
	Temp() int
	RGB() (uint8, uint8, uint8)
	SetOnOff(on bool) error
	SetLuminance(lum int, time int) error
	SetTemperature(kelvin int, time int) error
	SetRGB(red, green, blue uint8, time int) error
}

// RefreshFunc asks the bridge poller for fresh status; force selects the
// short throttle interval.
type RefreshFunc func(force bool) error

// LightifyLight exposes one bulb as a light entity. Reads go straight to the
// handle every time, nothing is memoised beyond the last value read.
type LightifyLight struct {
	logger  *log.Logger
	addr    uint64
	light   bulb
	refresh RefreshFunc

	randomChannel func() uint8

	// last known values
	on         bool
	brightness int
	colorTemp  int
	rgb        models.RGB
}

func NewLightifyLight(logger *log.Logger, addr uint64, light bulb, refresh RefreshFunc) *LightifyLight {
	return &LightifyLight{
		logger:        logger,
		addr:          addr,
		light:         light,
		refresh:       refresh,
		randomChannel: func() uint8 { return uint8(rand.Intn(256)) },
		on:            light.On(),
		brightness:    conversion.BrightnessFromLuminance(light.Lum()),
	}
}

// SetRandomSource replaces the generator used by the random effect.
func (l *LightifyLight) SetRandomSource(fn func() uint8) {
	l.randomChannel = fn
}

// SetHandle points the wrapper at a newer handle for the same bulb.
func (l *LightifyLight) SetHandle(light bulb) {
	l.light = light
}

func (l *LightifyLight) Addr() uint64 {
	return l.addr
}

func (l *LightifyLight) ID() string {
	return fmt.Sprintf("%016x", l.addr)
}

func (l *LightifyLight) Name() string {
	return l.light.Name()
}

// IsOn refreshes the bridge (throttled) and returns the on flag.
func (l *LightifyLight) IsOn() (bool, error) {
	if err := l.refresh(false); err != nil {
		return false, err
	}
	l.on = l.light.On()
	l.logger.Debug("is_on light state", "light", l.light.Name(), "on", l.on)
	return l.on, nil
}

// Brightness is 0-255.
func (l *LightifyLight) Brightness() int {
	l.brightness = conversion.BrightnessFromLuminance(l.light.Lum())
	l.logger.Debug("brightness", "light", l.light.Name(), "brightness", l.brightness)
	return l.brightness
}

// ColorTemperature is in host units, 154-500.
func (l *LightifyLight) ColorTemperature() int {
	l.colorTemp = conversion.HostTemperatureFromKelvin(l.light.Temp())
	return l.colorTemp
}

func (l *LightifyLight) RGBColor() models.RGB {
	r, g, b := l.light.RGB()
	l.rgb = models.RGB{R: r, G: g, B: b}
	l.logger.Debug("rgb_color light state", "light", l.light.Name(), "r", r, "g", g, "b", b)
	return l.rgb
}

// XYColor is the chromaticity of the current RGB colour.
func (l *LightifyLight) XYColor() models.XY {
	rgb := l.RGBColor()
	x, y := conversion.XYFromRGB(rgb.R, rgb.G, rgb.B)
	return models.XY{X: x, Y: y}
}

func (l *LightifyLight) State() (models.LightState, error) {
	on, err := l.IsOn()
	if err != nil {
		return models.LightState{}, err
	}
	return models.LightState{
		ID:               l.ID(),
		Name:             l.Name(),
		On:               on,
		Brightness:       l.Brightness(),
		ColorTemperature: l.ColorTemperature(),
		RGBColor:         l.RGBColor(),
		XYColor:          l.XYColor(),
	}, nil
}

// TurnOn switches the light on and applies opts in order: colour, colour
// temperature, brightness, effect. The first failing call aborts the rest;
// calls already made are not undone.
func (l *LightifyLight) TurnOn(opts models.Options) error {
	name := l.light.Name()
	l.logger.Debug("turn_on attempting to turn on light", "light", name)

	// whatever happens, report what the bridge handle says
	defer func() { l.on = l.light.On() }()

	if err := l.light.SetOnOff(true); err != nil {
		return err
	}

	transition := 0
	if opts.TransitionSeconds != nil {
		transition = conversion.TransitionDeciseconds(*opts.TransitionSeconds)
	}
	l.logger.Debug("turn_on requested transition time", "light", name, "transition", transition)

	// the random effect replaces any explicit colour
	if opts.Effect != models.EffectRandom {
		if rgb, ok := requestedColour(opts); ok {
			l.logger.Debug("turn_on requested colour", "light", name, "r", rgb.R, "g", rgb.G, "b", rgb.B)
			if err := l.light.SetRGB(rgb.R, rgb.G, rgb.B, transition); err != nil {
				return err
			}
		}
	}

	if opts.ColorTemperature != nil {
		kelvin := conversion.KelvinFromHostTemperature(*opts.ColorTemperature)
		l.logger.Debug("turn_on requested colour temperature", "light", name, "kelvin", kelvin)
		if err := l.light.SetTemperature(kelvin, transition); err != nil {
			return err
		}
	}

	if opts.Brightness != nil {
		l.brightness = *opts.Brightness
		lum := conversion.LuminanceFromBrightness(l.brightness)
		l.logger.Debug("turn_on requested brightness", "light", name, "brightness", l.brightness, "lum", lum)
		if err := l.light.SetLuminance(lum, transition); err != nil {
			return err
		}
	}

	if opts.Effect == models.EffectRandom {
		r, g, b := l.randomChannel(), l.randomChannel(), l.randomChannel()
		l.logger.Debug("turn_on requested random effect", "light", name, "transition", transition)
		if err := l.light.SetRGB(r, g, b, transition); err != nil {
			return err
		}
	}

	return nil
}

// TurnOff fades luminance to zero when a transition is given, otherwise
// switches the light off directly.
func (l *LightifyLight) TurnOff(opts models.Options) error {
	name := l.light.Name()
	l.logger.Debug("turn_off attempting to turn off light", "light", name)

	defer func() { l.on = l.light.On() }()

	if opts.TransitionSeconds != nil {
		transition := conversion.TransitionDeciseconds(*opts.TransitionSeconds)
		l.logger.Debug("turn_off requested transition time", "light", name, "transition", transition)
		return l.light.SetLuminance(0, transition)
	}

	return l.light.SetOnOff(false)
}

// Update synchronises with the bridge using the forced refresh interval.
func (l *LightifyLight) Update() error {
	return l.refresh(true)
}

func requestedColour(opts models.Options) (models.RGB, bool) {
	if opts.RGBColor != nil {
		return *opts.RGBColor, true
	}
	if opts.XYColor != nil {
		r, g, b := conversion.RGBFromXY(opts.XYColor.X, opts.XYColor.Y)
		return models.RGB{R: r, G: g, B: b}, true
	}
	return models.RGB{}, false
}
