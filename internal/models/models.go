package models

import (
	"errors"
	"fmt"

	"github.com/wheelibin/lightify/internal/constants"
)

type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// a CIE 1931 chromaticity
type XY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Effect string

const (
	EffectNone   Effect = constants.EffectNone
	EffectRandom Effect = constants.EffectRandom
)

// Options for turning a light on or off. Nil fields are not sent to the
// bridge. Brightness and ColorTemperature are in host units (0-255 and
// 154-500), TransitionSeconds defaults to an immediate change.
type Options struct {
	Brightness        *int     `json:"brightness,omitempty"`
	RGBColor          *RGB     `json:"rgb,omitempty"`
	XYColor           *XY      `json:"xy,omitempty"`
	ColorTemperature  *int     `json:"colorTemp,omitempty"`
	TransitionSeconds *float64 `json:"transition,omitempty"`
	Effect            Effect   `json:"effect,omitempty"`
}

var ErrInvalidOptions = errors.New("invalid light options")

func (o Options) Validate() error {
	if o.Brightness != nil && (*o.Brightness < 0 || *o.Brightness > constants.BrightnessMax) {
		return fmt.Errorf("brightness %d outside 0-%d: %w", *o.Brightness, constants.BrightnessMax, ErrInvalidOptions)
	}
	if o.ColorTemperature != nil && (*o.ColorTemperature < constants.TempMinHost || *o.ColorTemperature > constants.TempMaxHost) {
		return fmt.Errorf("colour temperature %d outside %d-%d: %w", *o.ColorTemperature, constants.TempMinHost, constants.TempMaxHost, ErrInvalidOptions)
	}
	if o.TransitionSeconds != nil && *o.TransitionSeconds < 0 {
		return fmt.Errorf("negative transition %v: %w", *o.TransitionSeconds, ErrInvalidOptions)
	}
	if o.XYColor != nil && (o.XYColor.X < 0 || o.XYColor.X > 1 || o.XYColor.Y <= 0 || o.XYColor.Y > 1) {
		return fmt.Errorf("xy colour %v outside the unit square: %w", *o.XYColor, ErrInvalidOptions)
	}
	switch o.Effect {
	case "", EffectNone, EffectRandom:
	default:
		return fmt.Errorf("unknown effect %q: %w", o.Effect, ErrInvalidOptions)
	}
	return nil
}

// a snapshot of everything a light entity exposes
type LightState struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	On               bool   `json:"on"`
	Brightness       int    `json:"brightness"`
	ColorTemperature int    `json:"colorTemp"`
	RGBColor         RGB    `json:"rgb"`
	XYColor          XY     `json:"xy"`
}

// LightEntity is what the hub hosts: readable state plus commands.
type LightEntity interface {
	ID() string
	State() (LightState, error)
	TurnOn(opts Options) error
	TurnOff(opts Options) error
	// synchronise with the bridge, bypassing the slow poll throttle
	Update() error
}

var ErrUnknownLight = errors.New("unknown light")
