package lightify

import (
	"errors"
	"fmt"
	"sync"
)

var ErrDetached = errors.New("light is not attached to a bridge")

// Status is the state the gateway reports for a light.
type Status struct {
	On    bool
	Lum   int
	Temp  int
	Red   uint8
	Green uint8
	Blue  uint8
}

// Light is a handle to a single bulb. Getters return the values from the
// last status update or command; they never talk to the gateway.
type Light struct {
	bridge *Bridge
	addr   uint64

	mu     sync.RWMutex
	name   string
	status Status
}

// NewLight returns a handle that is not attached to any bridge. Its setters
// fail with ErrDetached.
func NewLight(addr uint64, name string, status Status) *Light {
	return &Light{addr: addr, name: name, status: status}
}

func (l *Light) Addr() uint64 {
	return l.addr
}

func (l *Light) Name() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.name
}

func (l *Light) On() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status.On
}

// Lum is the luminance, 0-100.
func (l *Light) Lum() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status.Lum
}

// Temp is the colour temperature in kelvin.
func (l *Light) Temp() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status.Temp
}

func (l *Light) RGB() (uint8, uint8, uint8) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status.Red, l.status.Green, l.status.Blue
}

func (l *Light) Red() uint8 {
	r, _, _ := l.RGB()
	return r
}

func (l *Light) Green() uint8 {
	_, g, _ := l.RGB()
	return g
}

func (l *Light) Blue() uint8 {
	_, _, b := l.RGB()
	return b
}

func (l *Light) SetOnOff(on bool) error {
	if err := l.send(commandOnOff, onOffPayload(on)); err != nil {
		return fmt.Errorf("Error switching light (%s) on=%t: %w", l.Name(), on, err)
	}
	l.mu.Lock()
	l.status.On = on
	l.mu.Unlock()
	return nil
}

// SetLuminance fades to lum (0-100) over time deciseconds. Setting a
// luminance above zero switches the light on, zero switches it off.
func (l *Light) SetLuminance(lum int, time int) error {
	lum = clamp(lum, 0, 100)
	if err := l.send(commandLuminance, luminancePayload(lum, time)); err != nil {
		return fmt.Errorf("Error setting light (%s) luminance to %d: %w", l.Name(), lum, err)
	}
	l.mu.Lock()
	l.status.Lum = lum
	if lum > 0 && !l.status.On {
		l.status.On = true
	} else if lum == 0 && l.status.On {
		l.status.On = false
	}
	l.mu.Unlock()
	return nil
}

func (l *Light) SetTemperature(kelvin int, time int) error {
	if err := l.send(commandTemperature, temperaturePayload(kelvin, time)); err != nil {
		return fmt.Errorf("Error setting light (%s) temperature to %d: %w", l.Name(), kelvin, err)
	}
	l.mu.Lock()
	l.status.Temp = kelvin
	l.mu.Unlock()
	return nil
}

func (l *Light) SetRGB(red, green, blue uint8, time int) error {
	if err := l.send(commandColour, colourPayload(red, green, blue, time)); err != nil {
		return fmt.Errorf("Error setting light (%s) colour to %d,%d,%d: %w", l.Name(), red, green, blue, err)
	}
	l.mu.Lock()
	l.status.Red, l.status.Green, l.status.Blue = red, green, blue
	l.mu.Unlock()
	return nil
}

func (l *Light) update(name string, status Status) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.name = name
	l.status = status
}

func (l *Light) send(command byte, data []byte) error {
	if l.bridge == nil {
		return ErrDetached
	}
	_, err := l.bridge.roundTrip(func(seq byte) []byte {
		return buildLightCommand(command, seq, l.addr, data)
	})
	return err
}
