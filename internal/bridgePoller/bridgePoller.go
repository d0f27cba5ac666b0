package bridgepoller

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/lightify/internal/concurrency"
	"github.com/wheelibin/lightify/internal/constants"
	"github.com/wheelibin/lightify/internal/lightify"
	"github.com/wheelibin/lightify/internal/lights"
)

// Bridge is the part of the lightify client the poller needs.
type Bridge interface {
	UpdateAllLightStatus() error
	Lights() map[uint64]*lightify.Light
}

// AddLightsFunc receives the lights discovered by a refresh.
type AddLightsFunc func(newLights []*lights.LightifyLight)

type BridgePoller struct {
	logger    *log.Logger
	bridge    Bridge
	throttle  *concurrency.Throttle
	addLights AddLightsFunc

	// every light ever seen, keyed by bridge address; never shrinks
	lights map[uint64]*lights.LightifyLight
}

func NewBridgePoller(logger *log.Logger, bridge Bridge, throttle *concurrency.Throttle, addLights AddLightsFunc) *BridgePoller {
	if throttle == nil {
		throttle = concurrency.NewThrottle(constants.MinTimeBetweenScans, constants.MinTimeBetweenForcedScans)
	}
	return &BridgePoller{
		logger:    logger,
		bridge:    bridge,
		throttle:  throttle,
		addLights: addLights,
		lights:    map[uint64]*lights.LightifyLight{},
	}
}

// Refresh reads all light statuses from the bridge, unless throttled, and
// returns the wrappers created for lights seen for the first time. New
// wrappers are also handed to the registration callback.
func (p *BridgePoller) Refresh(force bool) ([]*lights.LightifyLight, error) {
	newLights := []*lights.LightifyLight{}

	ran, err := p.throttle.Do(force, func() error {
		if err := p.bridge.UpdateAllLightStatus(); err != nil {
			return err
		}

		for addr, handle := range p.bridge.Lights() {
			if existing, found := p.lights[addr]; found {
				existing.SetHandle(handle)
				continue
			}
			light := lights.NewLightifyLight(p.logger, addr, handle, p.refresh)
			p.lights[addr] = light
			newLights = append(newLights, light)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !ran {
		p.logger.Debug("refresh throttled", "force", force)
		return newLights, nil
	}

	if len(newLights) > 0 {
		sort.Slice(newLights, func(i, j int) bool { return newLights[i].Addr() < newLights[j].Addr() })
		p.logger.Info("Discovered lights", "count", len(newLights))
		if p.addLights != nil {
			p.addLights(newLights)
		}
	}

	return newLights, nil
}

// Light returns the wrapper for a bridge address.
func (p *BridgePoller) Light(addr uint64) (*lights.LightifyLight, bool) {
	l, found := p.lights[addr]
	return l, found
}

func (p *BridgePoller) refresh(force bool) error {
	_, err := p.Refresh(force)
	return err
}
