package bridgepoller

import (
	"errors"
	"fmt"
	"net"

	"github.com/charmbracelet/log"
)

var ErrNoHost = errors.New("no host found in configuration")

// ConnectFunc establishes the bridge client for a host.
type ConnectFunc func(host string) (Bridge, error)

// Setup connects to the bridge at host and runs the first refresh. A missing
// host and a network failure while connecting are logged and returned; there
// is no retry.
func Setup(logger *log.Logger, host string, connect ConnectFunc, addLights AddLightsFunc) (*BridgePoller, error) {
	if host == "" {
		logger.Error("No host found in configuration")
		return nil, ErrNoHost
	}

	bridge, err := connect(host)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) {
			logger.Error(fmt.Sprintf("Error connecting to bridge: %s due to: %s", host, err))
			return nil, fmt.Errorf("Error connecting to bridge: %s due to: %w", host, err)
		}
		return nil, err
	}

	return SetupBridge(logger, bridge, addLights)
}

// SetupBridge builds the poller for an established bridge and registers the
// lights it reports.
func SetupBridge(logger *log.Logger, bridge Bridge, addLights AddLightsFunc) (*BridgePoller, error) {
	p := NewBridgePoller(logger, bridge, nil, addLights)
	if _, err := p.Refresh(false); err != nil {
		return nil, err
	}
	return p, nil
}
