// Package lightify is a client for the Osram Lightify gateway's local TCP
// protocol.
package lightify

import (
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/lightify/internal/constants"
)

type Option func(*Bridge)

func WithPort(port int) Option {
	return func(b *Bridge) { b.port = port }
}

// WithTimeout sets the deadline applied to every request/response exchange.
func WithTimeout(timeout time.Duration) Option {
	return func(b *Bridge) { b.timeout = timeout }
}

func WithLogger(logger *log.Logger) Option {
	return func(b *Bridge) { b.logger = logger }
}

// Bridge is a connection to one gateway. Only one exchange is in flight at a
// time; the gateway answers requests in order.
type Bridge struct {
	host    string
	port    int
	timeout time.Duration
	logger  *log.Logger

	mu   sync.Mutex
	conn net.Conn
	seq  byte

	lightsMu sync.RWMutex
	lights   map[uint64]*Light
}

// Dial connects to the gateway at host. Connection failures are returned as
// the underlying net error.
func Dial(host string, opts ...Option) (*Bridge, error) {
	b := &Bridge{
		host:    host,
		port:    constants.DefaultBridgePort,
		timeout: constants.DefaultBridgeTimeout,
		logger:  log.Default(),
		lights:  map[uint64]*Light{},
	}
	for _, opt := range opts {
		opt(b)
	}

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, strconv.Itoa(b.port)), b.timeout)
	if err != nil {
		return nil, err
	}
	b.conn = conn
	b.logger.Debug("connected to lightify gateway", "host", host, "port", b.port)

	return b, nil
}

func (b *Bridge) Host() string {
	return b.host
}

func (b *Bridge) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conn.Close()
}

// UpdateAllLightStatus reads the status of every light known to the gateway.
// Handles for lights that were already known are updated in place.
func (b *Bridge) UpdateAllLightStatus() error {
	frame, err := b.roundTrip(func(seq byte) []byte {
		return buildGlobalCommand(commandAllLightStatus, seq, []byte{0x01})
	})
	if err != nil {
		return fmt.Errorf("Error reading light status from %s: %w", b.host, err)
	}

	statuses, err := parseAllLightStatus(frame)
	if err != nil {
		return err
	}

	b.lightsMu.Lock()
	defer b.lightsMu.Unlock()

	lights := make(map[uint64]*Light, len(statuses))
	for _, s := range statuses {
		light, found := b.lights[s.addr]
		if !found {
			light = &Light{bridge: b, addr: s.addr}
		}
		light.update(s.name, s.status)
		lights[s.addr] = light
	}
	b.lights = lights
	b.logger.Debug("updated light status", "host", b.host, "lights", len(lights))

	return nil
}

// Lights returns the lights seen by the last status update, keyed by address.
func (b *Bridge) Lights() map[uint64]*Light {
	b.lightsMu.RLock()
	defer b.lightsMu.RUnlock()
	return lo.Assign(b.lights)
}

func (b *Bridge) roundTrip(build func(seq byte) []byte) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timeout > 0 {
		if err := b.conn.SetDeadline(time.Now().Add(b.timeout)); err != nil {
			return nil, err
		}
	}

	b.seq++
	req := build(b.seq)
	if _, err := b.conn.Write(req); err != nil {
		return nil, fmt.Errorf("Error sending command 0x%02x: %w", req[3], err)
	}

	return readFrame(b.conn)
}
