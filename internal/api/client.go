package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"github.com/wheelibin/lightify/internal/constants"
	"github.com/wheelibin/lightify/internal/models"
)

// Client reads light state from a running daemon.
type Client struct {
	logger  *log.Logger
	baseURL string
	http    *http.Client

	events       *sse.Client
	eventChannel chan *sse.Event
}

func NewClient(logger *log.Logger, baseURL string) *Client {
	return &Client{
		logger:  logger,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) GetLights() ([]models.LightState, error) {
	resp, err := c.http.Get(c.baseURL + "/lights")
	if err != nil {
		return nil, fmt.Errorf("Error getting lights: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Error getting lights: unexpected status %s", resp.Status)
	}

	var states []models.LightState
	if err := json.NewDecoder(resp.Body).Decode(&states); err != nil {
		return nil, fmt.Errorf("Error decoding lights: %w", err)
	}
	return states, nil
}

// Subscribe streams light state events into eventChannel.
func (c *Client) Subscribe(eventChannel chan *sse.Event) error {

	c.eventChannel = eventChannel
	c.events = sse.NewClient(c.baseURL + "/events")

	c.events.OnConnect(func(_ *sse.Client) {
		c.logger.Info("Connected to lightifyd, listening for events...")
	})
	c.events.OnDisconnect(func(_ *sse.Client) {
		c.logger.Info("Disconnected from lightifyd")
	})

	if err := c.events.SubscribeChan(constants.LightStateStream, c.eventChannel); err != nil {
		return fmt.Errorf("Error subscribing to light updates: %w", err)
	}
	return nil
}

func (c *Client) Unsubscribe() {
	c.logger.Debug("Unsubscribe events")
	if c.events != nil {
		c.events.Unsubscribe(c.eventChannel)
	}
}

// DecodeState reads the light state carried by an event.
func DecodeState(event *sse.Event) (models.LightState, error) {
	var state models.LightState
	if err := json.Unmarshal(event.Data, &state); err != nil {
		return models.LightState{}, fmt.Errorf("Error decoding light event: %w", err)
	}
	return state, nil
}
