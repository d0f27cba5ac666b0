package hub

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/lightify/internal/models"
)

type stateStore interface {
	Upsert(state models.LightState) error
}

type statePublisher interface {
	Publish(state models.LightState) error
}

// Hub hosts light entities: it polls them, runs commands against them and
// publishes their state after every change.
type Hub struct {
	logger       *log.Logger
	pollInterval time.Duration
	store        stateStore
	publishers   []statePublisher

	// serialises every call that reaches the bridge
	mu sync.Mutex

	// guards the registry only, so registration can happen mid refresh
	entitiesMu sync.RWMutex
	entities   map[string]models.LightEntity
	order      []string
}

func NewHub(logger *log.Logger, pollInterval time.Duration, store stateStore) *Hub {
	return &Hub{
		logger:       logger,
		pollInterval: pollInterval,
		store:        store,
		entities:     map[string]models.LightEntity{},
	}
}

func (h *Hub) AddPublisher(p statePublisher) {
	h.publishers = append(h.publishers, p)
}

// AddEntities registers newly discovered lights. Ids already known are
// ignored.
func (h *Hub) AddEntities(entities []models.LightEntity) {
	h.entitiesMu.Lock()
	defer h.entitiesMu.Unlock()

	for _, e := range entities {
		if _, found := h.entities[e.ID()]; found {
			continue
		}
		h.entities[e.ID()] = e
		h.order = append(h.order, e.ID())
		h.logger.Info("Added light", "id", e.ID())
	}
}

// Entities returns the registered entities in registration order.
func (h *Hub) Entities() []models.LightEntity {
	h.entitiesMu.RLock()
	defer h.entitiesMu.RUnlock()
	return lo.Map(h.order, func(id string, _ int) models.LightEntity { return h.entities[id] })
}

func (h *Hub) Run(ctx context.Context) {
	h.logger.Debug("Hub.Run", "pollInterval", h.pollInterval)

	ticker := time.NewTicker(h.pollInterval)
	defer ticker.Stop()

	// update all lights straight away
	h.UpdateAll()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("Hub.Run: stop signal received")
			return

		case t := <-ticker.C:
			h.logger.Debug("Hub.Run: polling lights", "t", t)
			h.UpdateAll()
		}
	}
}

// UpdateAll synchronises every entity with the bridge and publishes the
// result. Failures are logged per entity.
func (h *Hub) UpdateAll() {
	for _, e := range h.Entities() {
		state, err := h.update(e)
		if err != nil {
			h.logger.Error("Error updating light", "id", e.ID(), "err", err)
			continue
		}
		h.publish(state)
	}
}

func (h *Hub) TurnOn(id string, opts models.Options) (models.LightState, error) {
	return h.command(id, opts, models.LightEntity.TurnOn)
}

func (h *Hub) TurnOff(id string, opts models.Options) (models.LightState, error) {
	return h.command(id, opts, models.LightEntity.TurnOff)
}

func (h *Hub) command(id string, opts models.Options, run func(models.LightEntity, models.Options) error) (models.LightState, error) {
	if err := opts.Validate(); err != nil {
		return models.LightState{}, err
	}

	h.entitiesMu.RLock()
	e, found := h.entities[id]
	h.entitiesMu.RUnlock()
	if !found {
		return models.LightState{}, fmt.Errorf("light (%s): %w", id, models.ErrUnknownLight)
	}

	h.mu.Lock()
	err := run(e, opts)
	var state models.LightState
	if err == nil {
		state, err = e.State()
	}
	h.mu.Unlock()
	if err != nil {
		return models.LightState{}, fmt.Errorf("Error commanding light (%s): %w", id, err)
	}

	h.publish(state)
	return state, nil
}

func (h *Hub) update(e models.LightEntity) (models.LightState, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := e.Update(); err != nil {
		return models.LightState{}, err
	}
	return e.State()
}

func (h *Hub) publish(state models.LightState) {
	if err := h.store.Upsert(state); err != nil {
		h.logger.Error(err)
	}
	for _, p := range h.publishers {
		if err := p.Publish(state); err != nil {
			h.logger.Error(err)
		}
	}
}
