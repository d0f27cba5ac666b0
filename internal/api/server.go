// Package api exposes the hosted lights over HTTP: state reads, on/off
// commands and a server-sent event stream of state changes.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	sse "github.com/r3labs/sse/v2"
	"github.com/wheelibin/lightify/internal/constants"
	"github.com/wheelibin/lightify/internal/models"
)

type lightController interface {
	TurnOn(id string, opts models.Options) (models.LightState, error)
	TurnOff(id string, opts models.Options) (models.LightState, error)
}

type stateReader interface {
	GetAll() ([]models.LightState, error)
	Get(id string) (models.LightState, error)
}

type Server struct {
	logger *log.Logger
	lights lightController
	states stateReader
	events *sse.Server
}

func NewServer(logger *log.Logger, lights lightController, states stateReader) *Server {
	events := sse.New()
	events.AutoReplay = false
	events.CreateStream(constants.LightStateStream)

	return &Server{
		logger: logger,
		lights: lights,
		states: states,
		events: events,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /lights", s.getLights)
	mux.HandleFunc("GET /lights/{id}", s.getLight)
	mux.HandleFunc("POST /lights/{id}/on", s.command(s.lights.TurnOn))
	mux.HandleFunc("POST /lights/{id}/off", s.command(s.lights.TurnOff))
	mux.Handle("GET /events", s.events)
	return mux
}

// ListenAndServe serves the api on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info("api: stop signal received")
		// open event streams would otherwise hold up the shutdown
		s.events.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Error shutting down api", "err", err)
		}
	}()

	s.logger.Info("api listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("Error serving api on %s: %w", addr, err)
	}
	return nil
}

// Publish pushes a light state to every event stream subscriber.
func (s *Server) Publish(state models.LightState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("Error encoding state for light (%s): %w", state.ID, err)
	}
	s.events.Publish(constants.LightStateStream, &sse.Event{
		ID:   []byte(uuid.NewString()),
		Data: data,
	})
	return nil
}

func (s *Server) Close() {
	s.events.Close()
}

func (s *Server) getLights(w http.ResponseWriter, r *http.Request) {
	states, err := s.states.GetAll()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, states)
}

func (s *Server) getLight(w http.ResponseWriter, r *http.Request) {
	state, err := s.states.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, state)
}

func (s *Server) command(run func(string, models.Options) (models.LightState, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var opts models.Options
		// an empty body means no options
		if err := json.NewDecoder(r.Body).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
			s.writeError(w, fmt.Errorf("%s: %w", err, models.ErrInvalidOptions))
			return
		}

		state, err := run(r.PathValue("id"), opts)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, state)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, models.ErrInvalidOptions):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrUnknownLight):
		status = http.StatusNotFound
	default:
		s.logger.Error("api request failed", "err", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Error writing response", "err", err)
	}
}
