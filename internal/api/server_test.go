package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/lightify/internal/api"
	"github.com/wheelibin/lightify/internal/models"
	"github.com/wheelibin/lightify/mocks"
)

var quietLogger = log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})

var desk = models.LightState{ID: "0000000000000001", Name: "Desk", On: true, Brightness: 128}

func Test_Server_Reads(t *testing.T) {

	t.Run("GET /lights: should return every stored state", func(t *testing.T) {
		// arrange
		lights := mocks.NewMockApiLightController(t)
		states := mocks.NewMockApiStateReader(t)
		states.On("GetAll").Return([]models.LightState{desk}, nil).Once()
		s := api.NewServer(quietLogger, lights, states)
		rec := httptest.NewRecorder()

		// act
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lights", nil))

		// assert
		assert.Equal(t, http.StatusOK, rec.Code)
		var got []models.LightState
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, []models.LightState{desk}, got)
	})

	t.Run("GET /lights/{id}: unknown light should be 404", func(t *testing.T) {
		lights := mocks.NewMockApiLightController(t)
		states := mocks.NewMockApiStateReader(t)
		states.On("Get", "nope").Return(models.LightState{}, fmt.Errorf("light (nope): %w", models.ErrUnknownLight)).Once()
		s := api.NewServer(quietLogger, lights, states)
		rec := httptest.NewRecorder()

		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lights/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("GET /lights/{id}: should return the stored state", func(t *testing.T) {
		lights := mocks.NewMockApiLightController(t)
		states := mocks.NewMockApiStateReader(t)
		states.On("Get", desk.ID).Return(desk, nil).Once()
		s := api.NewServer(quietLogger, lights, states)
		rec := httptest.NewRecorder()

		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lights/"+desk.ID, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got models.LightState
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, desk, got)
	})
}

func Test_Server_Commands(t *testing.T) {

	t.Run("POST on: should decode the options and return the new state", func(t *testing.T) {
		// arrange
		lights := mocks.NewMockApiLightController(t)
		states := mocks.NewMockApiStateReader(t)
		brightness := 255
		transition := 1.5
		expectedOpts := models.Options{
			Brightness:        &brightness,
			RGBColor:          &models.RGB{R: 255, G: 0, B: 10},
			TransitionSeconds: &transition,
		}
		lights.On("TurnOn", desk.ID, expectedOpts).Return(desk, nil).Once()
		s := api.NewServer(quietLogger, lights, states)
		body := `{"brightness":255,"rgb":{"r":255,"g":0,"b":10},"transition":1.5}`
		rec := httptest.NewRecorder()

		// act
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/lights/"+desk.ID+"/on", strings.NewReader(body)))

		// assert
		assert.Equal(t, http.StatusOK, rec.Code)
		var got models.LightState
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, desk, got)
	})

	t.Run("POST off: empty body should mean no options", func(t *testing.T) {
		lights := mocks.NewMockApiLightController(t)
		states := mocks.NewMockApiStateReader(t)
		lights.On("TurnOff", desk.ID, models.Options{}).Return(desk, nil).Once()
		s := api.NewServer(quietLogger, lights, states)
		rec := httptest.NewRecorder()

		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/lights/"+desk.ID+"/off", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("POST on: malformed json should be 400", func(t *testing.T) {
		lights := mocks.NewMockApiLightController(t)
		states := mocks.NewMockApiStateReader(t)
		s := api.NewServer(quietLogger, lights, states)
		rec := httptest.NewRecorder()

		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/lights/"+desk.ID+"/on", strings.NewReader("{")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		lights.AssertNotCalled(t, "TurnOn")
	})

	testCases := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"invalid options", fmt.Errorf("brightness 300: %w", models.ErrInvalidOptions), http.StatusBadRequest},
		{"unknown light", fmt.Errorf("light (x): %w", models.ErrUnknownLight), http.StatusNotFound},
		{"bridge failure", errors.New("Error commanding light (x): broken pipe"), http.StatusBadGateway},
	}
	for _, tc := range testCases {
		t.Run("POST on: "+tc.name+" should map to a status", func(t *testing.T) {
			lights := mocks.NewMockApiLightController(t)
			states := mocks.NewMockApiStateReader(t)
			lights.On("TurnOn", "x", models.Options{}).Return(models.LightState{}, tc.err).Once()
			s := api.NewServer(quietLogger, lights, states)
			rec := httptest.NewRecorder()

			s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/lights/x/on", strings.NewReader("{}")))

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.err.Error())
		})
	}
}

func Test_Server_Events(t *testing.T) {

	t.Run("published states should reach a subscribed client", func(t *testing.T) {
		// arrange
		lights := mocks.NewMockApiLightController(t)
		states := mocks.NewMockApiStateReader(t)
		s := api.NewServer(quietLogger, lights, states)
		ts := httptest.NewServer(s.Handler())
		t.Cleanup(ts.Close)
		t.Cleanup(s.Close)

		client := api.NewClient(quietLogger, ts.URL)
		events := make(chan *sse.Event, 1)
		require.NoError(t, client.Subscribe(events))
		t.Cleanup(client.Unsubscribe)

		// act
		require.NoError(t, s.Publish(desk))

		// assert
		select {
		case ev := <-events:
			state, err := api.DecodeState(ev)
			require.NoError(t, err)
			assert.Equal(t, desk, state)
			assert.Len(t, string(ev.ID), 36)
		case <-time.After(5 * time.Second):
			t.Fatal("no event received")
		}
	})

	t.Run("unknown stream should be rejected", func(t *testing.T) {
		s := api.NewServer(quietLogger, mocks.NewMockApiLightController(t), mocks.NewMockApiStateReader(t))
		t.Cleanup(s.Close)
		rec := httptest.NewRecorder()

		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events?stream=groups", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func Test_Client_GetLights(t *testing.T) {

	t.Run("should decode the daemon's light list", func(t *testing.T) {
		states := mocks.NewMockApiStateReader(t)
		states.On("GetAll").Return([]models.LightState{desk}, nil).Once()
		s := api.NewServer(quietLogger, mocks.NewMockApiLightController(t), states)
		ts := httptest.NewServer(s.Handler())
		t.Cleanup(ts.Close)

		got, err := api.NewClient(quietLogger, ts.URL+"/").GetLights()

		require.NoError(t, err)
		assert.Equal(t, []models.LightState{desk}, got)
	})

	t.Run("error status should be returned as an error", func(t *testing.T) {
		states := mocks.NewMockApiStateReader(t)
		states.On("GetAll").Return(nil, errors.New("disk I/O error")).Once()
		s := api.NewServer(quietLogger, mocks.NewMockApiLightController(t), states)
		ts := httptest.NewServer(s.Handler())
		t.Cleanup(ts.Close)

		_, err := api.NewClient(quietLogger, ts.URL).GetLights()

		assert.ErrorContains(t, err, "502")
	})
}
