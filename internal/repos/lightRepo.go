package repos

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/wheelibin/lightify/internal/models"
)

// the table holds the last published state of each light; it is rebuilt on
// every start
const initSchema = `
  CREATE TABLE IF NOT EXISTS light (
    id VARCHAR(16) PRIMARY KEY,
    name TEXT,
    on_state INTEGER,
    brightness INTEGER,
    colour_temp INTEGER,
    red INTEGER,
    green INTEGER,
    blue INTEGER,
    x REAL,
    y REAL,
    last_update_time TIMESTAMP
  );

  DELETE FROM light;
`

// OpenDB opens the sqlite database at path. A single connection is used so
// ":memory:" databases are shared by every query.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("Error opening database (%s): %w", path, err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

type LightRepo struct {
	logger *log.Logger
	db     *sql.DB
}

func NewLightRepo(logger *log.Logger, db *sql.DB) (*LightRepo, error) {

	_, err := db.Exec(initSchema)
	if err != nil {
		return nil, fmt.Errorf("Error initialising light schema: %w", err)
	}

	return &LightRepo{logger: logger, db: db}, nil
}

func (r *LightRepo) Upsert(state models.LightState) error {
	_, err := r.db.Exec(`
    INSERT INTO light
      (id, name, on_state, brightness, colour_temp, red, green, blue, x, y, last_update_time)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    ON CONFLICT(id) DO UPDATE SET
      name = excluded.name,
      on_state = excluded.on_state,
      brightness = excluded.brightness,
      colour_temp = excluded.colour_temp,
      red = excluded.red,
      green = excluded.green,
      blue = excluded.blue,
      x = excluded.x,
      y = excluded.y,
      last_update_time = excluded.last_update_time`,
		state.ID,
		state.Name,
		state.On,
		state.Brightness,
		state.ColorTemperature,
		state.RGBColor.R,
		state.RGBColor.G,
		state.RGBColor.B,
		state.XYColor.X,
		state.XYColor.Y,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("Error saving state for light (%s): %w", state.ID, err)
	}
	r.logger.Debug("saved light state", "id", state.ID, "on", state.On)
	return nil
}

const selectState = `
    SELECT id, name, on_state, brightness, colour_temp, red, green, blue, x, y
    FROM light`

func (r *LightRepo) Get(id string) (models.LightState, error) {
	row := r.db.QueryRow(selectState+" WHERE id = $1", id)
	state, err := scanState(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LightState{}, fmt.Errorf("light (%s): %w", id, models.ErrUnknownLight)
		}
		return models.LightState{}, fmt.Errorf("Error reading state for light (%s): %w", id, err)
	}
	return state, nil
}

func (r *LightRepo) GetAll() ([]models.LightState, error) {
	rows, err := r.db.Query(selectState + " ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("Error reading all light states: %w", err)
	}
	defer rows.Close()

	states := []models.LightState{}
	for rows.Next() {
		state, err := scanState(rows)
		if err != nil {
			return nil, fmt.Errorf("Error reading light state: %w", err)
		}
		states = append(states, state)
	}

	return states, rows.Err()
}

func (r *LightRepo) GetLastUpdate(id string) (*time.Time, error) {
	row := r.db.QueryRow("SELECT last_update_time FROM light WHERE id = $1", id)
	var lastUpdated time.Time
	err := row.Scan(&lastUpdated)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		} else {
			return nil, fmt.Errorf("Error reading last update time for light (%s): %w", id, err)
		}
	}
	return &lastUpdated, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanState(s scanner) (models.LightState, error) {
	var (
		state   models.LightState
		r, g, b int
	)
	err := s.Scan(
		&state.ID,
		&state.Name,
		&state.On,
		&state.Brightness,
		&state.ColorTemperature,
		&r, &g, &b,
		&state.XYColor.X,
		&state.XYColor.Y,
	)
	if err != nil {
		return models.LightState{}, err
	}
	state.RGBColor = models.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
	return state, nil
}
