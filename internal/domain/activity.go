package domain

import (
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// ActivityData is the unified daily activity record. Unique per (user, date).
type ActivityData struct {
	UserID               uuid.UUID          `json:"user_id"`
	Date                 time.Time          `json:"date"`
	Steps                int                `json:"steps"`
	Distance             float64            `json:"distance"`
	Floors               int                `json:"floors"`
	Elevation            float64            `json:"elevation"`
	Calories             int                `json:"calories"`
	ActiveMinutes        int                `json:"active_minutes"`
	SedentaryMinutes     int                `json:"sedentary_minutes"`
	LightlyActiveMinutes int                `json:"lightly_active_minutes"`
	FairlyActiveMinutes  int                `json:"fairly_active_minutes"`
	VeryActiveMinutes    int                `json:"very_active_minutes"`
	Distances            []ActivityDistance `json:"distances,omitempty"`
	DataSource           Provider           `json:"data_source"`
	RawData              go_json.RawMessage `json:"raw_data,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

type ActivityDistance struct {
	Activity string  `json:"activity"`
	Distance float64 `json:"distance"`
}
