package domain

import (
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// WeightData is the unified body-weight record. A day may see multiple
// provider logs but only one row survives the (user, date) upsert.
type WeightData struct {
	UserID     uuid.UUID          `json:"user_id"`
	Date       time.Time          `json:"date"`
	Weight     float64            `json:"weight"` // kilograms
	BMI        *float64           `json:"bmi,omitempty"`
	FatPercent *float64           `json:"fat_percent,omitempty"`
	Unit       string             `json:"unit"`
	LoggedAt   time.Time          `json:"logged_at"`
	Source     string             `json:"source"`
	DataSource Provider           `json:"data_source"`
	RawData    go_json.RawMessage `json:"raw_data,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}
