package domain

import (
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// HeartRateData is the unified daily heart-rate record. Unique per (user, date).
type HeartRateData struct {
	UserID            uuid.UUID          `json:"user_id"`
	Date              time.Time          `json:"date"`
	RestingHeartRate  int                `json:"resting_heart_rate"`
	Zones             []HeartRateZone    `json:"heart_rate_zones,omitempty"`
	OutOfRangeMinutes int                `json:"out_of_range_minutes"`
	FatBurnMinutes    int                `json:"fat_burn_minutes"`
	CardioMinutes     int                `json:"cardio_minutes"`
	PeakMinutes       int                `json:"peak_minutes"`
	DataSource        Provider           `json:"data_source"`
	RawData           go_json.RawMessage `json:"raw_data,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

type HeartRateZone struct {
	Name        string  `json:"name"`
	Min         int     `json:"min"`
	Max         int     `json:"max"`
	Minutes     int     `json:"minutes"`
	CaloriesOut float64 `json:"calories_out"`
}

// Canonical zone names shared by both providers after normalization.
const (
	ZoneOutOfRange = "Out of Range"
	ZoneFatBurn    = "Fat Burn"
	ZoneCardio     = "Cardio"
	ZonePeak       = "Peak"
)
