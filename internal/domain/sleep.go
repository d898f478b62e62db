package domain

import (
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

type SleepType string

const (
	SleepTypeStages  SleepType = "stages"
	SleepTypeNap     SleepType = "nap"
	SleepTypeClassic SleepType = "classic"
)

// SleepData is the unified sleep record. Unique per (user, dateOfSleep).
type SleepData struct {
	UserID              uuid.UUID          `json:"user_id"`
	DateOfSleep         time.Time          `json:"date_of_sleep"`
	Duration            int                `json:"duration"` // milliseconds
	Efficiency          int                `json:"efficiency"`
	StartTime           time.Time          `json:"start_time"`
	EndTime             time.Time          `json:"end_time"`
	MinutesAsleep       int                `json:"minutes_asleep"`
	MinutesAwake        int                `json:"minutes_awake"`
	MinutesToFallAsleep int                `json:"minutes_to_fall_asleep"`
	MinutesAfterWakeup  int                `json:"minutes_after_wakeup"`
	TimeInBed           int                `json:"time_in_bed"`
	DeepMinutes         int                `json:"deep_minutes"`
	LightMinutes        int                `json:"light_minutes"`
	RemMinutes          int                `json:"rem_minutes"`
	WakeMinutes         int                `json:"wake_minutes"`
	Type                SleepType          `json:"type"`
	DataSource          Provider           `json:"data_source"`
	RawData             go_json.RawMessage `json:"raw_data,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}
