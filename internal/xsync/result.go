// Package xsync orchestrates provider syncs: it fans a date range out
// to the per-type fetch routines, maps what comes back, and upserts
// the unified records, tolerating partial failures along the way.
package xsync

import (
	"fmt"
	"time"
)

type DataType string

const (
	DataTypeActivity  DataType = "activity"
	DataTypeHeartRate DataType = "heartrate"
	DataTypeSleep     DataType = "sleep"
	DataTypeWeight    DataType = "weight"
)

func ParseDataType(s string) (DataType, error) {
	switch DataType(s) {
	case DataTypeActivity, DataTypeHeartRate, DataTypeSleep, DataTypeWeight:
		return DataType(s), nil
	}
	// URL spelling used by the read endpoints
	if s == "heart-rate" {
		return DataTypeHeartRate, nil
	}
	return "", fmt.Errorf("unknown data type: %q", s)
}

func AllDataTypes() []DataType {
	return []DataType{DataTypeActivity, DataTypeHeartRate, DataTypeSleep, DataTypeWeight}
}

type SyncedRecords struct {
	Activities int `json:"activities"`
	HeartRate  int `json:"heart_rate"`
	Sleep      int `json:"sleep"`
	Weight     int `json:"weight"`
}

type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Result reports one sync invocation. Success means every requested
// data type completed without a single error; partial syncs still
// report their counts alongside the errors.
type Result struct {
	Success       bool          `json:"success"`
	SyncedRecords SyncedRecords `json:"synced_records"`
	DateRange     DateRange     `json:"date_range"`
	DurationMS    int64         `json:"duration_ms"`
	Errors        []string      `json:"errors,omitempty"`
}

// SetDuration records the elapsed wall-clock time.
func (r *Result) SetDuration(d time.Duration) {
	r.DurationMS = d.Milliseconds()
}
