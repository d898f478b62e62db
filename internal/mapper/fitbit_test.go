package mapper

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/google/uuid"

	"github.com/nvalerio/wearsync/internal/client/fitbit"
	"github.com/nvalerio/wearsync/internal/domain"
)

func TestFitbitActivity(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	day := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	resp := &fitbit.DailyActivityResponse{
		Summary: fitbit.ActivitySummary{
			Steps:                10432,
			Floors:               12,
			Elevation:            36.6,
			CaloriesOut:          2450,
			SedentaryMinutes:     600,
			LightlyActiveMinutes: 200,
			FairlyActiveMinutes:  40,
			VeryActiveMinutes:    22,
			Distances: []fitbit.Distance{
				{Activity: "total", Distance: 7.8},
				{Activity: "veryActive", Distance: 2.1},
			},
		},
	}

	got := Fitbit{}.Activity(userID, day, resp)
	require.NotNil(t, got)

	want := &domain.ActivityData{
		UserID:               userID,
		Date:                 time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Steps:                10432,
		Distance:             7.8,
		Floors:               12,
		Elevation:            36.6,
		Calories:             2450,
		ActiveMinutes:        62,
		SedentaryMinutes:     600,
		LightlyActiveMinutes: 200,
		FairlyActiveMinutes:  40,
		VeryActiveMinutes:    22,
		Distances: []domain.ActivityDistance{
			{Activity: "total", Distance: 7.8},
			{Activity: "veryActive", Distance: 2.1},
		},
		DataSource: domain.ProviderFitbit,
	}

	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(domain.ActivityData{}, "RawData")); diff != "" {
		t.Errorf("activity mismatch (-want +got):\n%s", diff)
	}
	assert.NotEmpty(t, got.RawData)
}

func TestFitbitHeartRateZoneLookup(t *testing.T) {
	t.Parallel()

	resp := &fitbit.HeartRateResponse{
		ActivitiesHeart: []fitbit.HeartRateDay{{
			DateTime: "2024-06-01",
			Value: fitbit.HeartRateValue{
				RestingHeartRate: 58,
				HeartRateZones: []fitbit.HeartRateZone{
					{Name: "Out of Range", Min: 30, Max: 110, Minutes: 1200},
					{Name: "Fat Burn", Min: 110, Max: 135, Minutes: 140},
					{Name: "Cardio", Min: 135, Max: 165, Minutes: 60},
					{Name: "Peak", Min: 165, Max: 220, Minutes: 12},
				},
			},
		}},
	}

	got := Fitbit{}.HeartRate(uuid.New(), time.Now(), resp)
	require.NotNil(t, got)
	assert.Equal(t, 58, got.RestingHeartRate)
	assert.Equal(t, 1200, got.OutOfRangeMinutes)
	assert.Equal(t, 140, got.FatBurnMinutes)
	assert.Equal(t, 60, got.CardioMinutes)
	assert.Equal(t, 12, got.PeakMinutes)
	assert.Len(t, got.Zones, 4)
}

func TestFitbitHeartRateEmptyResponse(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Fitbit{}.HeartRate(uuid.New(), time.Now(), &fitbit.HeartRateResponse{}))
}

func TestFitbitSleepPrefersMainSleep(t *testing.T) {
	t.Parallel()

	resp := &fitbit.SleepResponse{
		Sleep: []fitbit.SleepLog{
			{
				DateOfSleep:   "2024-06-01",
				IsMainSleep:   false,
				MinutesAsleep: 45,
				Type:          "classic",
			},
			{
				DateOfSleep:   "2024-06-01",
				Duration:      28800000,
				Efficiency:    93,
				StartTime:     "2024-05-31T23:04:00.000",
				EndTime:       "2024-06-01T07:04:00.000",
				IsMainSleep:   true,
				MinutesAsleep: 440,
				MinutesAwake:  40,
				TimeInBed:     480,
				Type:          "stages",
				Levels: fitbit.SleepLevels{
					Summary: map[string]fitbit.SleepStage{
						"deep":  {Minutes: 90},
						"light": {Minutes: 230},
						"rem":   {Minutes: 120},
						"wake":  {Minutes: 40},
					},
				},
			},
		},
	}

	got := Fitbit{}.Sleep(uuid.New(), resp)
	require.NotNil(t, got)
	assert.Equal(t, 440, got.MinutesAsleep)
	assert.Equal(t, 93, got.Efficiency)
	assert.Equal(t, domain.SleepTypeStages, got.Type)
	assert.Equal(t, 90, got.DeepMinutes)
	assert.Equal(t, 230, got.LightMinutes)
	assert.Equal(t, 120, got.RemMinutes)
	assert.Equal(t, 40, got.WakeMinutes)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got.DateOfSleep)
	assert.Equal(t, 23, got.StartTime.Hour())
}

func TestFitbitSleepEmptyResponse(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Fitbit{}.Sleep(uuid.New(), &fitbit.SleepResponse{}))
}

func TestFitbitWeightFirstRecord(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	resp := &fitbit.WeightResponse{
		Weight: []fitbit.WeightLog{
			{BMI: 23.2, Date: "2024-06-01", Fat: 18.5, Source: "Aria", Time: "07:12:00", Weight: 74.8},
			{BMI: 23.4, Date: "2024-06-01", Source: "API", Time: "21:40:00", Weight: 75.4},
		},
	}

	got := Fitbit{}.Weight(uuid.New(), day, resp)
	require.NotNil(t, got)
	assert.Equal(t, 74.8, got.Weight)
	require.NotNil(t, got.BMI)
	assert.Equal(t, 23.2, *got.BMI)
	require.NotNil(t, got.FatPercent)
	assert.Equal(t, 18.5, *got.FatPercent)
	assert.Equal(t, "Aria", got.Source)
	assert.Equal(t, 7, got.LoggedAt.Hour())

	assert.Nil(t, Fitbit{}.Weight(uuid.New(), day, &fitbit.WeightResponse{}))
}
