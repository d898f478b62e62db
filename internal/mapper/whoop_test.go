package mapper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvalerio/wearsync/internal/client/whoop"
	"github.com/nvalerio/wearsync/internal/domain"
)

func TestEstimateStepsBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		strain float64
		want   int
	}{
		{strain: 0, want: 0},
		{strain: 5, want: 3000},
		{strain: 10, want: 7000},
		{strain: 15, want: 12000},
		{strain: 21, want: 20000},
		{strain: 2.5, want: 1500},
		{strain: 7.5, want: 5000},
		{strain: 12.5, want: 9500},
		{strain: 18, want: 16000},
		{strain: -1, want: 0},
	}

	for _, tt := range tests {
		got := EstimateSteps(tt.strain)
		assert.Equal(t, tt.want, got, "strain %.1f", tt.strain)
	}
}

func TestEstimateStepsMonotonic(t *testing.T) {
	t.Parallel()

	previous := -1
	for strain := 0.0; strain <= 22; strain += 0.25 {
		steps := EstimateSteps(strain)
		require.GreaterOrEqual(t, steps, previous, "strain %.2f", strain)
		previous = steps
	}
}

func TestWhoopActivityFromCycle(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	cycle := &whoop.Cycle{
		ID:    1,
		Start: time.Date(2024, 6, 1, 4, 0, 0, 0, time.UTC),
		Score: &whoop.CycleScore{
			Strain:    10,
			Kilojoule: 8368,
		},
	}

	data := Whoop{}.Activity(userID, cycle)
	require.NotNil(t, data)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), data.Date)
	assert.Equal(t, 7000, data.Steps)
	assert.Equal(t, 30, data.ActiveMinutes)
	assert.Equal(t, 2000, data.Calories)
	assert.Equal(t, domain.ProviderWhoop, data.DataSource)
	assert.NotEmpty(t, data.RawData)
}

func TestWhoopActivitySkipsUnscoredCycle(t *testing.T) {
	t.Parallel()

	data := Whoop{}.Activity(uuid.New(), &whoop.Cycle{ID: 1, ScoreState: whoop.ScoreStatePendingScore})
	assert.Nil(t, data)
}

func TestWorkoutActivity(t *testing.T) {
	t.Parallel()

	distance := 5000.0
	workout := &whoop.Workout{
		ID:      7,
		Start:   time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC),
		SportID: 1,
		Score: &whoop.WorkoutScore{
			Strain:        12,
			Kilojoule:     1673.6,
			DistanceMeter: &distance,
			ZoneDurations: whoop.WorkoutZones{
				ZoneThreeMilli: 600000,  // 10 min
				ZoneFourMilli:  1200000, // 20 min
				ZoneFiveMilli:  300000,  // 5 min
			},
		},
	}

	data := Whoop{}.WorkoutActivity(uuid.New(), workout)
	require.NotNil(t, data)
	assert.Equal(t, 6500, data.Steps)
	assert.Equal(t, 5.0, data.Distance)
	assert.Equal(t, 35, data.ActiveMinutes)
	assert.Equal(t, 400, data.Calories)
	require.Len(t, data.Distances, 1)
	assert.Equal(t, "workout_1", data.Distances[0].Activity)
}

func TestAggregateDaily(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	cycleActivity := &domain.ActivityData{
		UserID: userID, Date: day, Steps: 7000, Calories: 2000, ActiveMinutes: 30,
		DataSource: domain.ProviderWhoop,
	}
	workout := &domain.ActivityData{
		UserID: userID, Date: day, Steps: 6500, Distance: 5, Calories: 400, ActiveMinutes: 35,
		Distances:  []domain.ActivityDistance{{Activity: "workout_1", Distance: 5}},
		DataSource: domain.ProviderWhoop,
	}

	t.Run("cycle plus workouts sums fields", func(t *testing.T) {
		t.Parallel()

		got := Whoop{}.AggregateDaily(cycleActivity, []*domain.ActivityData{workout})
		require.NotNil(t, got)
		assert.Equal(t, 13500, got.Steps)
		assert.Equal(t, 5.0, got.Distance)
		assert.Equal(t, 2400, got.Calories)
		assert.Equal(t, 65, got.ActiveMinutes)
		require.Len(t, got.Distances, 1)
	})

	t.Run("cycle only passes through", func(t *testing.T) {
		t.Parallel()

		got := Whoop{}.AggregateDaily(cycleActivity, nil)
		require.NotNil(t, got)
		assert.Equal(t, cycleActivity.Steps, got.Steps)
	})

	t.Run("workouts only stand alone", func(t *testing.T) {
		t.Parallel()

		got := Whoop{}.AggregateDaily(nil, []*domain.ActivityData{workout})
		require.NotNil(t, got)
		assert.Equal(t, 6500, got.Steps)
		assert.Equal(t, userID, got.UserID)
	})

	t.Run("nothing yields nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, Whoop{}.AggregateDaily(nil, nil))
	})
}

func TestWhoopHeartRateZones(t *testing.T) {
	t.Parallel()

	recovery := &whoop.Recovery{
		CycleID:   1,
		CreatedAt: time.Date(2024, 6, 1, 7, 0, 0, 0, time.UTC),
		Score: &whoop.RecoveryScore{
			RestingHeartRate: 50,
		},
	}

	data := Whoop{}.HeartRate(uuid.New(), recovery, 190)
	require.NotNil(t, data)
	assert.Equal(t, 50, data.RestingHeartRate)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), data.Date)

	// spread of 140 cut at 50/60/70 percent
	require.Len(t, data.Zones, 4)
	assert.Equal(t, domain.HeartRateZone{Name: domain.ZoneOutOfRange, Min: 50, Max: 120}, data.Zones[0])
	assert.Equal(t, domain.HeartRateZone{Name: domain.ZoneFatBurn, Min: 120, Max: 134}, data.Zones[1])
	assert.Equal(t, domain.HeartRateZone{Name: domain.ZoneCardio, Min: 134, Max: 148}, data.Zones[2])
	assert.Equal(t, domain.HeartRateZone{Name: domain.ZonePeak, Min: 148, Max: 190}, data.Zones[3])
}

func TestWhoopHeartRateDefaultsMaxHeartRate(t *testing.T) {
	t.Parallel()

	recovery := &whoop.Recovery{
		CreatedAt: time.Now(),
		Score:     &whoop.RecoveryScore{RestingHeartRate: 60},
	}

	data := Whoop{}.HeartRate(uuid.New(), recovery, 0)
	require.NotNil(t, data)
	assert.Equal(t, DefaultMaxHeartRate, data.Zones[3].Max)
}

func TestWhoopSleep(t *testing.T) {
	t.Parallel()

	sleep := &whoop.Sleep{
		ID:    1,
		Start: time.Date(2024, 5, 31, 23, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 1, 7, 0, 0, 0, time.UTC),
		Score: &whoop.SleepScore{
			StageSummary: whoop.SleepStages{
				TotalInBedTimeMilli:         28800000, // 480 min
				TotalAwakeTimeMilli:         1800000,  // 30 min
				TotalLightSleepTimeMilli:    14400000, // 240 min
				TotalSlowWaveSleepTimeMilli: 5400000,  // 90 min
				TotalREMSleepTimeMilli:      7200000,  // 120 min
			},
		},
	}

	data := Whoop{}.Sleep(uuid.New(), sleep)
	require.NotNil(t, data)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), data.DateOfSleep)
	assert.Equal(t, 450, data.MinutesAsleep)
	assert.Equal(t, 480, data.TimeInBed)
	assert.Equal(t, 240, data.LightMinutes)
	assert.Equal(t, 90, data.DeepMinutes)
	assert.Equal(t, 120, data.RemMinutes)
	// efficiency computed from the sleep to in-bed ratio
	assert.Equal(t, 94, data.Efficiency)
	assert.Equal(t, domain.SleepTypeStages, data.Type)
}

func TestWhoopSleepUsesProviderEfficiency(t *testing.T) {
	t.Parallel()

	sleep := &whoop.Sleep{
		End: time.Now(),
		Nap: true,
		Score: &whoop.SleepScore{
			SleepEfficiencyPercentage: 88.4,
			StageSummary: whoop.SleepStages{
				TotalInBedTimeMilli:      3600000,
				TotalLightSleepTimeMilli: 3000000,
			},
		},
	}

	data := Whoop{}.Sleep(uuid.New(), sleep)
	require.NotNil(t, data)
	assert.Equal(t, 88, data.Efficiency)
	assert.Equal(t, domain.SleepTypeNap, data.Type)
}

func TestWhoopSleepSkipsUnscored(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Whoop{}.Sleep(uuid.New(), &whoop.Sleep{ID: 1}))
}

func TestWhoopWeight(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
	data := Whoop{}.Weight(uuid.New(), day, &whoop.BodyMeasurement{WeightKilogram: 75.5})
	require.NotNil(t, data)
	assert.Equal(t, 75.5, data.Weight)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), data.Date)
	assert.Equal(t, "kg", data.Unit)

	assert.Nil(t, Whoop{}.Weight(uuid.New(), day, &whoop.BodyMeasurement{}))
}
