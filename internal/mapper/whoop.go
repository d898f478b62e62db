package mapper

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/nvalerio/wearsync/internal/client/whoop"
	"github.com/nvalerio/wearsync/internal/domain"
)

const (
	// DefaultMaxHeartRate stands in when no body measurement is
	// available to supply a real maximum.
	DefaultMaxHeartRate = 190

	// kilojoulesPerKilocalorie converts WHOOP's kilojoule totals to the
	// kilocalories the unified schema stores.
	kilojoulesPerKilocalorie = 0.239

	// stepsPerKilometer is the rough walking cadence used to estimate
	// steps from workout distance.
	stepsPerKilometer = 1300
)

// strainSegments is the piecewise-linear strain-to-steps curve. WHOOP
// exposes no step counts, so daily steps are estimated from the 0-21
// strain score. Strain above the last segment extrapolates on its
// slope.
var strainSegments = []struct {
	strainLo, strainHi float64
	stepsLo, stepsHi   float64
}{
	{0, 5, 0, 3000},
	{5, 10, 3000, 7000},
	{10, 15, 7000, 12000},
	{15, 21, 12000, 20000},
}

// EstimateSteps converts a strain score to estimated daily steps. The
// curve is monotonic: more strain never maps to fewer steps.
func EstimateSteps(strain float64) int {
	if strain <= 0 {
		return 0
	}

	last := strainSegments[len(strainSegments)-1]
	if strain >= last.strainHi {
		slope := (last.stepsHi - last.stepsLo) / (last.strainHi - last.strainLo)
		return int(math.Round(last.stepsHi + (strain-last.strainHi)*slope))
	}

	for _, seg := range strainSegments {
		if strain < seg.strainHi {
			fraction := (strain - seg.strainLo) / (seg.strainHi - seg.strainLo)
			return int(math.Round(seg.stepsLo + fraction*(seg.stepsHi-seg.stepsLo)))
		}
	}
	return 0
}

// Whoop reconciles WHOOP's cycle/recovery model with the unified
// schema, estimating the fields WHOOP never reports.
type Whoop struct{}

// Activity derives a daily activity record from a scored cycle.
// Unscored cycles yield nil rather than a zeroed record.
func (Whoop) Activity(userID uuid.UUID, cycle *whoop.Cycle) *domain.ActivityData {
	if cycle == nil || cycle.Score == nil {
		return nil
	}

	score := cycle.Score
	return &domain.ActivityData{
		UserID:        userID,
		Date:          domain.Day(cycle.Start.UTC()),
		Steps:         EstimateSteps(score.Strain),
		Calories:      int(math.Round(score.Kilojoule * kilojoulesPerKilocalorie)),
		ActiveMinutes: int(math.Round(score.Strain * 3)),
		DataSource:    domain.ProviderWhoop,
		RawData:       mustMarshal(cycle),
	}
}

// WorkoutActivity converts one workout into a partial activity record:
// steps from distance, active minutes from time spent in heart-rate
// zones three and up.
func (Whoop) WorkoutActivity(userID uuid.UUID, workout *whoop.Workout) *domain.ActivityData {
	if workout == nil || workout.Score == nil {
		return nil
	}

	score := workout.Score

	var distanceKm float64
	if score.DistanceMeter != nil {
		distanceKm = *score.DistanceMeter / 1000
	}

	zones := score.ZoneDurations
	activeMinutes := (zones.ZoneThreeMilli + zones.ZoneFourMilli + zones.ZoneFiveMilli) / 60000

	data := &domain.ActivityData{
		UserID:        userID,
		Date:          domain.Day(workout.Start.UTC()),
		Steps:         int(math.Round(distanceKm * stepsPerKilometer)),
		Distance:      distanceKm,
		Calories:      int(math.Round(score.Kilojoule * kilojoulesPerKilocalorie)),
		ActiveMinutes: activeMinutes,
		DataSource:    domain.ProviderWhoop,
		RawData:       mustMarshal(workout),
	}
	if distanceKm > 0 {
		data.Distances = []domain.ActivityDistance{{
			Activity: fmt.Sprintf("workout_%d", workout.SportID),
			Distance: distanceKm,
		}}
	}

	return data
}

// AggregateDaily merges the cycle-derived record with same-day workout
// records by summing the countable fields and concatenating distances.
// With no cycle the workouts stand alone; with nothing at all the
// result is nil.
func (Whoop) AggregateDaily(cycleActivity *domain.ActivityData, workouts []*domain.ActivityData) *domain.ActivityData {
	if cycleActivity == nil && len(workouts) == 0 {
		return nil
	}

	var base domain.ActivityData
	if cycleActivity != nil {
		base = *cycleActivity
	}

	for _, workout := range workouts {
		if workout == nil {
			continue
		}
		if base.UserID == uuid.Nil {
			base.UserID = workout.UserID
			base.Date = workout.Date
			base.DataSource = workout.DataSource
			base.RawData = workout.RawData
		}
		base.Steps += workout.Steps
		base.Distance += workout.Distance
		base.Calories += workout.Calories
		base.ActiveMinutes += workout.ActiveMinutes
		base.Distances = append(base.Distances, workout.Distances...)
	}

	if base.UserID == uuid.Nil {
		return nil
	}
	return &base
}

// HeartRate builds a daily heart-rate record from a scored recovery.
// WHOOP reports no per-zone minutes, so the four zones are synthetic:
// the [restingHR, maxHR] band cut at 50, 60, and 70 percent.
func (Whoop) HeartRate(userID uuid.UUID, recovery *whoop.Recovery, maxHeartRate int) *domain.HeartRateData {
	if recovery == nil || recovery.Score == nil {
		return nil
	}
	if maxHeartRate <= 0 {
		maxHeartRate = DefaultMaxHeartRate
	}

	resting := int(math.Round(recovery.Score.RestingHeartRate))
	spread := float64(maxHeartRate - resting)
	cut := func(fraction float64) int {
		return resting + int(math.Round(spread*fraction))
	}

	return &domain.HeartRateData{
		UserID:           userID,
		Date:             domain.Day(recovery.CreatedAt.UTC()),
		RestingHeartRate: resting,
		Zones: []domain.HeartRateZone{
			{Name: domain.ZoneOutOfRange, Min: resting, Max: cut(0.5)},
			{Name: domain.ZoneFatBurn, Min: cut(0.5), Max: cut(0.6)},
			{Name: domain.ZoneCardio, Min: cut(0.6), Max: cut(0.7)},
			{Name: domain.ZonePeak, Min: cut(0.7), Max: maxHeartRate},
		},
		DataSource: domain.ProviderWhoop,
		RawData:    mustMarshal(recovery),
	}
}

// Sleep converts millisecond stage totals to minutes. When WHOOP's own
// efficiency percentage is missing the ratio of sleep to in-bed time
// fills in.
func (Whoop) Sleep(userID uuid.UUID, sleep *whoop.Sleep) *domain.SleepData {
	if sleep == nil || sleep.Score == nil {
		return nil
	}

	stages := sleep.Score.StageSummary
	lightMinutes := stages.TotalLightSleepTimeMilli / 60000
	deepMinutes := stages.TotalSlowWaveSleepTimeMilli / 60000
	remMinutes := stages.TotalREMSleepTimeMilli / 60000
	awakeMinutes := stages.TotalAwakeTimeMilli / 60000
	inBedMinutes := stages.TotalInBedTimeMilli / 60000
	asleepMinutes := lightMinutes + deepMinutes + remMinutes

	efficiency := int(math.Round(sleep.Score.SleepEfficiencyPercentage))
	if efficiency == 0 && inBedMinutes > 0 {
		efficiency = int(math.Round(float64(asleepMinutes) / float64(inBedMinutes) * 100))
	}

	sleepType := domain.SleepTypeStages
	if sleep.Nap {
		sleepType = domain.SleepTypeNap
	}

	return &domain.SleepData{
		UserID:        userID,
		DateOfSleep:   domain.Day(sleep.End.UTC()),
		Duration:      stages.TotalInBedTimeMilli,
		Efficiency:    efficiency,
		StartTime:     sleep.Start,
		EndTime:       sleep.End,
		MinutesAsleep: asleepMinutes,
		MinutesAwake:  awakeMinutes,
		TimeInBed:     inBedMinutes,
		DeepMinutes:   deepMinutes,
		LightMinutes:  lightMinutes,
		RemMinutes:    remMinutes,
		WakeMinutes:   awakeMinutes,
		Type:          sleepType,
		DataSource:    domain.ProviderWhoop,
		RawData:       mustMarshal(sleep),
	}
}

// Weight maps the body-measurement snapshot. WHOOP keeps a single
// current value with no history, so the record is always dated with the
// day the sync ran.
func (Whoop) Weight(userID uuid.UUID, day time.Time, measurement *whoop.BodyMeasurement) *domain.WeightData {
	if measurement == nil || measurement.WeightKilogram <= 0 {
		return nil
	}

	return &domain.WeightData{
		UserID:     userID,
		Date:       domain.Day(day),
		Weight:     measurement.WeightKilogram,
		Unit:       "kg",
		LoggedAt:   domain.Day(day),
		Source:     "whoop",
		DataSource: domain.ProviderWhoop,
		RawData:    mustMarshal(measurement),
	}
}
