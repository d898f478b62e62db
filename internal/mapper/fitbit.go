// Package mapper transforms provider payloads into the unified
// entities. Every method returns nil when the payload carries too
// little to build a record; callers skip persistence on nil.
package mapper

import (
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/nvalerio/wearsync/internal/client/fitbit"
	"github.com/nvalerio/wearsync/internal/domain"
)

// fitbitTimeLayout is the local timestamp format Fitbit uses for sleep
// start and end times.
const fitbitTimeLayout = "2006-01-02T15:04:05.000"

// Fitbit projects daily-summary responses onto the unified schema.
// Field mapping is direct; no estimation is involved.
type Fitbit struct{}

func (Fitbit) Activity(userID uuid.UUID, day time.Time, resp *fitbit.DailyActivityResponse) *domain.ActivityData {
	if resp == nil {
		return nil
	}

	summary := resp.Summary
	data := &domain.ActivityData{
		UserID:               userID,
		Date:                 domain.Day(day),
		Steps:                summary.Steps,
		Floors:               summary.Floors,
		Elevation:            summary.Elevation,
		Calories:             summary.CaloriesOut,
		ActiveMinutes:        summary.FairlyActiveMinutes + summary.VeryActiveMinutes,
		SedentaryMinutes:     summary.SedentaryMinutes,
		LightlyActiveMinutes: summary.LightlyActiveMinutes,
		FairlyActiveMinutes:  summary.FairlyActiveMinutes,
		VeryActiveMinutes:    summary.VeryActiveMinutes,
		DataSource:           domain.ProviderFitbit,
		RawData:              mustMarshal(resp),
	}

	if len(summary.Distances) > 0 {
		data.Distance = summary.Distances[0].Distance
		for _, d := range summary.Distances {
			data.Distances = append(data.Distances, domain.ActivityDistance{
				Activity: d.Activity,
				Distance: d.Distance,
			})
		}
	}

	return data
}

func (Fitbit) HeartRate(userID uuid.UUID, day time.Time, resp *fitbit.HeartRateResponse) *domain.HeartRateData {
	if resp == nil || len(resp.ActivitiesHeart) == 0 {
		return nil
	}

	value := resp.ActivitiesHeart[0].Value
	data := &domain.HeartRateData{
		UserID:           userID,
		Date:             domain.Day(day),
		RestingHeartRate: value.RestingHeartRate,
		DataSource:       domain.ProviderFitbit,
		RawData:          mustMarshal(resp),
	}

	for _, zone := range value.HeartRateZones {
		data.Zones = append(data.Zones, domain.HeartRateZone{
			Name:        zone.Name,
			Min:         zone.Min,
			Max:         zone.Max,
			Minutes:     zone.Minutes,
			CaloriesOut: zone.CaloriesOut,
		})

		switch zone.Name {
		case domain.ZoneOutOfRange:
			data.OutOfRangeMinutes = zone.Minutes
		case domain.ZoneFatBurn:
			data.FatBurnMinutes = zone.Minutes
		case domain.ZoneCardio:
			data.CardioMinutes = zone.Minutes
		case domain.ZonePeak:
			data.PeakMinutes = zone.Minutes
		}
	}

	return data
}

// Sleep maps the day's main sleep log, falling back to the first log
// when none is flagged main. Stage minutes only exist for "stages"
// logs; classic logs keep them at zero.
func (Fitbit) Sleep(userID uuid.UUID, resp *fitbit.SleepResponse) *domain.SleepData {
	if resp == nil || len(resp.Sleep) == 0 {
		return nil
	}

	log := resp.Sleep[0]
	for _, candidate := range resp.Sleep {
		if candidate.IsMainSleep {
			log = candidate
			break
		}
	}

	dateOfSleep, err := domain.ParseDay(log.DateOfSleep)
	if err != nil {
		return nil
	}

	data := &domain.SleepData{
		UserID:              userID,
		DateOfSleep:         dateOfSleep,
		Duration:            log.Duration,
		Efficiency:          log.Efficiency,
		MinutesAsleep:       log.MinutesAsleep,
		MinutesAwake:        log.MinutesAwake,
		MinutesToFallAsleep: log.MinutesToFallAsleep,
		MinutesAfterWakeup:  log.MinutesAfterWakeup,
		TimeInBed:           log.TimeInBed,
		Type:                domain.SleepTypeClassic,
		DataSource:          domain.ProviderFitbit,
		RawData:             mustMarshal(resp),
	}

	if start, err := time.Parse(fitbitTimeLayout, log.StartTime); err == nil {
		data.StartTime = start
	}
	if end, err := time.Parse(fitbitTimeLayout, log.EndTime); err == nil {
		data.EndTime = end
	}

	if log.Type == "stages" {
		data.Type = domain.SleepTypeStages
		data.DeepMinutes = log.Levels.Summary["deep"].Minutes
		data.LightMinutes = log.Levels.Summary["light"].Minutes
		data.RemMinutes = log.Levels.Summary["rem"].Minutes
		data.WakeMinutes = log.Levels.Summary["wake"].Minutes
	}

	return data
}

// Weight maps the first weight log of the day.
func (Fitbit) Weight(userID uuid.UUID, day time.Time, resp *fitbit.WeightResponse) *domain.WeightData {
	if resp == nil || len(resp.Weight) == 0 {
		return nil
	}

	log := resp.Weight[0]
	data := &domain.WeightData{
		UserID:     userID,
		Date:       domain.Day(day),
		Weight:     log.Weight,
		Unit:       "kg",
		Source:     log.Source,
		DataSource: domain.ProviderFitbit,
		RawData:    mustMarshal(resp),
	}
	if log.BMI > 0 {
		bmi := log.BMI
		data.BMI = &bmi
	}
	if log.Fat > 0 {
		fat := log.Fat
		data.FatPercent = &fat
	}
	if loggedAt, err := time.Parse("2006-01-02 15:04:05", log.Date+" "+log.Time); err == nil {
		data.LoggedAt = loggedAt
	} else {
		data.LoggedAt = domain.Day(day)
	}

	return data
}

func mustMarshal(v any) go_json.RawMessage {
	raw, err := go_json.Marshal(v)
	if err != nil {
		return nil
	}
	return raw
}
