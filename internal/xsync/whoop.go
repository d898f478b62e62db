package xsync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nvalerio/wearsync/internal/client/whoop"
	"github.com/nvalerio/wearsync/internal/domain"
	"github.com/nvalerio/wearsync/internal/mapper"
	"github.com/nvalerio/wearsync/internal/xslog"
)

const whoopPageLimit = 25

// whoopStrategy issues one ranged call per data type, since WHOOP's
// collection endpoints accept start/end natively. Only the first page
// is consumed; at 25 records per page that covers normal sync windows.
// TODO: follow next_token for historical backfills longer than a month.
type whoopStrategy struct {
	client *whoop.Client
	mapper mapper.Whoop
	stores Stores
	logger *slog.Logger
	now    func() time.Time
}

// rangeParams widens the inclusive day range into the half-open
// interval WHOOP expects.
func rangeParams(start, end time.Time) *whoop.ListParams {
	rangeEnd := domain.Day(end).AddDate(0, 0, 1)
	rangeStart := domain.Day(start)
	return &whoop.ListParams{
		Limit: whoopPageLimit,
		Start: &rangeStart,
		End:   &rangeEnd,
	}
}

func (s *whoopStrategy) syncActivity(ctx context.Context, userID uuid.UUID, start, end time.Time) (int, []error) {
	cycles, err := s.client.Cycle.List(ctx, userID, rangeParams(start, end))
	if err != nil {
		return 0, []error{fmt.Errorf("listing cycles: %w", err)}
	}
	workouts, err := s.client.Workout.List(ctx, userID, rangeParams(start, end))
	if err != nil {
		return 0, []error{fmt.Errorf("listing workouts: %w", err)}
	}

	cyclesByDay := make(map[time.Time]*domain.ActivityData)
	for i := range cycles.Records {
		if data := s.mapper.Activity(userID, &cycles.Records[i]); data != nil {
			cyclesByDay[data.Date] = data
		}
	}

	workoutsByDay := make(map[time.Time][]*domain.ActivityData)
	for i := range workouts.Records {
		if data := s.mapper.WorkoutActivity(userID, &workouts.Records[i]); data != nil {
			workoutsByDay[data.Date] = append(workoutsByDay[data.Date], data)
		}
	}

	days := make(map[time.Time]struct{})
	for day := range cyclesByDay {
		days[day] = struct{}{}
	}
	for day := range workoutsByDay {
		days[day] = struct{}{}
	}

	var (
		count int
		errs  []error
	)
	for day := range days {
		data := s.mapper.AggregateDaily(cyclesByDay[day], workoutsByDay[day])
		if data == nil {
			continue
		}
		if err := s.stores.Activities.Upsert(ctx, data); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", domain.FormatDay(day), err))
			continue
		}
		count++

		s.logger.DebugContext(ctx, "activity day synced", xslog.UserID(userID), xslog.Day(day))
	}
	return count, errs
}

func (s *whoopStrategy) syncHeartRate(ctx context.Context, userID uuid.UUID, start, end time.Time) (int, []error) {
	recoveries, err := s.client.Recovery.List(ctx, userID, rangeParams(start, end))
	if err != nil {
		return 0, []error{fmt.Errorf("listing recoveries: %w", err)}
	}

	maxHeartRate := 0
	if measurement, err := s.client.User.GetBodyMeasurement(ctx, userID); err == nil {
		maxHeartRate = measurement.MaxHeartRate
	} else {
		s.logger.DebugContext(ctx, "body measurement unavailable, using default max heart rate",
			xslog.UserID(userID), xslog.Error(err))
	}

	var (
		count int
		errs  []error
	)
	for i := range recoveries.Records {
		data := s.mapper.HeartRate(userID, &recoveries.Records[i], maxHeartRate)
		if data == nil {
			continue
		}
		if err := s.stores.HeartRates.Upsert(ctx, data); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", domain.FormatDay(data.Date), err))
			continue
		}
		count++
	}
	return count, errs
}

func (s *whoopStrategy) syncSleep(ctx context.Context, userID uuid.UUID, start, end time.Time) (int, []error) {
	sleeps, err := s.client.Sleep.List(ctx, userID, rangeParams(start, end))
	if err != nil {
		return 0, []error{fmt.Errorf("listing sleeps: %w", err)}
	}

	var (
		count int
		errs  []error
	)
	for i := range sleeps.Records {
		data := s.mapper.Sleep(userID, &sleeps.Records[i])
		if data == nil {
			continue
		}
		if err := s.stores.Sleeps.Upsert(ctx, data); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", domain.FormatDay(data.DateOfSleep), err))
			continue
		}
		count++
	}
	return count, errs
}

// syncWeight ignores the requested range: WHOOP keeps a single current
// body measurement, so the record is always today's.
func (s *whoopStrategy) syncWeight(ctx context.Context, userID uuid.UUID, _, _ time.Time) (int, []error) {
	measurement, err := s.client.User.GetBodyMeasurement(ctx, userID)
	if err != nil {
		return 0, []error{fmt.Errorf("fetching body measurement: %w", err)}
	}

	data := s.mapper.Weight(userID, s.now().UTC(), measurement)
	if data == nil {
		return 0, nil
	}
	if err := s.stores.Weights.Upsert(ctx, data); err != nil {
		return 0, []error{err}
	}
	return 1, nil
}
