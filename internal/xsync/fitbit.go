package xsync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nvalerio/wearsync/internal/client/fitbit"
	"github.com/nvalerio/wearsync/internal/domain"
	"github.com/nvalerio/wearsync/internal/mapper"
	"github.com/nvalerio/wearsync/internal/xslog"
)

// fitbitStrategy walks every calendar day in the range, one API call
// per day per type, because Fitbit only serves daily summaries. A bad
// day is recorded and skipped; the loop keeps going.
type fitbitStrategy struct {
	client *fitbit.Client
	mapper mapper.Fitbit
	stores Stores
	logger *slog.Logger
}

func (s *fitbitStrategy) syncActivity(ctx context.Context, userID uuid.UUID, start, end time.Time) (int, []error) {
	var (
		count int
		errs  []error
	)
	for _, day := range domain.DayRange(start, end) {
		resp, err := s.client.Activity.GetDaily(ctx, userID, day)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", domain.FormatDay(day), err))
			continue
		}

		data := s.mapper.Activity(userID, day, resp)
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

func (s *fitbitStrategy) syncHeartRate(ctx context.Context, userID uuid.UUID, start, end time.Time) (int, []error) {
	var (
		count int
		errs  []error
	)
	for _, day := range domain.DayRange(start, end) {
		resp, err := s.client.HeartRate.GetDaily(ctx, userID, day)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", domain.FormatDay(day), err))
			continue
		}

		data := s.mapper.HeartRate(userID, day, resp)
		if data == nil {
			continue
		}
		if err := s.stores.HeartRates.Upsert(ctx, data); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", domain.FormatDay(day), err))
			continue
		}
		count++
	}
	return count, errs
}

func (s *fitbitStrategy) syncSleep(ctx context.Context, userID uuid.UUID, start, end time.Time) (int, []error) {
	var (
		count int
		errs  []error
	)
	for _, day := range domain.DayRange(start, end) {
		resp, err := s.client.Sleep.GetByDate(ctx, userID, day)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", domain.FormatDay(day), err))
			continue
		}

		data := s.mapper.Sleep(userID, resp)
		if data == nil {
			continue
		}
		if err := s.stores.Sleeps.Upsert(ctx, data); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", domain.FormatDay(day), err))
			continue
		}
		count++
	}
	return count, errs
}

func (s *fitbitStrategy) syncWeight(ctx context.Context, userID uuid.UUID, start, end time.Time) (int, []error) {
	var (
		count int
		errs  []error
	)
	for _, day := range domain.DayRange(start, end) {
		resp, err := s.client.Weight.GetByDate(ctx, userID, day)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", domain.FormatDay(day), err))
			continue
		}

		data := s.mapper.Weight(userID, day, resp)
		if data == nil {
			continue
		}
		if err := s.stores.Weights.Upsert(ctx, data); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", domain.FormatDay(day), err))
			continue
		}
		count++
	}
	return count, errs
}
