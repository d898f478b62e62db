package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nvalerio/wearsync/internal/domain"
)

type Sleeps struct {
	db DB
}

func (r *Sleeps) Upsert(ctx context.Context, data *domain.SleepData) error {
	const query = `
		INSERT INTO sleep_data (
			user_id, date_of_sleep, duration, efficiency, start_time, end_time,
			minutes_asleep, minutes_awake, minutes_to_fall_asleep,
			minutes_after_wakeup, time_in_bed, deep_minutes, light_minutes,
			rem_minutes, wake_minutes, sleep_type, data_source, raw_data
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (user_id, date_of_sleep) DO UPDATE SET
			duration = EXCLUDED.duration,
			efficiency = EXCLUDED.efficiency,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			minutes_asleep = EXCLUDED.minutes_asleep,
			minutes_awake = EXCLUDED.minutes_awake,
			minutes_to_fall_asleep = EXCLUDED.minutes_to_fall_asleep,
			minutes_after_wakeup = EXCLUDED.minutes_after_wakeup,
			time_in_bed = EXCLUDED.time_in_bed,
			deep_minutes = EXCLUDED.deep_minutes,
			light_minutes = EXCLUDED.light_minutes,
			rem_minutes = EXCLUDED.rem_minutes,
			wake_minutes = EXCLUDED.wake_minutes,
			sleep_type = EXCLUDED.sleep_type,
			data_source = EXCLUDED.data_source,
			raw_data = EXCLUDED.raw_data,
			updated_at = now()
		WHERE (
			sleep_data.duration, sleep_data.efficiency, sleep_data.start_time,
			sleep_data.end_time, sleep_data.minutes_asleep, sleep_data.minutes_awake,
			sleep_data.minutes_to_fall_asleep, sleep_data.minutes_after_wakeup,
			sleep_data.time_in_bed, sleep_data.deep_minutes, sleep_data.light_minutes,
			sleep_data.rem_minutes, sleep_data.wake_minutes, sleep_data.sleep_type,
			sleep_data.data_source
		) IS DISTINCT FROM (
			EXCLUDED.duration, EXCLUDED.efficiency, EXCLUDED.start_time,
			EXCLUDED.end_time, EXCLUDED.minutes_asleep, EXCLUDED.minutes_awake,
			EXCLUDED.minutes_to_fall_asleep, EXCLUDED.minutes_after_wakeup,
			EXCLUDED.time_in_bed, EXCLUDED.deep_minutes, EXCLUDED.light_minutes,
			EXCLUDED.rem_minutes, EXCLUDED.wake_minutes, EXCLUDED.sleep_type,
			EXCLUDED.data_source
		)`

	if _, err := r.db.Exec(ctx, query,
		data.UserID,
		data.DateOfSleep,
		data.Duration,
		data.Efficiency,
		data.StartTime,
		data.EndTime,
		data.MinutesAsleep,
		data.MinutesAwake,
		data.MinutesToFallAsleep,
		data.MinutesAfterWakeup,
		data.TimeInBed,
		data.DeepMinutes,
		data.LightMinutes,
		data.RemMinutes,
		data.WakeMinutes,
		data.Type,
		data.DataSource,
		[]byte(data.RawData),
	); err != nil {
		return fmt.Errorf("upserting sleep: %w", err)
	}
	return nil
}

func (r *Sleeps) GetByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.SleepData, error) {
	const query = `
		SELECT user_id, date_of_sleep, duration, efficiency, start_time, end_time,
		       minutes_asleep, minutes_awake, minutes_to_fall_asleep,
		       minutes_after_wakeup, time_in_bed, deep_minutes, light_minutes,
		       rem_minutes, wake_minutes, sleep_type, data_source, raw_data,
		       created_at, updated_at
		FROM sleep_data
		WHERE user_id = $1 AND date_of_sleep BETWEEN $2 AND $3
		ORDER BY date_of_sleep`

	rows, err := r.db.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying sleep: %w", err)
	}
	defer rows.Close()

	var records []domain.SleepData
	for rows.Next() {
		var (
			data    domain.SleepData
			rawData []byte
		)
		if err := rows.Scan(
			&data.UserID,
			&data.DateOfSleep,
			&data.Duration,
			&data.Efficiency,
			&data.StartTime,
			&data.EndTime,
			&data.MinutesAsleep,
			&data.MinutesAwake,
			&data.MinutesToFallAsleep,
			&data.MinutesAfterWakeup,
			&data.TimeInBed,
			&data.DeepMinutes,
			&data.LightMinutes,
			&data.RemMinutes,
			&data.WakeMinutes,
			&data.Type,
			&data.DataSource,
			&rawData,
			&data.CreatedAt,
			&data.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning sleep: %w", err)
		}
		data.RawData = rawData
		records = append(records, data)
	}
	return records, rows.Err()
}
