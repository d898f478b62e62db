package repository

import (
	"context"
	"fmt"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/nvalerio/wearsync/internal/domain"
)

type Activities struct {
	db DB
}

// Upsert writes the day's activity record. An existing row whose mapped
// columns already match is left untouched so updated_at stays honest.
func (r *Activities) Upsert(ctx context.Context, data *domain.ActivityData) error {
	const query = `
		INSERT INTO activity_data (
			user_id, date, steps, distance, floors, elevation, calories,
			active_minutes, sedentary_minutes, lightly_active_minutes,
			fairly_active_minutes, very_active_minutes, distances,
			data_source, raw_data
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (user_id, date) DO UPDATE SET
			steps = EXCLUDED.steps,
			distance = EXCLUDED.distance,
			floors = EXCLUDED.floors,
			elevation = EXCLUDED.elevation,
			calories = EXCLUDED.calories,
			active_minutes = EXCLUDED.active_minutes,
			sedentary_minutes = EXCLUDED.sedentary_minutes,
			lightly_active_minutes = EXCLUDED.lightly_active_minutes,
			fairly_active_minutes = EXCLUDED.fairly_active_minutes,
			very_active_minutes = EXCLUDED.very_active_minutes,
			distances = EXCLUDED.distances,
			data_source = EXCLUDED.data_source,
			raw_data = EXCLUDED.raw_data,
			updated_at = now()
		WHERE (
			activity_data.steps, activity_data.distance, activity_data.floors,
			activity_data.elevation, activity_data.calories,
			activity_data.active_minutes, activity_data.sedentary_minutes,
			activity_data.lightly_active_minutes, activity_data.fairly_active_minutes,
			activity_data.very_active_minutes, activity_data.distances,
			activity_data.data_source
		) IS DISTINCT FROM (
			EXCLUDED.steps, EXCLUDED.distance, EXCLUDED.floors,
			EXCLUDED.elevation, EXCLUDED.calories,
			EXCLUDED.active_minutes, EXCLUDED.sedentary_minutes,
			EXCLUDED.lightly_active_minutes, EXCLUDED.fairly_active_minutes,
			EXCLUDED.very_active_minutes, EXCLUDED.distances,
			EXCLUDED.data_source
		)`

	distances, err := go_json.Marshal(data.Distances)
	if err != nil {
		return fmt.Errorf("encoding distances: %w", err)
	}

	if _, err := r.db.Exec(ctx, query,
		data.UserID,
		data.Date,
		data.Steps,
		data.Distance,
		data.Floors,
		data.Elevation,
		data.Calories,
		data.ActiveMinutes,
		data.SedentaryMinutes,
		data.LightlyActiveMinutes,
		data.FairlyActiveMinutes,
		data.VeryActiveMinutes,
		distances,
		data.DataSource,
		[]byte(data.RawData),
	); err != nil {
		return fmt.Errorf("upserting activity: %w", err)
	}
	return nil
}

func (r *Activities) GetByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.ActivityData, error) {
	const query = `
		SELECT user_id, date, steps, distance, floors, elevation, calories,
		       active_minutes, sedentary_minutes, lightly_active_minutes,
		       fairly_active_minutes, very_active_minutes, distances,
		       data_source, raw_data, created_at, updated_at
		FROM activity_data
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date`

	rows, err := r.db.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying activities: %w", err)
	}
	defer rows.Close()

	var records []domain.ActivityData
	for rows.Next() {
		var (
			data      domain.ActivityData
			distances []byte
			rawData   []byte
		)
		if err := rows.Scan(
			&data.UserID,
			&data.Date,
			&data.Steps,
			&data.Distance,
			&data.Floors,
			&data.Elevation,
			&data.Calories,
			&data.ActiveMinutes,
			&data.SedentaryMinutes,
			&data.LightlyActiveMinutes,
			&data.FairlyActiveMinutes,
			&data.VeryActiveMinutes,
			&distances,
			&data.DataSource,
			&rawData,
			&data.CreatedAt,
			&data.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		data.RawData = rawData
		if len(distances) > 0 {
			if err := go_json.Unmarshal(distances, &data.Distances); err != nil {
				return nil, fmt.Errorf("decoding distances: %w", err)
			}
		}
		records = append(records, data)
	}
	return records, rows.Err()
}
