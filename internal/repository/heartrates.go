package repository

import (
	"context"
	"fmt"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/nvalerio/wearsync/internal/domain"
)

type HeartRates struct {
	db DB
}

func (r *HeartRates) Upsert(ctx context.Context, data *domain.HeartRateData) error {
	const query = `
		INSERT INTO heart_rate_data (
			user_id, date, resting_heart_rate, heart_rate_zones,
			out_of_range_minutes, fat_burn_minutes, cardio_minutes,
			peak_minutes, data_source, raw_data
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, date) DO UPDATE SET
			resting_heart_rate = EXCLUDED.resting_heart_rate,
			heart_rate_zones = EXCLUDED.heart_rate_zones,
			out_of_range_minutes = EXCLUDED.out_of_range_minutes,
			fat_burn_minutes = EXCLUDED.fat_burn_minutes,
			cardio_minutes = EXCLUDED.cardio_minutes,
			peak_minutes = EXCLUDED.peak_minutes,
			data_source = EXCLUDED.data_source,
			raw_data = EXCLUDED.raw_data,
			updated_at = now()
		WHERE (
			heart_rate_data.resting_heart_rate, heart_rate_data.heart_rate_zones,
			heart_rate_data.out_of_range_minutes, heart_rate_data.fat_burn_minutes,
			heart_rate_data.cardio_minutes, heart_rate_data.peak_minutes,
			heart_rate_data.data_source
		) IS DISTINCT FROM (
			EXCLUDED.resting_heart_rate, EXCLUDED.heart_rate_zones,
			EXCLUDED.out_of_range_minutes, EXCLUDED.fat_burn_minutes,
			EXCLUDED.cardio_minutes, EXCLUDED.peak_minutes,
			EXCLUDED.data_source
		)`

	zones, err := go_json.Marshal(data.Zones)
	if err != nil {
		return fmt.Errorf("encoding heart rate zones: %w", err)
	}

	if _, err := r.db.Exec(ctx, query,
		data.UserID,
		data.Date,
		data.RestingHeartRate,
		zones,
		data.OutOfRangeMinutes,
		data.FatBurnMinutes,
		data.CardioMinutes,
		data.PeakMinutes,
		data.DataSource,
		[]byte(data.RawData),
	); err != nil {
		return fmt.Errorf("upserting heart rate: %w", err)
	}
	return nil
}

func (r *HeartRates) GetByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.HeartRateData, error) {
	const query = `
		SELECT user_id, date, resting_heart_rate, heart_rate_zones,
		       out_of_range_minutes, fat_burn_minutes, cardio_minutes,
		       peak_minutes, data_source, raw_data, created_at, updated_at
		FROM heart_rate_data
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date`

	rows, err := r.db.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying heart rates: %w", err)
	}
	defer rows.Close()

	var records []domain.HeartRateData
	for rows.Next() {
		var (
			data    domain.HeartRateData
			zones   []byte
			rawData []byte
		)
		if err := rows.Scan(
			&data.UserID,
			&data.Date,
			&data.RestingHeartRate,
			&zones,
			&data.OutOfRangeMinutes,
			&data.FatBurnMinutes,
			&data.CardioMinutes,
			&data.PeakMinutes,
			&data.DataSource,
			&rawData,
			&data.CreatedAt,
			&data.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning heart rate: %w", err)
		}
		data.RawData = rawData
		if len(zones) > 0 {
			if err := go_json.Unmarshal(zones, &data.Zones); err != nil {
				return nil, fmt.Errorf("decoding heart rate zones: %w", err)
			}
		}
		records = append(records, data)
	}
	return records, rows.Err()
}
