package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nvalerio/wearsync/internal/domain"
)

type Weights struct {
	db DB
}

func (r *Weights) Upsert(ctx context.Context, data *domain.WeightData) error {
	const query = `
		INSERT INTO weight_data (
			user_id, date, weight, bmi, fat_percent, unit, logged_at,
			source, data_source, raw_data
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, date) DO UPDATE SET
			weight = EXCLUDED.weight,
			bmi = EXCLUDED.bmi,
			fat_percent = EXCLUDED.fat_percent,
			unit = EXCLUDED.unit,
			logged_at = EXCLUDED.logged_at,
			source = EXCLUDED.source,
			data_source = EXCLUDED.data_source,
			raw_data = EXCLUDED.raw_data,
			updated_at = now()
		WHERE (
			weight_data.weight, weight_data.bmi, weight_data.fat_percent,
			weight_data.unit, weight_data.logged_at, weight_data.source,
			weight_data.data_source
		) IS DISTINCT FROM (
			EXCLUDED.weight, EXCLUDED.bmi, EXCLUDED.fat_percent,
			EXCLUDED.unit, EXCLUDED.logged_at, EXCLUDED.source,
			EXCLUDED.data_source
		)`

	if _, err := r.db.Exec(ctx, query,
		data.UserID,
		data.Date,
		data.Weight,
		data.BMI,
		data.FatPercent,
		data.Unit,
		data.LoggedAt,
		data.Source,
		data.DataSource,
		[]byte(data.RawData),
	); err != nil {
		return fmt.Errorf("upserting weight: %w", err)
	}
	return nil
}

func (r *Weights) GetByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.WeightData, error) {
	const query = `
		SELECT user_id, date, weight, bmi, fat_percent, unit, logged_at,
		       source, data_source, raw_data, created_at, updated_at
		FROM weight_data
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date`

	rows, err := r.db.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying weight: %w", err)
	}
	defer rows.Close()

	var records []domain.WeightData
	for rows.Next() {
		var (
			data    domain.WeightData
			rawData []byte
		)
		if err := rows.Scan(
			&data.UserID,
			&data.Date,
			&data.Weight,
			&data.BMI,
			&data.FatPercent,
			&data.Unit,
			&data.LoggedAt,
			&data.Source,
			&data.DataSource,
			&rawData,
			&data.CreatedAt,
			&data.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning weight: %w", err)
		}
		data.RawData = rawData
		records = append(records, data)
	}
	return records, rows.Err()
}
