package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvalerio/wearsync/internal/domain"
)

func TestActivityUpsert(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	data := &domain.ActivityData{
		UserID:        uuid.New(),
		Date:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Steps:         10432,
		Distance:      7.8,
		Calories:      2450,
		ActiveMinutes: 62,
		DataSource:    domain.ProviderFitbit,
		RawData:       []byte(`{"summary":{"steps":10432}}`),
	}

	// pin the skip-if-unchanged guard: a resync that only changes the
	// distances breakdown must still count as a change
	mock.ExpectExec(`(?s)INSERT INTO activity_data.*IS DISTINCT FROM.*EXCLUDED\.distances`).
		WithArgs(
			data.UserID, data.Date, data.Steps, data.Distance, data.Floors,
			data.Elevation, data.Calories, data.ActiveMinutes,
			data.SedentaryMinutes, data.LightlyActiveMinutes,
			data.FairlyActiveMinutes, data.VeryActiveMinutes,
			pgxmock.AnyArg(), data.DataSource, pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := New(mock)
	require.NoError(t, repo.Activities.Upsert(context.Background(), data))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityGetByDateRange(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	userID := uuid.New()
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	columns := []string{
		"user_id", "date", "steps", "distance", "floors", "elevation",
		"calories", "active_minutes", "sedentary_minutes",
		"lightly_active_minutes", "fairly_active_minutes",
		"very_active_minutes", "distances", "data_source", "raw_data",
		"created_at", "updated_at",
	}

	mock.ExpectQuery(regexp.QuoteMeta("FROM activity_data")).
		WithArgs(userID, start, end).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(userID, start, 8000, 6.1, 4, 12.0, 2100, 45, 600, 200, 30, 15,
				[]byte(`[{"activity":"total","distance":6.1}]`),
				domain.ProviderFitbit, []byte(`{}`), now, now).
			AddRow(userID, end, 9500, 7.2, 6, 18.0, 2300, 58, 580, 210, 36, 22,
				[]byte(`[]`), domain.ProviderFitbit, []byte(`{}`), now, now))

	repo := New(mock)
	records, err := repo.Activities.GetByDateRange(context.Background(), userID, start, end)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 8000, records[0].Steps)
	require.Len(t, records[0].Distances, 1)
	assert.Equal(t, "total", records[0].Distances[0].Activity)
	assert.Equal(t, 9500, records[1].Steps)
	require.NoError(t, mock.ExpectationsWereMet())
}
