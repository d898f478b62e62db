package server

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nvalerio/wearsync/internal/domain"
	"github.com/nvalerio/wearsync/internal/repository"
)

// RepositoryData adapts the repository's range queries to the
// DataReader surface the handlers consume.
type RepositoryData struct {
	repo *repository.Repository
}

func NewRepositoryData(repo *repository.Repository) *RepositoryData {
	return &RepositoryData{repo: repo}
}

func (d *RepositoryData) Activities(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.ActivityData, error) {
	return d.repo.Activities.GetByDateRange(ctx, userID, start, end)
}

func (d *RepositoryData) HeartRates(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.HeartRateData, error) {
	return d.repo.HeartRates.GetByDateRange(ctx, userID, start, end)
}

func (d *RepositoryData) Sleeps(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.SleepData, error) {
	return d.repo.Sleeps.GetByDateRange(ctx, userID, start, end)
}

func (d *RepositoryData) Weights(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.WeightData, error) {
	return d.repo.Weights.GetByDateRange(ctx, userID, start, end)
}
