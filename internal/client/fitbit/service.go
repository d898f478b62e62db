package fitbit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ActivityService interface {
	GetDaily(ctx context.Context, userID uuid.UUID, day time.Time) (*DailyActivityResponse, error)
}

type HeartRateService interface {
	GetDaily(ctx context.Context, userID uuid.UUID, day time.Time) (*HeartRateResponse, error)
}

type SleepService interface {
	GetByDate(ctx context.Context, userID uuid.UUID, day time.Time) (*SleepResponse, error)
}

type WeightService interface {
	GetByDate(ctx context.Context, userID uuid.UUID, day time.Time) (*WeightResponse, error)
}

type ProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error)
}
