package whoop

import (
	"context"

	"github.com/google/uuid"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
	GetBodyMeasurement(ctx context.Context, userID uuid.UUID) (*BodyMeasurement, error)
}

type CycleService interface {
	List(ctx context.Context, userID uuid.UUID, params *ListParams) (*PaginatedResponse[Cycle], error)
}

type RecoveryService interface {
	List(ctx context.Context, userID uuid.UUID, params *ListParams) (*PaginatedResponse[Recovery], error)
}

type SleepService interface {
	List(ctx context.Context, userID uuid.UUID, params *ListParams) (*PaginatedResponse[Sleep], error)
}

type WorkoutService interface {
	List(ctx context.Context, userID uuid.UUID, params *ListParams) (*PaginatedResponse[Workout], error)
}
