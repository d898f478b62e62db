package whoop

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type workoutService struct {
	client *Client
}

func (s *workoutService) List(ctx context.Context, userID uuid.UUID, params *ListParams) (*PaginatedResponse[Workout], error) {
	const route = "/v1/activity/workout"

	var resp PaginatedResponse[Workout]
	if err := s.client.do(ctx, userID, http.MethodGet, route, params.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
