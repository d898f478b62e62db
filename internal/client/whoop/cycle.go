package whoop

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type cycleService struct {
	client *Client
}

func (s *cycleService) List(ctx context.Context, userID uuid.UUID, params *ListParams) (*PaginatedResponse[Cycle], error) {
	const route = "/v1/cycle"

	var resp PaginatedResponse[Cycle]
	if err := s.client.do(ctx, userID, http.MethodGet, route, params.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
