package whoop

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type sleepService struct {
	client *Client
}

func (s *sleepService) List(ctx context.Context, userID uuid.UUID, params *ListParams) (*PaginatedResponse[Sleep], error) {
	const route = "/v1/activity/sleep"

	var resp PaginatedResponse[Sleep]
	if err := s.client.do(ctx, userID, http.MethodGet, route, params.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
