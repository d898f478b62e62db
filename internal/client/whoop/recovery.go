package whoop

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type recoveryService struct {
	client *Client
}

func (s *recoveryService) List(ctx context.Context, userID uuid.UUID, params *ListParams) (*PaginatedResponse[Recovery], error) {
	const route = "/v1/recovery"

	var resp PaginatedResponse[Recovery]
	if err := s.client.do(ctx, userID, http.MethodGet, route, params.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
