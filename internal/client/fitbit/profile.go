package fitbit

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type profileService struct {
	client *Client
}

func (s *profileService) Get(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error) {
	const route = "/1/user/-/profile.json"

	var resp ProfileResponse
	if err := s.client.do(ctx, userID, http.MethodGet, route, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
