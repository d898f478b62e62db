package whoop

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type userService struct {
	client *Client
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfile, error) {
	const route = "/v1/user/profile/basic"

	var profile UserProfile
	if err := s.client.do(ctx, userID, http.MethodGet, route, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *userService) GetBodyMeasurement(ctx context.Context, userID uuid.UUID) (*BodyMeasurement, error) {
	const route = "/v1/user/measurement/body"

	var measurement BodyMeasurement
	if err := s.client.do(ctx, userID, http.MethodGet, route, nil, &measurement); err != nil {
		return nil, err
	}
	return &measurement, nil
}
