package fitbit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nvalerio/wearsync/internal/domain"
)

type heartRateService struct {
	client *Client
}

func (s *heartRateService) GetDaily(ctx context.Context, userID uuid.UUID, day time.Time) (*HeartRateResponse, error) {
	route := fmt.Sprintf("/1/user/-/activities/heart/date/%s/1d.json", domain.FormatDay(day))

	var resp HeartRateResponse
	if err := s.client.do(ctx, userID, http.MethodGet, route, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
