package fitbit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nvalerio/wearsync/internal/domain"
)

type activityService struct {
	client *Client
}

func (s *activityService) GetDaily(ctx context.Context, userID uuid.UUID, day time.Time) (*DailyActivityResponse, error) {
	route := fmt.Sprintf("/1/user/-/activities/date/%s.json", domain.FormatDay(day))

	var resp DailyActivityResponse
	if err := s.client.do(ctx, userID, http.MethodGet, route, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
