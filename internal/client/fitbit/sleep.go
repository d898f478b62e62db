package fitbit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nvalerio/wearsync/internal/domain"
)

type sleepService struct {
	client *Client
}

func (s *sleepService) GetByDate(ctx context.Context, userID uuid.UUID, day time.Time) (*SleepResponse, error) {
	route := fmt.Sprintf("/1.2/user/-/sleep/date/%s.json", domain.FormatDay(day))

	var resp SleepResponse
	if err := s.client.do(ctx, userID, http.MethodGet, route, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
