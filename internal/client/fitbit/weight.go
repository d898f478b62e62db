package fitbit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nvalerio/wearsync/internal/domain"
)

type weightService struct {
	client *Client
}

func (s *weightService) GetByDate(ctx context.Context, userID uuid.UUID, day time.Time) (*WeightResponse, error) {
	route := fmt.Sprintf("/1/user/-/body/log/weight/date/%s.json", domain.FormatDay(day))

	var resp WeightResponse
	if err := s.client.do(ctx, userID, http.MethodGet, route, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
