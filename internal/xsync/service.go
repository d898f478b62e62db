package xsync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nvalerio/wearsync/internal/client/fitbit"
	"github.com/nvalerio/wearsync/internal/client/whoop"
	"github.com/nvalerio/wearsync/internal/domain"
	"github.com/nvalerio/wearsync/internal/xerrors"
	"github.com/nvalerio/wearsync/internal/xslog"
)

type ProviderResolver interface {
	ConnectedProvider(ctx context.Context, userID uuid.UUID) (*domain.Provider, error)
}

type ActivityStore interface {
	Upsert(ctx context.Context, data *domain.ActivityData) error
}

type HeartRateStore interface {
	Upsert(ctx context.Context, data *domain.HeartRateData) error
}

type SleepStore interface {
	Upsert(ctx context.Context, data *domain.SleepData) error
}

type WeightStore interface {
	Upsert(ctx context.Context, data *domain.WeightData) error
}

// Stores bundles the persistence surface the orchestrator writes to.
type Stores struct {
	Users      ProviderResolver
	Activities ActivityStore
	HeartRates HeartRateStore
	Sleeps     SleepStore
	Weights    WeightStore
}

// strategy is the per-provider sync implementation. Each method covers
// one data type over the requested range and reports how many records
// landed plus every error it absorbed on the way.
type strategy interface {
	syncActivity(ctx context.Context, userID uuid.UUID, start, end time.Time) (int, []error)
	syncHeartRate(ctx context.Context, userID uuid.UUID, start, end time.Time) (int, []error)
	syncSleep(ctx context.Context, userID uuid.UUID, start, end time.Time) (int, []error)
	syncWeight(ctx context.Context, userID uuid.UUID, start, end time.Time) (int, []error)
}

type Service struct {
	stores     Stores
	strategies map[domain.Provider]strategy
	logger     *slog.Logger
	now        func() time.Time
}

func NewService(stores Stores, fitbitClient *fitbit.Client, whoopClient *whoop.Client, logger *slog.Logger) *Service {
	now := time.Now
	return &Service{
		stores: stores,
		strategies: map[domain.Provider]strategy{
			domain.ProviderFitbit: &fitbitStrategy{
				client: fitbitClient,
				stores: stores,
				logger: logger,
			},
			domain.ProviderWhoop: &whoopStrategy{
				client: whoopClient,
				stores: stores,
				logger: logger,
				now:    now,
			},
		},
		logger: logger,
		now:    now,
	}
}

// Request describes one sync invocation. Zero DataTypes means all four.
type Request struct {
	UserID    uuid.UUID
	Start     time.Time
	End       time.Time
	DataTypes []DataType
}

// Sync runs the orchestration state machine: resolve the connected
// provider, then run each requested data type in isolation so one
// type's failure never blocks the rest.
func (s *Service) Sync(ctx context.Context, req Request) (*Result, error) {
	started := s.now()

	provider, err := s.stores.Users.ConnectedProvider(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolving provider: %w", err)
	}
	if provider == nil {
		return nil, xerrors.BadRequest(xerrors.WithMessage("no provider connected"))
	}

	strat, ok := s.strategies[*provider]
	if !ok {
		return nil, xerrors.Internal(xerrors.WithMessage(fmt.Sprintf("no sync strategy for provider %q", *provider)))
	}

	dataTypes := req.DataTypes
	if len(dataTypes) == 0 {
		dataTypes = AllDataTypes()
	}

	start := domain.Day(req.Start)
	end := domain.Day(req.End)

	result := &Result{
		DateRange: DateRange{
			StartDate: domain.FormatDay(start),
			EndDate:   domain.FormatDay(end),
		},
	}

	for _, dataType := range dataTypes {
		var (
			count int
			errs  []error
		)
		switch dataType {
		case DataTypeActivity:
			count, errs = strat.syncActivity(ctx, req.UserID, start, end)
			result.SyncedRecords.Activities = count
		case DataTypeHeartRate:
			count, errs = strat.syncHeartRate(ctx, req.UserID, start, end)
			result.SyncedRecords.HeartRate = count
		case DataTypeSleep:
			count, errs = strat.syncSleep(ctx, req.UserID, start, end)
			result.SyncedRecords.Sleep = count
		case DataTypeWeight:
			count, errs = strat.syncWeight(ctx, req.UserID, start, end)
			result.SyncedRecords.Weight = count
		default:
			errs = []error{fmt.Errorf("unknown data type: %q", dataType)}
		}

		for _, err := range errs {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", dataType, err))
		}

		s.logger.InfoContext(ctx, "data type synced",
			xslog.UserID(req.UserID),
			xslog.Provider(provider.String()),
			xslog.DataType(string(dataType)),
			xslog.Count(count),
			slog.Int("errors", len(errs)),
		)
	}

	result.Success = len(result.Errors) == 0
	elapsed := s.now().Sub(started)
	result.SetDuration(elapsed)

	s.logger.InfoContext(ctx, "sync finished",
		xslog.UserID(req.UserID),
		xslog.Provider(provider.String()),
		xslog.Start(start),
		xslog.End(end),
		xslog.Duration(elapsed),
		slog.Bool("success", result.Success),
	)
	return result, nil
}

// SyncToday syncs the current UTC day only.
func (s *Service) SyncToday(ctx context.Context, userID uuid.UUID, dataTypes []DataType) (*Result, error) {
	today := domain.Day(s.now().UTC())
	return s.Sync(ctx, Request{UserID: userID, Start: today, End: today, DataTypes: dataTypes})
}

// SyncHistorical syncs the trailing N days up to today.
func (s *Service) SyncHistorical(ctx context.Context, userID uuid.UUID, days int, dataTypes []DataType) (*Result, error) {
	if days <= 0 {
		return nil, xerrors.BadRequest(xerrors.WithMessage("days must be positive"))
	}
	today := domain.Day(s.now().UTC())
	return s.Sync(ctx, Request{
		UserID:    userID,
		Start:     today.AddDate(0, 0, -days),
		End:       today,
		DataTypes: dataTypes,
	})
}
