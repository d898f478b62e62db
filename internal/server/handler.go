// Package server exposes the sync engine over HTTP: the OAuth connect
// and callback flow, sync triggers, and read access to the unified
// records.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/nvalerio/wearsync/internal/domain"
	"github.com/nvalerio/wearsync/internal/xerrors"
	"github.com/nvalerio/wearsync/internal/xsync"
)

type AuthManager interface {
	AuthURL(provider domain.Provider, userID uuid.UUID) (url, state string, err error)
	Exchange(ctx context.Context, provider domain.Provider, code, state string) (uuid.UUID, error)
	Disconnect(ctx context.Context, userID uuid.UUID, provider domain.Provider) error
}

type Syncer interface {
	Sync(ctx context.Context, req xsync.Request) (*xsync.Result, error)
	SyncToday(ctx context.Context, userID uuid.UUID, dataTypes []xsync.DataType) (*xsync.Result, error)
	SyncHistorical(ctx context.Context, userID uuid.UUID, days int, dataTypes []xsync.DataType) (*xsync.Result, error)
}

type UserReader interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type DataReader interface {
	Activities(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.ActivityData, error)
	HeartRates(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.HeartRateData, error)
	Sleeps(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.SleepData, error)
	Weights(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.WeightData, error)
}

type Handler struct {
	auth        AuthManager
	sync        Syncer
	users       UserReader
	data        DataReader
	frontendURL string
	logger      *slog.Logger
}

func NewHandler(auth AuthManager, sync Syncer, users UserReader, data DataReader, frontendURL string, logger *slog.Logger) *Handler {
	return &Handler{
		auth:        auth,
		sync:        sync,
		users:       users,
		data:        data,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

func pathProvider(r *http.Request) (domain.Provider, error) {
	provider, err := domain.ParseProvider(r.PathValue("provider"))
	if err != nil {
		return "", xerrors.BadRequest(xerrors.WithMessage(err.Error()))
	}
	return provider, nil
}

func queryUserID(r *http.Request) (uuid.UUID, error) {
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		return uuid.Nil, xerrors.BadRequest(xerrors.WithMessage("missing or invalid user_id"))
	}
	return userID, nil
}

func (h *Handler) frontendRedirect(w http.ResponseWriter, r *http.Request, provider domain.Provider, path string, query url.Values) {
	target := h.frontendURL + "/" + provider.String() + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	http.Redirect(w, r, target, http.StatusFound)
}
