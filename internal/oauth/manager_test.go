package oauth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/nvalerio/wearsync/internal/domain"
	"github.com/nvalerio/wearsync/internal/repository"
	"github.com/nvalerio/wearsync/internal/storage"
	"github.com/nvalerio/wearsync/internal/xerrors"
	"github.com/nvalerio/wearsync/internal/xslog"
)

func TestNeedsRefresh(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{name: "expired", expiresAt: now.Add(-time.Hour), want: true},
		{name: "inside buffer", expiresAt: now.Add(4 * time.Minute), want: true},
		{name: "outside buffer", expiresAt: now.Add(10 * time.Minute), want: false},
		{name: "no expiry recorded", expiresAt: time.Time{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, needsRefresh(tt.expiresAt, now))
		})
	}
}

type fakeTokenRepo struct {
	tokens map[string]*domain.ProviderToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*domain.ProviderToken)}
}

func (r *fakeTokenRepo) key(userID uuid.UUID, provider domain.Provider) string {
	return fmt.Sprintf("%s/%s", provider, userID)
}

func (r *fakeTokenRepo) Get(_ context.Context, userID uuid.UUID, provider domain.Provider) (*domain.ProviderToken, error) {
	tok, ok := r.tokens[r.key(userID, provider)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *tok
	return &copied, nil
}

func (r *fakeTokenRepo) Upsert(_ context.Context, token *domain.ProviderToken) error {
	copied := *token
	r.tokens[r.key(token.UserID, token.Provider)] = &copied
	return nil
}

func (r *fakeTokenRepo) Delete(_ context.Context, userID uuid.UUID, provider domain.Provider) error {
	delete(r.tokens, r.key(userID, provider))
	return nil
}

type fakeUserRepo struct {
	claimed map[uuid.UUID]domain.Provider
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{claimed: make(map[uuid.UUID]domain.Provider)}
}

func (r *fakeUserRepo) ClaimProvider(_ context.Context, userID uuid.UUID, provider domain.Provider) error {
	if current, ok := r.claimed[userID]; ok && current != provider {
		return fmt.Errorf("provider %s already connected", current)
	}
	r.claimed[userID] = provider
	return nil
}

func (r *fakeUserRepo) ClearProvider(_ context.Context, userID uuid.UUID) error {
	delete(r.claimed, userID)
	return nil
}

func TestAccessTokenRefreshesNearExpiry(t *testing.T) {
	t.Parallel()

	var tokenCalls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.FormValue("grant_type"))
		assert.Equal(t, "old-refresh", r.FormValue("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "new-access",
			"refresh_token": "new-refresh",
			"token_type": "bearer",
			"expires_in": 3600
		}`))
	}))
	defer srv.Close()

	userID := uuid.New()
	tokens := newFakeTokenRepo()
	require.NoError(t, tokens.Upsert(context.Background(), &domain.ProviderToken{
		UserID:       userID,
		Provider:     domain.ProviderWhoop,
		AccessToken:  "old-access",
		RefreshToken: "old-refresh",
		ExpiresAt:    time.Now().Add(time.Minute),
	}))

	m := NewManager(
		map[domain.Provider]*oauth2.Config{
			domain.ProviderWhoop: {
				ClientID:     "id",
				ClientSecret: "secret",
				Endpoint: oauth2.Endpoint{
					TokenURL:  srv.URL,
					AuthStyle: oauth2.AuthStyleInParams,
				},
			},
		},
		tokens,
		newFakeUserRepo(),
		storage.NewMemoryTokenCache(),
		xslog.NewTextLogger(io.Discard, xslog.LevelError),
	)

	got, err := m.AccessToken(context.Background(), domain.ProviderWhoop, userID)
	require.NoError(t, err)
	assert.Equal(t, "new-access", got)

	stored, err := tokens.Get(context.Background(), userID, domain.ProviderWhoop)
	require.NoError(t, err)
	assert.Equal(t, "new-access", stored.AccessToken)
	assert.Equal(t, "new-refresh", stored.RefreshToken)

	// second call is served from cache
	got, err = m.AccessToken(context.Background(), domain.ProviderWhoop, userID)
	require.NoError(t, err)
	assert.Equal(t, "new-access", got)
	assert.Equal(t, int64(1), tokenCalls.Load())
}

func TestAccessTokenServesValidTokenWithoutRefresh(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	tokens := newFakeTokenRepo()
	require.NoError(t, tokens.Upsert(context.Background(), &domain.ProviderToken{
		UserID:       userID,
		Provider:     domain.ProviderFitbit,
		AccessToken:  "still-good",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(time.Hour),
	}))

	m := NewManager(
		map[domain.Provider]*oauth2.Config{domain.ProviderFitbit: {}},
		tokens,
		newFakeUserRepo(),
		storage.NewMemoryTokenCache(),
		xslog.NewTextLogger(io.Discard, xslog.LevelError),
	)

	got, err := m.AccessToken(context.Background(), domain.ProviderFitbit, userID)
	require.NoError(t, err)
	assert.Equal(t, "still-good", got)
}

func TestFailedExchangeLeavesProviderSlotFree(t *testing.T) {
	t.Parallel()

	rejecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"errorType":"invalid_grant"}]}`))
	}))
	defer rejecting.Close()

	issuing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "whoop-access",
			"refresh_token": "whoop-refresh",
			"token_type": "bearer",
			"expires_in": 3600
		}`))
	}))
	defer issuing.Close()

	userID := uuid.New()
	tokens := newFakeTokenRepo()
	users := newFakeUserRepo()

	m := NewManager(
		map[domain.Provider]*oauth2.Config{
			domain.ProviderFitbit: {
				ClientID:     "id",
				ClientSecret: "secret",
				Endpoint:     oauth2.Endpoint{TokenURL: rejecting.URL, AuthStyle: oauth2.AuthStyleInHeader},
			},
			domain.ProviderWhoop: {
				ClientID:     "id",
				ClientSecret: "secret",
				Endpoint:     oauth2.Endpoint{TokenURL: issuing.URL, AuthStyle: oauth2.AuthStyleInParams},
			},
		},
		tokens,
		users,
		storage.NewMemoryTokenCache(),
		xslog.NewTextLogger(io.Discard, xslog.LevelError),
	)

	state := EncodeState(userID, time.Now())

	_, err := m.Exchange(context.Background(), domain.ProviderFitbit, "bad-code", state)
	require.Error(t, err)
	assert.NotContains(t, users.claimed, userID)
	_, err = tokens.Get(context.Background(), userID, domain.ProviderFitbit)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// the rejected attempt must not block connecting the other provider
	got, err := m.Exchange(context.Background(), domain.ProviderWhoop, "good-code", state)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
	assert.Equal(t, domain.ProviderWhoop, users.claimed[userID])

	stored, err := tokens.Get(context.Background(), userID, domain.ProviderWhoop)
	require.NoError(t, err)
	assert.Equal(t, "whoop-access", stored.AccessToken)
}

func TestDisconnectWithoutTokenStillClearsProvider(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	users := newFakeUserRepo()
	require.NoError(t, users.ClaimProvider(context.Background(), userID, domain.ProviderWhoop))

	m := NewManager(
		map[domain.Provider]*oauth2.Config{domain.ProviderWhoop: {}},
		newFakeTokenRepo(),
		users,
		storage.NewMemoryTokenCache(),
		xslog.NewTextLogger(io.Discard, xslog.LevelError),
	)

	require.NoError(t, m.Disconnect(context.Background(), userID, domain.ProviderWhoop))
	assert.NotContains(t, users.claimed, userID)
}

func TestAccessTokenWithoutStoredTokenIsUnauthorized(t *testing.T) {
	t.Parallel()

	m := NewManager(
		map[domain.Provider]*oauth2.Config{domain.ProviderFitbit: {}},
		newFakeTokenRepo(),
		newFakeUserRepo(),
		storage.NewMemoryTokenCache(),
		xslog.NewTextLogger(io.Discard, xslog.LevelError),
	)

	_, err := m.AccessToken(context.Background(), domain.ProviderFitbit, uuid.New())
	var xerr *xerrors.Error
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, http.StatusUnauthorized, xerr.StatusCode)
}

func TestDisconnectRemovesToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	tokens := newFakeTokenRepo()
	users := newFakeUserRepo()
	require.NoError(t, users.ClaimProvider(context.Background(), userID, domain.ProviderWhoop))
	require.NoError(t, tokens.Upsert(context.Background(), &domain.ProviderToken{
		UserID:   userID,
		Provider: domain.ProviderWhoop,
	}))

	m := NewManager(
		map[domain.Provider]*oauth2.Config{domain.ProviderWhoop: {}},
		tokens,
		users,
		storage.NewMemoryTokenCache(),
		xslog.NewTextLogger(io.Discard, xslog.LevelError),
	)

	require.NoError(t, m.Disconnect(context.Background(), userID, domain.ProviderWhoop))

	_, err := tokens.Get(context.Background(), userID, domain.ProviderWhoop)
	assert.Error(t, err)
	assert.NotContains(t, users.claimed, userID)
}
