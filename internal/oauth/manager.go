package oauth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/nvalerio/wearsync/internal/config"
	"github.com/nvalerio/wearsync/internal/domain"
	"github.com/nvalerio/wearsync/internal/repository"
	"github.com/nvalerio/wearsync/internal/storage"
	"github.com/nvalerio/wearsync/internal/xerrors"
	"github.com/nvalerio/wearsync/internal/xslog"
)

// RefreshBuffer is how long before expiry a token is refreshed, so a
// sync that starts just under the wire never runs on a dying token.
const RefreshBuffer = 5 * time.Minute

type TokenRepository interface {
	Get(ctx context.Context, userID uuid.UUID, provider domain.Provider) (*domain.ProviderToken, error)
	Upsert(ctx context.Context, token *domain.ProviderToken) error
	Delete(ctx context.Context, userID uuid.UUID, provider domain.Provider) error
}

type UserRepository interface {
	ClaimProvider(ctx context.Context, userID uuid.UUID, provider domain.Provider) error
	ClearProvider(ctx context.Context, userID uuid.UUID) error
}

// Configs builds the per-provider oauth2 configs from the app config.
func Configs(cfg config.Config) map[domain.Provider]*oauth2.Config {
	return map[domain.Provider]*oauth2.Config{
		domain.ProviderFitbit: FitbitConfig(cfg.Fitbit),
		domain.ProviderWhoop:  WhoopConfig(cfg.Whoop),
	}
}

// Manager drives the OAuth lifecycle for every provider: building
// authorization URLs, exchanging callback codes, serving access tokens
// with silent refresh, and tearing down on disconnect.
type Manager struct {
	configs map[domain.Provider]*oauth2.Config
	tokens  TokenRepository
	users   UserRepository
	cache   storage.TokenCache
	logger  *slog.Logger
	now     func() time.Time
}

func NewManager(
	configs map[domain.Provider]*oauth2.Config,
	tokens TokenRepository,
	users UserRepository,
	cache storage.TokenCache,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		configs: configs,
		tokens:  tokens,
		users:   users,
		cache:   cache,
		logger:  logger,
		now:     time.Now,
	}
}

func (m *Manager) configFor(provider domain.Provider) (*oauth2.Config, error) {
	cfg, ok := m.configs[provider]
	if !ok {
		return nil, xerrors.BadRequest(xerrors.WithMessage(fmt.Sprintf("unsupported provider %q", provider)))
	}
	return cfg, nil
}

// AuthURL returns the provider's authorization page URL with the user
// identity packed into the state parameter, plus the state itself so
// callers can verify it on callback.
func (m *Manager) AuthURL(provider domain.Provider, userID uuid.UUID) (string, string, error) {
	cfg, err := m.configFor(provider)
	if err != nil {
		return "", "", err
	}
	state := EncodeState(userID, m.now())
	return cfg.AuthCodeURL(state), state, nil
}

// Exchange handles the OAuth callback: it validates state, claims the
// provider slot for the user, trades the code for tokens, and persists
// them. Returns the user the flow belongs to.
func (m *Manager) Exchange(ctx context.Context, provider domain.Provider, code, state string) (uuid.UUID, error) {
	cfg, err := m.configFor(provider)
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := DecodeState(state, m.now())
	if err != nil {
		return uuid.Nil, xerrors.BadRequest(xerrors.WithMessage("invalid state"), xerrors.WithCause(err))
	}

	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return userID, xerrors.Unauthorized(xerrors.WithMessage("code exchange failed"), xerrors.WithCause(err))
	}

	// claim after the exchange succeeded, still ahead of the token
	// write: a rejected code must not leave the provider slot held
	if err := m.users.ClaimProvider(ctx, userID, provider); err != nil {
		return userID, err
	}

	stored := &domain.ProviderToken{
		UserID:         userID,
		Provider:       provider,
		AccessToken:    tok.AccessToken,
		RefreshToken:   tok.RefreshToken,
		ExpiresAt:      tok.Expiry,
		ProviderUserID: tokenExtraString(tok, "user_id"),
		Scope:          tokenExtraString(tok, "scope"),
	}
	if err := m.tokens.Upsert(ctx, stored); err != nil {
		return userID, fmt.Errorf("storing token: %w", err)
	}
	m.cacheToken(ctx, stored)

	m.logger.InfoContext(ctx, "provider connected",
		xslog.UserID(userID),
		xslog.Provider(provider.String()),
	)
	return userID, nil
}

// AccessToken returns a valid access token for the user, refreshing it
// when within RefreshBuffer of expiry.
func (m *Manager) AccessToken(ctx context.Context, provider domain.Provider, userID uuid.UUID) (string, error) {
	if cached, ok := m.cachedToken(ctx, provider, userID); ok {
		return cached, nil
	}

	stored, err := m.tokens.Get(ctx, userID, provider)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", xerrors.Unauthorized(
				xerrors.WithMessage(fmt.Sprintf("no %s token on file, connect first", provider)),
			)
		}
		return "", fmt.Errorf("loading token: %w", err)
	}

	if !needsRefresh(stored.ExpiresAt, m.now()) {
		m.cacheToken(ctx, stored)
		return stored.AccessToken, nil
	}

	refreshed, err := m.refresh(ctx, provider, stored)
	if err != nil {
		return "", err
	}
	return refreshed.AccessToken, nil
}

func (m *Manager) refresh(ctx context.Context, provider domain.Provider, stored *domain.ProviderToken) (*domain.ProviderToken, error) {
	cfg, err := m.configFor(provider)
	if err != nil {
		return nil, err
	}

	tok, err := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: stored.RefreshToken}).Token()
	if err != nil {
		return nil, xerrors.Unauthorized(
			xerrors.WithMessage(fmt.Sprintf("%s token refresh failed, reconnect required", provider)),
			xerrors.WithCause(err),
		)
	}

	stored.AccessToken = tok.AccessToken
	if tok.RefreshToken != "" {
		stored.RefreshToken = tok.RefreshToken
	}
	stored.ExpiresAt = tok.Expiry

	if err := m.tokens.Upsert(ctx, stored); err != nil {
		return nil, fmt.Errorf("storing refreshed token: %w", err)
	}
	m.cacheToken(ctx, stored)

	m.logger.InfoContext(ctx, "token refreshed",
		xslog.UserID(stored.UserID),
		xslog.Provider(provider.String()),
	)
	return stored, nil
}

// Disconnect removes the user's token and frees their provider slot.
// A missing token row is treated as already deleted so the provider
// slot is always released.
func (m *Manager) Disconnect(ctx context.Context, userID uuid.UUID, provider domain.Provider) error {
	if err := m.tokens.Delete(ctx, userID, provider); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("deleting token: %w", err)
	}
	if err := m.users.ClearProvider(ctx, userID); err != nil {
		return fmt.Errorf("clearing provider: %w", err)
	}
	if err := m.cache.Delete(ctx, cacheKey(provider, userID)); err != nil {
		m.logger.WarnContext(ctx, "token cache delete failed", xslog.Error(err))
	}

	m.logger.InfoContext(ctx, "provider disconnected",
		xslog.UserID(userID),
		xslog.Provider(provider.String()),
	)
	return nil
}

// SourceFor adapts the manager to the per-provider TokenSource
// interface the API clients consume.
func (m *Manager) SourceFor(provider domain.Provider) *ProviderTokenSource {
	return &ProviderTokenSource{manager: m, provider: provider}
}

type ProviderTokenSource struct {
	manager  *Manager
	provider domain.Provider
}

func (s *ProviderTokenSource) AccessToken(ctx context.Context, userID uuid.UUID) (string, error) {
	return s.manager.AccessToken(ctx, s.provider, userID)
}

func needsRefresh(expiresAt time.Time, now time.Time) bool {
	if expiresAt.IsZero() {
		return false
	}
	return now.Add(RefreshBuffer).After(expiresAt)
}

type cachedToken struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func cacheKey(provider domain.Provider, userID uuid.UUID) string {
	return fmt.Sprintf("wearsync:token:%s:%s", provider, userID)
}

func (m *Manager) cachedToken(ctx context.Context, provider domain.Provider, userID uuid.UUID) (string, bool) {
	raw, err := m.cache.Get(ctx, cacheKey(provider, userID))
	if err != nil {
		return "", false
	}
	var entry cachedToken
	if err := go_json.Unmarshal(raw, &entry); err != nil {
		return "", false
	}
	if needsRefresh(entry.ExpiresAt, m.now()) {
		return "", false
	}
	return entry.AccessToken, true
}

func (m *Manager) cacheToken(ctx context.Context, stored *domain.ProviderToken) {
	ttl := stored.ExpiresAt.Sub(m.now()) - RefreshBuffer
	if ttl <= 0 {
		return
	}

	raw, err := go_json.Marshal(cachedToken{
		AccessToken: stored.AccessToken,
		ExpiresAt:   stored.ExpiresAt,
	})
	if err != nil {
		return
	}
	if err := m.cache.Set(ctx, cacheKey(stored.Provider, stored.UserID), raw, ttl); err != nil {
		m.logger.WarnContext(ctx, "token cache set failed", xslog.Error(err))
	}
}

func tokenExtraString(tok *oauth2.Token, key string) string {
	if value, ok := tok.Extra(key).(string); ok {
		return value
	}
	return ""
}
