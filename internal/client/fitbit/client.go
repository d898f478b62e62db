package fitbit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/nvalerio/wearsync/internal/xhttp"
)

// TokenSource yields a valid access token for a user before each call.
type TokenSource interface {
	AccessToken(ctx context.Context, userID uuid.UUID) (string, error)
}

type Client struct {
	Activity  ActivityService
	HeartRate HeartRateService
	Sleep     SleepService
	Weight    WeightService
	Profile   ProfileService

	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
}

func New(tokens TokenSource, opts ...Option) *Client {
	const baseURL = "https://api.fitbit.com"

	cfg := &clientConfig{
		baseURL: baseURL,
		timeout: 30 * time.Second,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Client{
		baseURL:    cfg.baseURL,
		httpClient: xhttp.NewHTTPClient(xhttp.WithTimeout(cfg.timeout)),
		tokens:     tokens,
		logger:     cfg.logger,
	}

	c.Activity = &activityService{client: c}
	c.HeartRate = &heartRateService{client: c}
	c.Sleep = &sleepService{client: c}
	c.Weight = &weightService{client: c}
	c.Profile = &profileService{client: c}

	return c
}

type clientConfig struct {
	baseURL string
	timeout time.Duration
	logger  *slog.Logger
}

type Option func(*clientConfig)

func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = baseURL }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

func (c *Client) do(ctx context.Context, userID uuid.UUID, method string, path string, query url.Values, result any) error {
	token, err := c.tokens.AccessToken(ctx, userID)
	if err != nil {
		return fmt.Errorf("getting token: %w", err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	// metric units so weight arrives in kilograms
	req.Header.Set("Accept-Language", "en_GB")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}
		if err := go_json.NewDecoder(bytes.NewReader(body)).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w\nbody: %s", err, string(body))
		}
	}

	return nil
}
