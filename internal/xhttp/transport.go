package xhttp

import (
	"fmt"
	"net/http"
)

const userAgent = "wearsync/1.0"

type wearsyncTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*wearsyncTransport)(nil)

func (t *wearsyncTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", userAgent)
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard wearsync headers.
func NewTransport() http.RoundTripper {
	return &wearsyncTransport{base: http.DefaultTransport}
}
