// Package oauth owns the token lifecycle for connected providers:
// authorization URLs, code exchange, persistence, and silent refresh.
package oauth

import (
	"golang.org/x/oauth2"

	"github.com/nvalerio/wearsync/internal/config"
)

// FitbitConfig builds the oauth2 config for Fitbit. Fitbit requires
// client credentials via HTTP basic auth on the token endpoint.
func FitbitConfig(cfg config.Fitbit) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{"activity", "heartrate", "sleep", "weight", "profile"},
		Endpoint: oauth2.Endpoint{
			AuthURL:   "https://www.fitbit.com/oauth2/authorize",
			TokenURL:  "https://api.fitbit.com/oauth2/token",
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
}

// WhoopConfig builds the oauth2 config for WHOOP, which wants client
// credentials in the token request body.
func WhoopConfig(cfg config.Whoop) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes: []string{
			"offline",
			"read:recovery",
			"read:cycles",
			"read:sleep",
			"read:workout",
			"read:profile",
			"read:body_measurement",
		},
		Endpoint: oauth2.Endpoint{
			AuthURL:   "https://api.prod.whoop.com/oauth/oauth2/auth",
			TokenURL:  "https://api.prod.whoop.com/oauth/oauth2/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}
