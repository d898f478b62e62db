package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProviderToken holds persisted OAuth credentials for one user with one
// provider. Created on first exchange, updated in place on refresh,
// deleted on disconnect.
type ProviderToken struct {
	UserID         uuid.UUID `json:"user_id"`
	Provider       Provider  `json:"provider"`
	AccessToken    string    `json:"-"`
	RefreshToken   string    `json:"-"`
	ExpiresAt      time.Time `json:"expires_at"`
	ProviderUserID string    `json:"provider_user_id,omitempty"`
	Scope          string    `json:"scope,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
