package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nvalerio/wearsync/internal/domain"
)

// Tokens persists OAuth credentials. Each provider gets its own table
// so a stray join can never leak one provider's tokens into the other's
// code path.
type Tokens struct {
	db DB
}

func tokenTable(provider domain.Provider) (string, error) {
	switch provider {
	case domain.ProviderFitbit:
		return "fitbit_tokens", nil
	case domain.ProviderWhoop:
		return "whoop_tokens", nil
	default:
		return "", fmt.Errorf("unknown provider: %q", provider)
	}
}

func (r *Tokens) Get(ctx context.Context, userID uuid.UUID, provider domain.Provider) (*domain.ProviderToken, error) {
	table, err := tokenTable(provider)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT user_id, access_token, refresh_token, expires_at,
		       provider_user_id, scope, created_at, updated_at
		FROM %s
		WHERE user_id = $1`, table)

	token := domain.ProviderToken{Provider: provider}
	err = r.db.QueryRow(ctx, query, userID).Scan(
		&token.UserID,
		&token.AccessToken,
		&token.RefreshToken,
		&token.ExpiresAt,
		&token.ProviderUserID,
		&token.Scope,
		&token.CreatedAt,
		&token.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning %s token: %w", provider, err)
	}
	return &token, nil
}

func (r *Tokens) Upsert(ctx context.Context, token *domain.ProviderToken) error {
	table, err := tokenTable(token.Provider)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, access_token, refresh_token, expires_at, provider_user_id, scope)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at,
			provider_user_id = EXCLUDED.provider_user_id,
			scope = EXCLUDED.scope,
			updated_at = now()`, table)

	if _, err := r.db.Exec(ctx, query,
		token.UserID,
		token.AccessToken,
		token.RefreshToken,
		token.ExpiresAt,
		token.ProviderUserID,
		token.Scope,
	); err != nil {
		return fmt.Errorf("upserting %s token: %w", token.Provider, err)
	}
	return nil
}

func (r *Tokens) Delete(ctx context.Context, userID uuid.UUID, provider domain.Provider) error {
	table, err := tokenTable(provider)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1`, table)

	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("deleting %s token: %w", provider, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
