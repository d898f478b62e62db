package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nvalerio/wearsync/internal/domain"
)

type Users struct {
	db DB
}

func (r *Users) Create(ctx context.Context, email string) (*domain.User, error) {
	const query = `
		INSERT INTO users (id, email)
		VALUES ($1, $2)
		RETURNING id, email, connected_provider, created_at, updated_at`

	return r.scanUser(r.db.QueryRow(ctx, query, uuid.New(), email))
}

func (r *Users) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
		SELECT id, email, connected_provider, created_at, updated_at
		FROM users
		WHERE id = $1`

	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

// ConnectedProvider returns nil when the user has no provider connected.
func (r *Users) ConnectedProvider(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
	user, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.ConnectedProvider, nil
}

// ClaimProvider atomically takes the user's single provider slot. The
// claim succeeds when the slot is free or already held by the same
// provider; a slot held by the other provider yields
// ErrProviderConflict.
func (r *Users) ClaimProvider(ctx context.Context, id uuid.UUID, provider domain.Provider) error {
	const query = `
		UPDATE users
		SET connected_provider = $2, updated_at = now()
		WHERE id = $1
		  AND (connected_provider IS NULL OR connected_provider = $2)`

	tag, err := r.db.Exec(ctx, query, id, provider)
	if err != nil {
		return fmt.Errorf("claiming provider: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	return ErrProviderConflict
}

func (r *Users) ClearProvider(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE users
		SET connected_provider = NULL, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("clearing provider: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Users) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.ConnectedProvider,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &user, nil
}
