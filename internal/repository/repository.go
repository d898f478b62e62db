// Package repository is the Postgres persistence layer. All writes to
// the per-day data tables are idempotent upserts keyed on (user, date).
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound         = errors.New("repository: not found")
	ErrProviderConflict = errors.New("repository: another provider is already connected")
)

// DB is the query surface shared by pgxpool.Pool and pgxmock.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	Users      *Users
	Tokens     *Tokens
	Activities *Activities
	HeartRates *HeartRates
	Sleeps     *Sleeps
	Weights    *Weights
}

func New(db DB) *Repository {
	return &Repository{
		Users:      &Users{db: db},
		Tokens:     &Tokens{db: db},
		Activities: &Activities{db: db},
		HeartRates: &HeartRates{db: db},
		Sleeps:     &Sleeps{db: db},
		Weights:    &Weights{db: db},
	}
}
