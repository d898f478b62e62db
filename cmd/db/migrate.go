package main

import (
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/nvalerio/wearsync/internal/migrations/postgres"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			databaseURL := os.Getenv("DATABASE_URL")
			if databaseURL == "" {
				return fmt.Errorf("DATABASE_URL is not set")
			}

			pool, err := pgxpool.New(cmd.Context(), databaseURL)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer pool.Close()

			if err := postgres.Apply(cmd.Context(), pool); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}

			fmt.Println("Migrations applied successfully")
			return nil
		},
	}
}
