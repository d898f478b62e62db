package main

import (
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/nvalerio/wearsync/internal/repository"
)

func seedCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a user for local development",
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

			repo := repository.New(pool)
			user, err := repo.Users.Create(cmd.Context(), email)
			if err != nil {
				return fmt.Errorf("creating user: %w", err)
			}

			fmt.Printf("Created user %s (%s)\n", user.ID, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "dev@localhost", "email for the seeded user")
	return cmd
}
