package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/notes-backend/internal/adapter/dynamo"
	"github.com/heartmarshall/notes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/notes-backend/internal/config"
)

func newMigrateCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending PostgreSQL migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Storage.Driver != config.DriverPostgres {
				return fmt.Errorf("migrate needs storage.driver=%s (got %q)", config.DriverPostgres, cfg.Storage.Driver)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			if err := postgres.Migrate(ctx, cfg.Storage.Postgres.DSN, logger); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations up to date")
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall deadline")

	return cmd
}

func newDynamoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dynamo",
		Short: "DynamoDB maintenance commands",
	}
	cmd.AddCommand(newCreateTableCmd())
	return cmd
}

func newCreateTableCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "create-table",
		Short: "Create the notes table if it does not exist",
		Long: `Creates the configured table with a string partition key "pk" and
sort key "sk" in on-demand billing mode, then waits until it is active.
Safe to run against an existing table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Storage.DynamoDB.Table == "" {
				return errors.New("dynamodb.table is not configured")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			client, err := dynamo.NewClient(ctx, cfg.Storage.DynamoDB)
			if err != nil {
				return err
			}
			if err := dynamo.CreateTable(ctx, client, cfg.Storage.DynamoDB.Table); err != nil {
				return err
			}

			logger.Info("table ready",
				slog.String("table", cfg.Storage.DynamoDB.Table),
				slog.String("region", cfg.Storage.DynamoDB.Region),
			)
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Minute, "overall deadline")

	return cmd
}
