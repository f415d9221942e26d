package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notes-backend/internal/adapter/dynamo"
	"github.com/heartmarshall/notes-backend/internal/adapter/kv"
	"github.com/heartmarshall/notes-backend/internal/adapter/kv/memory"
	"github.com/heartmarshall/notes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/notes-backend/internal/adapter/postgres/kvstore"
	"github.com/heartmarshall/notes-backend/internal/config"
)

// OpenBackend connects the key-value backend selected by cfg.Driver.
// The returned close function releases its resources and is never nil.
func OpenBackend(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (kv.Backend, func(), error) {
	switch cfg.Driver {
	case config.DriverMemory:
		logger.Warn("using in-memory storage, notes are lost on restart")
		return memory.New(), func() {}, nil

	case config.DriverPostgres:
		if cfg.Postgres.AutoMigrate {
			if err := postgres.Migrate(ctx, cfg.Postgres.DSN, logger); err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres: %w", err)
		}
		logger.Info("storage connected", slog.String("driver", cfg.Driver))
		return kvstore.New(pool), pool.Close, nil

	case config.DriverDynamoDB:
		client, err := dynamo.NewClient(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, nil, fmt.Errorf("dynamodb: %w", err)
		}
		logger.Info("storage connected",
			slog.String("driver", cfg.Driver),
			slog.String("table", cfg.DynamoDB.Table),
			slog.String("region", cfg.DynamoDB.Region),
		)
		return dynamo.New(client, cfg.DynamoDB.Table), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
