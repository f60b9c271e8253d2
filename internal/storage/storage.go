// Package storage opens the credential store selected by configuration.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"video_tagger/internal/config"
	"video_tagger/internal/storage/memory"
	"video_tagger/internal/storage/postgres"
	"video_tagger/internal/storage/redisstore"
	"video_tagger/internal/storage/sqlite"
)

type CredentialStore interface {
	Get(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
}

// Open returns the configured store and a func releasing its connection.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (CredentialStore, func() error, error) {
	switch cfg.Driver {
	case "postgres":
		db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		logger.Info("connected to database", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)
		return postgres.NewCredentialStore(db), db.Close, nil

	case "redis":
		client, err := redisstore.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info("connected to redis")
		return redisstore.NewCredentialStore(client, cfg.Redis.Key), client.Close, nil

	case "sqlite":
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("opened sqlite store", "path", cfg.SQLite.Path)
		return sqlite.NewCredentialStore(db), db.Close, nil

	case "memory":
		logger.Warn("using in-memory credential store; the token is lost on exit")
		return memory.NewCredentialStore(cfg.Token), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
