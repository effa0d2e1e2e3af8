package store

import (
	"context"

	"github.com/Oisamaye1/myportfolio/internal/config"
	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/migrations"
)

// Storages aggregates the persistence layer handed to the service layer.
// DB is nil when the application is running on the static fallback dataset.
type Storages struct {
	Content ContentRepository
	DB      *DB
}

// NewStorages builds the persistence layer from configuration. A missing,
// placeholder, or unreachable database is not fatal: the content repository
// degrades to the read-only static fallback and every CMS write reports
// [ErrDatabaseNotConfigured]. With a reachable database, embedded goose
// migrations are applied before the repository is handed out.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if !cfg.DB.Valid() {
		log.Warn().Msg("no usable database DSN configured, serving static fallback content")
		return &Storages{Content: NewStaticContent(log)}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Warn().Err(err).Msg("database unreachable, serving static fallback content")
		return &Storages{Content: NewStaticContent(log)}, nil
	}

	if err = migrations.Migrate(db.DB); err != nil {
		return nil, err
	}

	return &Storages{
		Content: NewContentRepository(db, log),
		DB:      db,
	}, nil
}
