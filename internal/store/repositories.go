package store

import (
	"github.com/Oisamaye1/myportfolio/internal/logger"
)

// contentRepository is the PostgreSQL-backed implementation of
// [ContentRepository]. Its methods are spread across the repository_*.go
// files, one file per content entity.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type contentRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewContentRepository constructs a [ContentRepository] backed by the
// provided database connection and logger.
func NewContentRepository(db *DB, logger *logger.Logger) ContentRepository {
	logger.Debug().Msg("creating content repository")
	return &contentRepository{
		db:     db,
		logger: logger,
	}
}
