package store

import (
	"context"
	"fmt"

	"github.com/Oisamaye1/myportfolio/internal/logger"
)

const (
	getSettings = `SELECT key, value FROM site_settings;`

	upsertSetting = `INSERT INTO site_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();`
)

func (r *contentRepository) GetSettings(ctx context.Context) (map[string]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getSettings)
	if err != nil {
		log.Err(err).Msg("error fetching site settings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			log.Err(err).Msg("error scanning setting row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		settings[key] = value
	}

	return settings, rows.Err()
}

// UpsertSettings writes all key/value pairs inside a single transaction so
// a partial settings save never becomes visible.
func (r *contentRepository) UpsertSettings(ctx context.Context, settings map[string]string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("error beginning settings transaction")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer tx.Rollback()

	for key, value := range settings {
		if _, err := tx.ExecContext(ctx, upsertSetting, key, value); err != nil {
			log.Err(err).Str("key", key).Msg("error upserting setting")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Msg("error committing settings transaction")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
