package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/models"
)

const (
	serviceColumns = "id, title, description, icon, order_index, is_active"

	listServices = `SELECT ` + serviceColumns + ` FROM services ORDER BY order_index ASC, id ASC;`

	listActiveServices = `SELECT ` + serviceColumns + ` FROM services
		WHERE is_active = TRUE
		ORDER BY order_index ASC, id ASC;`

	createService = `INSERT INTO services (title, description, icon, order_index, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + serviceColumns + `;`

	deleteService = `DELETE FROM services WHERE id = $1;`
)

func scanService(row interface{ Scan(...any) error }) (models.Service, error) {
	var s models.Service
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.Icon, &s.OrderIndex, &s.IsActive)
	return s, err
}

func (r *contentRepository) ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	log := logger.FromContext(ctx)

	query := listServices
	if activeOnly {
		query = listActiveServices
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Msg("error listing services")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			log.Err(err).Msg("error scanning service row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		services = append(services, s)
	}

	return services, rows.Err()
}

func (r *contentRepository) CreateService(ctx context.Context, service models.Service) (models.Service, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createService,
		service.Title, service.Description, service.Icon, service.OrderIndex, service.IsActive)

	created, err := scanService(row)
	if err != nil {
		log.Err(err).Msg("error creating service")
		return models.Service{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *contentRepository) UpdateService(ctx context.Context, id int64, patch models.ServicePatch) (models.Service, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("services").PlaceholderFormat(sq.Dollar)
	fields := 0
	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
		fields++
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
		fields++
	}
	if patch.Icon != nil {
		builder = builder.Set("icon", *patch.Icon)
		fields++
	}
	if patch.OrderIndex != nil {
		builder = builder.Set("order_index", *patch.OrderIndex)
		fields++
	}
	if patch.IsActive != nil {
		builder = builder.Set("is_active", *patch.IsActive)
		fields++
	}
	if fields == 0 {
		return models.Service{}, ErrNoFieldsToUpdate
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + serviceColumns).
		ToSql()
	if err != nil {
		return models.Service{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanService(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Service{}, ErrNotFound
		}
		log.Err(err).Int64("id", id).Msg("error updating service")
		return models.Service{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *contentRepository) DeleteService(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteService, id, "service")
}

// deleteByID runs a single-row DELETE and maps zero affected rows to
// [ErrNotFound]. Shared by all entity repositories.
func (r *contentRepository) deleteByID(ctx context.Context, query string, id int64, entity string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Err(err).Int64("id", id).Str("entity", entity).Msg("error deleting record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
