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
	educationColumns = "id, degree, institution, years, description, icon, order_index, is_active, created_at, updated_at"

	listEducation = `SELECT ` + educationColumns + ` FROM education ORDER BY order_index ASC, id ASC;`

	listActiveEducation = `SELECT ` + educationColumns + ` FROM education
		WHERE is_active = TRUE
		ORDER BY order_index ASC, id ASC;`

	createEducation = `INSERT INTO education (degree, institution, years, description, icon, order_index, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + educationColumns + `;`

	deleteEducation = `DELETE FROM education WHERE id = $1;`
)

func scanEducation(row interface{ Scan(...any) error }) (models.Education, error) {
	var e models.Education
	err := row.Scan(&e.ID, &e.Degree, &e.Institution, &e.Years, &e.Description,
		&e.Icon, &e.OrderIndex, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *contentRepository) ListEducation(ctx context.Context, activeOnly bool) ([]models.Education, error) {
	log := logger.FromContext(ctx)

	query := listEducation
	if activeOnly {
		query = listActiveEducation
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Msg("error listing education")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var education []models.Education
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			log.Err(err).Msg("error scanning education row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		education = append(education, e)
	}

	return education, rows.Err()
}

func (r *contentRepository) CreateEducation(ctx context.Context, education models.Education) (models.Education, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createEducation,
		education.Degree, education.Institution, education.Years, education.Description,
		education.Icon, education.OrderIndex, education.IsActive)

	created, err := scanEducation(row)
	if err != nil {
		log.Err(err).Msg("error creating education")
		return models.Education{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *contentRepository) UpdateEducation(ctx context.Context, id int64, patch models.EducationPatch) (models.Education, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("education").PlaceholderFormat(sq.Dollar).Set("updated_at", sq.Expr("NOW()"))
	fields := 0
	if patch.Degree != nil {
		builder = builder.Set("degree", *patch.Degree)
		fields++
	}
	if patch.Institution != nil {
		builder = builder.Set("institution", *patch.Institution)
		fields++
	}
	if patch.Years != nil {
		builder = builder.Set("years", *patch.Years)
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
		return models.Education{}, ErrNoFieldsToUpdate
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + educationColumns).
		ToSql()
	if err != nil {
		return models.Education{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanEducation(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Education{}, ErrNotFound
		}
		log.Err(err).Int64("id", id).Msg("error updating education")
		return models.Education{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *contentRepository) DeleteEducation(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteEducation, id, "education")
}
