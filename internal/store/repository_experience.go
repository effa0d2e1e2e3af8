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
	experienceColumns = "id, company, position, location, start_date, end_date, is_current, description, responsibilities, technologies, achievements, company_logo, company_website, order_index, is_active"

	listExperience = `SELECT ` + experienceColumns + ` FROM experience ORDER BY order_index ASC, id ASC;`

	listActiveExperience = `SELECT ` + experienceColumns + ` FROM experience
		WHERE is_active = TRUE
		ORDER BY order_index ASC, id ASC;`

	createExperience = `INSERT INTO experience (company, position, location, start_date, end_date, is_current, description, responsibilities, technologies, achievements, company_logo, company_website, order_index, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + experienceColumns + `;`

	deleteExperience = `DELETE FROM experience WHERE id = $1;`
)

func scanExperience(row interface{ Scan(...any) error }) (models.Experience, error) {
	var e models.Experience
	err := row.Scan(&e.ID, &e.Company, &e.Position, &e.Location, &e.StartDate, &e.EndDate,
		&e.IsCurrent, &e.Description, &e.Responsibilities, &e.Technologies, &e.Achievements,
		&e.CompanyLogo, &e.CompanyWebsite, &e.OrderIndex, &e.IsActive)
	return e, err
}

func (r *contentRepository) ListExperience(ctx context.Context, activeOnly bool) ([]models.Experience, error) {
	log := logger.FromContext(ctx)

	query := listExperience
	if activeOnly {
		query = listActiveExperience
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Msg("error listing experience")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var experience []models.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			log.Err(err).Msg("error scanning experience row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		experience = append(experience, e)
	}

	return experience, rows.Err()
}

func (r *contentRepository) CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createExperience,
		experience.Company, experience.Position, experience.Location, experience.StartDate,
		experience.EndDate, experience.IsCurrent, experience.Description, experience.Responsibilities,
		experience.Technologies, experience.Achievements, experience.CompanyLogo,
		experience.CompanyWebsite, experience.OrderIndex, experience.IsActive)

	created, err := scanExperience(row)
	if err != nil {
		log.Err(err).Msg("error creating experience")
		return models.Experience{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *contentRepository) UpdateExperience(ctx context.Context, id int64, patch models.ExperiencePatch) (models.Experience, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("experience").PlaceholderFormat(sq.Dollar)
	fields := 0
	if patch.Company != nil {
		builder = builder.Set("company", *patch.Company)
		fields++
	}
	if patch.Position != nil {
		builder = builder.Set("position", *patch.Position)
		fields++
	}
	if patch.Location != nil {
		builder = builder.Set("location", *patch.Location)
		fields++
	}
	if patch.StartDate != nil {
		builder = builder.Set("start_date", *patch.StartDate)
		fields++
	}
	if patch.EndDate != nil {
		builder = builder.Set("end_date", *patch.EndDate)
		fields++
	}
	if patch.IsCurrent != nil {
		builder = builder.Set("is_current", *patch.IsCurrent)
		fields++
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
		fields++
	}
	if patch.Responsibilities != nil {
		builder = builder.Set("responsibilities", *patch.Responsibilities)
		fields++
	}
	if patch.Technologies != nil {
		builder = builder.Set("technologies", *patch.Technologies)
		fields++
	}
	if patch.Achievements != nil {
		builder = builder.Set("achievements", *patch.Achievements)
		fields++
	}
	if patch.CompanyLogo != nil {
		builder = builder.Set("company_logo", *patch.CompanyLogo)
		fields++
	}
	if patch.CompanyWebsite != nil {
		builder = builder.Set("company_website", *patch.CompanyWebsite)
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
		return models.Experience{}, ErrNoFieldsToUpdate
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + experienceColumns).
		ToSql()
	if err != nil {
		return models.Experience{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanExperience(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Experience{}, ErrNotFound
		}
		log.Err(err).Int64("id", id).Msg("error updating experience")
		return models.Experience{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *contentRepository) DeleteExperience(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteExperience, id, "experience")
}
