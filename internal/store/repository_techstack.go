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
	techStackColumns = "id, name, icon, category, order_index, is_active"

	listTechStack = `SELECT ` + techStackColumns + ` FROM tech_stack ORDER BY order_index ASC, id ASC;`

	listActiveTechStack = `SELECT ` + techStackColumns + ` FROM tech_stack
		WHERE is_active = TRUE
		ORDER BY order_index ASC, id ASC;`

	createTechStack = `INSERT INTO tech_stack (name, icon, category, order_index, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + techStackColumns + `;`

	deleteTechStack = `DELETE FROM tech_stack WHERE id = $1;`
)

func scanTechStack(row interface{ Scan(...any) error }) (models.TechStack, error) {
	var t models.TechStack
	err := row.Scan(&t.ID, &t.Name, &t.Icon, &t.Category, &t.OrderIndex, &t.IsActive)
	return t, err
}

func (r *contentRepository) ListTechStack(ctx context.Context, activeOnly bool) ([]models.TechStack, error) {
	log := logger.FromContext(ctx)

	query := listTechStack
	if activeOnly {
		query = listActiveTechStack
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Msg("error listing tech stack")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var stack []models.TechStack
	for rows.Next() {
		tech, err := scanTechStack(rows)
		if err != nil {
			log.Err(err).Msg("error scanning tech stack row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		stack = append(stack, tech)
	}

	return stack, rows.Err()
}

func (r *contentRepository) CreateTechStack(ctx context.Context, tech models.TechStack) (models.TechStack, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTechStack,
		tech.Name, tech.Icon, tech.Category, tech.OrderIndex, tech.IsActive)

	created, err := scanTechStack(row)
	if err != nil {
		log.Err(err).Msg("error creating tech stack entry")
		return models.TechStack{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *contentRepository) UpdateTechStack(ctx context.Context, id int64, patch models.TechStackPatch) (models.TechStack, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("tech_stack").PlaceholderFormat(sq.Dollar)
	fields := 0
	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
		fields++
	}
	if patch.Icon != nil {
		builder = builder.Set("icon", *patch.Icon)
		fields++
	}
	if patch.Category != nil {
		builder = builder.Set("category", *patch.Category)
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
		return models.TechStack{}, ErrNoFieldsToUpdate
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + techStackColumns).
		ToSql()
	if err != nil {
		return models.TechStack{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanTechStack(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TechStack{}, ErrNotFound
		}
		log.Err(err).Int64("id", id).Msg("error updating tech stack entry")
		return models.TechStack{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *contentRepository) DeleteTechStack(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteTechStack, id, "tech_stack")
}
