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
	testimonialColumns = "id, name, title, company, quote, rating, avatar_url, order_index, is_active"

	listTestimonials = `SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY order_index ASC, id ASC;`

	listActiveTestimonials = `SELECT ` + testimonialColumns + ` FROM testimonials
		WHERE is_active = TRUE
		ORDER BY order_index ASC, id ASC;`

	createTestimonial = `INSERT INTO testimonials (name, title, company, quote, rating, avatar_url, order_index, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + testimonialColumns + `;`

	deleteTestimonial = `DELETE FROM testimonials WHERE id = $1;`
)

func scanTestimonial(row interface{ Scan(...any) error }) (models.Testimonial, error) {
	var t models.Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Title, &t.Company, &t.Quote,
		&t.Rating, &t.AvatarURL, &t.OrderIndex, &t.IsActive)
	return t, err
}

func (r *contentRepository) ListTestimonials(ctx context.Context, activeOnly bool) ([]models.Testimonial, error) {
	log := logger.FromContext(ctx)

	query := listTestimonials
	if activeOnly {
		query = listActiveTestimonials
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Msg("error listing testimonials")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var testimonials []models.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			log.Err(err).Msg("error scanning testimonial row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		testimonials = append(testimonials, t)
	}

	return testimonials, rows.Err()
}

func (r *contentRepository) CreateTestimonial(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTestimonial,
		testimonial.Name, testimonial.Title, testimonial.Company, testimonial.Quote,
		testimonial.Rating, testimonial.AvatarURL, testimonial.OrderIndex, testimonial.IsActive)

	created, err := scanTestimonial(row)
	if err != nil {
		log.Err(err).Msg("error creating testimonial")
		return models.Testimonial{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *contentRepository) UpdateTestimonial(ctx context.Context, id int64, patch models.TestimonialPatch) (models.Testimonial, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("testimonials").PlaceholderFormat(sq.Dollar)
	fields := 0
	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
		fields++
	}
	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
		fields++
	}
	if patch.Company != nil {
		builder = builder.Set("company", *patch.Company)
		fields++
	}
	if patch.Quote != nil {
		builder = builder.Set("quote", *patch.Quote)
		fields++
	}
	if patch.Rating != nil {
		builder = builder.Set("rating", *patch.Rating)
		fields++
	}
	if patch.AvatarURL != nil {
		builder = builder.Set("avatar_url", *patch.AvatarURL)
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
		return models.Testimonial{}, ErrNoFieldsToUpdate
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + testimonialColumns).
		ToSql()
	if err != nil {
		return models.Testimonial{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanTestimonial(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Testimonial{}, ErrNotFound
		}
		log.Err(err).Int64("id", id).Msg("error updating testimonial")
		return models.Testimonial{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *contentRepository) DeleteTestimonial(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteTestimonial, id, "testimonial")
}
