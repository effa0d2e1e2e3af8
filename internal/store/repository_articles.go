package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/models"
	"github.com/jackc/pgerrcode"
)

const (
	articleColumns = "id, title, slug, description, content, category, read_time, featured_image, is_published, is_featured, order_index, created_at, updated_at"

	listArticles = `SELECT ` + articleColumns + ` FROM articles ORDER BY created_at DESC, id DESC;`

	listPublishedArticles = `SELECT ` + articleColumns + ` FROM articles
		WHERE is_published = TRUE
		ORDER BY created_at DESC, id DESC;`

	listFeaturedArticles = `SELECT ` + articleColumns + ` FROM articles
		WHERE is_published = TRUE AND is_featured = TRUE
		ORDER BY created_at DESC, id DESC;`

	getArticleBySlug = `SELECT ` + articleColumns + ` FROM articles WHERE slug = $1;`

	createArticle = `INSERT INTO articles (title, slug, description, content, category, read_time, featured_image, is_published, is_featured, order_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + articleColumns + `;`

	deleteArticle = `DELETE FROM articles WHERE id = $1;`
)

func scanArticle(row interface{ Scan(...any) error }) (models.Article, error) {
	var a models.Article
	err := row.Scan(&a.ID, &a.Title, &a.Slug, &a.Description, &a.Content, &a.Category,
		&a.ReadTime, &a.FeaturedImage, &a.IsPublished, &a.IsFeatured, &a.OrderIndex,
		&a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *contentRepository) ListArticles(ctx context.Context, publishedOnly, featuredOnly bool) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	query := listArticles
	switch {
	case featuredOnly:
		query = listFeaturedArticles
	case publishedOnly:
		query = listPublishedArticles
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Msg("error listing articles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			log.Err(err).Msg("error scanning article row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		articles = append(articles, a)
	}

	return articles, rows.Err()
}

func (r *contentRepository) GetArticleBySlug(ctx context.Context, slug string) (models.Article, error) {
	log := logger.FromContext(ctx)

	article, err := scanArticle(r.db.QueryRowContext(ctx, getArticleBySlug, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Article{}, ErrNotFound
		}
		log.Err(err).Str("slug", slug).Msg("error fetching article by slug")
		return models.Article{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return article, nil
}

func (r *contentRepository) CreateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createArticle,
		article.Title, article.Slug, article.Description, article.Content, article.Category,
		article.ReadTime, article.FeaturedImage, article.IsPublished, article.IsFeatured, article.OrderIndex)

	created, err := scanArticle(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Article{}, ErrSlugAlreadyExists
		}
		log.Err(err).Str("slug", article.Slug).Msg("error creating article")
		return models.Article{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *contentRepository) UpdateArticle(ctx context.Context, id int64, patch models.ArticlePatch) (models.Article, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("articles").PlaceholderFormat(sq.Dollar).Set("updated_at", sq.Expr("NOW()"))
	fields := 0
	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
		fields++
	}
	if patch.Slug != nil {
		builder = builder.Set("slug", *patch.Slug)
		fields++
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
		fields++
	}
	if patch.Content != nil {
		builder = builder.Set("content", *patch.Content)
		fields++
	}
	if patch.Category != nil {
		builder = builder.Set("category", *patch.Category)
		fields++
	}
	if patch.ReadTime != nil {
		builder = builder.Set("read_time", *patch.ReadTime)
		fields++
	}
	if patch.FeaturedImage != nil {
		builder = builder.Set("featured_image", *patch.FeaturedImage)
		fields++
	}
	if patch.IsPublished != nil {
		builder = builder.Set("is_published", *patch.IsPublished)
		fields++
	}
	if patch.IsFeatured != nil {
		builder = builder.Set("is_featured", *patch.IsFeatured)
		fields++
	}
	if patch.OrderIndex != nil {
		builder = builder.Set("order_index", *patch.OrderIndex)
		fields++
	}
	if fields == 0 {
		return models.Article{}, ErrNoFieldsToUpdate
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + articleColumns).
		ToSql()
	if err != nil {
		return models.Article{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanArticle(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Article{}, ErrNotFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Article{}, ErrSlugAlreadyExists
		}
		log.Err(err).Int64("id", id).Msg("error updating article")
		return models.Article{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *contentRepository) DeleteArticle(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteArticle, id, "article")
}
