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
	projectColumns = "id, title, description, tech_stack, live_link, github_link, image_url, is_featured, order_index, is_active"

	listProjects = `SELECT ` + projectColumns + ` FROM projects ORDER BY order_index ASC, id ASC;`

	listActiveProjects = `SELECT ` + projectColumns + ` FROM projects
		WHERE is_active = TRUE
		ORDER BY order_index ASC, id ASC;`

	listFeaturedProjects = `SELECT ` + projectColumns + ` FROM projects
		WHERE is_active = TRUE AND is_featured = TRUE
		ORDER BY order_index ASC, id ASC;`

	createProject = `INSERT INTO projects (title, description, tech_stack, live_link, github_link, image_url, is_featured, order_index, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + projectColumns + `;`

	deleteProject = `DELETE FROM projects WHERE id = $1;`
)

func scanProject(row interface{ Scan(...any) error }) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.TechStack, &p.LiveLink,
		&p.GithubLink, &p.ImageURL, &p.IsFeatured, &p.OrderIndex, &p.IsActive)
	return p, err
}

func (r *contentRepository) ListProjects(ctx context.Context, activeOnly, featuredOnly bool) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query := listProjects
	switch {
	case featuredOnly:
		query = listFeaturedProjects
	case activeOnly:
		query = listActiveProjects
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Msg("error listing projects")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			log.Err(err).Msg("error scanning project row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (r *contentRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProject,
		project.Title, project.Description, project.TechStack, project.LiveLink,
		project.GithubLink, project.ImageURL, project.IsFeatured, project.OrderIndex, project.IsActive)

	created, err := scanProject(row)
	if err != nil {
		log.Err(err).Msg("error creating project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *contentRepository) UpdateProject(ctx context.Context, id int64, patch models.ProjectPatch) (models.Project, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("projects").PlaceholderFormat(sq.Dollar)
	fields := 0
	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
		fields++
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
		fields++
	}
	if patch.TechStack != nil {
		builder = builder.Set("tech_stack", *patch.TechStack)
		fields++
	}
	if patch.LiveLink != nil {
		builder = builder.Set("live_link", *patch.LiveLink)
		fields++
	}
	if patch.GithubLink != nil {
		builder = builder.Set("github_link", *patch.GithubLink)
		fields++
	}
	if patch.ImageURL != nil {
		builder = builder.Set("image_url", *patch.ImageURL)
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
	if patch.IsActive != nil {
		builder = builder.Set("is_active", *patch.IsActive)
		fields++
	}
	if fields == 0 {
		return models.Project{}, ErrNoFieldsToUpdate
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + projectColumns).
		ToSql()
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanProject(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrNotFound
		}
		log.Err(err).Int64("id", id).Msg("error updating project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *contentRepository) DeleteProject(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteProject, id, "project")
}
