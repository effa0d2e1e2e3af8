package store

import (
	"context"

	"github.com/Oisamaye1/myportfolio/models"
)

// ContentRepository is the data-access contract for all CMS-managed
// content. Two implementations exist: the PostgreSQL-backed repository and
// the static fallback used when no database is configured. List methods
// with an activeOnly flag return only rows visible on the public site when
// the flag is set; otherwise they return everything for the CMS tables.
type ContentRepository interface {
	ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error)
	CreateService(ctx context.Context, service models.Service) (models.Service, error)
	UpdateService(ctx context.Context, id int64, patch models.ServicePatch) (models.Service, error)
	DeleteService(ctx context.Context, id int64) error

	ListEducation(ctx context.Context, activeOnly bool) ([]models.Education, error)
	CreateEducation(ctx context.Context, education models.Education) (models.Education, error)
	UpdateEducation(ctx context.Context, id int64, patch models.EducationPatch) (models.Education, error)
	DeleteEducation(ctx context.Context, id int64) error

	ListTechStack(ctx context.Context, activeOnly bool) ([]models.TechStack, error)
	CreateTechStack(ctx context.Context, tech models.TechStack) (models.TechStack, error)
	UpdateTechStack(ctx context.Context, id int64, patch models.TechStackPatch) (models.TechStack, error)
	DeleteTechStack(ctx context.Context, id int64) error

	ListProjects(ctx context.Context, activeOnly, featuredOnly bool) ([]models.Project, error)
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, id int64, patch models.ProjectPatch) (models.Project, error)
	DeleteProject(ctx context.Context, id int64) error

	ListTestimonials(ctx context.Context, activeOnly bool) ([]models.Testimonial, error)
	CreateTestimonial(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id int64, patch models.TestimonialPatch) (models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id int64) error

	ListArticles(ctx context.Context, publishedOnly, featuredOnly bool) ([]models.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (models.Article, error)
	CreateArticle(ctx context.Context, article models.Article) (models.Article, error)
	UpdateArticle(ctx context.Context, id int64, patch models.ArticlePatch) (models.Article, error)
	DeleteArticle(ctx context.Context, id int64) error

	ListExperience(ctx context.Context, activeOnly bool) ([]models.Experience, error)
	CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error)
	UpdateExperience(ctx context.Context, id int64, patch models.ExperiencePatch) (models.Experience, error)
	DeleteExperience(ctx context.Context, id int64) error

	GetSettings(ctx context.Context) (map[string]string, error)
	UpsertSettings(ctx context.Context, settings map[string]string) error
}
