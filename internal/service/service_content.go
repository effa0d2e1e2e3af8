package service

import (
	"context"

	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/internal/store"
	"github.com/Oisamaye1/myportfolio/models"
)

// contentService is the concrete implementation of ContentService. Writes
// validate required fields before touching the repository; list reads never
// fail the caller, a broken database yields an empty listing so the public
// site keeps rendering.
type contentService struct {
	repository store.ContentRepository
	logger     *logger.Logger
}

func NewContentService(repository store.ContentRepository, logger *logger.Logger) ContentService {
	return &contentService{
		repository: repository,
		logger:     logger,
	}
}

// degradeList logs a failed listing and swallows the error. Used by every
// List* method so transient database trouble never blanks the whole site.
func degradeList(ctx context.Context, entity string, err error) {
	logger.FromContext(ctx).Err(err).Str("entity", entity).Msg("listing failed, serving empty result")
}

func (c *contentService) ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	services, err := c.repository.ListServices(ctx, activeOnly)
	if err != nil {
		degradeList(ctx, "services", err)
		return []models.Service{}, nil
	}
	return services, nil
}

func (c *contentService) CreateService(ctx context.Context, service models.Service) (models.Service, error) {
	if service.Title == "" {
		return models.Service{}, ErrInvalidDataProvided
	}
	return c.repository.CreateService(ctx, service)
}

func (c *contentService) UpdateService(ctx context.Context, id int64, patch models.ServicePatch) (models.Service, error) {
	return c.repository.UpdateService(ctx, id, patch)
}

func (c *contentService) DeleteService(ctx context.Context, id int64) error {
	return c.repository.DeleteService(ctx, id)
}

func (c *contentService) ListEducation(ctx context.Context, activeOnly bool) ([]models.Education, error) {
	education, err := c.repository.ListEducation(ctx, activeOnly)
	if err != nil {
		degradeList(ctx, "education", err)
		return []models.Education{}, nil
	}
	return education, nil
}

func (c *contentService) CreateEducation(ctx context.Context, education models.Education) (models.Education, error) {
	if education.Degree == "" || education.Institution == "" {
		return models.Education{}, ErrInvalidDataProvided
	}
	return c.repository.CreateEducation(ctx, education)
}

func (c *contentService) UpdateEducation(ctx context.Context, id int64, patch models.EducationPatch) (models.Education, error) {
	return c.repository.UpdateEducation(ctx, id, patch)
}

func (c *contentService) DeleteEducation(ctx context.Context, id int64) error {
	return c.repository.DeleteEducation(ctx, id)
}

func (c *contentService) ListTechStack(ctx context.Context, activeOnly bool) ([]models.TechStack, error) {
	stack, err := c.repository.ListTechStack(ctx, activeOnly)
	if err != nil {
		degradeList(ctx, "tech_stack", err)
		return []models.TechStack{}, nil
	}
	return stack, nil
}

func (c *contentService) CreateTechStack(ctx context.Context, tech models.TechStack) (models.TechStack, error) {
	if tech.Name == "" {
		return models.TechStack{}, ErrInvalidDataProvided
	}
	return c.repository.CreateTechStack(ctx, tech)
}

func (c *contentService) UpdateTechStack(ctx context.Context, id int64, patch models.TechStackPatch) (models.TechStack, error) {
	return c.repository.UpdateTechStack(ctx, id, patch)
}

func (c *contentService) DeleteTechStack(ctx context.Context, id int64) error {
	return c.repository.DeleteTechStack(ctx, id)
}

func (c *contentService) ListProjects(ctx context.Context, activeOnly, featuredOnly bool) ([]models.Project, error) {
	projects, err := c.repository.ListProjects(ctx, activeOnly, featuredOnly)
	if err != nil {
		degradeList(ctx, "projects", err)
		return []models.Project{}, nil
	}
	return projects, nil
}

func (c *contentService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if project.Title == "" || project.Description == "" {
		return models.Project{}, ErrInvalidDataProvided
	}
	return c.repository.CreateProject(ctx, project)
}

func (c *contentService) UpdateProject(ctx context.Context, id int64, patch models.ProjectPatch) (models.Project, error) {
	return c.repository.UpdateProject(ctx, id, patch)
}

func (c *contentService) DeleteProject(ctx context.Context, id int64) error {
	return c.repository.DeleteProject(ctx, id)
}

func (c *contentService) ListTestimonials(ctx context.Context, activeOnly bool) ([]models.Testimonial, error) {
	testimonials, err := c.repository.ListTestimonials(ctx, activeOnly)
	if err != nil {
		degradeList(ctx, "testimonials", err)
		return []models.Testimonial{}, nil
	}
	return testimonials, nil
}

func (c *contentService) CreateTestimonial(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error) {
	if testimonial.Name == "" || testimonial.Quote == "" {
		return models.Testimonial{}, ErrInvalidDataProvided
	}
	return c.repository.CreateTestimonial(ctx, testimonial)
}

func (c *contentService) UpdateTestimonial(ctx context.Context, id int64, patch models.TestimonialPatch) (models.Testimonial, error) {
	return c.repository.UpdateTestimonial(ctx, id, patch)
}

func (c *contentService) DeleteTestimonial(ctx context.Context, id int64) error {
	return c.repository.DeleteTestimonial(ctx, id)
}

func (c *contentService) ListArticles(ctx context.Context, publishedOnly, featuredOnly bool) ([]models.Article, error) {
	articles, err := c.repository.ListArticles(ctx, publishedOnly, featuredOnly)
	if err != nil {
		degradeList(ctx, "articles", err)
		return []models.Article{}, nil
	}
	return articles, nil
}

// GetArticleBySlug does not degrade: a missing article must stay
// distinguishable from an empty listing so the caller can answer 404.
func (c *contentService) GetArticleBySlug(ctx context.Context, slug string) (models.Article, error) {
	if slug == "" {
		return models.Article{}, ErrInvalidDataProvided
	}
	return c.repository.GetArticleBySlug(ctx, slug)
}

func (c *contentService) CreateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	if article.Title == "" || article.Slug == "" || article.Content == "" {
		return models.Article{}, ErrInvalidDataProvided
	}
	return c.repository.CreateArticle(ctx, article)
}

func (c *contentService) UpdateArticle(ctx context.Context, id int64, patch models.ArticlePatch) (models.Article, error) {
	return c.repository.UpdateArticle(ctx, id, patch)
}

func (c *contentService) DeleteArticle(ctx context.Context, id int64) error {
	return c.repository.DeleteArticle(ctx, id)
}

func (c *contentService) ListExperience(ctx context.Context, activeOnly bool) ([]models.Experience, error) {
	experience, err := c.repository.ListExperience(ctx, activeOnly)
	if err != nil {
		degradeList(ctx, "experience", err)
		return []models.Experience{}, nil
	}
	return experience, nil
}

func (c *contentService) CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error) {
	if experience.Company == "" || experience.Position == "" {
		return models.Experience{}, ErrInvalidDataProvided
	}
	return c.repository.CreateExperience(ctx, experience)
}

func (c *contentService) UpdateExperience(ctx context.Context, id int64, patch models.ExperiencePatch) (models.Experience, error) {
	return c.repository.UpdateExperience(ctx, id, patch)
}

func (c *contentService) DeleteExperience(ctx context.Context, id int64) error {
	return c.repository.DeleteExperience(ctx, id)
}

func (c *contentService) GetSettings(ctx context.Context) (map[string]string, error) {
	settings, err := c.repository.GetSettings(ctx)
	if err != nil {
		degradeList(ctx, "site_settings", err)
		return map[string]string{}, nil
	}
	return settings, nil
}

func (c *contentService) UpsertSettings(ctx context.Context, settings map[string]string) error {
	if len(settings) == 0 {
		return ErrInvalidDataProvided
	}
	return c.repository.UpsertSettings(ctx, settings)
}
