package store

import (
	"context"

	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/models"
)

// staticContent is the read-only [ContentRepository] used when no database
// is configured. Reads serve a minimal built-in dataset so the public site
// still renders something sensible; every write fails with
// [ErrDatabaseNotConfigured].
type staticContent struct {
	logger *logger.Logger
}

// NewStaticContent constructs the static fallback repository.
func NewStaticContent(logger *logger.Logger) ContentRepository {
	logger.Debug().Msg("creating static fallback content repository")
	return &staticContent{logger: logger}
}

var staticServices = []models.Service{
	{
		ID:          1,
		Title:       "Web Development",
		Description: "Building modern web applications with the latest technologies.",
		Icon:        "Code",
		OrderIndex:  1,
		IsActive:    true,
	},
}

var staticEducation = []models.Education{
	{
		ID:          1,
		Degree:      "Computer Science Degree",
		Institution: "University",
		Years:       "2020 - 2024",
		Description: "Focused on web development and software engineering.",
		Icon:        "GraduationCap",
		OrderIndex:  1,
		IsActive:    true,
	},
}

var staticTechStack = []models.TechStack{
	{
		ID:         1,
		Name:       "Go",
		Icon:       "Code",
		Category:   "Backend",
		OrderIndex: 1,
		IsActive:   true,
	},
}

var staticProjects = []models.Project{
	{
		ID:          1,
		Title:       "Portfolio Website",
		Description: "This very website: a portfolio with an attached CMS.",
		TechStack:   models.StringList{"Go", "PostgreSQL"},
		IsFeatured:  true,
		OrderIndex:  1,
		IsActive:    true,
	},
}

var staticTestimonials = []models.Testimonial{
	{
		ID:         1,
		Name:       "Jane Doe",
		Title:      "Product Manager",
		Quote:      "A pleasure to work with, start to finish.",
		Rating:     5,
		OrderIndex: 1,
		IsActive:   true,
	},
}

var staticExperience = []models.Experience{
	{
		ID:               1,
		Company:          "Freelance",
		Position:         "Full-Stack Developer",
		StartDate:        "2022-01",
		IsCurrent:        true,
		Responsibilities: models.StringList{"Design and build web applications"},
		Technologies:     models.StringList{"Go", "TypeScript"},
		Achievements:     models.StringList{},
		OrderIndex:       1,
		IsActive:         true,
	},
}

var staticSettings = map[string]string{
	"site_title": "My Portfolio",
}

func filterActive[T any](items []T, activeOnly bool, isActive func(T) bool) []T {
	if !activeOnly {
		return append([]T(nil), items...)
	}

	var out []T
	for _, item := range items {
		if isActive(item) {
			out = append(out, item)
		}
	}
	return out
}

func (s *staticContent) ListServices(_ context.Context, activeOnly bool) ([]models.Service, error) {
	return filterActive(staticServices, activeOnly, func(v models.Service) bool { return v.IsActive }), nil
}

func (s *staticContent) CreateService(context.Context, models.Service) (models.Service, error) {
	return models.Service{}, ErrDatabaseNotConfigured
}

func (s *staticContent) UpdateService(context.Context, int64, models.ServicePatch) (models.Service, error) {
	return models.Service{}, ErrDatabaseNotConfigured
}

func (s *staticContent) DeleteService(context.Context, int64) error {
	return ErrDatabaseNotConfigured
}

func (s *staticContent) ListEducation(_ context.Context, activeOnly bool) ([]models.Education, error) {
	return filterActive(staticEducation, activeOnly, func(v models.Education) bool { return v.IsActive }), nil
}

func (s *staticContent) CreateEducation(context.Context, models.Education) (models.Education, error) {
	return models.Education{}, ErrDatabaseNotConfigured
}

func (s *staticContent) UpdateEducation(context.Context, int64, models.EducationPatch) (models.Education, error) {
	return models.Education{}, ErrDatabaseNotConfigured
}

func (s *staticContent) DeleteEducation(context.Context, int64) error {
	return ErrDatabaseNotConfigured
}

func (s *staticContent) ListTechStack(_ context.Context, activeOnly bool) ([]models.TechStack, error) {
	return filterActive(staticTechStack, activeOnly, func(v models.TechStack) bool { return v.IsActive }), nil
}

func (s *staticContent) CreateTechStack(context.Context, models.TechStack) (models.TechStack, error) {
	return models.TechStack{}, ErrDatabaseNotConfigured
}

func (s *staticContent) UpdateTechStack(context.Context, int64, models.TechStackPatch) (models.TechStack, error) {
	return models.TechStack{}, ErrDatabaseNotConfigured
}

func (s *staticContent) DeleteTechStack(context.Context, int64) error {
	return ErrDatabaseNotConfigured
}

func (s *staticContent) ListProjects(_ context.Context, activeOnly, featuredOnly bool) ([]models.Project, error) {
	projects := filterActive(staticProjects, activeOnly || featuredOnly, func(v models.Project) bool { return v.IsActive })
	if !featuredOnly {
		return projects, nil
	}

	var featured []models.Project
	for _, p := range projects {
		if p.IsFeatured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

func (s *staticContent) CreateProject(context.Context, models.Project) (models.Project, error) {
	return models.Project{}, ErrDatabaseNotConfigured
}

func (s *staticContent) UpdateProject(context.Context, int64, models.ProjectPatch) (models.Project, error) {
	return models.Project{}, ErrDatabaseNotConfigured
}

func (s *staticContent) DeleteProject(context.Context, int64) error {
	return ErrDatabaseNotConfigured
}

func (s *staticContent) ListTestimonials(_ context.Context, activeOnly bool) ([]models.Testimonial, error) {
	return filterActive(staticTestimonials, activeOnly, func(v models.Testimonial) bool { return v.IsActive }), nil
}

func (s *staticContent) CreateTestimonial(context.Context, models.Testimonial) (models.Testimonial, error) {
	return models.Testimonial{}, ErrDatabaseNotConfigured
}

func (s *staticContent) UpdateTestimonial(context.Context, int64, models.TestimonialPatch) (models.Testimonial, error) {
	return models.Testimonial{}, ErrDatabaseNotConfigured
}

func (s *staticContent) DeleteTestimonial(context.Context, int64) error {
	return ErrDatabaseNotConfigured
}

func (s *staticContent) ListArticles(context.Context, bool, bool) ([]models.Article, error) {
	// no built-in articles; an empty blog is fine without a database
	return nil, nil
}

func (s *staticContent) GetArticleBySlug(context.Context, string) (models.Article, error) {
	return models.Article{}, ErrNotFound
}

func (s *staticContent) CreateArticle(context.Context, models.Article) (models.Article, error) {
	return models.Article{}, ErrDatabaseNotConfigured
}

func (s *staticContent) UpdateArticle(context.Context, int64, models.ArticlePatch) (models.Article, error) {
	return models.Article{}, ErrDatabaseNotConfigured
}

func (s *staticContent) DeleteArticle(context.Context, int64) error {
	return ErrDatabaseNotConfigured
}

func (s *staticContent) ListExperience(_ context.Context, activeOnly bool) ([]models.Experience, error) {
	return filterActive(staticExperience, activeOnly, func(v models.Experience) bool { return v.IsActive }), nil
}

func (s *staticContent) CreateExperience(context.Context, models.Experience) (models.Experience, error) {
	return models.Experience{}, ErrDatabaseNotConfigured
}

func (s *staticContent) UpdateExperience(context.Context, int64, models.ExperiencePatch) (models.Experience, error) {
	return models.Experience{}, ErrDatabaseNotConfigured
}

func (s *staticContent) DeleteExperience(context.Context, int64) error {
	return ErrDatabaseNotConfigured
}

func (s *staticContent) GetSettings(context.Context) (map[string]string, error) {
	settings := make(map[string]string, len(staticSettings))
	for k, v := range staticSettings {
		settings[k] = v
	}
	return settings, nil
}

func (s *staticContent) UpsertSettings(context.Context, map[string]string) error {
	return ErrDatabaseNotConfigured
}
