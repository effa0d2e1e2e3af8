package service

import (
	"context"

	"github.com/Oisamaye1/myportfolio/models"
)

// AuthService manages the operator session lifecycle: credential
// verification, token issue and token verification.
type AuthService interface {
	// Authenticate checks a username/password pair against the configured
	// admin credentials. Returns ErrInvalidCredentials on mismatch.
	Authenticate(ctx context.Context, username, password string) (models.Identity, error)

	// IssueToken creates a signed session token for an authenticated identity.
	IssueToken(ctx context.Context, identity models.Identity) (models.Token, error)

	// VerifyToken validates a raw token string and returns the identity it
	// carries. Every failure mode (expired, malformed, bad signature) is
	// normalised to ErrTokenIsExpiredOrInvalid.
	VerifyToken(ctx context.Context, tokenString string) (models.Identity, error)
}

// ContentService sits between the HTTP handlers and the content
// repository. Reads degrade gracefully (an unreachable database yields an
// empty listing, never an error); writes validate their input and surface
// repository errors to the caller.
type ContentService interface {
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

// ContactService validates and relays contact form submissions.
type ContactService interface {
	Send(ctx context.Context, request models.ContactRequest) (models.ContactResponse, error)
}

// StatusService answers operational health questions about the deployment.
type StatusService interface {
	DatabaseStatus(ctx context.Context) models.DatabaseStatus
	EmailStatus(ctx context.Context) models.EmailStatus
}

// MailSender delivers a contact form submission to the site owner.
// Implemented by the Resend adapter.
type MailSender interface {
	SendContactEmail(ctx context.Context, request models.ContactRequest) error
}
