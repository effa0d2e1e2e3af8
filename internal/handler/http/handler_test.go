package http

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Oisamaye1/myportfolio/internal/config"
	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/internal/service"
	"github.com/Oisamaye1/myportfolio/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks: service layer
// ─────────────────────────────────────────────

type mockAuthService struct {
	authenticateFn func(ctx context.Context, username, password string) (models.Identity, error)
	issueTokenFn   func(ctx context.Context, identity models.Identity) (models.Token, error)
	verifyTokenFn  func(ctx context.Context, tokenString string) (models.Identity, error)
}

func (m *mockAuthService) Authenticate(ctx context.Context, username, password string) (models.Identity, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, username, password)
	}
	return models.Identity{Username: "admin", Role: models.RoleAdmin}, nil
}

func (m *mockAuthService) IssueToken(ctx context.Context, identity models.Identity) (models.Token, error) {
	if m.issueTokenFn != nil {
		return m.issueTokenFn(ctx, identity)
	}
	return models.Token{SignedString: "signed-token", Identity: identity}, nil
}

func (m *mockAuthService) VerifyToken(ctx context.Context, tokenString string) (models.Identity, error) {
	if m.verifyTokenFn != nil {
		return m.verifyTokenFn(ctx, tokenString)
	}
	return models.Identity{Username: "admin", Role: models.RoleAdmin}, nil
}

// mockContentService embeds the interface so tests only implement what
// they exercise.
type mockContentService struct {
	service.ContentService

	listServicesFn    func(ctx context.Context, activeOnly bool) ([]models.Service, error)
	createServiceFn   func(ctx context.Context, svc models.Service) (models.Service, error)
	updateServiceFn   func(ctx context.Context, id int64, patch models.ServicePatch) (models.Service, error)
	deleteServiceFn   func(ctx context.Context, id int64) error
	listArticlesFn    func(ctx context.Context, publishedOnly, featuredOnly bool) ([]models.Article, error)
	getArticleFn      func(ctx context.Context, slug string) (models.Article, error)
	createArticleFn   func(ctx context.Context, article models.Article) (models.Article, error)
	getSettingsFn     func(ctx context.Context) (map[string]string, error)
	upsertSettingsFn  func(ctx context.Context, settings map[string]string) error
	listProjectsFn    func(ctx context.Context, activeOnly, featuredOnly bool) ([]models.Project, error)
	deleteTechStackFn func(ctx context.Context, id int64) error
}

func (m *mockContentService) ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	return m.listServicesFn(ctx, activeOnly)
}

func (m *mockContentService) CreateService(ctx context.Context, svc models.Service) (models.Service, error) {
	return m.createServiceFn(ctx, svc)
}

func (m *mockContentService) UpdateService(ctx context.Context, id int64, patch models.ServicePatch) (models.Service, error) {
	return m.updateServiceFn(ctx, id, patch)
}

func (m *mockContentService) DeleteService(ctx context.Context, id int64) error {
	return m.deleteServiceFn(ctx, id)
}

func (m *mockContentService) ListArticles(ctx context.Context, publishedOnly, featuredOnly bool) ([]models.Article, error) {
	return m.listArticlesFn(ctx, publishedOnly, featuredOnly)
}

func (m *mockContentService) GetArticleBySlug(ctx context.Context, slug string) (models.Article, error) {
	return m.getArticleFn(ctx, slug)
}

func (m *mockContentService) CreateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	return m.createArticleFn(ctx, article)
}

func (m *mockContentService) GetSettings(ctx context.Context) (map[string]string, error) {
	return m.getSettingsFn(ctx)
}

func (m *mockContentService) UpsertSettings(ctx context.Context, settings map[string]string) error {
	return m.upsertSettingsFn(ctx, settings)
}

func (m *mockContentService) ListProjects(ctx context.Context, activeOnly, featuredOnly bool) ([]models.Project, error) {
	return m.listProjectsFn(ctx, activeOnly, featuredOnly)
}

func (m *mockContentService) DeleteTechStack(ctx context.Context, id int64) error {
	return m.deleteTechStackFn(ctx, id)
}

type mockContactService struct {
	sendFn func(ctx context.Context, request models.ContactRequest) (models.ContactResponse, error)
}

func (m *mockContactService) Send(ctx context.Context, request models.ContactRequest) (models.ContactResponse, error) {
	if m.sendFn != nil {
		return m.sendFn(ctx, request)
	}
	return models.ContactResponse{Success: true, Message: "Message sent successfully"}, nil
}

type mockStatusService struct {
	databaseStatusFn func(ctx context.Context) models.DatabaseStatus
	emailStatusFn    func(ctx context.Context) models.EmailStatus
}

func (m *mockStatusService) DatabaseStatus(ctx context.Context) models.DatabaseStatus {
	if m.databaseStatusFn != nil {
		return m.databaseStatusFn(ctx)
	}
	return models.DatabaseStatus{}
}

func (m *mockStatusService) EmailStatus(ctx context.Context) models.EmailStatus {
	if m.emailStatusFn != nil {
		return m.emailStatusFn(ctx)
	}
	return models.EmailStatus{}
}

// ─────────────────────────────────────────────
// Test server plumbing
// ─────────────────────────────────────────────

type testServices struct {
	auth    *mockAuthService
	content *mockContentService
	contact *mockContactService
	status  *mockStatusService
}

func newTestServer(t *testing.T, mocks testServices) *httptest.Server {
	t.Helper()

	if mocks.auth == nil {
		mocks.auth = &mockAuthService{}
	}
	if mocks.content == nil {
		mocks.content = &mockContentService{}
	}
	if mocks.contact == nil {
		mocks.contact = &mockContactService{}
	}
	if mocks.status == nil {
		mocks.status = &mockStatusService{}
	}

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>home</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(staticDir, "cms", "login"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "cms", "index.html"), []byte("<html>cms</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "cms", "login", "index.html"), []byte("<html>login</html>"), 0o644))

	handler := NewHandler(&service.Services{
		AuthService:    mocks.auth,
		ContentService: mocks.content,
		ContactService: mocks.contact,
		StatusService:  mocks.status,
	}, config.Server{
		HTTPAddress: ":8080",
		Environment: "development",
		StaticDir:   staticDir,
	}, logger.Nop())

	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)
	return srv
}
