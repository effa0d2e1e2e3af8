package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/internal/store"
	"github.com/Oisamaye1/myportfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockContentRepository embeds the repository interface so each test only
// fills in the methods it exercises.
type mockContentRepository struct {
	store.ContentRepository

	listServicesFn     func(ctx context.Context, activeOnly bool) ([]models.Service, error)
	createServiceFn    func(ctx context.Context, service models.Service) (models.Service, error)
	getArticleBySlugFn func(ctx context.Context, slug string) (models.Article, error)
	getSettingsFn      func(ctx context.Context) (map[string]string, error)
	upsertSettingsFn   func(ctx context.Context, settings map[string]string) error
}

func (m *mockContentRepository) ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	return m.listServicesFn(ctx, activeOnly)
}

func (m *mockContentRepository) CreateService(ctx context.Context, service models.Service) (models.Service, error) {
	return m.createServiceFn(ctx, service)
}

func (m *mockContentRepository) GetArticleBySlug(ctx context.Context, slug string) (models.Article, error) {
	return m.getArticleBySlugFn(ctx, slug)
}

func (m *mockContentRepository) GetSettings(ctx context.Context) (map[string]string, error) {
	return m.getSettingsFn(ctx)
}

func (m *mockContentRepository) UpsertSettings(ctx context.Context, settings map[string]string) error {
	return m.upsertSettingsFn(ctx, settings)
}

func TestListServices_PassesThrough(t *testing.T) {
	repo := &mockContentRepository{listServicesFn: func(_ context.Context, activeOnly bool) ([]models.Service, error) {
		assert.True(t, activeOnly)
		return []models.Service{{ID: 1, Title: "Web Development", IsActive: true}}, nil
	}}
	svc := NewContentService(repo, logger.Nop())

	got, err := svc.ListServices(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Web Development", got[0].Title)
}

func TestListServices_DegradesToEmpty(t *testing.T) {
	repo := &mockContentRepository{listServicesFn: func(context.Context, bool) ([]models.Service, error) {
		return nil, errors.New("connection refused")
	}}
	svc := NewContentService(repo, logger.Nop())

	got, err := svc.ListServices(context.Background(), true)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCreateService_Validation(t *testing.T) {
	svc := NewContentService(&mockContentRepository{}, logger.Nop())

	_, err := svc.CreateService(context.Background(), models.Service{Title: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreateService_RepositoryErrorSurfaces(t *testing.T) {
	repo := &mockContentRepository{createServiceFn: func(context.Context, models.Service) (models.Service, error) {
		return models.Service{}, store.ErrDatabaseNotConfigured
	}}
	svc := NewContentService(repo, logger.Nop())

	_, err := svc.CreateService(context.Background(), models.Service{Title: "Consulting"})
	assert.ErrorIs(t, err, store.ErrDatabaseNotConfigured)
}

func TestGetArticleBySlug_DoesNotDegrade(t *testing.T) {
	repo := &mockContentRepository{getArticleBySlugFn: func(_ context.Context, slug string) (models.Article, error) {
		return models.Article{}, store.ErrNotFound
	}}
	svc := NewContentService(repo, logger.Nop())

	_, err := svc.GetArticleBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.GetArticleBySlug(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGetSettings_DegradesToEmptyMap(t *testing.T) {
	repo := &mockContentRepository{getSettingsFn: func(context.Context) (map[string]string, error) {
		return nil, errors.New("connection refused")
	}}
	svc := NewContentService(repo, logger.Nop())

	got, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUpsertSettings_RejectsEmpty(t *testing.T) {
	svc := NewContentService(&mockContentRepository{}, logger.Nop())

	err := svc.UpsertSettings(context.Background(), map[string]string{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpsertSettings_PassesThrough(t *testing.T) {
	var saved map[string]string
	repo := &mockContentRepository{upsertSettingsFn: func(_ context.Context, settings map[string]string) error {
		saved = settings
		return nil
	}}
	svc := NewContentService(repo, logger.Nop())

	err := svc.UpsertSettings(context.Background(), map[string]string{"site_title": "Updated"})
	require.NoError(t, err)
	assert.Equal(t, "Updated", saved["site_title"])
}
