package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/models"
)

func newTestContentRepo(t *testing.T) (*contentRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &contentRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func serviceRows(services ...models.Service) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "description", "icon", "order_index", "is_active"})
	for _, s := range services {
		rows.AddRow(s.ID, s.Title, s.Description, s.Icon, s.OrderIndex, s.IsActive)
	}
	return rows
}

func TestListServices_ActiveOnly(t *testing.T) {
	repo, mock, db := newTestContentRepo(t)
	defer db.Close()

	want := models.Service{ID: 1, Title: "Web Development", Icon: "Code", OrderIndex: 1, IsActive: true}
	mock.ExpectQuery("SELECT (.+) FROM services\\s+WHERE is_active = TRUE").
		WillReturnRows(serviceRows(want))

	got, err := repo.ListServices(context.Background(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Title != want.Title {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestListServices_All(t *testing.T) {
	repo, mock, db := newTestContentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM services ORDER BY order_index").
		WillReturnRows(serviceRows(
			models.Service{ID: 1, Title: "Active", IsActive: true},
			models.Service{ID: 2, Title: "Hidden", IsActive: false},
		))

	got, err := repo.ListServices(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 services, got %d", len(got))
	}
}

func TestCreateService_Success(t *testing.T) {
	repo, mock, db := newTestContentRepo(t)
	defer db.Close()

	input := models.Service{Title: "Consulting", Description: "Advice", Icon: "Chat", OrderIndex: 3, IsActive: true}

	mock.ExpectQuery("INSERT INTO services").
		WithArgs(input.Title, input.Description, input.Icon, input.OrderIndex, input.IsActive).
		WillReturnRows(serviceRows(models.Service{ID: 7, Title: input.Title, Description: input.Description, Icon: input.Icon, OrderIndex: 3, IsActive: true}))

	created, err := repo.CreateService(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("expected ID=7, got %d", created.ID)
	}
}

func TestUpdateService_PartialPatch(t *testing.T) {
	repo, mock, db := newTestContentRepo(t)
	defer db.Close()

	title := "Renamed"
	mock.ExpectQuery("UPDATE services SET title = (.+) WHERE id = (.+) RETURNING").
		WithArgs(title, int64(1)).
		WillReturnRows(serviceRows(models.Service{ID: 1, Title: title, IsActive: true}))

	updated, err := repo.UpdateService(context.Background(), 1, models.ServicePatch{Title: &title})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != title {
		t.Errorf("expected title %q, got %q", title, updated.Title)
	}
}

func TestUpdateService_NoFields(t *testing.T) {
	repo, _, db := newTestContentRepo(t)
	defer db.Close()

	_, err := repo.UpdateService(context.Background(), 1, models.ServicePatch{})
	if !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}
}

func TestUpdateService_NotFound(t *testing.T) {
	repo, mock, db := newTestContentRepo(t)
	defer db.Close()

	title := "Renamed"
	mock.ExpectQuery("UPDATE services").
		WithArgs(title, int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateService(context.Background(), 42, models.ServicePatch{Title: &title})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteService_Success(t *testing.T) {
	repo, mock, db := newTestContentRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM services").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteService(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteService_NotFound(t *testing.T) {
	repo, mock, db := newTestContentRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM services").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteService(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
