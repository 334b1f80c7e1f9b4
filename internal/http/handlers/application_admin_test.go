package handlers

import (
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/app"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/application"
)

// stubApplicationRepo serves the export handler tests; only List is exercised.
type stubApplicationRepo struct {
	rows    []application.Row
	listErr error
}

func (s *stubApplicationRepo) Create(context.Context, application.Application, []application.Answer) (*application.Application, error) {
	return nil, errors.New("not implemented")
}

func (s *stubApplicationRepo) GetByID(context.Context, common.UUID) (*application.Row, error) {
	return nil, errors.New("not implemented")
}

func (s *stubApplicationRepo) Answers(context.Context, common.UUID) ([]application.AnswerDetail, error) {
	return nil, errors.New("not implemented")
}

func (s *stubApplicationRepo) List(context.Context, application.Filter) ([]application.Row, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.rows, nil
}

func (s *stubApplicationRepo) Count(context.Context, application.Filter) (int, error) {
	return len(s.rows), nil
}

func (s *stubApplicationRepo) UpdateStatus(context.Context, common.UUID, application.Status) (*application.Row, error) {
	return nil, errors.New("not implemented")
}

func (s *stubApplicationRepo) ListShortlisted(context.Context, common.UUID, []common.UUID) ([]application.Row, error) {
	return nil, errors.New("not implemented")
}

func (s *stubApplicationRepo) CountByJob(context.Context, common.UUID) (int, error) {
	return 0, errors.New("not implemented")
}

func TestExportQueryFailureReturnsJSONError(t *testing.T) {
	repo := &stubApplicationRepo{
		listErr: common.NewError(common.CodeInternal, "failed to list applications", errors.New("connection refused")),
	}
	handler := NewAdminApplicationHandler(app.NewApplicationService(repo, nil, nil), nil)

	w := httptest.NewRecorder()
	handler.Export(w, httptest.NewRequest(http.MethodGet, "/admin/applications/export", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected a JSON error, got content type %q", ct)
	}
	if w.Header().Get("Content-Disposition") != "" {
		t.Fatalf("a failed export must not look like an attachment, got %q", w.Header().Get("Content-Disposition"))
	}
}

func TestExportStreamsCSV(t *testing.T) {
	repo := &stubApplicationRepo{rows: []application.Row{{
		Application: application.Application{
			ID:        common.NewUUID(),
			FirstName: "Amina",
			LastName:  "Odhiambo",
			Email:     "amina@example.com",
			Status:    application.StatusShortlisted,
			AppliedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		JobTitle: "Data Analyst",
		Company:  "Acme Ltd",
	}}}
	handler := NewAdminApplicationHandler(app.NewApplicationService(repo, nil, nil), nil)

	w := httptest.NewRecorder()
	handler.Export(w, httptest.NewRequest(http.MethodGet, "/admin/applications/export", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("expected text/csv, got %q", ct)
	}
	if disposition := w.Header().Get("Content-Disposition"); !strings.Contains(disposition, "applications_") {
		t.Fatalf("expected attachment filename, got %q", disposition)
	}
	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus one row, got %d records", len(records))
	}
	if records[1][1] != "Amina" {
		t.Fatalf("expected first name in row, got %v", records[1])
	}
}
