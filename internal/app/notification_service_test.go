package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/application"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/notification"
)

type fakeSender struct {
	mu      sync.Mutex
	sent    []notification.Email
	failFor map[string]error
}

func (s *fakeSender) Send(ctx context.Context, email notification.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failFor[email.To]; ok {
		return err
	}
	s.sent = append(s.sent, email)
	return nil
}

type fakeLogRepo struct {
	mu        sync.Mutex
	entries   []notification.EmailLog
	createErr error
}

func (r *fakeLogRepo) Create(ctx context.Context, entry notification.EmailLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeLogRepo) ListByApplication(ctx context.Context, applicationID common.UUID) ([]notification.EmailLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []notification.EmailLog
	for _, entry := range r.entries {
		if entry.ApplicationID == applicationID {
			items = append(items, entry)
		}
	}
	return items, nil
}

func shortlistedRow(apps *fakeApplicationRepo, jobID common.UUID, first, email string) application.Row {
	id := common.NewUUID()
	row := application.Row{
		Application: application.Application{
			ID:        id,
			JobID:     jobID,
			FirstName: first,
			LastName:  "Otieno",
			Email:     email,
			Status:    application.StatusShortlisted,
		},
		JobTitle: "Data Analyst",
		Company:  "Acme Ltd",
	}
	apps.rows[id] = &row
	return row
}

func TestSendShortlistEmails_RequiresContent(t *testing.T) {
	service := NewNotificationService(newFakeApplicationRepo(), &fakeSender{}, &fakeLogRepo{}, slog.Default())

	_, err := service.SendShortlistEmails(context.Background(), common.NewUUID(), []common.UUID{common.NewUUID()}, " ", "body", common.NewUUID())
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for blank subject, got %v", err)
	}
	_, err = service.SendShortlistEmails(context.Background(), common.NewUUID(), nil, "subject", "body", common.NewUUID())
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for empty selection, got %v", err)
	}
}

func TestSendShortlistEmails_SkipsNonShortlisted(t *testing.T) {
	apps := newFakeApplicationRepo()
	jobID := common.NewUUID()
	eligible := shortlistedRow(apps, jobID, "Amina", "amina@example.com")
	pendingID := common.NewUUID()
	apps.rows[pendingID] = &application.Row{Application: application.Application{
		ID: pendingID, JobID: jobID, Email: "pending@example.com", Status: application.StatusPending,
	}}

	sender := &fakeSender{}
	logs := &fakeLogRepo{}
	service := NewNotificationService(apps, sender, logs, slog.Default())

	report, err := service.SendShortlistEmails(context.Background(), jobID,
		[]common.UUID{eligible.ID, pendingID}, "Interview", "Hello {first_name}", common.NewUUID())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if report.Sent != 1 {
		t.Fatalf("expected 1 sent, got %d", report.Sent)
	}
	if len(report.Failures) != 1 || report.Failures[0].ApplicationID != pendingID {
		t.Fatalf("expected the pending candidate to fail, got %v", report.Failures)
	}
	if len(sender.sent) != 1 || sender.sent[0].To != "amina@example.com" {
		t.Fatalf("expected one delivery, got %v", sender.sent)
	}
	if sender.sent[0].Body != "Hello Amina" {
		t.Fatalf("expected placeholder substitution, got %q", sender.sent[0].Body)
	}
	if len(logs.entries) != 1 || logs.entries[0].ApplicationID != eligible.ID {
		t.Fatalf("expected one audit entry, got %v", logs.entries)
	}
}

func TestSendShortlistEmails_OneFailureDoesNotStopTheRest(t *testing.T) {
	apps := newFakeApplicationRepo()
	jobID := common.NewUUID()
	first := shortlistedRow(apps, jobID, "Amina", "amina@example.com")
	second := shortlistedRow(apps, jobID, "Brian", "brian@example.com")
	third := shortlistedRow(apps, jobID, "Carol", "carol@example.com")

	sender := &fakeSender{failFor: map[string]error{"brian@example.com": errors.New("mailbox full")}}
	logs := &fakeLogRepo{}
	service := NewNotificationService(apps, sender, logs, slog.Default())

	report, err := service.SendShortlistEmails(context.Background(), jobID,
		[]common.UUID{first.ID, second.ID, third.ID}, "Interview", "Hello", common.NewUUID())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if report.Sent != 2 {
		t.Fatalf("expected 2 sent, got %d", report.Sent)
	}
	if len(report.Failures) != 1 || report.Failures[0].Email != "brian@example.com" {
		t.Fatalf("expected brian's failure reported, got %v", report.Failures)
	}
	if report.Failures[0].Reason != "mailbox full" {
		t.Fatalf("expected delivery reason, got %q", report.Failures[0].Reason)
	}
	if len(logs.entries) != 2 {
		t.Fatalf("expected audit entries for successful sends only, got %d", len(logs.entries))
	}
}

func TestSendShortlistEmails_LogFailureIsSwallowed(t *testing.T) {
	apps := newFakeApplicationRepo()
	jobID := common.NewUUID()
	row := shortlistedRow(apps, jobID, "Amina", "amina@example.com")

	logs := &fakeLogRepo{createErr: errors.New("log table gone")}
	service := NewNotificationService(apps, &fakeSender{}, logs, slog.Default())

	report, err := service.SendShortlistEmails(context.Background(), jobID,
		[]common.UUID{row.ID}, "Interview", "Hello", common.NewUUID())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if report.Sent != 1 || len(report.Failures) != 0 {
		t.Fatalf("expected delivery unaffected by log failure, got %+v", report)
	}
}

func TestEmailHistory(t *testing.T) {
	apps := newFakeApplicationRepo()
	jobID := common.NewUUID()
	row := shortlistedRow(apps, jobID, "Amina", "amina@example.com")
	logs := &fakeLogRepo{}
	service := NewNotificationService(apps, &fakeSender{}, logs, slog.Default())

	if _, err := service.EmailHistory(context.Background(), common.NewUUID()); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found for unknown application, got %v", err)
	}

	if _, err := service.SendShortlistEmails(context.Background(), jobID,
		[]common.UUID{row.ID}, "Interview", "Hello", common.NewUUID()); err != nil {
		t.Fatalf("expected send, got %v", err)
	}
	history, err := service.EmailHistory(context.Background(), row.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(history) != 1 || history[0].Subject != "Interview" {
		t.Fatalf("expected one history entry, got %v", history)
	}
}
