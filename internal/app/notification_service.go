package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/application"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/notification"
)

type NotificationService struct {
	applications application.Repository
	sender       notification.Sender
	logs         notification.LogRepository
	logger       *slog.Logger
}

func NewNotificationService(applications application.Repository, sender notification.Sender, logs notification.LogRepository, logger *slog.Logger) *NotificationService {
	return &NotificationService{applications: applications, sender: sender, logs: logs, logger: logger}
}

type SendFailure struct {
	ApplicationID common.UUID `json:"application_id"`
	Email         string      `json:"email"`
	Reason        string      `json:"reason"`
}

type SendReport struct {
	Sent     int           `json:"sent"`
	Failures []SendFailure `json:"failures"`
}

// SendShortlistEmails sends the personalized template to every requested
// candidate that is actually shortlisted for the job. The shortlist
// constraint is enforced here against the store, not trusted from the
// request. One recipient failing never stops the rest, and the audit log is
// strictly best effort: a failed log write is logged and otherwise ignored.
func (s *NotificationService) SendShortlistEmails(ctx context.Context, jobID common.UUID, candidateIDs []common.UUID, subject, body string, sentBy common.UUID) (*SendReport, error) {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(body) == "" {
		return nil, common.NewValidationError("invalid message", map[string]string{
			"subject": "subject and message are required",
		})
	}
	if len(candidateIDs) == 0 {
		return nil, common.NewValidationError("invalid selection", map[string]string{
			"candidates": "select at least one candidate",
		})
	}

	eligible, err := s.applications.ListShortlisted(ctx, jobID, candidateIDs)
	if err != nil {
		return nil, err
	}
	eligibleByID := make(map[common.UUID]application.Row, len(eligible))
	for _, row := range eligible {
		eligibleByID[row.ID] = row
	}

	report := &SendReport{}
	for _, id := range candidateIDs {
		row, ok := eligibleByID[id]
		if !ok {
			report.Failures = append(report.Failures, SendFailure{
				ApplicationID: id,
				Reason:        "candidate is not shortlisted for this job",
			})
			continue
		}
		email := notification.Email{
			To:      row.Email,
			Subject: substitutePlaceholders(subject, row),
			Body:    substitutePlaceholders(body, row),
		}
		if err := s.sender.Send(ctx, email); err != nil {
			report.Failures = append(report.Failures, SendFailure{
				ApplicationID: row.ID,
				Email:         row.Email,
				Reason:        err.Error(),
			})
			continue
		}
		report.Sent++
		if err := s.logs.Create(ctx, notification.EmailLog{
			ApplicationID: row.ID,
			Subject:       email.Subject,
			Message:       email.Body,
			SentBy:        sentBy,
		}); err != nil {
			s.logger.Warn("email log write failed", "application_id", row.ID.String(), "error", err)
		}
	}
	return report, nil
}

func (s *NotificationService) EmailHistory(ctx context.Context, applicationID common.UUID) ([]notification.EmailLog, error) {
	if _, err := s.applications.GetByID(ctx, applicationID); err != nil {
		return nil, err
	}
	return s.logs.ListByApplication(ctx, applicationID)
}

// substitutePlaceholders fills the template tokens the admin can use in a
// bulk message.
func substitutePlaceholders(template string, row application.Row) string {
	replacer := strings.NewReplacer(
		"{first_name}", row.FirstName,
		"{last_name}", row.LastName,
		"{job_title}", row.JobTitle,
		"{company}", row.Company,
	)
	return replacer.Replace(template)
}
