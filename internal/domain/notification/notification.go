package notification

import (
	"context"
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
)

// Email is one outbound message, already personalized for its recipient.
type Email struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a single email. Implementations must not retry internally;
// the caller owns per-recipient failure reporting.
type Sender interface {
	Send(ctx context.Context, email Email) error
}

// EmailLog is the best-effort audit record of a sent notification. Writing it
// never affects the outcome of the send it describes.
type EmailLog struct {
	ID            common.UUID `json:"id"`
	ApplicationID common.UUID `json:"application_id"`
	Subject       string      `json:"subject"`
	Message       string      `json:"message"`
	SentBy        common.UUID `json:"sent_by"`
	SentAt        time.Time   `json:"sent_at"`
}

type LogRepository interface {
	Create(ctx context.Context, entry EmailLog) error
	ListByApplication(ctx context.Context, applicationID common.UUID) ([]EmailLog, error)
}
