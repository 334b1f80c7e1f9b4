package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/notification"
)

type EmailLogRepository struct {
	db *sql.DB
}

func NewEmailLogRepository(db *sql.DB) *EmailLogRepository {
	return &EmailLogRepository{db: db}
}

func (r *EmailLogRepository) Create(ctx context.Context, entry notification.EmailLog) error {
	entry.ID = common.NewUUID()
	if entry.SentAt.IsZero() {
		entry.SentAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO email_logs (id, application_id, subject, message, sent_by, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.ApplicationID, entry.Subject, entry.Message, entry.SentBy, entry.SentAt)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to record email log", err)
	}
	return nil
}

func (r *EmailLogRepository) ListByApplication(ctx context.Context, applicationID common.UUID) ([]notification.EmailLog, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, application_id, subject, message, sent_by, sent_at
		FROM email_logs WHERE application_id = $1 ORDER BY sent_at DESC, id DESC`, applicationID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list email logs", err)
	}
	defer rows.Close()
	var items []notification.EmailLog
	for rows.Next() {
		var item notification.EmailLog
		if err := rows.Scan(&item.ID, &item.ApplicationID, &item.Subject, &item.Message, &item.SentBy, &item.SentAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan email log", err)
		}
		items = append(items, item)
	}
	return items, nil
}
