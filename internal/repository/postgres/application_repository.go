package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/application"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/screening"
)

const applicationRowColumns = `a.id, a.job_id, a.first_name, a.last_name, a.email, a.phone, a.address,
	a.resume_path, a.cover_letter, a.portfolio_url, a.linkedin_url, a.referral_source, a.additional_info,
	a.status, a.applied_at, j.title, j.company`

type ApplicationRepository struct {
	db         *sql.DB
	classifier screening.Classifier
}

func NewApplicationRepository(db *sql.DB, classifier screening.Classifier) *ApplicationRepository {
	return &ApplicationRepository{db: db, classifier: classifier}
}

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application, answers []application.Answer) (*application.Application, error) {
	app.ID = common.NewUUID()
	app.Status = application.StatusPending
	app.AppliedAt = time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to start transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `INSERT INTO applications (id, job_id, first_name, last_name, email, phone, address,
		resume_path, cover_letter, portfolio_url, linkedin_url, referral_source, additional_info, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		app.ID, app.JobID, app.FirstName, app.LastName, app.Email, app.Phone, app.Address,
		app.ResumePath, app.CoverLetter, app.PortfolioURL, app.LinkedInURL, app.ReferralSource, app.AdditionalInfo,
		app.Status, app.AppliedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	for _, answer := range answers {
		_, err = tx.ExecContext(ctx, `INSERT INTO screening_answers (application_id, question_id, answer)
			VALUES ($1, $2, $3)`, app.ID, answer.QuestionID, answer.Answer)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to store screening answer", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to commit application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Row, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationRowColumns+`
		FROM applications a JOIN jobs j ON j.id = a.job_id WHERE a.id = $1`, id)
	item, err := scanApplicationRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return item, nil
}

func (r *ApplicationRepository) Answers(ctx context.Context, applicationID common.UUID) ([]application.AnswerDetail, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT sa.question_id, q.question_text, sa.answer
		FROM screening_answers sa
		JOIN screening_questions q ON q.id = sa.question_id
		WHERE sa.application_id = $1
		ORDER BY q.order_index, q.id`, applicationID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list answers", err)
	}
	defer rows.Close()
	var items []application.AnswerDetail
	for rows.Next() {
		var item application.AnswerDetail
		if err := rows.Scan(&item.QuestionID, &item.QuestionText, &item.Answer); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan answer", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ApplicationRepository) List(ctx context.Context, f application.Filter) ([]application.Row, error) {
	where, args := buildApplicationWhere(f, r.classifier)
	query := `SELECT ` + applicationRowColumns + `
		FROM applications a JOIN jobs j ON j.id = a.job_id` + where + `
		ORDER BY a.applied_at DESC, a.id DESC`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	var items []application.Row
	for rows.Next() {
		item, err := scanApplicationRow(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, *item)
	}
	return items, nil
}

func (r *ApplicationRepository) Count(ctx context.Context, f application.Filter) (int, error) {
	where, args := buildApplicationWhere(f, r.classifier)
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications a JOIN jobs j ON j.id = a.job_id`+where, args...).Scan(&count)
	if err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count applications", err)
	}
	return count, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Row, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application status", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) ListShortlisted(ctx context.Context, jobID common.UUID, ids []common.UUID) ([]application.Row, error) {
	query := `SELECT ` + applicationRowColumns + `
		FROM applications a JOIN jobs j ON j.id = a.job_id
		WHERE a.job_id = $1 AND a.status = $2`
	args := []any{jobID, application.StatusShortlisted}
	if len(ids) > 0 {
		values := make([]string, 0, len(ids))
		for _, id := range ids {
			values = append(values, string(id))
		}
		query += fmt.Sprintf(" AND a.id = ANY($%d)", len(args)+1)
		args = append(args, pq.Array(values))
	}
	query += " ORDER BY a.applied_at DESC, a.id DESC"
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list shortlisted applications", err)
	}
	defer rows.Close()
	var items []application.Row
	for rows.Next() {
		item, err := scanApplicationRow(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, *item)
	}
	return items, nil
}

func (r *ApplicationRepository) CountByJob(ctx context.Context, jobID common.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID).Scan(&count)
	if err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count applications", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplicationRow(scanner rowScanner) (*application.Row, error) {
	var item application.Row
	if err := scanner.Scan(&item.ID, &item.JobID, &item.FirstName, &item.LastName, &item.Email, &item.Phone, &item.Address,
		&item.ResumePath, &item.CoverLetter, &item.PortfolioURL, &item.LinkedInURL, &item.ReferralSource, &item.AdditionalInfo,
		&item.Status, &item.AppliedAt, &item.JobTitle, &item.Company); err != nil {
		return nil, err
	}
	item.Status = application.NormalizeStatus(item.Status)
	return &item, nil
}
