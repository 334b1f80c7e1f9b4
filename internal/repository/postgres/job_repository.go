package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/job"
)

const jobColumns = `id, title, company, location, job_type, salary_min, salary_max, description,
	requirements, responsibilities, benefits, deadline, status, created_at, updated_at`

const questionColumns = `id, job_id, question_text, question_type, options, required, filterable,
	filter_kind, order_index, deleted_at`

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j job.Job, questions []job.Question) (*job.Job, error) {
	j.ID = common.NewUUID()
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to start transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `INSERT INTO jobs (`+jobColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		j.ID, j.Title, j.Company, j.Location, j.Type, j.SalaryMin, j.SalaryMax, j.Description,
		textArray(j.Requirements), textArray(j.Responsibilities), textArray(j.Benefits),
		j.Deadline, j.Status, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	if err := insertQuestions(ctx, tx, j.ID, questions); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to commit job", err)
	}
	return &j, nil
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	j.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET title = $1, company = $2, location = $3, job_type = $4,
		salary_min = $5, salary_max = $6, description = $7, requirements = $8, responsibilities = $9, benefits = $10,
		deadline = $11, status = $12, updated_at = $13 WHERE id = $14`,
		j.Title, j.Company, j.Location, j.Type, j.SalaryMin, j.SalaryMax, j.Description,
		textArray(j.Requirements), textArray(j.Responsibilities), textArray(j.Benefits),
		j.Deadline, j.Status, j.UpdatedAt, j.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return &j, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	item, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return item, nil
}

func (r *JobRepository) ListOpen(ctx context.Context, now time.Time, filter job.PublicFilter) ([]job.Job, error) {
	w := &whereBuilder{}
	w.add("status = " + w.bind(job.StatusOpen))
	w.add("deadline >= " + w.bind(now.UTC().Format("2006-01-02")) + "::date")
	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern := w.bind("%" + escapeLike(term) + "%")
		w.add(`(title ILIKE ` + pattern + ` ESCAPE '\' OR company ILIKE ` + pattern + ` ESCAPE '\' OR description ILIKE ` + pattern + ` ESCAPE '\')`)
	}
	if location := strings.TrimSpace(filter.Location); location != "" {
		w.add(`location ILIKE ` + w.bind("%"+escapeLike(location)+"%") + ` ESCAPE '\'`)
	}
	if jobType := strings.TrimSpace(filter.Type); jobType != "" {
		w.add("job_type = " + w.bind(jobType))
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs`+w.clause()+` ORDER BY created_at DESC, id DESC`, w.args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer rows.Close()
	var items []job.Job
	for rows.Next() {
		item, err := scanJob(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
		}
		items = append(items, *item)
	}
	return items, nil
}

func (r *JobRepository) ListAll(ctx context.Context) ([]job.Summary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT j.id, j.title, j.company, j.location, j.job_type, j.salary_min, j.salary_max,
		j.description, j.requirements, j.responsibilities, j.benefits, j.deadline, j.status, j.created_at, j.updated_at,
		COUNT(a.id)
		FROM jobs j LEFT JOIN applications a ON a.job_id = j.id
		GROUP BY j.id
		ORDER BY j.created_at DESC, j.id DESC`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer rows.Close()
	var items []job.Summary
	for rows.Next() {
		var item job.Summary
		if err := rows.Scan(&item.ID, &item.Title, &item.Company, &item.Location, &item.Type, &item.SalaryMin, &item.SalaryMax,
			&item.Description, pq.Array(&item.Requirements), pq.Array(&item.Responsibilities), pq.Array(&item.Benefits),
			&item.Deadline, &item.Status, &item.CreatedAt, &item.UpdatedAt, &item.ApplicationCount); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *JobRepository) UpdateStatus(ctx context.Context, id common.UUID, status job.Status) error {
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now().UTC(), id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update job status", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return nil
}

func (r *JobRepository) UpdateDeadline(ctx context.Context, id common.UUID, deadline time.Time) error {
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET deadline = $1, updated_at = $2 WHERE id = $3`,
		deadline, time.Now().UTC(), id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update job deadline", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return nil
}

// Delete removes the job; questions and answers go with it via ON DELETE
// CASCADE.
func (r *JobRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return nil
}

func (r *JobRepository) ActiveQuestions(ctx context.Context, jobID common.UUID) ([]job.Question, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+questionColumns+` FROM screening_questions
		WHERE job_id = $1 AND deleted_at IS NULL ORDER BY order_index, id`, jobID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list questions", err)
	}
	defer rows.Close()
	var items []job.Question
	for rows.Next() {
		var item job.Question
		var kind sql.NullString
		if err := rows.Scan(&item.ID, &item.JobID, &item.Text, &item.Type, pq.Array(&item.Options),
			&item.Required, &item.Filterable, &kind, &item.OrderIndex, &item.DeletedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan question", err)
		}
		item.FilterKind = job.FilterKind(kind.String)
		items = append(items, item)
	}
	return items, nil
}

// ReplaceQuestions retires the active question set and installs the new one
// atomically. Old rows are soft-deleted so existing answers keep a readable
// question to point at.
func (r *JobRepository) ReplaceQuestions(ctx context.Context, jobID common.UUID, questions []job.Question) ([]job.Question, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to start transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `UPDATE screening_questions SET deleted_at = $1 WHERE job_id = $2 AND deleted_at IS NULL`,
		time.Now().UTC(), jobID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to retire questions", err)
	}
	inserted, err := insertQuestionsReturning(ctx, tx, jobID, questions)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to commit questions", err)
	}
	return inserted, nil
}

func insertQuestions(ctx context.Context, tx *sql.Tx, jobID common.UUID, questions []job.Question) error {
	_, err := insertQuestionsReturning(ctx, tx, jobID, questions)
	return err
}

func insertQuestionsReturning(ctx context.Context, tx *sql.Tx, jobID common.UUID, questions []job.Question) ([]job.Question, error) {
	inserted := make([]job.Question, 0, len(questions))
	for i, q := range questions {
		q.ID = common.NewUUID()
		q.JobID = jobID
		q.OrderIndex = i
		var kind any
		if q.FilterKind != "" {
			kind = string(q.FilterKind)
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO screening_questions (id, job_id, question_text, question_type,
			options, required, filterable, filter_kind, order_index)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			q.ID, q.JobID, q.Text, q.Type, textArray(q.Options), q.Required, q.Filterable, kind, q.OrderIndex)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to insert question", err)
		}
		inserted = append(inserted, q)
	}
	return inserted, nil
}

// textArray binds a []string column. A nil slice still encodes as an empty
// array literal; the text[] columns are NOT NULL.
func textArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}

func scanJob(scanner rowScanner) (*job.Job, error) {
	var item job.Job
	if err := scanner.Scan(&item.ID, &item.Title, &item.Company, &item.Location, &item.Type,
		&item.SalaryMin, &item.SalaryMax, &item.Description,
		pq.Array(&item.Requirements), pq.Array(&item.Responsibilities), pq.Array(&item.Benefits),
		&item.Deadline, &item.Status, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}
