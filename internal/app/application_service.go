package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/application"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/job"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/storage"
)

type ApplicationService struct {
	repo    application.Repository
	jobs    job.Repository
	resumes storage.ResumeStore
	now     func() time.Time
}

func NewApplicationService(repo application.Repository, jobs job.Repository, resumes storage.ResumeStore) *ApplicationService {
	return &ApplicationService{repo: repo, jobs: jobs, resumes: resumes, now: time.Now}
}

// Submit runs the complete intake: full validation, resume storage, and the
// transactional insert of the application with its answers. A failed insert
// removes the already-stored resume so no partial submission survives.
func (s *ApplicationService) Submit(ctx context.Context, sub Submission) (*application.Application, error) {
	target, err := s.jobs.GetByID(ctx, sub.JobID)
	if err != nil {
		return nil, err
	}
	if !target.Accepting(s.now()) {
		return nil, common.NewError(common.CodeValidation, "this job is no longer accepting applications", nil)
	}
	questions, err := s.jobs.ActiveQuestions(ctx, sub.JobID)
	if err != nil {
		return nil, err
	}
	if fields := ValidateThrough(StepAdditional, sub, questions); len(fields) > 0 {
		return nil, common.NewValidationError("invalid application", fields)
	}
	answers, err := buildAnswers(sub, questions)
	if err != nil {
		return nil, err
	}

	resumePath, err := s.resumes.Save(sub.ResumeName, sub.Resume)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, application.Application{
		JobID:          sub.JobID,
		FirstName:      strings.TrimSpace(sub.FirstName),
		LastName:       strings.TrimSpace(sub.LastName),
		Email:          strings.TrimSpace(sub.Email),
		Phone:          strings.TrimSpace(sub.Phone),
		Address:        strings.TrimSpace(sub.Address),
		ResumePath:     resumePath,
		CoverLetter:    sub.CoverLetter,
		PortfolioURL:   strings.TrimSpace(sub.PortfolioURL),
		LinkedInURL:    strings.TrimSpace(sub.LinkedInURL),
		ReferralSource: strings.TrimSpace(sub.ReferralSource),
		AdditionalInfo: sub.AdditionalInfo,
	}, answers)
	if err != nil {
		_ = s.resumes.Remove(resumePath)
		return nil, err
	}
	return created, nil
}

// buildAnswers keeps only non-empty answers to the job's own active
// questions; an answer keyed by a question of another job is rejected
// outright.
func buildAnswers(sub Submission, questions []job.Question) ([]application.Answer, error) {
	byID := make(map[common.UUID]job.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	for id := range sub.Answers {
		if _, ok := byID[id]; !ok {
			return nil, common.NewValidationError("invalid application", map[string]string{
				"screening_" + id.String(): "question does not belong to this job",
			})
		}
	}
	answers := make([]application.Answer, 0, len(sub.Answers))
	for _, q := range questions {
		answer := strings.TrimSpace(sub.Answers[q.ID])
		if answer == "" {
			continue
		}
		answers = append(answers, application.Answer{QuestionID: q.ID, Answer: answer})
	}
	return answers, nil
}

func (s *ApplicationService) List(ctx context.Context, f application.Filter) ([]application.Row, error) {
	return s.repo.List(ctx, f)
}

func (s *ApplicationService) Count(ctx context.Context, f application.Filter) (int, error) {
	return s.repo.Count(ctx, f)
}

type ApplicationDetail struct {
	application.Row
	Answers []application.AnswerDetail `json:"answers"`
}

func (s *ApplicationService) Get(ctx context.Context, id common.UUID) (*ApplicationDetail, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	answers, err := s.repo.Answers(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ApplicationDetail{Row: *row, Answers: answers}, nil
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Row, error) {
	normalized := application.NormalizeStatus(status)
	if !application.KnownStatus(normalized) {
		return nil, common.NewValidationError("invalid status", map[string]string{
			"status": "status must be pending, reviewed, shortlisted, or rejected",
		})
	}
	return s.repo.UpdateStatus(ctx, id, normalized)
}

// csvHeader is the fixed export column order; consumers depend on it.
var csvHeader = []string{
	"id", "first_name", "last_name", "email", "phone", "address",
	"job_title", "company", "status", "applied_at", "portfolio_url", "linkedin_url", "has_resume",
}

// ExportCSV streams the applications matching the filter in the exact
// semantics of List, one CSV row per application.
func (s *ApplicationService) ExportCSV(ctx context.Context, f application.Filter, w io.Writer) error {
	rows, err := s.repo.List(ctx, f)
	if err != nil {
		return err
	}
	return s.WriteCSV(w, rows)
}

// WriteCSV renders already-fetched rows in the export layout. Handlers fetch
// first so a query failure can still produce an error response.
func (s *ApplicationService) WriteCSV(w io.Writer, rows []application.Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return common.NewError(common.CodeInternal, "failed to write export", err)
	}
	for _, row := range rows {
		hasResume := "no"
		if row.ResumePath != "" {
			hasResume = "yes"
		}
		record := []string{
			row.ID.String(), row.FirstName, row.LastName, row.Email, row.Phone, row.Address,
			row.JobTitle, row.Company, string(row.Status), row.AppliedAt.UTC().Format(time.RFC3339),
			row.PortfolioURL, row.LinkedInURL, hasResume,
		}
		if err := writer.Write(record); err != nil {
			return common.NewError(common.CodeInternal, "failed to write export", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return common.NewError(common.CodeInternal, "failed to flush export", err)
	}
	return nil
}

// ExportFilename is the attachment name for a CSV export generated now.
func (s *ApplicationService) ExportFilename() string {
	return fmt.Sprintf("applications_%s.csv", s.now().UTC().Format("2006-01-02"))
}
