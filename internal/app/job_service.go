package app

import (
	"context"
	"strings"
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/job"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/screening"
)

type JobService struct {
	repo job.Repository
	now  func() time.Time
}

func NewJobService(repo job.Repository) *JobService {
	return &JobService{repo: repo, now: time.Now}
}

func (s *JobService) Create(ctx context.Context, j job.Job, drafts screening.DraftList) (*job.Job, error) {
	if j.Status == "" {
		j.Status = job.StatusDraft
	}
	if err := s.validateJob(j, true); err != nil {
		return nil, err
	}
	questions, err := normalizeDrafts(drafts, j.ID)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, j, questions)
}

func (s *JobService) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	current, err := s.repo.GetByID(ctx, j.ID)
	if err != nil {
		return nil, err
	}
	if j.Status == "" {
		j.Status = current.Status
	}
	if err := s.validateJob(j, false); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, j)
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*job.Job, error) {
	return s.repo.GetByID(ctx, id)
}

// PublicJob is a job detail with its active screening questions, the shape
// the applicant-facing form is built from.
type PublicJob struct {
	job.Job
	Questions []job.Question `json:"questions"`
}

// GetPublic returns the job only while it accepts applications.
func (s *JobService) GetPublic(ctx context.Context, id common.UUID) (*PublicJob, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !item.Accepting(s.now()) {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	questions, err := s.repo.ActiveQuestions(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PublicJob{Job: *item, Questions: questions}, nil
}

// ListPublic lists open jobs whose deadline has not passed. A job past its
// deadline is excluded even while its status still says open.
func (s *JobService) ListPublic(ctx context.Context, filter job.PublicFilter) ([]job.Job, error) {
	return s.repo.ListOpen(ctx, s.now(), filter)
}

func (s *JobService) ListAll(ctx context.Context) ([]job.Summary, error) {
	return s.repo.ListAll(ctx)
}

func (s *JobService) UpdateStatus(ctx context.Context, id common.UUID, status job.Status) error {
	normalized := job.Status(strings.ToLower(strings.TrimSpace(string(status))))
	switch normalized {
	case job.StatusDraft, job.StatusOpen, job.StatusClosed:
	default:
		return common.NewValidationError("invalid status", map[string]string{"status": "status must be draft, open, or closed"})
	}
	return s.repo.UpdateStatus(ctx, id, normalized)
}

// ToggleStatus flips open to closed and anything else to open.
func (s *JobService) ToggleStatus(ctx context.Context, id common.UUID) (*job.Job, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next := job.StatusOpen
	if current.Status == job.StatusOpen {
		next = job.StatusClosed
	}
	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	current.Status = next
	return current, nil
}

func (s *JobService) ExtendDeadline(ctx context.Context, id common.UUID, days int) (*job.Job, error) {
	if days <= 0 {
		return nil, common.NewValidationError("invalid extension", map[string]string{"days": "days must be a positive number"})
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	base := current.Deadline
	today := s.now().UTC().Truncate(24 * time.Hour)
	if base.Before(today) {
		base = today
	}
	deadline := base.AddDate(0, 0, days)
	if err := s.repo.UpdateDeadline(ctx, id, deadline); err != nil {
		return nil, err
	}
	current.Deadline = deadline
	return current, nil
}

func (s *JobService) Delete(ctx context.Context, id common.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *JobService) Questions(ctx context.Context, jobID common.UUID) ([]job.Question, error) {
	if _, err := s.repo.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	return s.repo.ActiveQuestions(ctx, jobID)
}

// ReplaceQuestions swaps the job's whole active question set for the drafts.
// The previous set is soft-deleted, never purged, so answers already given
// against it remain interpretable.
func (s *JobService) ReplaceQuestions(ctx context.Context, jobID common.UUID, drafts screening.DraftList) ([]job.Question, error) {
	if _, err := s.repo.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	questions, err := normalizeDrafts(drafts, jobID)
	if err != nil {
		return nil, err
	}
	return s.repo.ReplaceQuestions(ctx, jobID, questions)
}

func (s *JobService) PreviewQuestions(drafts screening.DraftList) []screening.PreviewField {
	return screening.Preview(drafts)
}

func normalizeDrafts(drafts screening.DraftList, jobID common.UUID) ([]job.Question, error) {
	normalized := drafts.Normalize()
	if fields := normalized.Validate(); len(fields) > 0 {
		return nil, common.NewValidationError("invalid questions", fields)
	}
	return normalized.Questions(jobID), nil
}

func (s *JobService) validateJob(j job.Job, isCreate bool) error {
	fields := map[string]string{}
	if strings.TrimSpace(j.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(j.Company) == "" {
		fields["company"] = "company is required"
	}
	if strings.TrimSpace(j.Location) == "" {
		fields["location"] = "location is required"
	}
	if strings.TrimSpace(j.Type) == "" {
		fields["type"] = "type is required"
	}
	if strings.TrimSpace(j.Description) == "" {
		fields["description"] = "description is required"
	}
	if j.SalaryMin < 0 || j.SalaryMax < 0 {
		fields["salary"] = "salary must not be negative"
	}
	if j.SalaryMin > 0 && j.SalaryMax > 0 && j.SalaryMin > j.SalaryMax {
		fields["salary"] = "minimum salary must not exceed maximum salary"
	}
	if j.Deadline.IsZero() {
		fields["deadline"] = "deadline is required"
	} else if isCreate && j.Deadline.Before(s.now().UTC().Truncate(24*time.Hour)) {
		fields["deadline"] = "deadline must not be in the past"
	}
	switch j.Status {
	case job.StatusDraft, job.StatusOpen, job.StatusClosed:
	default:
		fields["status"] = "status must be draft, open, or closed"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid job", fields)
	}
	return nil
}
