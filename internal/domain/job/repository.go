package job

import (
	"context"
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
)

type Repository interface {
	Create(ctx context.Context, j Job, questions []Question) (*Job, error)
	Update(ctx context.Context, j Job) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*Job, error)
	ListOpen(ctx context.Context, now time.Time, filter PublicFilter) ([]Job, error)
	ListAll(ctx context.Context) ([]Summary, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) error
	UpdateDeadline(ctx context.Context, id common.UUID, deadline time.Time) error
	Delete(ctx context.Context, id common.UUID) error

	ActiveQuestions(ctx context.Context, jobID common.UUID) ([]Question, error)
	// ReplaceQuestions soft-deletes the job's current active question set and
	// inserts the given one in a single transaction.
	ReplaceQuestions(ctx context.Context, jobID common.UUID, questions []Question) ([]Question, error)
}
