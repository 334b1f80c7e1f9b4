package application

import (
	"context"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
)

type Repository interface {
	// Create inserts the application and its answers in one transaction.
	Create(ctx context.Context, app Application, answers []Answer) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Row, error)
	Answers(ctx context.Context, applicationID common.UUID) ([]AnswerDetail, error)
	List(ctx context.Context, f Filter) ([]Row, error)
	Count(ctx context.Context, f Filter) (int, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Row, error)
	// ListShortlisted returns the applications with status shortlisted for the
	// job, restricted to the given ids when ids is non-empty.
	ListShortlisted(ctx context.Context, jobID common.UUID, ids []common.UUID) ([]Row, error)
	CountByJob(ctx context.Context, jobID common.UUID) (int, error)
}
