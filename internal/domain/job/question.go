package job

import (
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
)

type QuestionType string

const (
	QuestionShortAnswer    QuestionType = "short_answer"
	QuestionLongAnswer     QuestionType = "long_answer"
	QuestionYesNo          QuestionType = "yes_no"
	QuestionMultipleChoice QuestionType = "multiple_choice"
)

func ValidQuestionType(t QuestionType) bool {
	switch t {
	case QuestionShortAnswer, QuestionLongAnswer, QuestionYesNo, QuestionMultipleChoice:
		return true
	default:
		return false
	}
}

type FilterKind string

const (
	FilterExperience FilterKind = "experience"
	FilterEducation  FilterKind = "education"
	FilterLocation   FilterKind = "location"
)

// Question is one screening question owned by a job. Questions are ordered by
// OrderIndex and soft-deleted on replace so historical answers stay readable.
type Question struct {
	ID         common.UUID  `json:"id"`
	JobID      common.UUID  `json:"job_id"`
	Text       string       `json:"text"`
	Type       QuestionType `json:"type"`
	Options    []string     `json:"options,omitempty"`
	Required   bool         `json:"required"`
	Filterable bool         `json:"filterable"`
	FilterKind FilterKind   `json:"filter_kind,omitempty"`
	OrderIndex int          `json:"order_index"`
	DeletedAt  *time.Time   `json:"-"`
}
