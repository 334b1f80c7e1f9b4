package screening

import (
	"fmt"
	"strings"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/job"
)

// Draft is one screening question as edited, before it is persisted. Drafts
// are identified by position only; order indexes are assigned on Normalize.
type Draft struct {
	Text       string           `json:"text"`
	Type       job.QuestionType `json:"type"`
	Options    []string         `json:"options,omitempty"`
	Required   bool             `json:"required"`
	Filterable bool             `json:"filterable"`
	FilterKind job.FilterKind   `json:"filter_kind,omitempty"`
}

// DraftList is the ordered working set of an editing session.
type DraftList []Draft

func (l DraftList) Add(d Draft) DraftList {
	return append(l, d)
}

func (l DraftList) Remove(pos int) DraftList {
	if pos < 0 || pos >= len(l) {
		return l
	}
	return append(l[:pos:pos], l[pos+1:]...)
}

// MoveUp swaps the draft with its predecessor; a no-op at the top.
func (l DraftList) MoveUp(pos int) DraftList {
	if pos <= 0 || pos >= len(l) {
		return l
	}
	l[pos-1], l[pos] = l[pos], l[pos-1]
	return l
}

// MoveDown swaps the draft with its successor; a no-op at the bottom.
func (l DraftList) MoveDown(pos int) DraftList {
	if pos < 0 || pos >= len(l)-1 {
		return l
	}
	l[pos], l[pos+1] = l[pos+1], l[pos]
	return l
}

// Duplicate clones the draft at pos with " (Copy)" appended to its text and
// places the clone at the end of the list.
func (l DraftList) Duplicate(pos int) DraftList {
	if pos < 0 || pos >= len(l) {
		return l
	}
	clone := l[pos]
	clone.Options = append([]string(nil), l[pos].Options...)
	clone.Text = l[pos].Text + " (Copy)"
	return append(l, clone)
}

// Normalize prepares the list for persistence: drafts with empty text are
// dropped, option lists are kept only on multiple-choice questions with
// blank entries removed, and the filter kind is cleared on drafts that are
// not flagged filterable.
func (l DraftList) Normalize() DraftList {
	normalized := make(DraftList, 0, len(l))
	for _, d := range l {
		d.Text = strings.TrimSpace(d.Text)
		if d.Text == "" {
			continue
		}
		if d.Type == job.QuestionMultipleChoice {
			options := make([]string, 0, len(d.Options))
			for _, opt := range d.Options {
				if trimmed := strings.TrimSpace(opt); trimmed != "" {
					options = append(options, trimmed)
				}
			}
			d.Options = options
		} else {
			d.Options = nil
		}
		if !d.Filterable {
			d.FilterKind = ""
		}
		normalized = append(normalized, d)
	}
	return normalized
}

// Validate reports per-draft problems keyed by "questions[i].field". It
// assumes a normalized list.
func (l DraftList) Validate() map[string]string {
	fields := map[string]string{}
	for i, d := range l {
		key := func(field string) string {
			return fmt.Sprintf("questions[%d].%s", i, field)
		}
		if !job.ValidQuestionType(d.Type) {
			fields[key("type")] = "type must be short_answer, long_answer, yes_no, or multiple_choice"
		}
		if d.Type == job.QuestionMultipleChoice && len(d.Options) == 0 {
			fields[key("options")] = "a multiple choice question needs at least one option"
		}
		if d.Filterable {
			switch d.FilterKind {
			case job.FilterExperience, job.FilterEducation, job.FilterLocation:
			default:
				fields[key("filter_kind")] = "filterable questions need a filter kind of experience, education, or location"
			}
		}
	}
	return fields
}

// Questions converts a normalized, valid list into persistable questions for
// the given job, with order indexes 0..n-1.
func (l DraftList) Questions(jobID common.UUID) []job.Question {
	questions := make([]job.Question, 0, len(l))
	for i, d := range l {
		questions = append(questions, job.Question{
			JobID:      jobID,
			Text:       d.Text,
			Type:       d.Type,
			Options:    d.Options,
			Required:   d.Required,
			Filterable: d.Filterable,
			FilterKind: d.FilterKind,
			OrderIndex: i,
		})
	}
	return questions
}
