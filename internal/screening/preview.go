package screening

import "github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/job"

// PreviewField is one entry of the applicant-facing form rendered from a
// draft list, without touching stored data.
type PreviewField struct {
	Position int      `json:"position"`
	Label    string   `json:"label"`
	Input    string   `json:"input"`
	Choices  []string `json:"choices,omitempty"`
	Required bool     `json:"required"`
}

// Preview renders the form an applicant would see for the current drafts.
// The list is normalized first so the preview matches what a save would
// actually persist.
func Preview(l DraftList) []PreviewField {
	normalized := l.Normalize()
	fields := make([]PreviewField, 0, len(normalized))
	for i, d := range normalized {
		fields = append(fields, PreviewField{
			Position: i,
			Label:    d.Text,
			Input:    inputKind(d.Type),
			Choices:  choices(d),
			Required: d.Required,
		})
	}
	return fields
}

func inputKind(t job.QuestionType) string {
	switch t {
	case job.QuestionLongAnswer:
		return "textarea"
	case job.QuestionYesNo:
		return "radio"
	case job.QuestionMultipleChoice:
		return "select"
	default:
		return "text"
	}
}

func choices(d Draft) []string {
	switch d.Type {
	case job.QuestionYesNo:
		return []string{"Yes", "No"}
	case job.QuestionMultipleChoice:
		return d.Options
	default:
		return nil
	}
}
