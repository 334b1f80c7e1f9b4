package screening

import "github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/job"

// Templates are the stock questions an admin can add with one click. The
// filterable ones are pre-wired to the matching filter kind so the
// applications filter works without extra setup.
func Templates() map[string]Draft {
	return map[string]Draft{
		"experience": {
			Text:       "How many years of relevant work experience do you have?",
			Type:       job.QuestionShortAnswer,
			Required:   true,
			Filterable: true,
			FilterKind: job.FilterExperience,
		},
		"education": {
			Text:       "What is your highest level of education?",
			Type:       job.QuestionShortAnswer,
			Required:   true,
			Filterable: true,
			FilterKind: job.FilterEducation,
		},
		"location": {
			Text:       "Where are you currently based?",
			Type:       job.QuestionShortAnswer,
			Required:   true,
			Filterable: true,
			FilterKind: job.FilterLocation,
		},
		"availability": {
			Text:     "When would you be available to start?",
			Type:     job.QuestionShortAnswer,
			Required: false,
		},
		"relocation": {
			Text:     "Are you willing to relocate for this position?",
			Type:     job.QuestionYesNo,
			Required: false,
		},
	}
}
