package postgres

import (
	"fmt"
	"strings"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/application"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/job"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/screening"
)

// whereBuilder accumulates AND-composed conditions with positional
// parameters. Every externally supplied value goes through bind; no filter
// value is ever concatenated into SQL text.
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) bind(value any) string {
	w.args = append(w.args, value)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *whereBuilder) add(cond string) {
	w.conds = append(w.conds, cond)
}

func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// buildApplicationWhere translates a filter into the WHERE clause shared by
// the admin listing, the count, and the CSV export. Categories compose with
// AND; the heuristic bucket patterns within a category compose with OR.
// Answer-based filters are EXISTS subqueries so the outer query never fans
// out and needs no duplicate suppression.
func buildApplicationWhere(f application.Filter, classifier screening.Classifier) (string, []any) {
	w := &whereBuilder{}

	if f.JobID != "" {
		w.add("a.job_id = " + w.bind(f.JobID))
	}
	if status := strings.ToLower(strings.TrimSpace(f.Status)); status != "" && status != application.StatusFilterAll {
		w.add("a.status = " + w.bind(string(application.NormalizeStatus(application.Status(status)))))
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		pattern := w.bind("%" + escapeLike(term) + "%")
		w.add(fmt.Sprintf(
			`(a.first_name ILIKE %[1]s ESCAPE '\' OR a.last_name ILIKE %[1]s ESCAPE '\' OR a.email ILIKE %[1]s ESCAPE '\' OR a.phone ILIKE %[1]s ESCAPE '\')`,
			pattern))
	}
	if !f.DateFrom.IsZero() {
		w.add("a.applied_at::date >= " + w.bind(f.DateFrom.Format("2006-01-02")) + "::date")
	}
	if !f.DateTo.IsZero() {
		w.add("a.applied_at::date <= " + w.bind(f.DateTo.Format("2006-01-02")) + "::date")
	}
	if bucket := strings.TrimSpace(f.Experience); bucket != "" {
		addAnswerBucket(w, classifier, job.FilterExperience, bucket)
	}
	if bucket := strings.TrimSpace(f.Education); bucket != "" {
		addAnswerBucket(w, classifier, job.FilterEducation, bucket)
	}
	if location := strings.TrimSpace(f.Location); location != "" {
		pattern := w.bind("%" + escapeLike(location) + "%")
		w.add(fmt.Sprintf(answerExistsTemplate, w.bind(string(job.FilterLocation)),
			fmt.Sprintf(`sa.answer ILIKE %s ESCAPE '\'`, pattern)))
	}

	return w.clause(), w.args
}

// answerExistsTemplate scopes an answer condition to the active filterable
// questions of the application's own job with the given filter kind. Retired
// questions are excluded so the filter sees the same set the editor and the
// intake form do. A job with no such question simply yields no rows for that
// branch.
const answerExistsTemplate = `EXISTS (SELECT 1 FROM screening_answers sa
		JOIN screening_questions q ON q.id = sa.question_id
		WHERE sa.application_id = a.id AND q.job_id = a.job_id AND q.deleted_at IS NULL AND q.filterable AND q.filter_kind = %s AND (%s))`

func addAnswerBucket(w *whereBuilder, classifier screening.Classifier, kind job.FilterKind, bucket string) {
	patterns, ok := classifier.Patterns(kind, bucket)
	if !ok || len(patterns) == 0 {
		// An unknown bucket matches nothing rather than everything.
		w.add("FALSE")
		return
	}
	matches := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		matches = append(matches, "sa.answer ~* "+w.bind(pattern))
	}
	w.add(fmt.Sprintf(answerExistsTemplate, w.bind(string(kind)), strings.Join(matches, " OR ")))
}

// escapeLike neutralizes LIKE metacharacters in a user-supplied search term.
func escapeLike(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, `%`, `\%`)
	return strings.ReplaceAll(term, `_`, `\_`)
}
