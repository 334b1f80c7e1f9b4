package postgres

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/application"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/screening"
)

func TestBuildApplicationWhere_Empty(t *testing.T) {
	clause, args := buildApplicationWhere(application.Filter{}, screening.NewPatternClassifier())
	if clause != "" {
		t.Fatalf("expected empty clause, got %q", clause)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestBuildApplicationWhere_StatusAllDisablesTheFilter(t *testing.T) {
	classifier := screening.NewPatternClassifier()
	for _, status := range []string{"", "all", "ALL", " all "} {
		clause, args := buildApplicationWhere(application.Filter{Status: status}, classifier)
		if clause != "" || len(args) != 0 {
			t.Fatalf("expected status %q to disable filtering, got %q %v", status, clause, args)
		}
	}
}

func TestBuildApplicationWhere_StatusIsNormalized(t *testing.T) {
	clause, args := buildApplicationWhere(application.Filter{Status: "New"}, screening.NewPatternClassifier())
	if !strings.Contains(clause, "a.status = $1") {
		t.Fatalf("expected status condition, got %q", clause)
	}
	if len(args) != 1 || args[0] != "pending" {
		t.Fatalf("expected normalized status bound, got %v", args)
	}
}

func TestBuildApplicationWhere_SearchIsBoundNotConcatenated(t *testing.T) {
	term := `ja%_ne'; DROP TABLE applications;--`
	clause, args := buildApplicationWhere(application.Filter{Search: term}, screening.NewPatternClassifier())
	if strings.Contains(clause, "DROP TABLE") {
		t.Fatalf("search term leaked into SQL: %q", clause)
	}
	if len(args) != 1 {
		t.Fatalf("expected one bound pattern, got %v", args)
	}
	bound, ok := args[0].(string)
	if !ok {
		t.Fatalf("expected string arg, got %T", args[0])
	}
	if !strings.Contains(bound, `\%`) || !strings.Contains(bound, `\_`) {
		t.Fatalf("expected LIKE metacharacters escaped, got %q", bound)
	}
	// One placeholder serves all four columns.
	if got := strings.Count(clause, "$1"); got != 4 {
		t.Fatalf("expected $1 reused across 4 columns, got %d", got)
	}
	for _, column := range []string{"a.first_name", "a.last_name", "a.email", "a.phone"} {
		if !strings.Contains(clause, column) {
			t.Fatalf("expected %s in clause %q", column, clause)
		}
	}
}

func TestBuildApplicationWhere_DateBoundsCompareDates(t *testing.T) {
	from := time.Date(2026, 1, 10, 23, 59, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 1, 0, time.UTC)
	clause, args := buildApplicationWhere(application.Filter{DateFrom: from, DateTo: to}, screening.NewPatternClassifier())
	if !strings.Contains(clause, "a.applied_at::date >= $1::date") {
		t.Fatalf("expected date-typed lower bound, got %q", clause)
	}
	if !strings.Contains(clause, "a.applied_at::date <= $2::date") {
		t.Fatalf("expected date-typed upper bound, got %q", clause)
	}
	if args[0] != "2026-01-10" || args[1] != "2026-02-01" {
		t.Fatalf("expected plain dates bound, got %v", args)
	}
}

func TestBuildApplicationWhere_ExperienceBucket(t *testing.T) {
	classifier := screening.NewPatternClassifier()
	clause, args := buildApplicationWhere(application.Filter{Experience: screening.ExperienceSenior}, classifier)
	if !strings.Contains(clause, "EXISTS (SELECT 1 FROM screening_answers sa") {
		t.Fatalf("expected EXISTS subquery, got %q", clause)
	}
	if !strings.Contains(clause, "q.job_id = a.job_id") {
		t.Fatalf("expected subquery scoped to the application's job, got %q", clause)
	}
	patterns, _ := classifier.Patterns("experience", screening.ExperienceSenior)
	// Every bucket pattern plus the kind itself is bound.
	if len(args) != len(patterns)+1 {
		t.Fatalf("expected %d args, got %d", len(patterns)+1, len(args))
	}
	if got := strings.Count(clause, "sa.answer ~*"); got != len(patterns) {
		t.Fatalf("expected %d pattern matches ORed, got %d", len(patterns), got)
	}
	kindBound := false
	for _, arg := range args {
		if arg == "experience" {
			kindBound = true
		}
	}
	if !kindBound {
		t.Fatalf("expected filter kind bound, got %v", args)
	}
}

func TestBuildApplicationWhere_AnswerFiltersIgnoreRetiredQuestions(t *testing.T) {
	classifier := screening.NewPatternClassifier()
	filters := map[string]application.Filter{
		"experience": {Experience: screening.ExperienceSenior},
		"education":  {Education: screening.EducationBachelor},
		"location":   {Location: "Nairobi"},
	}
	for name, f := range filters {
		clause, _ := buildApplicationWhere(f, classifier)
		if !strings.Contains(clause, "q.deleted_at IS NULL") {
			t.Fatalf("%s filter must only consider active questions, got %q", name, clause)
		}
	}
}

func TestBuildApplicationWhere_UnknownBucketMatchesNothing(t *testing.T) {
	clause, args := buildApplicationWhere(application.Filter{Education: "primary"}, screening.NewPatternClassifier())
	if !strings.Contains(clause, "FALSE") {
		t.Fatalf("expected FALSE condition for unknown bucket, got %q", clause)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestBuildApplicationWhere_CategoriesComposeWithAND(t *testing.T) {
	jobID := common.NewUUID()
	clause, args := buildApplicationWhere(application.Filter{
		JobID:      jobID,
		Status:     "shortlisted",
		Search:     "jane",
		Experience: screening.ExperienceMid,
		Location:   "Nairobi",
	}, screening.NewPatternClassifier())
	if got := strings.Count(clause, " AND EXISTS"); got != 2 {
		t.Fatalf("expected two answer subqueries joined by AND, got %d in %q", got, clause)
	}
	if !strings.HasPrefix(clause, " WHERE ") {
		t.Fatalf("expected WHERE prefix, got %q", clause)
	}
	if args[0] != jobID {
		t.Fatalf("expected job id bound first, got %v", args[0])
	}
	// Placeholders must line up with the args slice.
	for i := range args {
		placeholder := fmt.Sprintf("$%d", i+1)
		if !strings.Contains(clause, placeholder) {
			t.Fatalf("expected %s in clause %q", placeholder, clause)
		}
	}
}
