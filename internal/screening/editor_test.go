package screening

import (
	"testing"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/job"
)

func TestDraftListReorder(t *testing.T) {
	list := DraftList{}.
		Add(Draft{Text: "first", Type: job.QuestionShortAnswer}).
		Add(Draft{Text: "second", Type: job.QuestionShortAnswer}).
		Add(Draft{Text: "third", Type: job.QuestionShortAnswer})

	list = list.MoveUp(2)
	if list[1].Text != "third" || list[2].Text != "second" {
		t.Fatalf("expected third to move up, got %q then %q", list[1].Text, list[2].Text)
	}
	list = list.MoveDown(0)
	if list[0].Text != "third" || list[1].Text != "first" {
		t.Fatalf("expected first to move down, got %q then %q", list[0].Text, list[1].Text)
	}

	// Boundary moves change nothing.
	before := append(DraftList(nil), list...)
	list = list.MoveUp(0).MoveDown(len(list) - 1).MoveUp(-1).MoveDown(99)
	for i := range before {
		if list[i].Text != before[i].Text {
			t.Fatalf("expected boundary moves to be no-ops, position %d changed", i)
		}
	}
}

func TestDraftListRemove(t *testing.T) {
	list := DraftList{
		{Text: "keep", Type: job.QuestionShortAnswer},
		{Text: "drop", Type: job.QuestionShortAnswer},
	}
	list = list.Remove(1)
	if len(list) != 1 || list[0].Text != "keep" {
		t.Fatalf("expected only %q to remain, got %v", "keep", list)
	}
	if got := list.Remove(5); len(got) != 1 {
		t.Fatalf("expected out-of-range remove to be a no-op, got %d drafts", len(got))
	}
}

func TestDraftListDuplicate(t *testing.T) {
	list := DraftList{
		{Text: "Preferred location?", Type: job.QuestionMultipleChoice, Options: []string{"Nairobi", "Mombasa"}},
	}
	list = list.Duplicate(0)
	if len(list) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(list))
	}
	if list[1].Text != "Preferred location? (Copy)" {
		t.Fatalf("expected copy suffix, got %q", list[1].Text)
	}
	list[1].Options[0] = "Kisumu"
	if list[0].Options[0] != "Nairobi" {
		t.Fatal("expected duplicated options to be an independent copy")
	}
}

func TestDraftListNormalize(t *testing.T) {
	list := DraftList{
		{Text: "  ", Type: job.QuestionShortAnswer},
		{Text: " Years of experience? ", Type: job.QuestionShortAnswer, Options: []string{"stale"}, FilterKind: job.FilterExperience},
		{Text: "Pick one", Type: job.QuestionMultipleChoice, Options: []string{" A ", "", "B"}},
	}
	normalized := list.Normalize()
	if len(normalized) != 2 {
		t.Fatalf("expected empty draft to be dropped, got %d", len(normalized))
	}
	if normalized[0].Text != "Years of experience?" {
		t.Fatalf("expected trimmed text, got %q", normalized[0].Text)
	}
	if normalized[0].Options != nil {
		t.Fatal("expected options to be stripped off a non-choice question")
	}
	if normalized[0].FilterKind != "" {
		t.Fatal("expected filter kind cleared when not filterable")
	}
	if len(normalized[1].Options) != 2 || normalized[1].Options[0] != "A" {
		t.Fatalf("expected blank options removed and values trimmed, got %v", normalized[1].Options)
	}
}

func TestDraftListValidate(t *testing.T) {
	list := DraftList{
		{Text: "ok", Type: job.QuestionShortAnswer},
		{Text: "bad type", Type: "essay"},
		{Text: "no options", Type: job.QuestionMultipleChoice},
		{Text: "bad kind", Type: job.QuestionShortAnswer, Filterable: true, FilterKind: "salary"},
	}
	fields := list.Validate()
	if len(fields) != 3 {
		t.Fatalf("expected 3 problems, got %v", fields)
	}
	if _, ok := fields["questions[1].type"]; !ok {
		t.Fatalf("expected type problem, got %v", fields)
	}
	if _, ok := fields["questions[2].options"]; !ok {
		t.Fatalf("expected options problem, got %v", fields)
	}
	if _, ok := fields["questions[3].filter_kind"]; !ok {
		t.Fatalf("expected filter kind problem, got %v", fields)
	}
}

func TestDraftListQuestions(t *testing.T) {
	jobID := common.NewUUID()
	list := DraftList{
		{Text: "first", Type: job.QuestionShortAnswer, Required: true},
		{Text: "second", Type: job.QuestionYesNo, Filterable: true, FilterKind: job.FilterLocation},
	}
	questions := list.Questions(jobID)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.JobID != jobID {
			t.Fatalf("expected job id on question %d", i)
		}
		if q.OrderIndex != i {
			t.Fatalf("expected order index %d, got %d", i, q.OrderIndex)
		}
	}
	if !questions[0].Required || questions[1].FilterKind != job.FilterLocation {
		t.Fatal("expected draft flags to carry over")
	}
}
