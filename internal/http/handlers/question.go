package handlers

import (
	"net/http"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/app"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/http/response"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/screening"
)

type QuestionHandler struct {
	jobs *app.JobService
}

func NewQuestionHandler(jobs *app.JobService) *QuestionHandler {
	return &QuestionHandler{jobs: jobs}
}

// List returns the job's active question set in order, the same shape the
// edit form round-trips back through Replace.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.jobs.Questions(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

type replaceQuestionsRequest struct {
	Questions screening.DraftList `json:"questions"`
}

// Replace installs the submitted draft list as the job's complete question
// set. This is a destructive replace of the active set; the previous
// questions are retired, not erased.
func (h *QuestionHandler) Replace(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req replaceQuestionsRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.jobs.ReplaceQuestions(r.Context(), jobID, req.Questions)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

// Preview renders the applicant-facing form for an unsaved draft list.
func (h *QuestionHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req replaceQuestionsRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, h.jobs.PreviewQuestions(req.Questions))
}

// Templates lists the stock questions the editor offers.
func (h *QuestionHandler) Templates(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, screening.Templates())
}
