package handlers

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/app"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/http/middleware"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/http/response"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/repository/redisstore"
)

const answerFieldPrefix = "screening_"

type ApplicationHandler struct {
	applications *app.ApplicationService
	drafts       *redisstore.DraftStore
	limiter      middleware.Limiter
}

func NewApplicationHandler(applications *app.ApplicationService, drafts *redisstore.DraftStore, limiter middleware.Limiter) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, drafts: drafts, limiter: limiter}
}

// Submit handles the final intake POST: a multipart form with the personal
// fields, the resume file, and one screening_<question_id> field per
// answered question.
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil {
		key := "apply:ip:" + middleware.ClientIP(r)
		if !h.limiter.Allow(key, 5, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "too many submissions, try again shortly", nil))
			return
		}
	}
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		response.Error(w, common.NewError(common.CodeValidation, "invalid multipart form", err))
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	jobID, err := common.ParseUUID(r.FormValue("job_id"))
	if err != nil {
		response.Error(w, common.NewValidationError("invalid application", map[string]string{"job_id": "job_id is required"}))
		return
	}

	submission := app.Submission{
		JobID:          jobID,
		FirstName:      r.FormValue("first_name"),
		LastName:       r.FormValue("last_name"),
		Email:          r.FormValue("email"),
		Phone:          r.FormValue("phone"),
		Address:        r.FormValue("address"),
		CoverLetter:    r.FormValue("cover_letter"),
		PortfolioURL:   r.FormValue("portfolio_url"),
		LinkedInURL:    r.FormValue("linkedin_url"),
		ReferralSource: r.FormValue("referral_source"),
		AdditionalInfo: r.FormValue("additional_info"),
		Answers:        answersFromForm(r),
	}

	file, header, err := r.FormFile("resume")
	if err == nil {
		defer file.Close()
		submission.Resume = file
		submission.ResumeName = header.Filename
	} else if err != http.ErrMissingFile {
		response.Error(w, common.NewError(common.CodeValidation, "invalid resume upload", err))
		return
	}

	created, err := h.applications.Submit(r.Context(), submission)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func answersFromForm(r *http.Request) map[common.UUID]string {
	answers := make(map[common.UUID]string)
	if r.MultipartForm == nil {
		return answers
	}
	for key, values := range r.MultipartForm.Value {
		if !strings.HasPrefix(key, answerFieldPrefix) || len(values) == 0 {
			continue
		}
		questionID, err := common.ParseUUID(strings.TrimPrefix(key, answerFieldPrefix))
		if err != nil {
			continue
		}
		answers[questionID] = values[0]
	}
	return answers
}

// SaveDraft stores the browser's in-progress form state. The draft is
// advisory only: it is never read back during submit and expires on its own.
func (h *ApplicationHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	draftID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		response.Error(w, common.NewError(common.CodeValidation, "invalid draft payload", err))
		return
	}
	if len(payload) == 0 {
		response.Error(w, common.NewValidationError("invalid draft", map[string]string{"draft": "draft payload is empty"}))
		return
	}
	if err := h.drafts.Save(r.Context(), draftID.String(), payload); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

func (h *ApplicationHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	draftID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	payload, err := h.drafts.Get(r.Context(), draftID.String())
	if err != nil {
		response.Error(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
