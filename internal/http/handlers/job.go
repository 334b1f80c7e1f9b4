package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/app"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/job"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/http/response"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/screening"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// ListPublic serves the applicant-facing job board: open jobs that are still
// accepting applications, optionally narrowed by search, location, and type.
func (h *JobHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	items, err := h.jobs.ListPublic(r.Context(), job.PublicFilter{
		Search:   query.Get("search"),
		Location: query.Get("location"),
		Type:     query.Get("type"),
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *JobHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.jobs.GetPublic(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

type jobRequest struct {
	Title            string               `json:"title"`
	Company          string               `json:"company"`
	Location         string               `json:"location"`
	Type             string               `json:"type"`
	SalaryMin        int64                `json:"salary_min"`
	SalaryMax        int64                `json:"salary_max"`
	Description      string               `json:"description"`
	Requirements     []string             `json:"requirements"`
	Responsibilities []string             `json:"responsibilities"`
	Benefits         []string             `json:"benefits"`
	Deadline         string               `json:"deadline"`
	Status           string               `json:"status"`
	Questions        screening.DraftList  `json:"questions"`
}

func (req jobRequest) toJob() (job.Job, error) {
	var deadline time.Time
	if strings.TrimSpace(req.Deadline) != "" {
		parsed, err := time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			return job.Job{}, common.NewValidationError("invalid job", map[string]string{"deadline": "deadline must be a date in YYYY-MM-DD form"})
		}
		deadline = parsed
	}
	return job.Job{
		Title:            req.Title,
		Company:          req.Company,
		Location:         req.Location,
		Type:             req.Type,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Benefits:         req.Benefits,
		Deadline:         deadline,
		Status:           job.Status(strings.ToLower(strings.TrimSpace(req.Status))),
	}, nil
}

func (h *JobHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	items, err := h.jobs.ListAll(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	item, err := req.toJob()
	if err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), item, req.Questions)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.jobs.Get(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	item, err := req.toJob()
	if err != nil {
		response.Error(w, err)
		return
	}
	item.ID = jobID
	updated, err := h.jobs.Update(r.Context(), item)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), jobID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

type jobStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus sets the status when one is given and toggles open/closed
// when the body is empty, which is what the list-view toggle button sends.
func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		toggled, err := h.jobs.ToggleStatus(r.Context(), jobID)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, toggled)
		return
	}
	if err := h.jobs.UpdateStatus(r.Context(), jobID, job.Status(req.Status)); err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.jobs.Get(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

type extendDeadlineRequest struct {
	Days int `json:"days"`
}

func (h *JobHandler) ExtendDeadline(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req extendDeadlineRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.jobs.ExtendDeadline(r.Context(), jobID, req.Days)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
