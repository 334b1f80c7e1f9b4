package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/app"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/application"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/http/response"
)

type AdminApplicationHandler struct {
	applications  *app.ApplicationService
	notifications *app.NotificationService
}

func NewAdminApplicationHandler(applications *app.ApplicationService, notifications *app.NotificationService) *AdminApplicationHandler {
	return &AdminApplicationHandler{applications: applications, notifications: notifications}
}

// filterFromQuery reads the admin filter form. Every parameter is optional;
// unparseable dates are a validation error rather than silently ignored.
func filterFromQuery(r *http.Request) (application.Filter, error) {
	query := r.URL.Query()
	f := application.Filter{
		Status:     query.Get("status"),
		Search:     query.Get("search"),
		Experience: query.Get("experience"),
		Education:  query.Get("education"),
		Location:   query.Get("location"),
	}
	if value := strings.TrimSpace(query.Get("job_id")); value != "" {
		jobID, err := common.ParseUUID(value)
		if err != nil {
			return f, common.NewValidationError("invalid filter", map[string]string{"job_id": "invalid job id"})
		}
		f.JobID = jobID
	}
	if value := strings.TrimSpace(query.Get("date_from")); value != "" {
		parsed, err := time.Parse("2006-01-02", value)
		if err != nil {
			return f, common.NewValidationError("invalid filter", map[string]string{"date_from": "must be a date in YYYY-MM-DD form"})
		}
		f.DateFrom = parsed
	}
	if value := strings.TrimSpace(query.Get("date_to")); value != "" {
		parsed, err := time.Parse("2006-01-02", value)
		if err != nil {
			return f, common.NewValidationError("invalid filter", map[string]string{"date_to": "must be a date in YYYY-MM-DD form"})
		}
		f.DateTo = parsed
	}
	return f, nil
}

type listApplicationsResponse struct {
	Total int               `json:"total"`
	Items []application.Row `json:"items"`
}

func (h *AdminApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.applications.List(r.Context(), f)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, listApplicationsResponse{Total: len(items), Items: items})
}

// Export streams the same filtered set as List in the fixed CSV layout.
func (h *AdminApplicationHandler) Export(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	rows, err := h.applications.List(r.Context(), f)
	if err != nil {
		response.Error(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.applications.ExportFilename()))
	// The response is committed on the first write; a failure past this
	// point only shows up as a truncated download.
	_ = h.applications.WriteCSV(w, rows)
}

func (h *AdminApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	applicationID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.applications.Get(r.Context(), applicationID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

type applicationStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	applicationID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req applicationStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		response.Error(w, common.NewValidationError("invalid status", map[string]string{"status": "status is required"}))
		return
	}
	updated, err := h.applications.UpdateStatus(r.Context(), applicationID, application.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *AdminApplicationHandler) EmailHistory(w http.ResponseWriter, r *http.Request) {
	applicationID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.notifications.EmailHistory(r.Context(), applicationID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
