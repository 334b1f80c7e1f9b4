package handlers

import (
	"net/http"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/app"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/http/middleware"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/http/response"
)

type NotifyHandler struct {
	notifications *app.NotificationService
}

func NewNotifyHandler(notifications *app.NotificationService) *NotifyHandler {
	return &NotifyHandler{notifications: notifications}
}

type notifyRequest struct {
	CandidateIDs []string `json:"candidate_ids"`
	Subject      string   `json:"subject"`
	Message      string   `json:"message"`
}

// Send runs the bulk shortlist mailing for one job. The response is always
// 200 when the batch ran: individual failures ride along in the report.
func (h *NotifyHandler) Send(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req notifyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	candidateIDs := make([]common.UUID, 0, len(req.CandidateIDs))
	for _, raw := range req.CandidateIDs {
		id, err := common.ParseUUID(raw)
		if err != nil {
			response.Error(w, common.NewValidationError("invalid selection", map[string]string{"candidate_ids": "contains an invalid id"}))
			return
		}
		candidateIDs = append(candidateIDs, id)
	}
	report, err := h.notifications.SendShortlistEmails(r.Context(), jobID, candidateIDs, req.Subject, req.Message, adminID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, report)
}
