// Package response maps service results and coded errors onto HTTP.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
)

// ErrorCollector counts 5xx responses; wired to the metrics collector at
// startup.
type ErrorCollector interface {
	IncErrors()
}

var errorCollector ErrorCollector

func SetErrorCollector(collector ErrorCollector) {
	errorCollector = collector
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

type errorBody struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Error writes the coded error as JSON. The wrapped cause never reaches the
// client; unknown errors collapse to a generic internal message.
func Error(w http.ResponseWriter, err error) {
	code := common.CodeOf(err)
	status := statusFor(code)
	body := errorBody{Error: string(code), Message: "something went wrong, try again"}
	var coded *common.Error
	if errors.As(err, &coded) && code != common.CodeInternal {
		body.Message = coded.Message
		body.Fields = coded.Fields
	}
	if status >= 500 && errorCollector != nil {
		errorCollector.IncErrors()
	}
	JSON(w, status, body)
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeConflict:
		return http.StatusConflict
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
