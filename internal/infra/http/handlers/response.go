package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leadmapr/leadmapr/internal/usecase"
)

type errorResponse struct {
	Error string        `json:"error"`
	Code  string        `json:"code,omitempty"`
	Usage *usageDetails `json:"usage,omitempty"`
}

type usageDetails struct {
	Used      int `json:"used"`
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps core errors to HTTP statuses. Only the stable code and
// the human message go out; never internals.
func writeError(w http.ResponseWriter, err error) {
	if qe, ok := err.(*usecase.QuotaExceededError); ok {
		writeJSON(w, http.StatusForbidden, errorResponse{
			Error: qe.Error(),
			Code:  usecase.CodeQuotaExceeded,
			Usage: &usageDetails{Used: qe.Used, Limit: qe.Limit, Remaining: qe.Remaining},
		})
		return
	}

	if de, ok := err.(*usecase.DomainError); ok {
		writeJSON(w, statusForCode(de.Code), errorResponse{Error: de.Message, Code: de.Code})
		return
	}

	if te, ok := err.(*usecase.TechnicalError); ok {
		writeJSON(w, statusForCode(te.Code), errorResponse{Error: te.Message, Code: te.Code})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func statusForCode(code string) int {
	switch code {
	case usecase.CodeNotFound:
		return http.StatusNotFound
	case usecase.CodeUnauthorized:
		return http.StatusUnauthorized
	case usecase.CodeInvalidArgument:
		return http.StatusBadRequest
	case usecase.CodeQuotaExceeded:
		return http.StatusForbidden
	case usecase.CodeUpstreamFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
