package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leadmapr/leadmapr/internal/infra/http/middleware"
	"github.com/leadmapr/leadmapr/internal/usecase"
)

type EnrichHandler struct {
	EnrichUC *usecase.EnrichLeadUseCase
}

func NewEnrichHandler(uc *usecase.EnrichLeadUseCase) *EnrichHandler {
	return &EnrichHandler{EnrichUC: uc}
}

func (h *EnrichHandler) HandleEnrich(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}

	var input usecase.EnrichLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}
	if input.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Lead name is required"})
		return
	}

	output, err := h.EnrichUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
