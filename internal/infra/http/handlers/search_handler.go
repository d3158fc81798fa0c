package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leadmapr/leadmapr/internal/entity"
	"github.com/leadmapr/leadmapr/internal/infra/http/middleware"
	"github.com/leadmapr/leadmapr/internal/usecase"
)

type SearchHandler struct {
	SearchUC *usecase.SearchLeadsUseCase
}

func NewSearchHandler(uc *usecase.SearchLeadsUseCase) *SearchHandler {
	return &SearchHandler{SearchUC: uc}
}

type searchRequest struct {
	Keyword  string               `json:"keyword"`
	Location string               `json:"location"`
	Filters  entity.FilterOptions `json:"filters"`
}

func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}

	output, err := h.SearchUC.Execute(r.Context(), usecase.SearchLeadsInput{
		UserID:   userID,
		Keyword:  req.Keyword,
		Location: req.Location,
		Filters:  req.Filters,
	})
	if err != nil {
		middleware.RecordSearch("error")
		writeError(w, err)
		return
	}

	middleware.RecordSearch("ok")
	writeJSON(w, http.StatusOK, output)
}
