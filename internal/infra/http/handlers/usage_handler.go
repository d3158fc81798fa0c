package handlers

import (
	"net/http"

	"github.com/leadmapr/leadmapr/internal/infra/http/middleware"
	"github.com/leadmapr/leadmapr/internal/usecase"
)

type UsageHandler struct {
	CheckUsageUC *usecase.CheckUsageUseCase
}

func NewUsageHandler(uc *usecase.CheckUsageUseCase) *UsageHandler {
	return &UsageHandler{CheckUsageUC: uc}
}

type usageResponse struct {
	Tier      string `json:"tier"`
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
}

func (h *UsageHandler) HandleGetUsage(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}

	usage, err := h.CheckUsageUC.Execute(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, usageResponse{
		Tier:      string(usage.Tier),
		Used:      usage.Used,
		Limit:     usage.Limit,
		Remaining: usage.Remaining,
	})
}
