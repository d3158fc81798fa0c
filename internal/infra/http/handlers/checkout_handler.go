package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leadmapr/leadmapr/internal/entity"
	"github.com/leadmapr/leadmapr/internal/infra/http/middleware"
	"github.com/leadmapr/leadmapr/internal/usecase"
)

type CheckoutHandler struct {
	CheckoutUC *usecase.CreateCheckoutUseCase
}

func NewCheckoutHandler(uc *usecase.CreateCheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{CheckoutUC: uc}
}

type checkoutRequest struct {
	Plan string `json:"plan"`
}

func (h *CheckoutHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
		return
	}

	output, err := h.CheckoutUC.Execute(r.Context(), usecase.CreateCheckoutInput{
		UserID: userID,
		Plan:   entity.SubscriptionTier(req.Plan),
	})
	if err != nil {
		if usecase.IsTechnicalError(err) {
			middleware.RecordIntegrationError("dodo")
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
