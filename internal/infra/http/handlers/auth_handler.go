package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/leadmapr/leadmapr/internal/usecase"
)

type AuthHandler struct {
	SignupUC    *usecase.SignupUseCase
	LoginUC     *usecase.LoginUseCase
	rateLimiter *RateLimiter
}

func NewAuthHandler(signupUC *usecase.SignupUseCase, loginUC *usecase.LoginUseCase) *AuthHandler {
	return &AuthHandler{
		SignupUC:    signupUC,
		LoginUC:     loginUC,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "Too many requests. Please try again later."})
		return
	}

	var input usecase.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
		return
	}

	output, err := h.SignupUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
		return
	}

	output, err := h.LoginUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
