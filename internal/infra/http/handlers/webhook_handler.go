package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/leadmapr/leadmapr/internal/usecase"
)

const signatureHeader = "x-dodo-signature"

// WebhookHandler receives Dodo subscription events. Authenticity comes
// from an HMAC-SHA256 over the raw body; the event itself is then handed
// to the use case.
type WebhookHandler struct {
	WebhookUC *usecase.ProcessWebhookUseCase
	Secret    string
}

func NewWebhookHandler(uc *usecase.ProcessWebhookUseCase, secret string) *WebhookHandler {
	return &WebhookHandler{WebhookUC: uc, Secret: secret}
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Failed to read body"})
		return
	}

	if h.Secret != "" {
		signature := r.Header.Get(signatureHeader)
		if !verifySignature(payload, signature, h.Secret) {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid_signature"})
			return
		}
	}

	var event usecase.WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Bad JSON"})
		return
	}

	if err := h.WebhookUC.Execute(r.Context(), event); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}

// verifySignature compares the hex HMAC-SHA256 of the payload in constant
// time. hmac.Equal over the decoded MACs keeps timing out of the equation.
func verifySignature(payload []byte, signature, secret string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := mac.Sum(nil)

	received, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	return hmac.Equal(received, expected)
}
