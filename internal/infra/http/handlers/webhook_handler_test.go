package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadmapr/leadmapr/internal/entity"
	"github.com/leadmapr/leadmapr/internal/usecase"
)

const webhookSecret = "whsec_test"

func signPayload(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func webhookBody(eventType string) string {
	return `{"type":"` + eventType + `","data":{"id":"sub_1","product_id":"prod_pro","customer":{"id":"cus_1","email":"jo@example.com"}}}`
}

func newWebhookHandler(repo *stubUserRepo, secret string) *WebhookHandler {
	uc := usecase.NewProcessWebhookUseCase(repo, map[string]entity.SubscriptionTier{
		"prod_pro": entity.TierPro,
	})
	return NewWebhookHandler(uc, secret)
}

func TestWebhookHandlerValidSignature(t *testing.T) {
	repo := &stubUserRepo{}
	handler := newWebhookHandler(repo, webhookSecret)

	body := webhookBody("subscription.active")
	req := httptest.NewRequest(http.MethodPost, "/webhook/dodo", strings.NewReader(body))
	req.Header.Set("x-dodo-signature", signPayload(body, webhookSecret))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp["received"])
	assert.Equal(t, []string{"jo@example.com:pro"}, repo.activations)
}

func TestWebhookHandlerWrongSecret(t *testing.T) {
	repo := &stubUserRepo{}
	handler := newWebhookHandler(repo, webhookSecret)

	body := webhookBody("subscription.active")
	req := httptest.NewRequest(http.MethodPost, "/webhook/dodo", strings.NewReader(body))
	req.Header.Set("x-dodo-signature", signPayload(body, "whsec_other"))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_signature")
	assert.Empty(t, repo.activations)
}

func TestWebhookHandlerMissingSignature(t *testing.T) {
	repo := &stubUserRepo{}
	handler := newWebhookHandler(repo, webhookSecret)

	req := httptest.NewRequest(http.MethodPost, "/webhook/dodo", strings.NewReader(webhookBody("subscription.active")))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, repo.activations)
}

func TestWebhookHandlerTamperedBody(t *testing.T) {
	repo := &stubUserRepo{}
	handler := newWebhookHandler(repo, webhookSecret)

	signed := webhookBody("subscription.active")
	tampered := strings.Replace(signed, "jo@example.com", "evil@example.com", 1)
	req := httptest.NewRequest(http.MethodPost, "/webhook/dodo", strings.NewReader(tampered))
	req.Header.Set("x-dodo-signature", signPayload(signed, webhookSecret))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, repo.activations)
}

func TestWebhookHandlerNonHexSignature(t *testing.T) {
	repo := &stubUserRepo{}
	handler := newWebhookHandler(repo, webhookSecret)

	body := webhookBody("subscription.active")
	req := httptest.NewRequest(http.MethodPost, "/webhook/dodo", strings.NewReader(body))
	req.Header.Set("x-dodo-signature", "not-hex!!")
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebhookHandlerNoSecretSkipsVerification(t *testing.T) {
	repo := &stubUserRepo{}
	handler := newWebhookHandler(repo, "")

	req := httptest.NewRequest(http.MethodPost, "/webhook/dodo", strings.NewReader(webhookBody("subscription.cancelled")))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"jo@example.com"}, repo.downgrades)
}

func TestWebhookHandlerBadJSON(t *testing.T) {
	repo := &stubUserRepo{}
	handler := newWebhookHandler(repo, webhookSecret)

	body := `{"type":`
	req := httptest.NewRequest(http.MethodPost, "/webhook/dodo", strings.NewReader(body))
	req.Header.Set("x-dodo-signature", signPayload(body, webhookSecret))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
