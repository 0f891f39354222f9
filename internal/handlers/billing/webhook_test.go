package billing

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventosDePagamento(t *testing.T) {
	assert.True(t, isPaidEvent("payment.paid"))
	assert.True(t, isPaidEvent("invoice.paid"))
	assert.True(t, isPaidEvent("subscription.activated"))
	assert.True(t, isPaidEvent("  Payment.Paid  "))

	assert.False(t, isPaidEvent("payment.refused"))
	assert.False(t, isPaidEvent("subscription.canceled"))
	assert.False(t, isPaidEvent(""))
}

// A Cakto manda customer, status, event e product na raiz do corpo.
func TestParseWebhookFormatoDaCakto(t *testing.T) {
	body := []byte(`{
		"event": "payment.paid",
		"status": "approved",
		"customer": {"email": "Dono@Loja.com"},
		"product": {"name": "Plano Anual"}
	}`)

	email, event, err := parseWebhook(body)

	require.NoError(t, err)
	assert.Equal(t, "dono@loja.com", email)
	assert.Equal(t, "payment.paid", event)
}

func TestParseWebhookSemEmail(t *testing.T) {
	body := []byte(`{"event":"payment.paid","customer":{}}`)

	email, _, err := parseWebhook(body)

	require.NoError(t, err)
	assert.Empty(t, email)
}

func TestParseWebhookPayloadQuebrado(t *testing.T) {
	_, _, err := parseWebhook([]byte(`{nao é json`))
	assert.Error(t, err)
}

func postWebhook(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/api/webhooks/cakto", CaktoWebhook)

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/cakto", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookEventoDesconhecido(t *testing.T) {
	w := postWebhook(t, `{"event":"payment.refused","customer":{"email":"dono@loja.com"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Evento ignorado")
}

func TestWebhookSemEmail(t *testing.T) {
	w := postWebhook(t, `{"event":"payment.paid","customer":{}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Entrega sem email é 400 mesmo quando o evento seria ignorado.
func TestWebhookSemEmailEmEventoIgnorado(t *testing.T) {
	w := postWebhook(t, `{"event":"payment.refused","customer":{}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookPayloadQuebrado(t *testing.T) {
	w := postWebhook(t, `{nao é json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
