package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbsgifts/promoweb/internal/api/middleware"
	"github.com/pbsgifts/promoweb/internal/config"
	"github.com/pbsgifts/promoweb/internal/mail"
	"github.com/pbsgifts/promoweb/internal/metrics"
	"github.com/pbsgifts/promoweb/internal/ratelimit"
)

// mockSender records delivered messages; sendFunc overrides the default
// success response.
type mockSender struct {
	mu       sync.Mutex
	calls    []mail.Message
	sendFunc func(ctx context.Context, msg mail.Message) (*mail.Receipt, error)
}

func (m *mockSender) Send(ctx context.Context, msg mail.Message) (*mail.Receipt, error) {
	m.mu.Lock()
	m.calls = append(m.calls, msg)
	m.mu.Unlock()

	if m.sendFunc != nil {
		return m.sendFunc(ctx, msg)
	}
	return &mail.Receipt{
		MessageID:   "mid-1",
		To:          msg.To,
		SubmittedAt: "2025-03-01T12:00:00Z",
	}, nil
}

func (m *mockSender) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:     "test",
		PostmarkToken:   "server-token",
		MailFrom:        "no-reply@pbsgifts.ec",
		MailTo:          "ventas@pbsgifts.ec",
		PostmarkStream:  "outbound",
		RateLimitSecret: "test-secret",
	}
}

func newContactRouter(cfg *config.Config, sender mail.Sender, guard *ratelimit.Guard) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := metrics.New()
	vm := middleware.NewValidationMiddleware(m)
	h := NewContactHandler(cfg, sender, guard, m)

	router := gin.New()
	router.GET("/api/v1/contact", h.Status)
	router.POST("/api/v1/contact", vm.ValidateContactSubmission(), h.Submit)
	return router
}

func postJSON(router *gin.Engine, path, body, clientIP string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if clientIP != "" {
		req.Header.Set("X-Forwarded-For", clientIP)
	}
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

const validContactBody = `{"name":"Ana","email":"a@x.com","subject":"Hola","message":"Necesito info"}`

func TestContactSubmit_Success(t *testing.T) {
	sender := &mockSender{}
	router := newContactRouter(testConfig(), sender, ratelimit.NewGuard(ratelimit.NewMemoryStore(), ratelimit.ContactWindow))

	w := postJSON(router, "/api/v1/contact", validContactBody, "1.2.3.4")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "mid-1", body["id"])
	assert.Equal(t, "ventas@pbsgifts.ec", body["to"])
	assert.Equal(t, "outbound", body["stream"])
	assert.NotEmpty(t, body["submittedAt"])

	require.Equal(t, 1, sender.callCount())
	assert.Equal(t, "a@x.com", sender.calls[0].ReplyTo)
	assert.Equal(t, "no-reply@pbsgifts.ec", sender.calls[0].From)
}

func TestContactSubmit_Honeypot(t *testing.T) {
	sender := &mockSender{}
	router := newContactRouter(testConfig(), sender, ratelimit.NewGuard(ratelimit.NewMemoryStore(), ratelimit.ContactWindow))

	body := `{"name":"Ana","email":"a@x.com","subject":"Hola","message":"Necesito info","website":"http://spam"}`
	w := postJSON(router, "/api/v1/contact", body, "1.2.3.4")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, "honeypot", resp["skipped"])
	assert.Equal(t, 0, sender.callCount())
}

func TestContactSubmit_ValidationFailure(t *testing.T) {
	sender := &mockSender{}
	router := newContactRouter(testConfig(), sender, ratelimit.NewGuard(ratelimit.NewMemoryStore(), ratelimit.ContactWindow))

	w := postJSON(router, "/api/v1/contact", `{"name":"Ana","email":"not-an-email"}`, "1.2.3.4")

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody(t, w)
	assert.NotEmpty(t, resp["error"])

	raw, _ := json.Marshal(resp["errors"])
	var errs []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &errs))
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e["field"].(string))
	}
	assert.ElementsMatch(t, []string{"Email", "Asunto", "Mensaje"}, fields)
	assert.Equal(t, 0, sender.callCount())
}

func TestContactSubmit_UnparseableBody(t *testing.T) {
	sender := &mockSender{}
	router := newContactRouter(testConfig(), sender, ratelimit.NewGuard(ratelimit.NewMemoryStore(), ratelimit.ContactWindow))

	w := postJSON(router, "/api/v1/contact", `{{{`, "1.2.3.4")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, sender.callCount())
}

func TestContactSubmit_RateLimited(t *testing.T) {
	sender := &mockSender{}
	router := newContactRouter(testConfig(), sender, ratelimit.NewGuard(ratelimit.NewMemoryStore(), ratelimit.ContactWindow))

	first := postJSON(router, "/api/v1/contact", validContactBody, "1.2.3.4")
	require.Equal(t, http.StatusOK, first.Code)

	second := postJSON(router, "/api/v1/contact", validContactBody, "1.2.3.4")
	require.Equal(t, http.StatusTooManyRequests, second.Code)

	resp := decodeBody(t, second)
	assert.NotEmpty(t, resp["error"])
	minutes := int(resp["retryAfterMinutes"].(float64))
	assert.GreaterOrEqual(t, minutes, 1)
	assert.Equal(t, fmt.Sprintf("%d", minutes*60), second.Header().Get("Retry-After"))

	// Only the first submission was delivered
	assert.Equal(t, 1, sender.callCount())
}

func TestContactSubmit_DifferentEmailBypassesCooldown(t *testing.T) {
	sender := &mockSender{}
	router := newContactRouter(testConfig(), sender, ratelimit.NewGuard(ratelimit.NewMemoryStore(), ratelimit.ContactWindow))

	first := postJSON(router, "/api/v1/contact", validContactBody, "1.2.3.4")
	require.Equal(t, http.StatusOK, first.Code)

	// Inherited behavior: the key includes the email, so a different email
	// from the same address is a fresh slot
	other := `{"name":"Ana","email":"b@x.com","subject":"Hola","message":"Necesito info"}`
	second := postJSON(router, "/api/v1/contact", other, "1.2.3.4")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 2, sender.callCount())
}

func TestContactSubmit_FailedDeliveryDoesNotStartCooldown(t *testing.T) {
	sender := &mockSender{
		sendFunc: func(ctx context.Context, msg mail.Message) (*mail.Receipt, error) {
			return nil, fmt.Errorf("provider down")
		},
	}
	router := newContactRouter(testConfig(), sender, ratelimit.NewGuard(ratelimit.NewMemoryStore(), ratelimit.ContactWindow))

	first := postJSON(router, "/api/v1/contact", validContactBody, "1.2.3.4")
	require.Equal(t, http.StatusInternalServerError, first.Code)
	resp := decodeBody(t, first)
	// Generic message only; the provider error stays server-side
	assert.Equal(t, "No se pudo enviar el correo.", resp["error"])

	// The failed send must not have consumed the cooldown slot
	sender.sendFunc = nil
	second := postJSON(router, "/api/v1/contact", validContactBody, "1.2.3.4")
	assert.Equal(t, http.StatusOK, second.Code)
}

func TestContactSubmit_MissingConfig(t *testing.T) {
	cfg := testConfig()
	cfg.PostmarkToken = ""
	sender := &mockSender{}
	router := newContactRouter(cfg, sender, ratelimit.NewGuard(ratelimit.NewMemoryStore(), ratelimit.ContactWindow))

	w := postJSON(router, "/api/v1/contact", validContactBody, "1.2.3.4")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeBody(t, w)
	assert.Contains(t, resp["error"], "POSTMARK_TOKEN")
	assert.Equal(t, 0, sender.callCount())
}

func TestContactStatus(t *testing.T) {
	router := newContactRouter(testConfig(), &mockSender{}, ratelimit.NewGuard(ratelimit.NewMemoryStore(), ratelimit.ContactWindow))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/contact", nil))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "outbound", resp["stream"])
}
