package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pbsgifts/promoweb/internal/api/constants"
	"github.com/pbsgifts/promoweb/internal/api/dto/common"
	"github.com/pbsgifts/promoweb/internal/api/dto/v1/quote"
	"github.com/pbsgifts/promoweb/internal/config"
	"github.com/pbsgifts/promoweb/internal/mail"
	"github.com/pbsgifts/promoweb/internal/metrics"
	"github.com/pbsgifts/promoweb/internal/ratelimit"
	"github.com/pbsgifts/promoweb/internal/utils"
)

// QuoteHandler serves the quote (RFQ) form endpoint. Abuse is limited by a
// signed cookie carried by the browser; an exceeded limit answers with a
// success-shaped payload and sends nothing, so automated clients cannot
// detect the limiter and route around it.
type QuoteHandler struct {
	cfg     *config.Config
	sender  mail.Sender
	limiter *ratelimit.CookieLimiter
	metrics *metrics.Metrics

	now func() time.Time
}

func NewQuoteHandler(cfg *config.Config, sender mail.Sender, limiter *ratelimit.CookieLimiter, m *metrics.Metrics) *QuoteHandler {
	return &QuoteHandler{
		cfg:     cfg,
		sender:  sender,
		limiter: limiter,
		metrics: m,
		now:     time.Now,
	}
}

// Status answers the GET liveness probe. No auth, no side effects.
func (h *QuoteHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, quote.StatusResponse{
		Status:      "ok",
		Stream:      h.cfg.PostmarkStream,
		WindowHours: h.limiter.Window().Hours(),
		Limit:       h.limiter.Limit(),
	})
}

// Submit delivers a validated quote submission. Normalization, honeypot
// filtering and field rules already ran in the validation middleware.
func (h *QuoteHandler) Submit(c *gin.Context) {
	data, exists := c.Get(constants.ContextKeyQuote)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, "Quote data not found in context")
		return
	}
	req, ok := data.(*quote.SubmissionRequest)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, "Invalid quote data format")
		return
	}

	if !h.cfg.MailConfigured() {
		h.metrics.RecordSubmission(metrics.FormQuote, common.OutcomeConfigError)
		utils.HandleAPIError(c, nil, http.StatusInternalServerError,
			"Faltan variables de entorno (POSTMARK_TOKEN, MAIL_FROM, MAIL_TO).")
		return
	}
	if h.cfg.RateLimitSecret == "" {
		h.metrics.RecordSubmission(metrics.FormQuote, common.OutcomeConfigError)
		utils.HandleAPIError(c, nil, http.StatusInternalServerError,
			"Falta RL_SECRET para la cookie de rate-limit.")
		return
	}

	tokenIn, _ := c.Cookie(constants.CookieQuoteRateLimit)
	stamps, valid := h.limiter.Verify(tokenIn)
	now := h.now()

	if h.limiter.Exceeded(stamps, now) {
		h.metrics.RecordSubmission(metrics.FormQuote, common.OutcomeSkippedLimited)
		// Reissue the existing stamps unchanged so the window does not reset
		if valid {
			if token, err := h.limiter.Mint(stamps); err == nil {
				h.setRateLimitCookie(c, token)
			}
		}
		utils.HandleSkipped(c, common.SkipRateLimit)
		return
	}

	composed := mail.ComposeQuote(req)
	receipt, err := h.sender.Send(c.Request.Context(), mail.Message{
		From:     h.cfg.MailFrom,
		To:       h.cfg.MailTo,
		ReplyTo:  req.Customer.Email,
		Subject:  composed.Subject,
		HTMLBody: composed.HTMLBody,
		TextBody: composed.TextBody,
		Stream:   h.cfg.PostmarkStream,
	})
	if err != nil {
		h.metrics.RecordSubmission(metrics.FormQuote, common.OutcomeDeliveryFailed)
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "No se pudo enviar la cotización.")
		return
	}

	// Seal the cookie with the new stamp only after a confirmed delivery
	if token, err := h.limiter.Seal(now); err == nil {
		h.setRateLimitCookie(c, token)
	}

	h.metrics.RecordSubmission(metrics.FormQuote, common.OutcomeDelivered)
	c.JSON(http.StatusOK, quote.AcceptedResponse{
		OK:        true,
		MessageID: receipt.MessageID,
		To:        receipt.To,
		Stream:    h.cfg.PostmarkStream,
	})
}

func (h *QuoteHandler) setRateLimitCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		constants.CookieQuoteRateLimit,
		token,
		constants.CookieDurationWeek,
		constants.CookiePathRoot,
		"",   // domain: host-only
		true, // secure
		true, // httpOnly
	)
}
