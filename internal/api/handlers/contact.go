package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pbsgifts/promoweb/internal/api/constants"
	"github.com/pbsgifts/promoweb/internal/api/dto/common"
	"github.com/pbsgifts/promoweb/internal/api/dto/v1/contact"
	"github.com/pbsgifts/promoweb/internal/config"
	"github.com/pbsgifts/promoweb/internal/mail"
	"github.com/pbsgifts/promoweb/internal/metrics"
	"github.com/pbsgifts/promoweb/internal/ratelimit"
	"github.com/pbsgifts/promoweb/internal/utils"
)

// ContactHandler serves the contact form endpoint. Abuse is limited by a
// memory-keyed guard: one accepted submission per (address, email) per hour,
// surfaced explicitly with a 429 and a retry hint.
type ContactHandler struct {
	cfg     *config.Config
	sender  mail.Sender
	guard   *ratelimit.Guard
	metrics *metrics.Metrics
}

func NewContactHandler(cfg *config.Config, sender mail.Sender, guard *ratelimit.Guard, m *metrics.Metrics) *ContactHandler {
	return &ContactHandler{
		cfg:     cfg,
		sender:  sender,
		guard:   guard,
		metrics: m,
	}
}

// Status answers the GET liveness probe. No auth, no side effects.
func (h *ContactHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, contact.StatusResponse{
		Status: "ok",
		Stream: h.cfg.PostmarkStream,
	})
}

// Submit delivers a validated contact submission. The validation middleware
// has already normalized the body, filtered the honeypot and applied the
// field rules.
func (h *ContactHandler) Submit(c *gin.Context) {
	data, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, "Contact data not found in context")
		return
	}
	req, ok := data.(*contact.SubmissionRequest)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, "Invalid contact data format")
		return
	}

	if !h.cfg.MailConfigured() {
		h.metrics.RecordSubmission(metrics.FormContact, common.OutcomeConfigError)
		utils.HandleAPIError(c, nil, http.StatusInternalServerError,
			"Faltan variables de entorno (POSTMARK_TOKEN, MAIL_FROM, MAIL_TO).")
		return
	}

	clientIP := utils.GetRealIP(c)
	retryAfter, release, err := h.guard.Reserve(c.Request.Context(), clientIP, req.Email)
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "No se pudo enviar el correo.")
		return
	}
	if release == nil {
		minutes := ratelimit.RetryAfterMinutes(retryAfter)
		h.metrics.RecordSubmission(metrics.FormContact, common.OutcomeRateLimited)
		c.Header("Retry-After", strconv.Itoa(minutes*60))
		c.JSON(http.StatusTooManyRequests, common.RateLimitedResponse{
			Error:             "Límite de envío alcanzado. Intenta más tarde.",
			RetryAfterMinutes: minutes,
		})
		return
	}

	composed := mail.ComposeContact(req)
	receipt, err := h.sender.Send(c.Request.Context(), mail.Message{
		From:     h.cfg.MailFrom,
		To:       h.cfg.MailTo,
		ReplyTo:  req.Email,
		Subject:  composed.Subject,
		HTMLBody: composed.HTMLBody,
		TextBody: composed.TextBody,
		Stream:   h.cfg.PostmarkStream,
	})
	if err != nil {
		// Give the cooldown slot back; a failed send must not count
		release()
		h.metrics.RecordSubmission(metrics.FormContact, common.OutcomeDeliveryFailed)
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "No se pudo enviar el correo.")
		return
	}

	h.metrics.RecordSubmission(metrics.FormContact, common.OutcomeDelivered)
	c.JSON(http.StatusOK, contact.AcceptedResponse{
		OK:          true,
		ID:          receipt.MessageID,
		To:          receipt.To,
		SubmittedAt: receipt.SubmittedAt,
		Stream:      h.cfg.PostmarkStream,
	})
}
