package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pbsgifts/promoweb/internal/api/binding"
	"github.com/pbsgifts/promoweb/internal/api/constants"
	"github.com/pbsgifts/promoweb/internal/api/dto/common"
	"github.com/pbsgifts/promoweb/internal/api/validation"
	"github.com/pbsgifts/promoweb/internal/metrics"
	"github.com/pbsgifts/promoweb/internal/utils"
)

// ValidationMiddleware normalizes, honeypot-filters and validates form
// submissions before the handlers run. The pipeline order matters: a
// honeypot hit short-circuits to a success-shaped response even when the
// rest of the submission would not validate, so bots learn nothing from the
// response shape.
type ValidationMiddleware struct {
	validator *validation.Validator
	metrics   *metrics.Metrics
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware(m *metrics.Metrics) *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.New(),
		metrics:   m,
	}
}

// ValidateContactSubmission validates contact form submissions
func (m *ValidationMiddleware) ValidateContactSubmission() gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := binding.ParseContact(c)
		if err != nil {
			m.metrics.RecordSubmission(metrics.FormContact, common.OutcomeRejected)
			c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Cuerpo inválido"})
			c.Abort()
			return
		}

		if req.Website != "" {
			m.metrics.RecordSubmission(metrics.FormContact, common.OutcomeSkippedHoney)
			utils.HandleSkipped(c, common.SkipHoneypot)
			c.Abort()
			return
		}

		if errs := m.validator.Check(req); errs != nil {
			m.metrics.RecordSubmission(metrics.FormContact, common.OutcomeRejected)
			c.JSON(http.StatusBadRequest, common.ValidationFailureResponse{
				Error:  validation.Summary(errs),
				Errors: errs,
			})
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyContact, req)
		c.Next()
	}
}

// ValidateQuoteSubmission validates quote form submissions
func (m *ValidationMiddleware) ValidateQuoteSubmission() gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := binding.ParseQuote(c)
		if err != nil {
			m.metrics.RecordSubmission(metrics.FormQuote, common.OutcomeRejected)
			c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Cuerpo inválido"})
			c.Abort()
			return
		}

		if req.Website != "" {
			m.metrics.RecordSubmission(metrics.FormQuote, common.OutcomeSkippedHoney)
			utils.HandleSkipped(c, common.SkipHoneypot)
			c.Abort()
			return
		}

		if errs := m.validator.Check(req); errs != nil {
			m.metrics.RecordSubmission(metrics.FormQuote, common.OutcomeRejected)
			c.JSON(http.StatusBadRequest, common.ValidationFailureResponse{
				Error:  validation.Summary(errs),
				Errors: errs,
			})
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyQuote, req)
		c.Next()
	}
}
