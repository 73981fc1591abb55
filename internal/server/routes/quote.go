package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pbsgifts/promoweb/internal/api/handlers"
)

// SetupQuoteRoutes configures quote form routes
func SetupQuoteRoutes(router *gin.RouterGroup, quote *handlers.QuoteHandler, m *Middleware) {
	group := router.Group("/quote")
	{
		group.GET("", quote.Status)
		group.POST("",
			m.Validation.ValidateQuoteSubmission(),
			quote.Submit,
		)
	}
}
