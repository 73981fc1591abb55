package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pbsgifts/promoweb/internal/api/handlers"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	group := router.Group("/contact")
	{
		group.GET("", contact.Status)
		group.POST("",
			m.Validation.ValidateContactSubmission(),
			contact.Submit,
		)
	}
}
