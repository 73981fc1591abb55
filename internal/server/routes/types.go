package routes

import (
	"github.com/pbsgifts/promoweb/internal/api/handlers"
	"github.com/pbsgifts/promoweb/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Contact *handlers.ContactHandler
	Quote   *handlers.QuoteHandler
	Health  *handlers.HealthHandler
}

// Middleware contains the middleware used by individual routes
type Middleware struct {
	Validation *middleware.ValidationMiddleware
}
