// Package router builds the Echo instance: it installs the global
// middleware chain and the global error handler, then registers every
// route group against its controller.
package router

import (
	"github.com/deppfellow/cats-api/internal/handler"
	"github.com/deppfellow/cats-api/internal/middleware"
	"github.com/deppfellow/cats-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns the fully wired application router.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	// Exception filter for every route, including unmatched ones.
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request id and the request-scoped logger must
	// exist before the logging middleware runs, and Recover sits closest
	// to the handlers so panics become errors for the filter.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Metrics.Collect(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, s, h)
	registerCommonRoutes(router, h)
	registerCatRoutes(router, h)

	return router
}
