package router

import (
	"net/http"

	"github.com/deppfellow/cats-api/internal/handler"
	"github.com/deppfellow/cats-api/internal/model"
	"github.com/labstack/echo/v4"
)

func registerCommonRoutes(r *echo.Echo, h *handler.Handlers) {
	common := r.Group("/common")

	common.GET("/router", handler.Handle[model.EmptyRequest](h.Common.Handler, h.Common.GetHello, http.StatusOK))
}
