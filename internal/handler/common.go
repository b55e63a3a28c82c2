package handler

import (
	"github.com/deppfellow/cats-api/internal/model"
	"github.com/deppfellow/cats-api/internal/server"
	"github.com/deppfellow/cats-api/internal/service"
	"github.com/labstack/echo/v4"
)

// CommonHandler serves the /common route group.
type CommonHandler struct {
	Handler
	appService *service.AppService
}

func NewCommonHandler(s *server.Server, appService *service.AppService) *CommonHandler {
	return &CommonHandler{
		Handler:    NewHandler(s, SuccessInterceptor{}),
		appService: appService,
	}
}

// GetHello handles GET /common/router.
func (h *CommonHandler) GetHello(c echo.Context, _ *model.EmptyRequest) (string, error) {
	return h.appService.GetHello(), nil
}
