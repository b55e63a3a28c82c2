package handler

import (
	"github.com/deppfellow/cats-api/internal/middleware"
	"github.com/deppfellow/cats-api/internal/model"
	"github.com/deppfellow/cats-api/internal/server"
	"github.com/deppfellow/cats-api/internal/service"
	"github.com/labstack/echo/v4"
)

// CatHandler serves the /cats route group. Every route is a stub.
type CatHandler struct {
	Handler
	catService *service.CatService
}

func NewCatHandler(s *server.Server, catService *service.CatService) *CatHandler {
	return &CatHandler{
		Handler:    NewHandler(s, SuccessInterceptor{}),
		catService: catService,
	}
}

func (h *CatHandler) GetAllCats(c echo.Context, _ *model.EmptyRequest) (model.CatListResponse, error) {
	return model.CatListResponse{Cats: "get all cats api"}, nil
}

func (h *CatHandler) GetOneCat(c echo.Context, req *model.CatIDRequest) (string, error) {
	middleware.GetLogger(c).Debug().Int("id", req.ID).Msg("get one cat")
	return "get One Cat", nil
}

func (h *CatHandler) CreateCat(c echo.Context, _ *model.EmptyRequest) (string, error) {
	return "create Cat", nil
}

func (h *CatHandler) UpdateCat(c echo.Context, _ *model.EmptyRequest) (string, error) {
	return "update Cat", nil
}

func (h *CatHandler) DeleteCat(c echo.Context, _ *model.EmptyRequest) (string, error) {
	return "delete Cat", nil
}
