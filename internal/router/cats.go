package router

import (
	"net/http"

	"github.com/deppfellow/cats-api/internal/handler"
	"github.com/deppfellow/cats-api/internal/model"
	"github.com/labstack/echo/v4"
)

func registerCatRoutes(r *echo.Echo, h *handler.Handlers) {
	cats := r.Group("/cats")

	cats.GET("", handler.Handle[model.EmptyRequest](h.Cat.Handler, h.Cat.GetAllCats, http.StatusOK))
	cats.GET("/:id", handler.Handle[model.CatIDRequest](h.Cat.Handler, h.Cat.GetOneCat, http.StatusOK))
	cats.POST("", handler.Handle[model.EmptyRequest](h.Cat.Handler, h.Cat.CreateCat, http.StatusCreated))
	cats.PUT("/:id", handler.Handle[model.EmptyRequest](h.Cat.Handler, h.Cat.UpdateCat, http.StatusOK))
	cats.DELETE("/:id", handler.Handle[model.EmptyRequest](h.Cat.Handler, h.Cat.DeleteCat, http.StatusOK))
}
