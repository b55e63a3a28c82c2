package handler

import (
	"github.com/deppfellow/cats-api/internal/server"
	"github.com/deppfellow/cats-api/internal/service"
)

// Handlers groups all controllers so the router receives one value.
type Handlers struct {
	Health *HealthHandler
	Common *CommonHandler
	Cat    *CatHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		Common: NewCommonHandler(s, services.App),
		Cat:    NewCatHandler(s, services.Cat),
	}
}
