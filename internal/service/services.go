// Package service contains the business logic.
//
// It sits between the handler layer and the data layer. Every feature
// module owns one service; Services groups them so handlers receive a
// single dependency.
package service

import (
	"github.com/deppfellow/cats-api/internal/server"
)

type Services struct {
	App *AppService
	Cat *CatService
}

func NewServices(s *server.Server) *Services {
	return &Services{
		App: NewAppService(s),
		Cat: NewCatService(s),
	}
}
