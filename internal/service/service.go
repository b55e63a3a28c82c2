package service

import (
	"github.com/deppfellow/cats-api/internal/server"
)

// Greeting is returned by GET /common/router.
const Greeting = "Hello World!"

// AppService backs the common routes.
type AppService struct {
	server *server.Server
}

func NewAppService(s *server.Server) *AppService {
	return &AppService{
		server: s,
	}
}

func (a *AppService) GetHello() string {
	return Greeting
}
