package service

import (
	"github.com/deppfellow/cats-api/internal/server"
)

// CatService is the cats feature service. It has no operations yet;
// the controller is wired to it so persistence can land here.
type CatService struct {
	server *server.Server
}

func NewCatService(s *server.Server) *CatService {
	return &CatService{
		server: s,
	}
}
