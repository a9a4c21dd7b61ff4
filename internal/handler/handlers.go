package handler

import (
	"github.com/deppfellow/travelog/internal/server"
	"github.com/deppfellow/travelog/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Home          *HomeHandler
	Health        *HealthHandler
	OpenAPI       *OpenAPIHandler
	Users         *UserHandler
	Cities        *CityHandler
	CityNotes     *CityNoteHandler
	Locations     *LocationHandler
	LocationNotes *LocationNoteHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	base := NewHandler(s, services)

	return &Handlers{
		Home:          NewHomeHandler(base),
		Health:        NewHealthHandler(base),
		OpenAPI:       NewOpenAPIHandler(base),
		Users:         NewUserHandler(base),
		Cities:        NewCityHandler(base),
		CityNotes:     NewCityNoteHandler(base),
		Locations:     NewLocationHandler(base),
		LocationNotes: NewLocationNoteHandler(base),
	}
}
