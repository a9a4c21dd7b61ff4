package router

import (
	"net/http"

	"github.com/deppfellow/travelog/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerJournalRoutes maps the journal resources. GET /users/:id accepts
// a username as well as an id; the other :id routes take integers only.
func registerJournalRoutes(r *echo.Echo, h *handler.Handlers) {
	r.POST("/login", handler.HandleWithStatus(h.Users.Login))

	users := r.Group("/users")
	users.GET("", handler.Handle(h.Users.ListUsers, http.StatusOK))
	users.GET("/:id", handler.Handle(h.Users.GetUser, http.StatusOK))
	users.PATCH("/:id", handler.Handle(h.Users.UpdateUser, http.StatusAccepted))
	users.DELETE("/:id", handler.HandleNoContent(h.Users.DeleteUser, http.StatusNoContent))

	cities := r.Group("/cities")
	cities.GET("", handler.Handle(h.Cities.ListCities, http.StatusOK))
	cities.POST("", handler.Handle(h.Cities.CreateCity, http.StatusCreated))
	cities.GET("/:id", handler.Handle(h.Cities.GetCity, http.StatusOK))
	cities.DELETE("/:id", handler.HandleNoContent(h.Cities.DeleteCity, http.StatusNoContent))

	cityNotes := r.Group("/citynotes")
	cityNotes.GET("", handler.Handle(h.CityNotes.ListCityNotes, http.StatusOK))
	cityNotes.POST("", handler.Handle(h.CityNotes.CreateCityNote, http.StatusCreated))
	cityNotes.GET("/:id", handler.Handle(h.CityNotes.GetCityNote, http.StatusOK))
	cityNotes.PATCH("/:id", handler.Handle(h.CityNotes.UpdateCityNote, http.StatusAccepted))
	cityNotes.DELETE("/:id", handler.HandleNoContent(h.CityNotes.DeleteCityNote, http.StatusNoContent))

	locations := r.Group("/locations")
	locations.GET("", handler.Handle(h.Locations.ListLocations, http.StatusOK))
	locations.POST("", handler.Handle(h.Locations.CreateLocation, http.StatusCreated))
	locations.GET("/:id", handler.Handle(h.Locations.GetLocation, http.StatusOK))
	locations.DELETE("/:id", handler.HandleNoContent(h.Locations.DeleteLocation, http.StatusNoContent))

	locationNotes := r.Group("/locationnotes")
	locationNotes.GET("", handler.Handle(h.LocationNotes.ListLocationNotes, http.StatusOK))
	locationNotes.POST("", handler.Handle(h.LocationNotes.CreateLocationNote, http.StatusCreated))
	locationNotes.GET("/:id", handler.Handle(h.LocationNotes.GetLocationNote, http.StatusOK))
	locationNotes.PATCH("/:id", handler.Handle(h.LocationNotes.UpdateLocationNote, http.StatusAccepted))
	locationNotes.DELETE("/:id", handler.HandleNoContent(h.LocationNotes.DeleteLocationNote, http.StatusNoContent))
}
