package handler

import (
	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/service"
	"github.com/deppfellow/travelog/internal/validation"
	"github.com/labstack/echo/v4"
)

type LocationHandler struct {
	Handler
}

func NewLocationHandler(h Handler) *LocationHandler {
	return &LocationHandler{Handler: h}
}

// CreateLocationRequest accepts date_visited with or without fractional
// seconds; omitting it records a location not visited yet.
type CreateLocationRequest struct {
	LocationName string  `json:"location_name"`
	DateVisited  string  `json:"date_visited" validate:"omitempty,datetime=2006-01-02T15:04:05Z"`
	Rating       int     `json:"rating"`
	Category     string  `json:"category"`
	AvgCost      int     `json:"avg_cost"`
	GoogleMapURL *string `json:"google_map_url"`
	Website      *string `json:"website"`
	CityID       int     `json:"city_id"`
	UserID       int     `json:"user_id"`
}

func (r *CreateLocationRequest) Validate() error {
	return validation.Struct(r)
}

func (h *LocationHandler) ListLocations(c echo.Context, _ *NoRequest) ([]model.LocationView, error) {
	return h.services.Locations.List(c.Request().Context())
}

func (h *LocationHandler) GetLocation(c echo.Context, req *IDRequest) (*model.LocationView, error) {
	return h.services.Locations.GetByID(c.Request().Context(), req.ID)
}

func (h *LocationHandler) CreateLocation(c echo.Context, req *CreateLocationRequest) (*model.LocationView, error) {
	return h.services.Locations.Create(c.Request().Context(), service.CreateLocationInput{
		LocationName: req.LocationName,
		DateVisited:  req.DateVisited,
		Rating:       req.Rating,
		Category:     req.Category,
		AvgCost:      req.AvgCost,
		GoogleMapURL: req.GoogleMapURL,
		Website:      req.Website,
		CityID:       req.CityID,
		UserID:       req.UserID,
	})
}

func (h *LocationHandler) DeleteLocation(c echo.Context, req *IDRequest) error {
	return h.services.Locations.Delete(c.Request().Context(), req.ID)
}
