package handler

import (
	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/service"
	"github.com/deppfellow/travelog/internal/validation"
	"github.com/labstack/echo/v4"
)

type CityHandler struct {
	Handler
}

func NewCityHandler(h Handler) *CityHandler {
	return &CityHandler{Handler: h}
}

type CreateCityRequest struct {
	CityName string `json:"city_name"`
	Country  string `json:"country"`
	UserID   int    `json:"user_id"`
}

func (r *CreateCityRequest) Validate() error {
	return validation.Struct(r)
}

func (h *CityHandler) ListCities(c echo.Context, _ *NoRequest) ([]model.CityView, error) {
	return h.services.Cities.List(c.Request().Context())
}

func (h *CityHandler) GetCity(c echo.Context, req *IDRequest) (*model.CityView, error) {
	return h.services.Cities.GetByID(c.Request().Context(), req.ID)
}

func (h *CityHandler) CreateCity(c echo.Context, req *CreateCityRequest) (*model.CityView, error) {
	return h.services.Cities.Create(c.Request().Context(), service.CreateCityInput{
		CityName: req.CityName,
		Country:  req.Country,
		UserID:   req.UserID,
	})
}

func (h *CityHandler) DeleteCity(c echo.Context, req *IDRequest) error {
	return h.services.Cities.Delete(c.Request().Context(), req.ID)
}
