package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HomeHandler struct {
	Handler
}

func NewHomeHandler(h Handler) *HomeHandler {
	return &HomeHandler{Handler: h}
}

// Greet answers the root path with 202 Accepted.
func (h *HomeHandler) Greet(c echo.Context) error {
	return c.JSON(http.StatusAccepted, map[string]string{"message": "Hello World!"})
}
