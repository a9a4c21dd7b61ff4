package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
)

// OpenAPIPage is the docs UI served at /docs. It loads static/openapi.json.
const OpenAPIPage = "static/openapi.html"

type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(h Handler) *OpenAPIHandler {
	return &OpenAPIHandler{Handler: h}
}

// ServeOpenAPIUI serves the docs page uncached so edits show up immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := os.ReadFile(OpenAPIPage)

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
