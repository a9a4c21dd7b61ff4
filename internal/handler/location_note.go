package handler

import (
	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/validation"
	"github.com/labstack/echo/v4"
)

type LocationNoteHandler struct {
	Handler
}

func NewLocationNoteHandler(h Handler) *LocationNoteHandler {
	return &LocationNoteHandler{Handler: h}
}

type CreateLocationNoteRequest struct {
	NoteBody   string `json:"note_body"`
	LocationID int    `json:"location_id"`
}

func (r *CreateLocationNoteRequest) Validate() error {
	return validation.Struct(r)
}

func (h *LocationNoteHandler) ListLocationNotes(c echo.Context, _ *NoRequest) ([]model.LocationNoteView, error) {
	return h.services.LocationNotes.List(c.Request().Context())
}

func (h *LocationNoteHandler) GetLocationNote(c echo.Context, req *IDRequest) (*model.LocationNoteView, error) {
	return h.services.LocationNotes.GetByID(c.Request().Context(), req.ID)
}

func (h *LocationNoteHandler) CreateLocationNote(c echo.Context, req *CreateLocationNoteRequest) (*model.LocationNoteView, error) {
	return h.services.LocationNotes.Create(c.Request().Context(), req.NoteBody, req.LocationID)
}

func (h *LocationNoteHandler) UpdateLocationNote(c echo.Context, req *PatchRequest) (*model.LocationNoteView, error) {
	return h.services.LocationNotes.Update(c.Request().Context(), req.ID, req.Attrs)
}

func (h *LocationNoteHandler) DeleteLocationNote(c echo.Context, req *IDRequest) error {
	return h.services.LocationNotes.Delete(c.Request().Context(), req.ID)
}
