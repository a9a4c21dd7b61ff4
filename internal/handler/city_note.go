package handler

import (
	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/service"
	"github.com/deppfellow/travelog/internal/validation"
	"github.com/labstack/echo/v4"
)

type CityNoteHandler struct {
	Handler
}

func NewCityNoteHandler(h Handler) *CityNoteHandler {
	return &CityNoteHandler{Handler: h}
}

// CreateCityNoteRequest leaves note_type optional; it defaults to Other.
type CreateCityNoteRequest struct {
	NoteBody string `json:"note_body"`
	NoteType string `json:"note_type"`
	CityID   int    `json:"city_id"`
}

func (r *CreateCityNoteRequest) Validate() error {
	return validation.Struct(r)
}

func (h *CityNoteHandler) ListCityNotes(c echo.Context, _ *NoRequest) ([]model.CityNoteView, error) {
	return h.services.CityNotes.List(c.Request().Context())
}

func (h *CityNoteHandler) GetCityNote(c echo.Context, req *IDRequest) (*model.CityNoteView, error) {
	return h.services.CityNotes.GetByID(c.Request().Context(), req.ID)
}

func (h *CityNoteHandler) CreateCityNote(c echo.Context, req *CreateCityNoteRequest) (*model.CityNoteView, error) {
	return h.services.CityNotes.Create(c.Request().Context(), service.CreateCityNoteInput{
		NoteBody: req.NoteBody,
		NoteType: req.NoteType,
		CityID:   req.CityID,
	})
}

func (h *CityNoteHandler) UpdateCityNote(c echo.Context, req *PatchRequest) (*model.CityNoteView, error) {
	return h.services.CityNotes.Update(c.Request().Context(), req.ID, req.Attrs)
}

func (h *CityNoteHandler) DeleteCityNote(c echo.Context, req *IDRequest) error {
	return h.services.CityNotes.Delete(c.Request().Context(), req.ID)
}
