package handler

import (
	"net/http"

	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/validation"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
}

func NewUserHandler(h Handler) *UserHandler {
	return &UserHandler{Handler: h}
}

// GetUserRequest addresses a user by id or username.
type GetUserRequest struct {
	Ident string `param:"id"`
}

func (r *GetUserRequest) Validate() error {
	return validation.Struct(r)
}

type LoginRequest struct {
	Email string `json:"email"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

func (h *UserHandler) ListUsers(c echo.Context, _ *NoRequest) ([]model.UserView, error) {
	return h.services.Users.List(c.Request().Context())
}

func (h *UserHandler) GetUser(c echo.Context, req *GetUserRequest) (*model.UserView, error) {
	return h.services.Users.Find(c.Request().Context(), req.Ident)
}

func (h *UserHandler) UpdateUser(c echo.Context, req *PatchRequest) (*model.UserView, error) {
	return h.services.Users.Update(c.Request().Context(), req.ID, req.Attrs)
}

func (h *UserHandler) DeleteUser(c echo.Context, req *IDRequest) error {
	return h.services.Users.Delete(c.Request().Context(), req.ID)
}

// Login answers 200 with the existing user or 201 with the one it created.
func (h *UserHandler) Login(c echo.Context, req *LoginRequest) (*model.UserView, int, error) {
	user, created, err := h.services.Users.LoginOrRegister(c.Request().Context(), req.Email)
	if err != nil {
		return nil, 0, err
	}
	if created {
		return user, http.StatusCreated, nil
	}
	return user, http.StatusOK, nil
}
