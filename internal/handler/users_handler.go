package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lightbnb/api/internal/dto"
	"github.com/lightbnb/api/internal/service"
)

// UsersHandler exposes user lookup and registration endpoints.
type UsersHandler struct {
	service *service.UserService
}

// NewUsersHandler constructs a UsersHandler.
func NewUsersHandler(service *service.UserService) *UsersHandler {
	return &UsersHandler{service: service}
}

// GetByID handles GET /users/:id requests.
func (h *UsersHandler) GetByID(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid user id")
	}

	user, err := h.service.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err, "unable to fetch user")
	}
	return Success(c, http.StatusOK, "user retrieved", user)
}

// GetByEmail handles GET /users?email= requests.
func (h *UsersHandler) GetByEmail(c echo.Context) error {
	email := strings.TrimSpace(c.QueryParam("email"))
	if email == "" {
		return Error(c, http.StatusBadRequest, "email query parameter is required")
	}

	user, err := h.service.GetUserByEmail(c.Request().Context(), email)
	if err != nil {
		return serviceError(c, err, "unable to fetch user")
	}
	return Success(c, http.StatusOK, "user retrieved", user)
}

// Create handles POST /users requests.
func (h *UsersHandler) Create(c echo.Context) error {
	var req dto.AddUserRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.AddUser(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "unable to create user")
	}
	return Success(c, http.StatusCreated, "user created", user)
}
