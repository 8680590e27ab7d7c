package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lightbnb/api/internal/dto"
	"github.com/lightbnb/api/internal/service"
)

// ReservationsHandler exposes guest reservation endpoints.
type ReservationsHandler struct {
	service *service.ReservationService
}

// NewReservationsHandler constructs a ReservationsHandler.
func NewReservationsHandler(service *service.ReservationService) *ReservationsHandler {
	return &ReservationsHandler{service: service}
}

// ListForGuest handles GET /users/:id/reservations requests.
func (h *ReservationsHandler) ListForGuest(c echo.Context) error {
	guestID, err := parseID(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid user id")
	}
	limit, err := parseLimit(c.QueryParam("limit"))
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	reservations, err := h.service.ListForGuest(c.Request().Context(), guestID, limit)
	if err != nil {
		return serviceError(c, err, "unable to list reservations")
	}
	return Success(c, http.StatusOK, "reservations retrieved", reservations)
}

// Create handles POST /reservations requests.
func (h *ReservationsHandler) Create(c echo.Context) error {
	var req dto.AddReservationRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	reservation, err := h.service.AddReservation(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "unable to create reservation")
	}
	return Success(c, http.StatusCreated, "reservation created", reservation)
}
