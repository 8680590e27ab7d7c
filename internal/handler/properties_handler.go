package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lightbnb/api/internal/dto"
	"github.com/lightbnb/api/internal/service"
)

// PropertiesHandler exposes property search and registration endpoints.
type PropertiesHandler struct {
	service *service.PropertyService
}

// NewPropertiesHandler constructs a PropertiesHandler.
func NewPropertiesHandler(service *service.PropertyService) *PropertiesHandler {
	return &PropertiesHandler{service: service}
}

// Search handles GET /properties requests. Absent parameters impose no constraint.
func (h *PropertiesHandler) Search(c echo.Context) error {
	var (
		criteria dto.PropertySearch
		err      error
	)

	if criteria.OwnerID, err = parseOptionalInt64(c.QueryParam("owner_id")); err != nil {
		return Error(c, http.StatusBadRequest, "invalid owner_id")
	}
	if city := c.QueryParam("city"); city != "" {
		criteria.City = &city
	}
	if criteria.MinimumPricePerNight, err = parseOptionalInt64(c.QueryParam("minimum_price_per_night")); err != nil {
		return Error(c, http.StatusBadRequest, "invalid minimum_price_per_night")
	}
	if criteria.MaximumPricePerNight, err = parseOptionalInt64(c.QueryParam("maximum_price_per_night")); err != nil {
		return Error(c, http.StatusBadRequest, "invalid maximum_price_per_night")
	}
	if criteria.MinimumRating, err = parseOptionalFloat(c.QueryParam("minimum_rating")); err != nil {
		return Error(c, http.StatusBadRequest, "invalid minimum_rating")
	}
	limit, err := parseLimit(c.QueryParam("limit"))
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	listings, err := h.service.Search(c.Request().Context(), criteria, limit)
	if err != nil {
		return serviceError(c, err, "unable to search properties")
	}
	return Success(c, http.StatusOK, "properties retrieved", listings)
}

// Create handles POST /properties requests.
func (h *PropertiesHandler) Create(c echo.Context) error {
	var req dto.AddPropertyRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	property, err := h.service.AddProperty(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "unable to create property")
	}
	return Success(c, http.StatusCreated, "property created", property)
}
