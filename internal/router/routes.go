package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lightbnb/api/internal/config"
	"github.com/lightbnb/api/internal/handler"
	middlewarepkg "github.com/lightbnb/api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Users        *handler.UsersHandler
	Reservations *handler.ReservationsHandler
	Properties   *handler.PropertiesHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	api := e.Group("", middlewarepkg.QueryTimeout(cfg.QueryTimeout))

	api.GET("/users", handlers.Users.GetByEmail)
	api.POST("/users", handlers.Users.Create)
	api.GET("/users/:id", handlers.Users.GetByID)
	api.GET("/users/:id/reservations", handlers.Reservations.ListForGuest)

	api.POST("/reservations", handlers.Reservations.Create)

	api.GET(middlewarepkg.SearchPath, handlers.Properties.Search, middlewarepkg.SearchRateLimiter(cfg.SearchLimit))
	api.POST(middlewarepkg.SearchPath, handlers.Properties.Create)
}
