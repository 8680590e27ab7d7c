package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/lightbnb/api/internal/config"
	"github.com/lightbnb/api/internal/database"
	"github.com/lightbnb/api/internal/handler"
	"github.com/lightbnb/api/internal/logger"
	middlewarepkg "github.com/lightbnb/api/internal/middleware"
	"github.com/lightbnb/api/internal/repository"
	"github.com/lightbnb/api/internal/router"
	"github.com/lightbnb/api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := logger.New("info", true)
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	defer pool.Close()

	usersRepo := repository.NewPGXUsersRepository(pool)
	reservationsRepo := repository.NewPGXReservationsRepository(pool)
	propertiesRepo := repository.NewPGXPropertiesRepository(pool)

	propertyWriter, err := newPropertyWriter(cfg, propertiesRepo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open property store")
	}

	handlers := router.Handlers{
		Users:        handler.NewUsersHandler(service.NewUserService(usersRepo)),
		Reservations: handler.NewReservationsHandler(service.NewReservationService(reservationsRepo)),
		Properties:   handler.NewPropertiesHandler(service.NewPropertyService(propertiesRepo, propertyWriter)),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(log))
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, handlers)

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("property_store", cfg.PropertyStore).Msg("starting http server")
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// newPropertyWriter picks where new properties are stored. The file store is
// not visible to searches, which always read from PostgreSQL.
func newPropertyWriter(cfg *config.Config, pgWriter repository.PropertyWriter, log zerolog.Logger) (repository.PropertyWriter, error) {
	if cfg.PropertyStore != config.PropertyStoreFile {
		return pgWriter, nil
	}

	store, err := repository.NewFilePropertyStore(cfg.PropertyFile)
	if err != nil {
		return nil, err
	}
	log.Warn().
		Str("path", cfg.PropertyFile).
		Int("properties", store.Len()).
		Msg("new properties are written to the file store and will not appear in search results")
	return store, nil
}
