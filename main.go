package main

import (
	"context"
	"os"
	"time"

	"github.com/brunecafe/cafe-service/config"
	"github.com/brunecafe/cafe-service/internal/auth"
	"github.com/brunecafe/cafe-service/internal/handler"
	"github.com/brunecafe/cafe-service/internal/middleware"
	"github.com/brunecafe/cafe-service/internal/notify"
	"github.com/brunecafe/cafe-service/internal/repository"
	"github.com/brunecafe/cafe-service/internal/service"
	"github.com/brunecafe/cafe-service/pkg/database"
	"github.com/brunecafe/cafe-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	ctx := context.Background()

	db := database.NewPostgresDB(cfg.DSN())

	// Notifications degrade to log-only when the broker is unreachable;
	// bookings must not depend on it.
	var notifier service.Notifier = notify.Log{}
	if publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL); err != nil {
		log.Warn().Err(err).Msg("rabbitmq unavailable, falling back to log notifier")
	} else {
		defer publisher.Close()
		notifier = notify.NewRabbit(publisher)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	menuRepo := repository.NewMenuRepository(db)

	// Services
	authSvc := service.NewAuthService(userRepo, sessionRepo, auth.ScryptHasher{})
	bookingSvc := service.NewBookingService(bookingRepo, notifier)
	settingsSvc := service.NewSettingsService(settingsRepo)
	menuSvc := service.NewMenuService(menuRepo)

	if err := authSvc.SeedAdmin(ctx, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}
	if err := menuSvc.SeedOnce(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed menu")
	}
	if err := sessionRepo.DeleteExpired(ctx, time.Now()); err != nil {
		log.Warn().Err(err).Msg("failed to purge expired sessions")
	}

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Info().Str("method", v.Method).Str("uri", v.URI).Int("status", v.Status).Msg("request")
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(middleware.Session(authSvc))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "cafe-service"})
	})

	api := e.Group("/api")
	handler.NewAuthHandler(authSvc).RegisterRoutes(api)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(api)
	handler.NewSettingsHandler(settingsSvc).RegisterRoutes(api)
	handler.NewMenuHandler(menuSvc).RegisterRoutes(api)

	log.Info().Str("port", cfg.ServerPort).Msg("cafe service starting")
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
