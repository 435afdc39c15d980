package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/lenscraft/studio-api/config"
	"github.com/lenscraft/studio-api/internal/handler"
	"github.com/lenscraft/studio-api/internal/middleware"
	"github.com/lenscraft/studio-api/internal/repository"
	"github.com/lenscraft/studio-api/internal/service"
	"github.com/lenscraft/studio-api/pkg/database"
	"github.com/lenscraft/studio-api/pkg/rabbitmq"
	"github.com/lenscraft/studio-api/pkg/token"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())
	database.EnsureDefaultAdmin(db, cfg.AdminEmail, cfg.AdminPassword)

	// RabbitMQ publisher is optional: booking notifications are best-effort.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Printf("rabbitmq unavailable, notifications disabled: %v", err)
		} else {
			publisher = p
			defer publisher.Close()
		}
	}

	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	// Repositories
	accountRepo := repository.NewAccountRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	teamRepo := repository.NewTeamRepository(db)

	// Services
	authSvc := service.NewAuthService(accountRepo, tokens)
	bookingSvc := service.NewBookingService(bookingRepo, packageRepo, publisher)
	statsSvc := service.NewStatsService(bookingRepo)
	catalogSvc := service.NewCatalogService(packageRepo, teamRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "studio-api"})
	})

	session := middleware.SessionResolver(tokens, accountRepo)

	handler.NewAuthHandler(authSvc).RegisterRoutes(e, session)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e, session)
	handler.NewAdminHandler(statsSvc).RegisterRoutes(e, session)
	handler.NewCatalogHandler(catalogSvc).RegisterRoutes(e, session)

	log.Printf("Studio API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
