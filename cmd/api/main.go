package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/devcraft/portfolio-api/internal/config"
	"github.com/devcraft/portfolio-api/internal/database"
	"github.com/devcraft/portfolio-api/internal/handler"
	"github.com/devcraft/portfolio-api/internal/mailer"
	middlewarepkg "github.com/devcraft/portfolio-api/internal/middleware"
	"github.com/devcraft/portfolio-api/internal/repository"
	"github.com/devcraft/portfolio-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	submissionsRepo := repository.NewPGXSubmissionsRepository(pool)
	dispatcher := mailer.NewDispatcher(cfg.Mail)

	contactService := service.NewContactService(submissionsRepo, dispatcher)
	estimator := service.NewEstimator()

	contactHandler := handler.NewContactHandler(contactService)
	estimateHandler := handler.NewEstimateHandler(estimator)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")
	api.POST("/contact", contactHandler.Submit, middlewarepkg.ContactRateLimiter(cfg.RateLimitContact))
	api.GET("/contact", contactHandler.List)
	api.POST("/estimate", estimateHandler.Estimate)

	// Production deployments serve the built client from the same process.
	if cfg.StaticDir != "" {
		e.Static("/", cfg.StaticDir)
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
