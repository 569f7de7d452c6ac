// File: inkhaus/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inkhaus/config"
	"inkhaus/handlers"
	"inkhaus/middleware"
	"inkhaus/routes"
	"inkhaus/services/gallery"
	"inkhaus/services/intake"
	"inkhaus/services/relay"
	"inkhaus/services/storage"
	"inkhaus/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.InitSessionCache()

	storageService, err := storage.NewStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	intakeService := &intake.DefaultIntakeService{
		Storage:         storageService,
		Relay:           relay.NewClient(),
		BookingEndpoint: config.AppConfig.BookingRelayEndpoint,
		ContactEndpoint: config.AppConfig.ContactRelayEndpoint,
		SessionTTL:      time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
		Cache:           utils.GetSessionCacheClient(),
	}
	feedSource := gallery.NewInstagramSource(config.AppConfig.InstagramAccessToken)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(intakeService, logger),
		Contact: handlers.NewContactHandler(intakeService, logger),
		Gallery: handlers.NewGalleryHandler(feedSource, config.AppConfig.InstagramProfileURL, logger),
		Storage: handlers.NewStorageHandler(storageService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
