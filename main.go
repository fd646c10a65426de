package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"staybook-backend/config"
	"staybook-backend/controllers"
	"staybook-backend/middleware"
	"staybook-backend/routes"
	"staybook-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env not found or couldn't load it; continuing with environment variables")
	}

	logger := middleware.NewLogger(os.Getenv("APP_ENV"))
	log.Logger = logger

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		logger.Warn().Msg("SESSION_SECRET is not set; using an insecure development secret")
		sessionSecret = "staybook-dev-secret"
	}

	if err := config.ConnectDatabase(); err != nil {
		logger.Fatal().Err(err).Msg("database connect failed")
	}
	db := config.DB
	if db == nil {
		logger.Fatal().Msg("config.DB is nil after ConnectDatabase()")
	}
	logger.Info().Msg("database connection established and migrations applied")

	// Initialize services
	catalogService := services.NewCatalogService(db)
	userService := services.NewUserService(db)
	bookingService := services.NewBookingService(db)
	reviewService := services.NewReviewService(db)

	// Initialize controllers
	hotelController := controllers.NewHotelController(catalogService)
	userController := controllers.NewUserController(userService)
	bookingController := controllers.NewBookingController(bookingService)
	reviewController := controllers.NewReviewController(reviewService)

	router := routes.SetupRouter(
		logger,
		hotelController,
		userController,
		bookingController,
		reviewController,
		sessionSecret,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server stopped gracefully")
}
