package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"mountaincottage/config"
	"mountaincottage/database"
	cottageRepo "mountaincottage/database/repository/cottage"
	ratingRepo "mountaincottage/database/repository/rating"
	registrationRepo "mountaincottage/database/repository/registration"
	reservationRepo "mountaincottage/database/repository/reservation"
	userRepoPkg "mountaincottage/database/repository/user"
	"mountaincottage/handlers"
	"mountaincottage/middleware"
	"mountaincottage/routes"
	"mountaincottage/services/admin"
	"mountaincottage/services/auth"
	"mountaincottage/services/booking"
	"mountaincottage/services/cottage"
	"mountaincottage/services/stats"
	"mountaincottage/services/storage"
	"mountaincottage/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	storageService, err := storage.NewCloudinaryStorage()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	cottages := cottageRepo.NewMongoCottageRepo()
	ratings := ratingRepo.NewMongoRatingRepo()
	reservations := reservationRepo.NewMongoReservationRepo()
	registrations := registrationRepo.NewMongoRegistrationRepo()

	if err := admin.EnsureAdmin(userRepo, logger); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure admin account: %v", err)
	}

	// services.
	sessions := auth.NewRedisSessionStore()
	authService := auth.NewAuthService(userRepo, registrations, storageService, sessions, logger)
	bookingService := booking.NewBookingService(reservations, cottages, ratings, userRepo, logger)
	cottageService := cottage.NewCottageService(cottages, ratings, reservations, userRepo, storageService, logger)
	adminService := admin.NewAdminService(userRepo, cottages, ratings, registrations, storageService, sessions, logger)
	statsService := stats.NewStatsService(cottages, userRepo, reservations, stats.NewRedisStatsCache(), logger)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		userRepo,
		sessions,
		authService,
		bookingService,
		cottageService,
		adminService,
		statsService,
	)
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
