// File: goodrunss/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goodrunss/config"
	"goodrunss/cron"
	"goodrunss/database"
	bookingRepoPkg "goodrunss/database/repository/booking"
	playerRepoPkg "goodrunss/database/repository/player"
	trainerRepoPkg "goodrunss/database/repository/trainer"
	venueRepoPkg "goodrunss/database/repository/venue"
	"goodrunss/handlers"
	"goodrunss/middleware"
	"goodrunss/routes"
	"goodrunss/services/discovery"
	"goodrunss/services/notification"
	"goodrunss/services/payment"
	"goodrunss/services/player"
	"goodrunss/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	playersRepo := playerRepoPkg.NewMongoPlayerRepo()
	trainersRepo := trainerRepoPkg.NewMongoTrainerRepo()
	venuesRepo := venueRepoPkg.NewMongoVenueRepo()
	bookingsRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	playerService := &player.DefaultPlayerService{Repo: playersRepo}

	discoveryService := &discovery.DefaultDiscoveryService{
		PlayerRepo:  playersRepo,
		TrainerRepo: trainersRepo,
		BookingRepo: bookingsRepo,
		CacheClient: utils.GetCacheClient(),
	}

	notificationService, err := notification.NewDefaultNotificationService(playerService, utils.FCMClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	connectService := payment.NewConnectService(logger, trainersRepo)

	// handlers.
	handlerBundle := &routes.HandlerBundle{
		PlayerRepo: playersRepo,
		Players:    handlers.NewPlayerHandler(playerService),
		Discovery:  handlers.NewDiscoveryHandler(discoveryService, logger),
		Venues:     handlers.NewVenueHandler(venuesRepo, logger),
		Trainers:   handlers.NewTrainerHandler(trainersRepo, connectService),
		Storage:    handlers.NewStorageHandler(storageService, venuesRepo),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder pipeline.
	cron.InitReminderWorker(notificationService)
	cron.StartReminderScheduler(bookingsRepo)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

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
