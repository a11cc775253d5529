// File: smartpark/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartpark/config"
	"smartpark/cron"
	"smartpark/database"
	lotRepoPkg "smartpark/database/repository/lot"
	notificationRepoPkg "smartpark/database/repository/notification"
	reservationRepoPkg "smartpark/database/repository/reservation"
	userRepoPkg "smartpark/database/repository/user"
	"smartpark/handlers"
	"smartpark/middleware"
	"smartpark/routes"
	adminSvc "smartpark/services/admin"
	lotSvc "smartpark/services/lot"
	"smartpark/services/notification"
	"smartpark/services/reservation"
	"smartpark/services/tasks"
	userSvc "smartpark/services/user"
	"smartpark/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	lotRepo := lotRepoPkg.NewMongoLotRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// Asynq client for post-commit announcements.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// services.
	userService := &userSvc.DefaultUserService{Repo: userRepo}

	notificationService := &notification.DefaultNotificationService{
		Repo:  notificationRepo,
		Users: userRepo,
		Push:  utils.FCMClient,
	}

	reservationService := &reservation.DefaultReservationService{
		Store:   reservationRepo,
		Emitter: tasks.NewQueueEmitter(queueClient),
	}

	lotService := &lotSvc.DefaultLotService{
		Repo:  lotRepo,
		Cache: utils.GetCacheClient(),
	}

	adminService := &adminSvc.DefaultAdminService{
		UsersRepo:        userRepo,
		LotsRepo:         lotRepo,
		ReservationsRepo: reservationRepo,
	}

	// Background worker delivering RESERVED / TIME_EXPIRED notifications.
	cron.InitReservationWorker(notificationService, reservationRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:      userRepo,
		Auth:          handlers.NewAuthHandler(userService),
		Users:         handlers.NewUserHandler(userService),
		Lots:          handlers.NewLotHandler(lotService),
		Reservations:  handlers.NewReservationHandler(reservationService, logger),
		Notifications: handlers.NewNotificationHandler(notificationService),
		Admin:         handlers.NewAdminHandler(adminService),
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
