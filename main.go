// File: quickfind/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quickfind/config"
	"quickfind/database"
	accountRepoPkg "quickfind/database/repository/account"
	bookingRepoPkg "quickfind/database/repository/booking"
	providerRepoPkg "quickfind/database/repository/provider"
	"quickfind/handlers"
	"quickfind/middleware"
	"quickfind/routes"
	"quickfind/services/channel"
	"quickfind/services/credit"
	"quickfind/services/dispatch"
	"quickfind/services/quickfind"
	"quickfind/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	bookRepo := bookingRepoPkg.NewMongoBookingRepo()
	acctRepo := accountRepoPkg.NewMongoAccountRepo()

	// channel bus and dispatch queue.
	bus := channel.NewRedisBus(utils.GetBusClient())
	dispatcher := dispatch.NewQueueDispatcher()
	defer dispatcher.Close()
	dispatch.InitSolicitationWorker(provRepo)

	// services.
	quickFindService := &quickfind.DefaultQuickFindService{
		ProviderRepo: provRepo,
		BookingRepo:  bookRepo,
		AccountRepo:  acctRepo,
		Bus:          bus,
		Dispatcher:   dispatcher,
	}
	creditGate := &credit.AccountGate{Repo: acctRepo}

	quickFindHandler := handlers.NewQuickFindHandler(quickFindService, creditGate)

	// Register routes.
	routes.RegisterRoutes(router, quickFindHandler)

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
