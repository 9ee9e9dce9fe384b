// File: alliancewav/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alliancewav/config"
	"alliancewav/handlers"
	"alliancewav/middleware"
	"alliancewav/routes"
	"alliancewav/services/flow"
	"alliancewav/services/notification"
	"alliancewav/services/ratelimit"
	"alliancewav/services/submission"
	"alliancewav/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitBookingCache()

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, utils.GetBookingCacheClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Submission throttling: fixed window per client IP, swept periodically.
	limiter := ratelimit.New(
		time.Duration(config.AppConfig.BookingRateWindowMinutes)*time.Minute,
		config.AppConfig.BookingRateMaxRequests,
	)
	limiter.StartSweeper(10 * time.Minute)
	defer limiter.Stop()

	// services.
	mailer := notification.NewSMTPMailerFromConfig(config.AppConfig)
	submissionService := submission.NewSubmissionService(mailer, config.AppConfig, logger)

	stateStore := flow.NewRedisStateStore(utils.GetBookingCacheClient(), 30*time.Minute)
	flowService := &flow.DefaultFlowService{
		Store:     stateStore,
		Submitter: submissionService,
		Logger:    logger,
	}

	handlers.SubmissionService = submissionService
	handlers.SubmissionLimiter = limiter
	handlers.FlowService = flowService

	routes.RegisterRoutes(router)

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
