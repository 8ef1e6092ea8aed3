package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/anees-health/service-booking/internal/application"
	"github.com/anees-health/service-booking/internal/config"
	bookingDomain "github.com/anees-health/service-booking/internal/domain/booking"
	"github.com/anees-health/service-booking/internal/domain/coverage"
	"github.com/anees-health/service-booking/internal/events"
	"github.com/anees-health/service-booking/internal/handler"
	"github.com/anees-health/service-booking/internal/logger"
	"github.com/anees-health/service-booking/internal/middleware"
	"github.com/anees-health/service-booking/internal/payment/kashier"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-booking")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-booking",
		zap.String("port", cfg.Port),
	)

	// Load the coverage dataset. Starting without one would mean every
	// check answers "not covered", so a load failure is fatal.
	dataset, err := coverage.LoadDataset(cfg.CoverageDataset)
	if err != nil {
		log.Fatal("failed to load coverage dataset", zap.Error(err))
	}
	log.Info("coverage dataset loaded",
		zap.String("path", cfg.CoverageDataset),
		zap.Int("areas", len(dataset)),
	)

	// Initialize Kafka producer
	kafkaProducer := events.NewProducer(cfg.Kafka().Brokers, log)
	defer func() { _ = kafkaProducer.Close() }()

	// Initialize payment gateway client
	gateway := kashier.NewClient(
		cfg.Kashier.MerchantID,
		cfg.Kashier.APIKey,
		cfg.Kashier.CheckoutURL,
		cfg.Kashier.RedirectURL,
	)

	// Initialize application services
	coverageService, err := application.NewCoverageService(dataset, log)
	if err != nil {
		log.Fatal("failed to create coverage service", zap.Error(err))
	}
	bookingService := application.NewBookingService(
		bookingDomain.DefaultPricingTable(),
		gateway,
		kafkaProducer,
		log,
	)

	// Initialize HTTP handlers
	coverageHandler := handler.NewCoverageHandler(coverageService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	webhookHandler := handler.NewWebhookHandler(bookingService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := handler.NewHealthHandler("service-booking")
	healthHandler.RegisterRoutes(router)

	// Register routes
	coverageHandler.RegisterRoutes(&router.RouterGroup)
	bookingHandler.RegisterRoutes(&router.RouterGroup)
	webhookHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-booking...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-booking stopped")
}
