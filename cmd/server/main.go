package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"tourbook/internal/cache"
	"tourbook/internal/config"
	"tourbook/internal/database"
	"tourbook/internal/events"
	"tourbook/internal/handler"
	"tourbook/internal/mail"
	"tourbook/internal/queue"
	"tourbook/internal/repository"
	"tourbook/internal/router"
	"tourbook/internal/service"
	"tourbook/internal/storage"
	"tourbook/internal/validator"
	"tourbook/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           Tourbook API
// @version         1.0
// @description     A REST API for browsing, reviewing and booking tours, built with Gin, MongoDB and Redis.

// @contact.name    API Support
// @contact.email   support@tourbook.io

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage for profile photos
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	tourRepo := repository.NewTourRepository(mongoDB.Database)
	reviewRepo := repository.NewReviewRepository(mongoDB.Database)
	bookingRepo := repository.NewBookingRepository(mongoDB.Database)

	// Email queue and processor
	smtpPort, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		log.Fatalf("Invalid SMTP port: %s", cfg.SMTPPort)
	}
	emailSender := mail.NewSMTPSender(cfg.SMTPHost, smtpPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFrom)
	emailQueue := queue.NewMemoryQueue(100)
	emailProcessor := queue.NewProcessor(emailQueue, emailSender, 2)

	// Booking event publisher
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("Failed to connect event publisher: %v", err)
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
	}

	// Service layer
	ratingSyncer := service.NewRatingSynchronizer(reviewRepo, tourRepo, redisCache)
	authService := service.NewAuthService(userRepo, jwtManager, emailQueue)
	userService := service.NewUserService(userRepo, s3Client)
	tourService := service.NewTourService(tourRepo, reviewRepo, redisCache)
	reviewService := service.NewReviewService(reviewRepo, tourRepo, ratingSyncer)
	bookingService := service.NewBookingService(bookingRepo, tourRepo, publisher)

	// Handler layer
	cookieMaxAge := int(cfg.JWTCookieExpiry / time.Second)
	authHandler := handler.NewAuthHandler(authService, cookieMaxAge)
	userHandler := handler.NewUserHandler(userService)
	tourHandler := handler.NewTourHandler(tourService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:    authHandler,
		TourHandler:    tourHandler,
		ReviewHandler:  reviewHandler,
		UserHandler:    userHandler,
		BookingHandler: bookingHandler,
		JWTManager:     jwtManager,
		UserRepository: userRepo,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start email processor
	emailProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop email processor (waits for workers)
	log.Println("Stopping email processor...")
	emailProcessor.Stop()

	log.Println("Server shutdown complete")
}
