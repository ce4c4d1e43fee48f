//go:build api

// Package testserver provides a fully wired test server for API tests.
package testserver

import (
	"context"
	"sync"
	"time"

	"tourbook/internal/cache"
	"tourbook/internal/events"
	"tourbook/internal/handler"
	"tourbook/internal/mail"
	"tourbook/internal/queue"
	"tourbook/internal/repository"
	"tourbook/internal/router"
	"tourbook/internal/service"
	"tourbook/internal/storage"
	"tourbook/pkg/auth"
	"tourbook/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestJWTSecret is the JWT secret used in tests.
	TestJWTSecret = "test-secret-key-for-api-tests"
	// TestJWTExpiry is the token expiry used in tests.
	TestJWTExpiry = 15 * time.Minute
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
	// TestCookieMaxAge is the jwt cookie lifetime in seconds used in tests.
	TestCookieMaxAge = 900
)

// CaptureSender records outgoing mail instead of delivering it.
type CaptureSender struct {
	mu       sync.Mutex
	messages []mail.Message
}

// Send records the message.
func (s *CaptureSender) Send(msg mail.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return nil
}

// Messages returns a copy of everything sent so far.
func (s *CaptureSender) Messages() []mail.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]mail.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Reset discards recorded messages.
func (s *CaptureSender) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

// TestServer holds all dependencies for API tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer

	// Repositories (for direct database access in tests)
	UserRepo    repository.UserRepository
	TourRepo    repository.TourRepository
	ReviewRepo  repository.ReviewRepository
	BookingRepo repository.BookingRepository

	// Auth
	JWTManager auth.TokenManager

	// Outgoing mail, captured instead of delivered
	Mail *CaptureSender

	emailQueue     *queue.MemoryQueue
	emailProcessor *queue.Processor
	cancel         context.CancelFunc
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	redisCache := cache.NewRedis(redisContainer.URI)

	// Presigning is pure request signing; no object store needs to run.
	s3Client := storage.NewS3Client("localhost:9000", "test-access", "test-secret", "tourbook-test", false)

	jwtManager := auth.NewJWTManager(TestJWTSecret, TestJWTExpiry)

	userRepo := repository.NewUserRepository(mongoDB.Database)
	tourRepo := repository.NewTourRepository(mongoDB.Database)
	reviewRepo := repository.NewReviewRepository(mongoDB.Database)
	bookingRepo := repository.NewBookingRepository(mongoDB.Database)

	sender := &CaptureSender{}
	emailQueue := queue.NewMemoryQueue(100)
	emailProcessor := queue.NewProcessor(emailQueue, sender, 2)

	ratingSyncer := service.NewRatingSynchronizer(reviewRepo, tourRepo, redisCache)
	authService := service.NewAuthService(userRepo, jwtManager, emailQueue)
	userService := service.NewUserService(userRepo, s3Client)
	tourService := service.NewTourService(tourRepo, reviewRepo, redisCache)
	reviewService := service.NewReviewService(reviewRepo, tourRepo, ratingSyncer)
	bookingService := service.NewBookingService(bookingRepo, tourRepo, events.NoopPublisher{})

	authHandler := handler.NewAuthHandler(authService, TestCookieMaxAge)
	userHandler := handler.NewUserHandler(userService)
	tourHandler := handler.NewTourHandler(tourService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	r := router.Setup(&router.Config{
		AuthHandler:    authHandler,
		TourHandler:    tourHandler,
		ReviewHandler:  reviewHandler,
		UserHandler:    userHandler,
		BookingHandler: bookingHandler,
		JWTManager:     jwtManager,
		UserRepository: userRepo,
	})

	procCtx, cancel := context.WithCancel(context.Background())
	emailProcessor.Start(procCtx)

	return &TestServer{
		Router:         r,
		MongoDB:        mongoDB,
		Redis:          redisContainer,
		UserRepo:       userRepo,
		TourRepo:       tourRepo,
		ReviewRepo:     reviewRepo,
		BookingRepo:    bookingRepo,
		JWTManager:     jwtManager,
		Mail:           sender,
		emailQueue:     emailQueue,
		emailProcessor: emailProcessor,
		cancel:         cancel,
	}, nil
}

// Reset empties the database, the cache and the captured mail between tests.
func (ts *TestServer) Reset(ctx context.Context) error {
	if err := ts.MongoDB.ClearCollections(ctx); err != nil {
		return err
	}
	if err := ts.Redis.FlushDB(ctx); err != nil {
		return err
	}
	ts.Mail.Reset()
	return nil
}

// Cleanup stops the email processor and terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	ts.cancel()
	ts.emailProcessor.Stop()

	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
