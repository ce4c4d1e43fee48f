// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	"tourbook/internal/handler"
	"tourbook/internal/middleware"
	"tourbook/internal/models"
	"tourbook/internal/repository"
	"tourbook/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler    *handler.AuthHandler
	TourHandler    *handler.TourHandler
	ReviewHandler  *handler.ReviewHandler
	UserHandler    *handler.UserHandler
	BookingHandler *handler.BookingHandler
	JWTManager     auth.TokenManager
	UserRepository repository.UserRepository
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	protect := middleware.Protect(cfg.JWTManager, cfg.UserRepository)
	adminOnly := middleware.RestrictTo(models.RoleAdmin)
	staffOnly := middleware.RestrictTo(models.RoleAdmin, models.RoleLeadGuide)
	guidesAndUp := middleware.RestrictTo(models.RoleAdmin, models.RoleLeadGuide, models.RoleGuide)

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Tour routes
		tours := v1.Group("/tours")
		{
			tours.GET("/top-5-cheap", cfg.TourHandler.AliasTopTours, cfg.TourHandler.GetTours)
			tours.GET("/tour-stats", cfg.TourHandler.GetTourStats)
			tours.GET("/monthly-plan/:year", protect, guidesAndUp, cfg.TourHandler.GetMonthlyPlan)
			tours.GET("/tours-within/:distance/center/:latlng/unit/:unit", cfg.TourHandler.GetToursWithin)
			tours.GET("/distances/:latlng/unit/:unit", cfg.TourHandler.GetDistances)

			tours.GET("", cfg.TourHandler.GetTours)
			tours.POST("", protect, staffOnly, cfg.TourHandler.CreateTour)
			tours.GET("/:id", cfg.TourHandler.GetTour)
			tours.PATCH("/:id", protect, staffOnly, cfg.TourHandler.UpdateTour)
			tours.DELETE("/:id", protect, staffOnly, cfg.TourHandler.DeleteTour)

			// Nested reviews: list a tour's reviews, review a tour
			tours.GET("/:id/reviews", protect, wrapTourID(cfg.ReviewHandler.GetReviews))
			tours.POST("/:id/reviews", protect, middleware.RestrictTo(models.RoleUser), wrapTourID(cfg.ReviewHandler.CreateReview))
		}

		// Flat review routes
		reviews := v1.Group("/reviews")
		reviews.Use(protect)
		{
			reviews.GET("", cfg.ReviewHandler.GetReviews)
			reviews.POST("", middleware.RestrictTo(models.RoleUser), cfg.ReviewHandler.CreateReview)
			reviews.GET("/:id", cfg.ReviewHandler.GetReview)
			reviews.PATCH("/:id", middleware.RestrictTo(models.RoleUser, models.RoleAdmin), cfg.ReviewHandler.UpdateReview)
			reviews.DELETE("/:id", middleware.RestrictTo(models.RoleUser, models.RoleAdmin), cfg.ReviewHandler.DeleteReview)
		}

		// Auth routes (public)
		users := v1.Group("/users")
		{
			users.POST("/signup", cfg.AuthHandler.Signup)
			users.POST("/login", cfg.AuthHandler.Login)
			users.GET("/logout", cfg.AuthHandler.Logout)
			users.POST("/forgotPassword", cfg.AuthHandler.ForgotPassword)
			users.PATCH("/resetPassword/:token", cfg.AuthHandler.ResetPassword)
		}

		// Current-user routes (protected)
		me := v1.Group("/users")
		me.Use(protect)
		{
			me.PATCH("/updateMyPassword", cfg.AuthHandler.UpdatePassword)
			me.GET("/me", cfg.UserHandler.GetMe)
			me.PATCH("/updateMe", cfg.UserHandler.UpdateMe)
			me.DELETE("/deleteMe", cfg.UserHandler.DeleteMe)
			me.GET("/me/photo-upload-url", cfg.UserHandler.GetPhotoUploadURL)
			me.GET("/my-bookings", cfg.BookingHandler.GetMyBookings)
		}

		// User administration (protected, admin only)
		admin := v1.Group("/users")
		admin.Use(protect, adminOnly)
		{
			admin.GET("", cfg.UserHandler.GetUsers)
			admin.GET("/:id", cfg.UserHandler.GetUser)
			admin.PATCH("/:id", cfg.UserHandler.UpdateUser)
			admin.DELETE("/:id", cfg.UserHandler.DeleteUser)
		}

		// Booking routes (protected)
		bookings := v1.Group("/bookings")
		bookings.Use(protect)
		{
			bookings.POST("", cfg.BookingHandler.CreateBooking)
			bookings.GET("/my", cfg.BookingHandler.GetMyBookings)
			bookings.GET("", staffOnly, cfg.BookingHandler.GetBookings)
			bookings.GET("/:id", staffOnly, cfg.BookingHandler.GetBooking)
			bookings.PATCH("/:id", staffOnly, cfg.BookingHandler.UpdateBooking)
			bookings.DELETE("/:id", staffOnly, cfg.BookingHandler.DeleteBooking)
		}
	}

	return r
}

// wrapTourID renames the :id path param to the tourId the review handler
// reads, so the nested routes can share gin's single-wildcard constraint
// with the tour routes.
func wrapTourID(next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Params = append(c.Params, gin.Param{Key: "tourId", Value: c.Param("id")})
		next(c)
	}
}
