// Package service contains business logic for the application.
package service

import (
	"context"
	"time"

	"tourbook/internal/mail"
	"tourbook/internal/models"
	"tourbook/internal/query"
)

// TourServicer defines the interface for tour operations.
type TourServicer interface {
	GetTours(ctx context.Context, q *query.Query) ([]models.Tour, error)
	GetTour(ctx context.Context, id string) (*models.TourWithReviews, error)
	CreateTour(ctx context.Context, req *models.CreateTourRequest) (*models.Tour, error)
	UpdateTour(ctx context.Context, id string, req *models.UpdateTourRequest) (*models.Tour, error)
	DeleteTour(ctx context.Context, id string) error
	GetStats(ctx context.Context) ([]models.TourStats, error)
	GetMonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error)
	GetToursWithin(ctx context.Context, distance float64, latlng, unit string) ([]models.Tour, error)
	GetDistances(ctx context.Context, latlng, unit string) ([]models.TourDistance, error)
}

// ReviewServicer defines the interface for review operations.
type ReviewServicer interface {
	GetReviews(ctx context.Context, q *query.Query, tourID string) ([]models.Review, error)
	GetReview(ctx context.Context, id string) (*models.Review, error)
	CreateReview(ctx context.Context, req *models.CreateReviewRequest, tourIDParam, userID string) (*models.Review, error)
	UpdateReview(ctx context.Context, id string, req *models.UpdateReviewRequest) (*models.Review, error)
	DeleteReview(ctx context.Context, id string) error
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetUsers(ctx context.Context, q *query.Query) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	UpdateMe(ctx context.Context, id string, req *models.UpdateMeRequest) (*models.User, error)
	DeactivateMe(ctx context.Context, id string) error
	PhotoUploadURL(ctx context.Context, id string) (uploadURL, photoKey string, err error)
}

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	ForgotPassword(ctx context.Context, email, resetURLBase string) error
	ResetPassword(ctx context.Context, rawToken string, req *models.ResetPasswordRequest) (*models.AuthResponse, error)
	UpdatePassword(ctx context.Context, userID string, req *models.UpdatePasswordRequest) (*models.AuthResponse, error)
}

// BookingServicer defines the interface for booking operations.
type BookingServicer interface {
	GetBookings(ctx context.Context, q *query.Query) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	GetMyBookings(ctx context.Context, userID string) ([]models.Booking, error)
	CreateBooking(ctx context.Context, req *models.CreateBookingRequest, userID string) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, req *models.UpdateBookingRequest) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

// EmailQueue is the slice of the job queue the services need.
type EmailQueue interface {
	Enqueue(msg mail.Message) error
}

// PhotoStorage issues pre-signed URLs for profile photo objects.
type PhotoStorage interface {
	PresignPut(ctx context.Context, key string, expiry time.Duration) (string, error)
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
