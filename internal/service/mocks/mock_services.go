// Package mocks provides hand-written service mocks for handler tests.
package mocks

import (
	"context"

	"tourbook/internal/models"
	"tourbook/internal/query"
)

// MockTourService is a mock implementation of service.TourServicer.
type MockTourService struct {
	GetToursFunc       func(ctx context.Context, q *query.Query) ([]models.Tour, error)
	GetTourFunc        func(ctx context.Context, id string) (*models.TourWithReviews, error)
	CreateTourFunc     func(ctx context.Context, req *models.CreateTourRequest) (*models.Tour, error)
	UpdateTourFunc     func(ctx context.Context, id string, req *models.UpdateTourRequest) (*models.Tour, error)
	DeleteTourFunc     func(ctx context.Context, id string) error
	GetStatsFunc       func(ctx context.Context) ([]models.TourStats, error)
	GetMonthlyPlanFunc func(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error)
	GetToursWithinFunc func(ctx context.Context, distance float64, latlng, unit string) ([]models.Tour, error)
	GetDistancesFunc   func(ctx context.Context, latlng, unit string) ([]models.TourDistance, error)
}

func (m *MockTourService) GetTours(ctx context.Context, q *query.Query) ([]models.Tour, error) {
	return m.GetToursFunc(ctx, q)
}

func (m *MockTourService) GetTour(ctx context.Context, id string) (*models.TourWithReviews, error) {
	return m.GetTourFunc(ctx, id)
}

func (m *MockTourService) CreateTour(ctx context.Context, req *models.CreateTourRequest) (*models.Tour, error) {
	return m.CreateTourFunc(ctx, req)
}

func (m *MockTourService) UpdateTour(ctx context.Context, id string, req *models.UpdateTourRequest) (*models.Tour, error) {
	return m.UpdateTourFunc(ctx, id, req)
}

func (m *MockTourService) DeleteTour(ctx context.Context, id string) error {
	return m.DeleteTourFunc(ctx, id)
}

func (m *MockTourService) GetStats(ctx context.Context) ([]models.TourStats, error) {
	return m.GetStatsFunc(ctx)
}

func (m *MockTourService) GetMonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error) {
	return m.GetMonthlyPlanFunc(ctx, year)
}

func (m *MockTourService) GetToursWithin(ctx context.Context, distance float64, latlng, unit string) ([]models.Tour, error) {
	return m.GetToursWithinFunc(ctx, distance, latlng, unit)
}

func (m *MockTourService) GetDistances(ctx context.Context, latlng, unit string) ([]models.TourDistance, error) {
	return m.GetDistancesFunc(ctx, latlng, unit)
}

// MockReviewService is a mock implementation of service.ReviewServicer.
type MockReviewService struct {
	GetReviewsFunc   func(ctx context.Context, q *query.Query, tourID string) ([]models.Review, error)
	GetReviewFunc    func(ctx context.Context, id string) (*models.Review, error)
	CreateReviewFunc func(ctx context.Context, req *models.CreateReviewRequest, tourIDParam, userID string) (*models.Review, error)
	UpdateReviewFunc func(ctx context.Context, id string, req *models.UpdateReviewRequest) (*models.Review, error)
	DeleteReviewFunc func(ctx context.Context, id string) error
}

func (m *MockReviewService) GetReviews(ctx context.Context, q *query.Query, tourID string) ([]models.Review, error) {
	return m.GetReviewsFunc(ctx, q, tourID)
}

func (m *MockReviewService) GetReview(ctx context.Context, id string) (*models.Review, error) {
	return m.GetReviewFunc(ctx, id)
}

func (m *MockReviewService) CreateReview(ctx context.Context, req *models.CreateReviewRequest, tourIDParam, userID string) (*models.Review, error) {
	return m.CreateReviewFunc(ctx, req, tourIDParam, userID)
}

func (m *MockReviewService) UpdateReview(ctx context.Context, id string, req *models.UpdateReviewRequest) (*models.Review, error) {
	return m.UpdateReviewFunc(ctx, id, req)
}

func (m *MockReviewService) DeleteReview(ctx context.Context, id string) error {
	return m.DeleteReviewFunc(ctx, id)
}

// MockUserService is a mock implementation of service.UserServicer.
type MockUserService struct {
	GetUsersFunc       func(ctx context.Context, q *query.Query) ([]models.User, error)
	GetUserFunc        func(ctx context.Context, id string) (*models.User, error)
	UpdateUserFunc     func(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUserFunc     func(ctx context.Context, id string) error
	UpdateMeFunc       func(ctx context.Context, id string, req *models.UpdateMeRequest) (*models.User, error)
	DeactivateMeFunc   func(ctx context.Context, id string) error
	PhotoUploadURLFunc func(ctx context.Context, id string) (string, string, error)
}

func (m *MockUserService) GetUsers(ctx context.Context, q *query.Query) ([]models.User, error) {
	return m.GetUsersFunc(ctx, q)
}

func (m *MockUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return m.GetUserFunc(ctx, id)
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	return m.UpdateUserFunc(ctx, id, req)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id string) error {
	return m.DeleteUserFunc(ctx, id)
}

func (m *MockUserService) UpdateMe(ctx context.Context, id string, req *models.UpdateMeRequest) (*models.User, error) {
	return m.UpdateMeFunc(ctx, id, req)
}

func (m *MockUserService) DeactivateMe(ctx context.Context, id string) error {
	return m.DeactivateMeFunc(ctx, id)
}

func (m *MockUserService) PhotoUploadURL(ctx context.Context, id string) (string, string, error) {
	return m.PhotoUploadURLFunc(ctx, id)
}

// MockAuthService is a mock implementation of service.AuthServicer.
type MockAuthService struct {
	SignupFunc         func(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	LoginFunc          func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	ForgotPasswordFunc func(ctx context.Context, email, resetURLBase string) error
	ResetPasswordFunc  func(ctx context.Context, rawToken string, req *models.ResetPasswordRequest) (*models.AuthResponse, error)
	UpdatePasswordFunc func(ctx context.Context, userID string, req *models.UpdatePasswordRequest) (*models.AuthResponse, error)
}

func (m *MockAuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	return m.SignupFunc(ctx, req)
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	return m.LoginFunc(ctx, req)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email, resetURLBase string) error {
	return m.ForgotPasswordFunc(ctx, email, resetURLBase)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, rawToken string, req *models.ResetPasswordRequest) (*models.AuthResponse, error) {
	return m.ResetPasswordFunc(ctx, rawToken, req)
}

func (m *MockAuthService) UpdatePassword(ctx context.Context, userID string, req *models.UpdatePasswordRequest) (*models.AuthResponse, error) {
	return m.UpdatePasswordFunc(ctx, userID, req)
}

// MockBookingService is a mock implementation of service.BookingServicer.
type MockBookingService struct {
	GetBookingsFunc   func(ctx context.Context, q *query.Query) ([]models.Booking, error)
	GetBookingFunc    func(ctx context.Context, id string) (*models.Booking, error)
	GetMyBookingsFunc func(ctx context.Context, userID string) ([]models.Booking, error)
	CreateBookingFunc func(ctx context.Context, req *models.CreateBookingRequest, userID string) (*models.Booking, error)
	UpdateBookingFunc func(ctx context.Context, id string, req *models.UpdateBookingRequest) (*models.Booking, error)
	DeleteBookingFunc func(ctx context.Context, id string) error
}

func (m *MockBookingService) GetBookings(ctx context.Context, q *query.Query) ([]models.Booking, error) {
	return m.GetBookingsFunc(ctx, q)
}

func (m *MockBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return m.GetBookingFunc(ctx, id)
}

func (m *MockBookingService) GetMyBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return m.GetMyBookingsFunc(ctx, userID)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req *models.CreateBookingRequest, userID string) (*models.Booking, error) {
	return m.CreateBookingFunc(ctx, req, userID)
}

func (m *MockBookingService) UpdateBooking(ctx context.Context, id string, req *models.UpdateBookingRequest) (*models.Booking, error) {
	return m.UpdateBookingFunc(ctx, id, req)
}

func (m *MockBookingService) DeleteBooking(ctx context.Context, id string) error {
	return m.DeleteBookingFunc(ctx, id)
}
