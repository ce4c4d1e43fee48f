// Package mocks provides mock implementations of repository interfaces for testing.
package mocks

import (
	"context"
	"time"

	"tourbook/internal/models"
	"tourbook/internal/query"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockTourRepository is a mock implementation of repository.TourRepository.
type MockTourRepository struct {
	CreateFunc            func(ctx context.Context, tour *models.Tour) error
	FindAllFunc           func(ctx context.Context, q *query.Query) ([]models.Tour, error)
	FindByIDFunc          func(ctx context.Context, id primitive.ObjectID) (*models.Tour, error)
	UpdateFunc            func(ctx context.Context, id primitive.ObjectID, update *models.UpdateTourRequest, guides []primitive.ObjectID) (*models.Tour, error)
	DeleteFunc            func(ctx context.Context, id primitive.ObjectID) error
	UpdateRatingStatsFunc func(ctx context.Context, id primitive.ObjectID, quantity int, average float64) error
	StatsFunc             func(ctx context.Context) ([]models.TourStats, error)
	MonthlyPlanFunc       func(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error)
	FindWithinFunc        func(ctx context.Context, lat, lng, radiusRadians float64) ([]models.Tour, error)
	DistancesFunc         func(ctx context.Context, lat, lng, multiplier float64) ([]models.TourDistance, error)
}

func (m *MockTourRepository) Create(ctx context.Context, tour *models.Tour) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tour)
	}
	return nil
}

func (m *MockTourRepository) FindAll(ctx context.Context, q *query.Query) ([]models.Tour, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, q)
	}
	return nil, nil
}

func (m *MockTourRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tour, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTourRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateTourRequest, guides []primitive.ObjectID) (*models.Tour, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update, guides)
	}
	return nil, nil
}

func (m *MockTourRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTourRepository) UpdateRatingStats(ctx context.Context, id primitive.ObjectID, quantity int, average float64) error {
	if m.UpdateRatingStatsFunc != nil {
		return m.UpdateRatingStatsFunc(ctx, id, quantity, average)
	}
	return nil
}

func (m *MockTourRepository) Stats(ctx context.Context) ([]models.TourStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return nil, nil
}

func (m *MockTourRepository) MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error) {
	if m.MonthlyPlanFunc != nil {
		return m.MonthlyPlanFunc(ctx, year)
	}
	return nil, nil
}

func (m *MockTourRepository) FindWithin(ctx context.Context, lat, lng, radiusRadians float64) ([]models.Tour, error) {
	if m.FindWithinFunc != nil {
		return m.FindWithinFunc(ctx, lat, lng, radiusRadians)
	}
	return nil, nil
}

func (m *MockTourRepository) Distances(ctx context.Context, lat, lng, multiplier float64) ([]models.TourDistance, error) {
	if m.DistancesFunc != nil {
		return m.DistancesFunc(ctx, lat, lng, multiplier)
	}
	return nil, nil
}

// MockReviewRepository is a mock implementation of repository.ReviewRepository.
type MockReviewRepository struct {
	CreateFunc           func(ctx context.Context, review *models.Review) error
	FindAllFunc          func(ctx context.Context, q *query.Query) ([]models.Review, error)
	FindByIDFunc         func(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	FindByTourIDFunc     func(ctx context.Context, tourID primitive.ObjectID) ([]models.Review, error)
	UpdateFunc           func(ctx context.Context, id primitive.ObjectID, update *models.UpdateReviewRequest) (*models.Review, error)
	DeleteFunc           func(ctx context.Context, id primitive.ObjectID) error
	AggregateRatingsFunc func(ctx context.Context, tourID primitive.ObjectID) (*models.RatingStats, error)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, review)
	}
	return nil
}

func (m *MockReviewRepository) FindAll(ctx context.Context, q *query.Query) ([]models.Review, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, q)
	}
	return nil, nil
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockReviewRepository) FindByTourID(ctx context.Context, tourID primitive.ObjectID) ([]models.Review, error) {
	if m.FindByTourIDFunc != nil {
		return m.FindByTourIDFunc(ctx, tourID)
	}
	return nil, nil
}

func (m *MockReviewRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateReviewRequest) (*models.Review, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockReviewRepository) AggregateRatings(ctx context.Context, tourID primitive.ObjectID) (*models.RatingStats, error) {
	if m.AggregateRatingsFunc != nil {
		return m.AggregateRatingsFunc(ctx, tourID)
	}
	return &models.RatingStats{}, nil
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	CreateFunc           func(ctx context.Context, user *models.User) error
	FindByIDFunc         func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmailFunc      func(ctx context.Context, email string) (*models.User, error)
	FindAllFunc          func(ctx context.Context, q *query.Query) ([]models.User, error)
	UpdateFunc           func(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error)
	UpdatePasswordFunc   func(ctx context.Context, id primitive.ObjectID, hashedPassword string, changedAt time.Time) error
	SetResetTokenFunc    func(ctx context.Context, id primitive.ObjectID, hashedToken string, expires time.Time) error
	ClearResetTokenFunc  func(ctx context.Context, id primitive.ObjectID) error
	FindByResetTokenFunc func(ctx context.Context, hashedToken string) (*models.User, error)
	DeactivateFunc       func(ctx context.Context, id primitive.ObjectID) error
	DeleteFunc           func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindAll(ctx context.Context, q *query.Query) ([]models.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, q)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, hashedPassword string, changedAt time.Time) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, hashedPassword, changedAt)
	}
	return nil
}

func (m *MockUserRepository) SetResetToken(ctx context.Context, id primitive.ObjectID, hashedToken string, expires time.Time) error {
	if m.SetResetTokenFunc != nil {
		return m.SetResetTokenFunc(ctx, id, hashedToken, expires)
	}
	return nil
}

func (m *MockUserRepository) ClearResetToken(ctx context.Context, id primitive.ObjectID) error {
	if m.ClearResetTokenFunc != nil {
		return m.ClearResetTokenFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) FindByResetToken(ctx context.Context, hashedToken string) (*models.User, error) {
	if m.FindByResetTokenFunc != nil {
		return m.FindByResetTokenFunc(ctx, hashedToken)
	}
	return nil, nil
}

func (m *MockUserRepository) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockBookingRepository is a mock implementation of repository.BookingRepository.
type MockBookingRepository struct {
	CreateFunc       func(ctx context.Context, booking *models.Booking) error
	FindAllFunc      func(ctx context.Context, q *query.Query) ([]models.Booking, error)
	FindByIDFunc     func(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	FindByUserIDFunc func(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error)
	UpdateFunc       func(ctx context.Context, id primitive.ObjectID, update *models.UpdateBookingRequest) (*models.Booking, error)
	DeleteFunc       func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	return nil
}

func (m *MockBookingRepository) FindAll(ctx context.Context, q *query.Query) ([]models.Booking, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, q)
	}
	return nil, nil
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBookingRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockBookingRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateBookingRequest) (*models.Booking, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockBookingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
