package service

import (
	"context"
	"log"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/events"
	"tourbook/internal/models"
	"tourbook/internal/query"
	"tourbook/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingService handles business logic for booking operations.
type BookingService struct {
	repo      repository.BookingRepository
	tours     repository.TourRepository
	publisher events.Publisher
}

// NewBookingService creates a new BookingService.
func NewBookingService(repo repository.BookingRepository, tours repository.TourRepository, publisher events.Publisher) *BookingService {
	return &BookingService{
		repo:      repo,
		tours:     tours,
		publisher: publisher,
	}
}

// GetBookings lists bookings matching a translated query.
func (s *BookingService) GetBookings(ctx context.Context, q *query.Query) ([]models.Booking, error) {
	return s.repo.FindAll(ctx, q)
}

// GetBooking retrieves a single booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrBookingNotFound
	}
	return s.repo.FindByID(ctx, objectID)
}

// GetMyBookings lists the calling user's bookings, newest first.
func (s *BookingService) GetMyBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return s.repo.FindByUserID(ctx, objectID)
}

// CreateBooking books a tour for a user and publishes a booking.created
// event. The user defaults to the caller when the body omits it.
func (s *BookingService) CreateBooking(ctx context.Context, req *models.CreateBookingRequest, userID string) (*models.Booking, error) {
	tourID, err := primitive.ObjectIDFromHex(req.Tour)
	if err != nil {
		return nil, apperrors.ErrTourNotFound
	}

	rawUser := req.User
	if rawUser == "" {
		rawUser = userID
	}
	bookerID, err := primitive.ObjectIDFromHex(rawUser)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if _, err := s.tours.FindByID(ctx, tourID); err != nil {
		return nil, err
	}

	paid := true
	if req.Paid != nil {
		paid = *req.Paid
	}

	booking := &models.Booking{
		TourID: tourID,
		UserID: bookerID,
		Price:  req.Price,
		Paid:   paid,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	event := events.BookingCreated{
		BookingID: booking.ID.Hex(),
		TourID:    booking.TourID.Hex(),
		UserID:    booking.UserID.Hex(),
		Price:     booking.Price,
		CreatedAt: booking.CreatedAt,
	}
	if err := s.publisher.PublishBookingCreated(ctx, event); err != nil {
		// The booking is already persisted; downstream consumers catch up
		// from the database if the broker was down.
		log.Printf("failed to publish booking.created for %s: %v", booking.ID.Hex(), err)
	}

	return booking, nil
}

// UpdateBooking applies a partial update to a booking.
func (s *BookingService) UpdateBooking(ctx context.Context, id string, req *models.UpdateBookingRequest) (*models.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrBookingNotFound
	}
	return s.repo.Update(ctx, objectID, req)
}

// DeleteBooking removes a booking.
func (s *BookingService) DeleteBooking(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrBookingNotFound
	}
	return s.repo.Delete(ctx, objectID)
}
