package repository

import (
	"context"
	"errors"
	"time"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/models"
	"tourbook/internal/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookingRepository defines the interface for booking data operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindAll(ctx context.Context, q *query.Query) ([]models.Booking, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateBookingRequest) (*models.Booking, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// bookingRepository implements BookingRepository using MongoDB.
type bookingRepository struct {
	collection *mongo.Collection
}

// NewBookingRepository creates a new BookingRepository.
func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &bookingRepository{
		collection: db.Collection("bookings"),
	}
}

// Create inserts a new booking.
func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	booking.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return err
	}

	booking.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindAll executes a translated query against the booking collection.
func (r *bookingRepository) FindAll(ctx context.Context, q *query.Query) ([]models.Booking, error) {
	cursor, err := r.collection.Find(ctx, q.Filter, q.FindOptions())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// FindByID finds a booking by its ID.
func (r *bookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}

// FindByUserID returns all bookings made by one user, newest first.
func (r *bookingRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// Update applies a partial update to a booking.
func (r *bookingRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateBookingRequest) (*models.Booking, error) {
	updateDoc := bson.M{}

	if update.Price != nil {
		updateDoc["price"] = *update.Price
	}
	if update.Paid != nil {
		updateDoc["paid"] = *update.Paid
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, result.Err()
	}

	var booking models.Booking
	if err := result.Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// Delete removes a booking from the database.
func (r *bookingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}
