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

// ReviewRepository defines the interface for review data operations.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindAll(ctx context.Context, q *query.Query) ([]models.Review, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	FindByTourID(ctx context.Context, tourID primitive.ObjectID) ([]models.Review, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AggregateRatings(ctx context.Context, tourID primitive.ObjectID) (*models.RatingStats, error)
}

// reviewRepository implements ReviewRepository using MongoDB.
type reviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &reviewRepository{
		collection: db.Collection("reviews"),
	}
}

// Create inserts a new review. The unique (tour, user) index turns a second
// review from the same user into ErrDuplicateReview.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateReview
		}
		return err
	}

	review.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindAll executes a translated query against the review collection.
func (r *reviewRepository) FindAll(ctx context.Context, q *query.Query) ([]models.Review, error) {
	cursor, err := r.collection.Find(ctx, q.Filter, q.FindOptions())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

// FindByID finds a review by its ID.
func (r *reviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	var review models.Review

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, err
	}

	return &review, nil
}

// FindByTourID returns all reviews for a tour, newest first.
func (r *reviewRepository) FindByTourID(ctx context.Context, tourID primitive.ObjectID) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"tour": tourID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

// Update applies a partial update to a review.
func (r *reviewRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateReviewRequest) (*models.Review, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Review != nil {
		updateDoc["review"] = *update.Review
	}
	if update.Rating != nil {
		updateDoc["rating"] = *update.Rating
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, result.Err()
	}

	var review models.Review
	if err := result.Decode(&review); err != nil {
		return nil, err
	}
	return &review, nil
}

// Delete removes a review from the database.
func (r *reviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrReviewNotFound
	}

	return nil
}

// AggregateRatings computes the review count and mean rating for one tour.
// A tour with no reviews yields quantity 0; the caller decides the default
// average.
func (r *reviewRepository) AggregateRatings(ctx context.Context, tourID primitive.ObjectID) (*models.RatingStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"tour": tourID}}},
		{{Key: "$group", Value: bson.M{
			"_id":         "$tour",
			"numOfRating": bson.M{"$sum": 1},
			"avgRating":   bson.M{"$avg": "$rating"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stats []models.RatingStats
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}

	if len(stats) == 0 {
		return &models.RatingStats{}, nil
	}
	return &stats[0], nil
}
