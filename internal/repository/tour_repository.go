// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/models"
	"tourbook/internal/query"
	"tourbook/pkg/slug"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TourRepository defines the interface for tour data operations.
type TourRepository interface {
	Create(ctx context.Context, tour *models.Tour) error
	FindAll(ctx context.Context, q *query.Query) ([]models.Tour, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tour, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateTourRequest, guides []primitive.ObjectID) (*models.Tour, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	UpdateRatingStats(ctx context.Context, id primitive.ObjectID, quantity int, average float64) error
	Stats(ctx context.Context) ([]models.TourStats, error)
	MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error)
	FindWithin(ctx context.Context, lat, lng, radiusRadians float64) ([]models.Tour, error)
	Distances(ctx context.Context, lat, lng, multiplier float64) ([]models.TourDistance, error)
}

// tourRepository implements TourRepository using MongoDB.
type tourRepository struct {
	collection *mongo.Collection
}

// NewTourRepository creates a new TourRepository.
func NewTourRepository(db *mongo.Database) TourRepository {
	return &tourRepository{
		collection: db.Collection("tours"),
	}
}

// visibleOnly is the read-path stage that hides secret tours from default
// listings.
func visibleOnly(filter bson.M) bson.M {
	if filter == nil {
		filter = bson.M{}
	}
	filter["secretTour"] = bson.M{"$ne": true}
	return filter
}

// Create inserts a new tour, deriving the slug from the name.
func (r *tourRepository) Create(ctx context.Context, tour *models.Tour) error {
	now := time.Now()
	tour.Slug = slug.Make(tour.Name)
	tour.CreatedAt = now
	tour.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, tour)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrTourNameTaken
		}
		return err
	}

	tour.ID = result.InsertedID.(primitive.ObjectID)
	tour.ComputeDerived()
	return nil
}

// FindAll executes a translated query against visible tours.
func (r *tourRepository) FindAll(ctx context.Context, q *query.Query) ([]models.Tour, error) {
	filter := visibleOnly(q.Filter)

	cursor, err := r.collection.Find(ctx, filter, q.FindOptions())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tours []models.Tour
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if tours == nil {
		tours = []models.Tour{}
	}
	for i := range tours {
		tours[i].ComputeDerived()
	}

	return tours, nil
}

// FindByID finds a visible tour by its ID.
func (r *tourRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tour, error) {
	var tour models.Tour

	err := r.collection.FindOne(ctx, visibleOnly(bson.M{"_id": id})).Decode(&tour)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTourNotFound
		}
		return nil, err
	}

	tour.ComputeDerived()
	return &tour, nil
}

// Update applies a partial update. A name change re-derives the slug.
func (r *tourRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateTourRequest, guides []primitive.ObjectID) (*models.Tour, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Name != nil {
		updateDoc["name"] = *update.Name
		updateDoc["slug"] = slug.Make(*update.Name)
	}
	if update.Duration != nil {
		updateDoc["duration"] = *update.Duration
	}
	if update.MaxGroupSize != nil {
		updateDoc["maxGroupSize"] = *update.MaxGroupSize
	}
	if update.Difficulty != nil {
		updateDoc["difficulty"] = *update.Difficulty
	}
	if update.Price != nil {
		updateDoc["price"] = *update.Price
	}
	if update.PriceDiscount != nil {
		updateDoc["priceDiscount"] = *update.PriceDiscount
	}
	if update.Summary != nil {
		updateDoc["summary"] = *update.Summary
	}
	if update.Description != nil {
		updateDoc["description"] = *update.Description
	}
	if update.ImageCover != nil {
		updateDoc["imageCover"] = *update.ImageCover
	}
	if update.Images != nil {
		updateDoc["images"] = update.Images
	}
	if update.StartDates != nil {
		updateDoc["startDates"] = update.StartDates
	}
	if update.SecretTour != nil {
		updateDoc["secretTour"] = *update.SecretTour
	}
	if update.StartLocation != nil {
		updateDoc["startLocation"] = update.StartLocation
	}
	if update.Locations != nil {
		updateDoc["locations"] = update.Locations
	}
	if guides != nil {
		updateDoc["guides"] = guides
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTourNotFound
		}
		if mongo.IsDuplicateKeyError(result.Err()) {
			return nil, apperrors.ErrTourNameTaken
		}
		return nil, result.Err()
	}

	var tour models.Tour
	if err := result.Decode(&tour); err != nil {
		return nil, err
	}
	tour.ComputeDerived()
	return &tour, nil
}

// Delete removes a tour from the database.
func (r *tourRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrTourNotFound
	}

	return nil
}

// UpdateRatingStats writes the materialized review statistics onto a tour.
// Only the rating synchronizer should call this outside admin edits.
func (r *tourRepository) UpdateRatingStats(ctx context.Context, id primitive.ObjectID, quantity int, average float64) error {
	result, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"ratingsQuantity": quantity,
		"ratingsAverage":  average,
	}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrTourNotFound
	}
	return nil
}

// Stats aggregates per-difficulty statistics over well-rated tours.
func (r *tourRepository) Stats(ctx context.Context) ([]models.TourStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"ratingsAverage": bson.M{"$gte": 4.5}}}},
		{{Key: "$group", Value: bson.M{
			"_id":        "$difficulty",
			"numTours":   bson.M{"$sum": 1},
			"numRatings": bson.M{"$sum": "$ratingsQuantity"},
			"avgRating":  bson.M{"$avg": "$ratingsAverage"},
			"avgPrice":   bson.M{"$avg": "$price"},
			"minPrice":   bson.M{"$min": "$price"},
			"maxPrice":   bson.M{"$max": "$price"},
		}}},
		{{Key: "$sort", Value: bson.M{"avgPrice": 1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stats []models.TourStats
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []models.TourStats{}
	}
	return stats, nil
}

// MonthlyPlan groups tour starts per month for the given year, busiest
// months first.
func (r *tourRepository) MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$startDates"}},
		{{Key: "$match", Value: bson.M{"startDates": bson.M{"$gte": from, "$lte": to}}}},
		{{Key: "$group", Value: bson.M{
			"_id":           bson.M{"$month": "$startDates"},
			"numTourStarts": bson.M{"$sum": 1},
			"tours":         bson.M{"$push": "$name"},
		}}},
		{{Key: "$addFields", Value: bson.M{"month": "$_id"}}},
		{{Key: "$project", Value: bson.M{"_id": 0}}},
		{{Key: "$sort", Value: bson.M{"numTourStarts": -1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plan []models.MonthlyPlanEntry
	if err := cursor.All(ctx, &plan); err != nil {
		return nil, err
	}
	if plan == nil {
		plan = []models.MonthlyPlanEntry{}
	}
	return plan, nil
}

// FindWithin returns visible tours whose start location lies inside the
// sphere cap of the given radius (in radians) around the center point.
func (r *tourRepository) FindWithin(ctx context.Context, lat, lng, radiusRadians float64) ([]models.Tour, error) {
	filter := visibleOnly(bson.M{
		"startLocation": bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{bson.A{lng, lat}, radiusRadians},
			},
		},
	})

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tours []models.Tour
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, err
	}
	if tours == nil {
		tours = []models.Tour{}
	}
	for i := range tours {
		tours[i].ComputeDerived()
	}
	return tours, nil
}

// Distances returns each tour's distance from the given point, scaled by
// the unit multiplier. $geoNear must be the first pipeline stage.
func (r *tourRepository) Distances(ctx context.Context, lat, lng, multiplier float64) ([]models.TourDistance, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$geoNear", Value: bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": bson.A{lng, lat},
			},
			"distanceField":      "distance",
			"distanceMultiplier": multiplier,
		}}},
		{{Key: "$project", Value: bson.M{"distance": 1, "name": 1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var distances []models.TourDistance
	if err := cursor.All(ctx, &distances); err != nil {
		return nil, err
	}
	if distances == nil {
		distances = []models.TourDistance{}
	}
	return distances, nil
}
