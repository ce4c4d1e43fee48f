package main

import (
	"context"
	"log"
	"time"

	"tourbook/internal/cache"
	"tourbook/internal/config"
	"tourbook/internal/database"
	"tourbook/internal/models"
	"tourbook/internal/repository"
	"tourbook/internal/service"
	"tourbook/pkg/auth"
	"tourbook/pkg/slug"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	ctx := context.Background()

	userIDs := seedUsers(ctx, mongoDB.Database)
	tourIDs := seedTours(ctx, mongoDB.Database, userIDs)
	seedReviews(ctx, mongoDB.Database, tourIDs, userIDs)
	seedBookings(ctx, mongoDB.Database, tourIDs, userIDs)

	// Recompute every tour's rating aggregates from the seeded reviews.
	resyncRatings(ctx, mongoDB.Database, redisCache, tourIDs)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	collection := db.Collection("users")

	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	password, _ := auth.HashPassword("pass1234")

	now := time.Now()

	seed := []struct {
		name  string
		email string
		role  string
	}{
		{"Admin Anna", "admin@tourbook.io", models.RoleAdmin},
		{"Leo Leadman", "leo@tourbook.io", models.RoleLeadGuide},
		{"Gina Guide", "gina@tourbook.io", models.RoleGuide},
		{"Alice Johnson", "alice@example.com", models.RoleUser},
		{"Bob Smith", "bob@example.com", models.RoleUser},
	}

	var users []interface{}
	for _, s := range seed {
		users = append(users, models.User{
			Name:      s.name,
			Email:     s.email,
			Photo:     models.DefaultUserPhoto,
			Role:      s.role,
			Password:  password,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seeded %d users", len(result.InsertedIDs))

	var userIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		userIDs = append(userIDs, id.(primitive.ObjectID))
	}

	return userIDs
}

// seedTours inserts demo tours. userIDs[1] and userIDs[2] (lead guide and
// guide) are assigned as guides.
func seedTours(ctx context.Context, db *mongo.Database, userIDs []primitive.ObjectID) []primitive.ObjectID {
	collection := db.Collection("tours")

	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear tours: %v", err)
	}

	now := time.Now()
	guides := []primitive.ObjectID{userIDs[1], userIDs[2]}

	tours := []models.Tour{
		{
			Name:           "The Forest Hiker",
			Duration:       5,
			MaxGroupSize:   25,
			Difficulty:     models.DifficultyEasy,
			RatingsAverage: models.DefaultRatingsAverage,
			Price:          397,
			Summary:        "Breathtaking hike through the Canadian Banff National Park",
			Description:    "Five days of guided hiking with overnight camps and wildlife spotting.",
			ImageCover:     "tour-1-cover.jpg",
			StartDates: []time.Time{
				now.AddDate(0, 1, 0),
				now.AddDate(0, 3, 0),
			},
			StartLocation: &models.Location{
				Type:        "Point",
				Coordinates: []float64{-115.570154, 51.178456},
				Address:     "224 Banff Ave, Banff, AB, Canada",
				Description: "Banff, CAN",
			},
			Locations: []models.Location{
				{Type: "Point", Coordinates: []float64{-116.214531, 51.417611}, Description: "Lake Louise", Day: 1},
				{Type: "Point", Coordinates: []float64{-118.076152, 52.875223}, Description: "Jasper National Park", Day: 3},
			},
			Guides:    guides,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			Name:           "The Sea Explorer",
			Duration:       7,
			MaxGroupSize:   15,
			Difficulty:     models.DifficultyMedium,
			RatingsAverage: models.DefaultRatingsAverage,
			Price:          497,
			PriceDiscount:  450,
			Summary:        "Exploring the jaw-dropping US east coast by foot and by boat",
			ImageCover:     "tour-2-cover.jpg",
			StartDates: []time.Time{
				now.AddDate(0, 2, 0),
			},
			StartLocation: &models.Location{
				Type:        "Point",
				Coordinates: []float64{-80.185942, 25.774772},
				Address:     "301 Biscayne Blvd, Miami, FL, USA",
				Description: "Miami, USA",
			},
			Guides:    guides[:1],
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			Name:           "The Snow Adventurer",
			Duration:       4,
			MaxGroupSize:   10,
			Difficulty:     models.DifficultyDifficult,
			RatingsAverage: models.DefaultRatingsAverage,
			Price:          997,
			Summary:        "Exciting adventure in the snow with snowboarding and skiing",
			ImageCover:     "tour-3-cover.jpg",
			StartDates: []time.Time{
				now.AddDate(0, 5, 0),
			},
			StartLocation: &models.Location{
				Type:        "Point",
				Coordinates: []float64{-106.822318, 39.190872},
				Address:     "419 S Mill St, Aspen, CO, USA",
				Description: "Aspen, USA",
			},
			SecretTour: false,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}

	var toInsert []interface{}
	for _, tour := range tours {
		tour.Slug = slug.Make(tour.Name)
		toInsert = append(toInsert, tour)
	}

	result, err := collection.InsertMany(ctx, toInsert)
	if err != nil {
		log.Fatalf("Failed to seed tours: %v", err)
	}

	log.Printf("Seeded %d tours", len(result.InsertedIDs))

	var tourIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		tourIDs = append(tourIDs, id.(primitive.ObjectID))
	}

	return tourIDs
}

func seedReviews(ctx context.Context, db *mongo.Database, tourIDs, userIDs []primitive.ObjectID) {
	collection := db.Collection("reviews")

	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear reviews: %v", err)
	}

	now := time.Now()
	alice, bob := userIDs[3], userIDs[4]

	reviews := []interface{}{
		models.Review{
			Review:    "Loved every minute of it, the guides were fantastic",
			Rating:    5,
			TourID:    tourIDs[0],
			UserID:    alice,
			CreatedAt: now.Add(-72 * time.Hour),
			UpdatedAt: now.Add(-72 * time.Hour),
		},
		models.Review{
			Review:    "Great scenery, food could have been better",
			Rating:    4,
			TourID:    tourIDs[0],
			UserID:    bob,
			CreatedAt: now.Add(-48 * time.Hour),
			UpdatedAt: now.Add(-48 * time.Hour),
		},
		models.Review{
			Review:    "The boat trip alone was worth the price",
			Rating:    5,
			TourID:    tourIDs[1],
			UserID:    alice,
			CreatedAt: now.Add(-24 * time.Hour),
			UpdatedAt: now.Add(-24 * time.Hour),
		},
		models.Review{
			Review:    "Tough slopes, exactly as advertised",
			Rating:    4,
			TourID:    tourIDs[2],
			UserID:    bob,
			CreatedAt: now.Add(-12 * time.Hour),
			UpdatedAt: now.Add(-12 * time.Hour),
		},
	}

	result, err := collection.InsertMany(ctx, reviews)
	if err != nil {
		log.Fatalf("Failed to seed reviews: %v", err)
	}

	log.Printf("Seeded %d reviews", len(result.InsertedIDs))
}

func seedBookings(ctx context.Context, db *mongo.Database, tourIDs, userIDs []primitive.ObjectID) {
	collection := db.Collection("bookings")

	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear bookings: %v", err)
	}

	now := time.Now()
	alice, bob := userIDs[3], userIDs[4]

	bookings := []interface{}{
		models.Booking{TourID: tourIDs[0], UserID: alice, Price: 397, Paid: true, CreatedAt: now.Add(-96 * time.Hour)},
		models.Booking{TourID: tourIDs[1], UserID: alice, Price: 497, Paid: true, CreatedAt: now.Add(-30 * time.Hour)},
		models.Booking{TourID: tourIDs[2], UserID: bob, Price: 997, Paid: true, CreatedAt: now.Add(-15 * time.Hour)},
	}

	result, err := collection.InsertMany(ctx, bookings)
	if err != nil {
		log.Fatalf("Failed to seed bookings: %v", err)
	}

	log.Printf("Seeded %d bookings", len(result.InsertedIDs))
}

func resyncRatings(ctx context.Context, db *mongo.Database, c cache.Cache, tourIDs []primitive.ObjectID) {
	tourRepo := repository.NewTourRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	syncer := service.NewRatingSynchronizer(reviewRepo, tourRepo, c)

	for _, tourID := range tourIDs {
		if err := syncer.Recalc(ctx, tourID); err != nil {
			log.Printf("Warning: Failed to resync ratings for tour %s: %v", tourID.Hex(), err)
			continue
		}
		log.Printf("Resynced ratings for tour %s", tourID.Hex())
	}
}
