// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Difficulty levels a tour can have.
const (
	DifficultyEasy      = "easy"
	DifficultyMedium    = "medium"
	DifficultyDifficult = "difficult"
)

// DefaultRatingsAverage is the rating a tour carries before anyone reviews it.
const DefaultRatingsAverage = 4.5

// Location is a GeoJSON point with display metadata.
type Location struct {
	Type        string    `json:"type" bson:"type" example:"Point"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates" example:"-80.185942,25.774772"` // [lng, lat]
	Address     string    `json:"address,omitempty" bson:"address,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Day         int       `json:"day,omitempty" bson:"day,omitempty"` // tour day on which this waypoint is visited
}

// Tour represents a bookable tour.
type Tour struct {
	ID              primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name            string               `json:"name" bson:"name" example:"The Forest Hiker"`
	Slug            string               `json:"slug" bson:"slug" example:"the-forest-hiker"`
	Duration        int                  `json:"duration" bson:"duration" example:"5"` // days
	MaxGroupSize    int                  `json:"maxGroupSize" bson:"maxGroupSize" example:"25"`
	Difficulty      string               `json:"difficulty" bson:"difficulty" example:"easy"`
	RatingsAverage  float64              `json:"ratingsAverage" bson:"ratingsAverage" example:"4.7"`
	RatingsQuantity int                  `json:"ratingsQuantity" bson:"ratingsQuantity" example:"23"`
	Price           float64              `json:"price" bson:"price" example:"497"`
	PriceDiscount   float64              `json:"priceDiscount,omitempty" bson:"priceDiscount,omitempty" example:"450"`
	Summary         string               `json:"summary" bson:"summary" example:"Breathtaking hike through the Canadian Banff National Park"`
	Description     string               `json:"description,omitempty" bson:"description,omitempty"`
	ImageCover      string               `json:"imageCover" bson:"imageCover" example:"tour-1-cover.jpg"`
	Images          []string             `json:"images,omitempty" bson:"images,omitempty"`
	StartDates      []time.Time          `json:"startDates,omitempty" bson:"startDates,omitempty"`
	SecretTour      bool                 `json:"secretTour" bson:"secretTour"` // excluded from default listings
	StartLocation   *Location            `json:"startLocation,omitempty" bson:"startLocation,omitempty"`
	Locations       []Location           `json:"locations,omitempty" bson:"locations,omitempty"`
	Guides          []primitive.ObjectID `json:"guides,omitempty" bson:"guides,omitempty"`
	DurationWeeks   float64              `json:"durationWeeks" bson:"-"` // derived, never stored
	CreatedAt       time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt       time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// ComputeDerived fills in fields that are calculated from stored state.
func (t *Tour) ComputeDerived() {
	t.DurationWeeks = float64(t.Duration) / 7
}

// CreateTourRequest is the payload for creating a tour.
type CreateTourRequest struct {
	Name          string      `json:"name" binding:"required,min=10,max=40"`
	Duration      int         `json:"duration" binding:"required,min=1"`
	MaxGroupSize  int         `json:"maxGroupSize" binding:"required,min=1"`
	Difficulty    string      `json:"difficulty" binding:"required,difficulty"`
	Price         float64     `json:"price" binding:"required,gt=0"`
	PriceDiscount float64     `json:"priceDiscount" binding:"omitempty,gt=0"`
	Summary       string      `json:"summary" binding:"required"`
	Description   string      `json:"description"`
	ImageCover    string      `json:"imageCover" binding:"required"`
	Images        []string    `json:"images"`
	StartDates    []time.Time `json:"startDates"`
	SecretTour    bool        `json:"secretTour"`
	StartLocation *Location   `json:"startLocation"`
	Locations     []Location  `json:"locations"`
	Guides        []string    `json:"guides"`
}

// UpdateTourRequest is the payload for partially updating a tour.
type UpdateTourRequest struct {
	Name          *string     `json:"name" binding:"omitempty,min=10,max=40"`
	Duration      *int        `json:"duration" binding:"omitempty,min=1"`
	MaxGroupSize  *int        `json:"maxGroupSize" binding:"omitempty,min=1"`
	Difficulty    *string     `json:"difficulty" binding:"omitempty,difficulty"`
	Price         *float64    `json:"price" binding:"omitempty,gt=0"`
	PriceDiscount *float64    `json:"priceDiscount" binding:"omitempty,gt=0"`
	Summary       *string     `json:"summary"`
	Description   *string     `json:"description"`
	ImageCover    *string     `json:"imageCover"`
	Images        []string    `json:"images"`
	StartDates    []time.Time `json:"startDates"`
	SecretTour    *bool       `json:"secretTour"`
	StartLocation *Location   `json:"startLocation"`
	Locations     []Location  `json:"locations"`
	Guides        []string    `json:"guides"`
}

// TourWithReviews is a tour joined with its reviews for detail responses.
type TourWithReviews struct {
	Tour
	Reviews []Review `json:"reviews"`
}

// TourStats is one per-difficulty bucket of the tour statistics aggregation.
type TourStats struct {
	Difficulty string  `json:"difficulty" bson:"_id"`
	NumTours   int     `json:"numTours" bson:"numTours"`
	NumRatings int     `json:"numRatings" bson:"numRatings"`
	AvgRating  float64 `json:"avgRating" bson:"avgRating"`
	AvgPrice   float64 `json:"avgPrice" bson:"avgPrice"`
	MinPrice   float64 `json:"minPrice" bson:"minPrice"`
	MaxPrice   float64 `json:"maxPrice" bson:"maxPrice"`
}

// MonthlyPlanEntry is one month of the monthly booking plan for a year.
type MonthlyPlanEntry struct {
	Month         int      `json:"month" bson:"month"`
	NumTourStarts int      `json:"numTourStarts" bson:"numTourStarts"`
	Tours         []string `json:"tours" bson:"tours"`
}

// TourDistance is one result of the distances-from-point aggregation.
type TourDistance struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	Name     string             `json:"name" bson:"name"`
	Distance float64            `json:"distance" bson:"distance"`
}
