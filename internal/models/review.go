package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultReviewRating is applied when a review is submitted without a rating.
const DefaultReviewRating = 4.5

// Review is a user's rating and comment for a single tour.
type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Review    string             `json:"review" bson:"review" example:"Loved every minute of it"`
	Rating    float64            `json:"rating" bson:"rating" example:"4.5"`
	TourID    primitive.ObjectID `json:"tour" bson:"tour" example:"507f1f77bcf86cd799439012"`
	UserID    primitive.ObjectID `json:"user" bson:"user" example:"507f1f77bcf86cd799439013"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateReviewRequest is the payload for creating a review. Tour and User
// may be omitted on the nested route, where they come from the URL and token.
type CreateReviewRequest struct {
	Review string  `json:"review" binding:"required"`
	Rating float64 `json:"rating" binding:"omitempty,min=1,max=5"`
	Tour   string  `json:"tour" binding:"omitempty"`
	User   string  `json:"user" binding:"omitempty"`
}

// UpdateReviewRequest is the payload for updating a review.
type UpdateReviewRequest struct {
	Review *string  `json:"review"`
	Rating *float64 `json:"rating" binding:"omitempty,min=1,max=5"`
}

// RatingStats is the aggregate of all reviews for one tour.
type RatingStats struct {
	Quantity int     `json:"quantity" bson:"numOfRating"`
	Average  float64 `json:"average" bson:"avgRating"`
}
