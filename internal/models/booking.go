package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking associates a user with a tour they paid for.
type Booking struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TourID    primitive.ObjectID `json:"tour" bson:"tour" example:"507f1f77bcf86cd799439012"`
	UserID    primitive.ObjectID `json:"user" bson:"user" example:"507f1f77bcf86cd799439013"`
	Price     float64            `json:"price" bson:"price" example:"497"`
	Paid      bool               `json:"paid" bson:"paid"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// CreateBookingRequest is the payload for creating a booking.
type CreateBookingRequest struct {
	Tour  string  `json:"tour" binding:"required"`
	User  string  `json:"user" binding:"omitempty"`
	Price float64 `json:"price" binding:"required,gt=0"`
	Paid  *bool   `json:"paid"`
}

// UpdateBookingRequest is the payload for updating a booking.
type UpdateBookingRequest struct {
	Price *float64 `json:"price" binding:"omitempty,gt=0"`
	Paid  *bool    `json:"paid"`
}
