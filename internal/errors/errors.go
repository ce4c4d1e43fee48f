// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("user with this email already exists")
	ErrInvalidCredentials  = errors.New("incorrect email or password")
	ErrPasswordRouteMisuse = errors.New("this route is not for password updates, use /updateMyPassword")
	ErrWrongPassword       = errors.New("current password is not correct")
	ErrResetTokenInvalid   = errors.New("reset token is invalid or has expired")
)

// Auth errors
var (
	ErrNotLoggedIn     = errors.New("you are not logged in")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrUserGone        = errors.New("the user belonging to this token no longer exists")
	ErrPasswordChanged = errors.New("password was changed after this token was issued, log in again")
	ErrForbidden       = errors.New("you do not have permission to perform this action")
)

// Tour errors
var (
	ErrTourNotFound    = errors.New("tour not found")
	ErrTourNameTaken   = errors.New("a tour with this name already exists")
	ErrInvalidDiscount = errors.New("discount price must be below the regular price")
	ErrInvalidLatLng   = errors.New("latitude and longitude must be provided as lat,lng")
	ErrInvalidUnit     = errors.New("unit must be mi or km")
)

// Review errors
var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("you have already reviewed this tour")
)

// Booking errors
var (
	ErrBookingNotFound = errors.New("booking not found")
)

// Email errors
var (
	ErrEmailNotSent = errors.New("there was an error sending the email, try again later")
)
