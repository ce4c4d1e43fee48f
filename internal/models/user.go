package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user can have.
const (
	RoleUser      = "user"
	RoleGuide     = "guide"
	RoleLeadGuide = "lead-guide"
	RoleAdmin     = "admin"
)

// DefaultUserPhoto is the photo key assigned to new accounts.
const DefaultUserPhoto = "default.jpg"

// User represents a user in the system.
type User struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name                 string             `json:"name" bson:"name" example:"John Doe"`
	Email                string             `json:"email" bson:"email" example:"user@example.com"`
	Photo                string             `json:"photo" bson:"photo" example:"default.jpg"`
	Role                 string             `json:"role" bson:"role" example:"user"`
	Password             string             `json:"-" bson:"password"` // "-" = never include in JSON response
	PasswordChangedAt    *time.Time         `json:"-" bson:"passwordChangedAt,omitempty"`
	PasswordResetToken   string             `json:"-" bson:"passwordResetToken,omitempty"` // sha256 hash of the raw token
	PasswordResetExpires *time.Time         `json:"-" bson:"passwordResetExpires,omitempty"`
	Active               bool               `json:"-" bson:"active"` // soft delete: false excludes from default reads
	CreatedAt            time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt            time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// ChangedPasswordAfter reports whether the password was changed after the
// given token issue time. A missing passwordChangedAt means never changed.
func (u *User) ChangedPasswordAfter(issuedAt time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	return issuedAt.Before(*u.PasswordChangedAt)
}

// SignupRequest is the payload for creating an account.
type SignupRequest struct {
	Name            string `json:"name" binding:"required,min=2,max=20" example:"John Doe"`
	Email           string `json:"email" binding:"required,email" example:"user@example.com"`
	Password        string `json:"password" binding:"required,min=8,max=64" example:"pass1234"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required,eqfield=Password" example:"pass1234"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"pass1234"`
}

// AuthResponse is returned after signup, login and password changes.
type AuthResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User  *User  `json:"user"`
}

// UpdateMeRequest is the payload for a user updating their own profile.
// Password fields are deliberately absent; the handler rejects them.
type UpdateMeRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=20"`
	Email *string `json:"email" binding:"omitempty,email"`
	Photo *string `json:"photo"`
}

// UpdateUserRequest is the admin payload for updating any user.
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=20"`
	Email *string `json:"email" binding:"omitempty,email"`
	Role  *string `json:"role" binding:"omitempty,oneof=user guide lead-guide admin"`
	Photo *string `json:"photo"`
}

// ForgotPasswordRequest asks for a reset token to be emailed.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest sets a new password using an emailed reset token.
type ResetPasswordRequest struct {
	Password        string `json:"password" binding:"required,min=8,max=64"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required,eqfield=Password"`
}

// UpdatePasswordRequest changes the password of a logged-in user.
type UpdatePasswordRequest struct {
	PasswordCurrent string `json:"passwordCurrent" binding:"required"`
	Password        string `json:"password" binding:"required,min=8,max=64"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required,eqfield=Password"`
}
