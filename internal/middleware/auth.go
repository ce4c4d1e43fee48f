// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/models"
	"tourbook/internal/repository"
	"tourbook/pkg/auth"
	"tourbook/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context keys for storing user data
const (
	UserIDKey = "userID"
	UserKey   = "currentUser"
)

// JWTCookieName is the cookie the token is also accepted from, for browser
// clients that cannot set an Authorization header.
const JWTCookieName = "jwt"

// Protect returns a middleware that authenticates requests. The token is
// read from the Authorization header or, failing that, the jwt cookie. The
// user is loaded so downstream handlers get a live account, not just a
// token claim: deactivated users and tokens issued before a password
// change are rejected here.
func Protect(jwtManager auth.TokenManager, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Unauthorized(c, apperrors.ErrNotLoggedIn.Error())
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(c, apperrors.ErrInvalidToken.Error())
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			response.Unauthorized(c, apperrors.ErrInvalidToken.Error())
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			response.Unauthorized(c, apperrors.ErrUserGone.Error())
			c.Abort()
			return
		}

		if claims.IssuedAt != nil && user.ChangedPasswordAfter(claims.IssuedAt.Time) {
			response.Unauthorized(c, apperrors.ErrPasswordChanged.Error())
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserKey, user)

		c.Next()
	}
}

// extractToken pulls the JWT from the Authorization header or jwt cookie.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Cookie(JWTCookieName)
	if err != nil {
		return ""
	}
	return cookie
}

// GetUserID retrieves the user ID from the context.
// Returns empty string if not found.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return ""
	}
	return userID.(string)
}

// GetUser retrieves the authenticated user from the context.
func GetUser(c *gin.Context) *models.User {
	user, exists := c.Get(UserKey)
	if !exists {
		return nil
	}
	return user.(*models.User)
}
