package middleware

import (
	apperrors "tourbook/internal/errors"
	"tourbook/pkg/response"

	"github.com/gin-gonic/gin"
)

// RestrictTo returns a middleware that only lets the named roles through.
// It must run after Protect, which loads the user into the context.
func RestrictTo(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		user := GetUser(c)
		if user == nil {
			response.Unauthorized(c, apperrors.ErrNotLoggedIn.Error())
			c.Abort()
			return
		}

		if _, ok := allowed[user.Role]; !ok {
			response.Forbidden(c, apperrors.ErrForbidden.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}
