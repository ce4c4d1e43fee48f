package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/models"
	repomocks "tourbook/internal/repository/mocks"
	"tourbook/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupProtectedRouter(jwtManager *auth.JWTManager, users *repomocks.MockUserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Protect(jwtManager, users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": GetUserID(c)})
	})
	return router
}

func TestProtect(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	userID := primitive.NewObjectID()

	activeUsers := &repomocks.MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleUser, Active: true}, nil
		},
	}

	t.Run("accepts a valid bearer token", func(t *testing.T) {
		router := setupProtectedRouter(jwtManager, activeUsers)
		token, err := jwtManager.GenerateToken(userID.Hex())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.Hex())
	})

	t.Run("accepts the token from the jwt cookie", func(t *testing.T) {
		router := setupProtectedRouter(jwtManager, activeUsers)
		token, err := jwtManager.GenerateToken(userID.Hex())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: JWTCookieName, Value: token})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a missing token", func(t *testing.T) {
		router := setupProtectedRouter(jwtManager, activeUsers)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a malformed authorization header", func(t *testing.T) {
		router := setupProtectedRouter(jwtManager, activeUsers)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		router := setupProtectedRouter(jwtManager, activeUsers)
		otherManager := auth.NewJWTManager("other-secret", time.Hour)
		token, err := otherManager.GenerateToken(userID.Hex())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a token whose user no longer exists", func(t *testing.T) {
		goneUsers := &repomocks.MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		router := setupProtectedRouter(jwtManager, goneUsers)
		token, err := jwtManager.GenerateToken(userID.Hex())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a token issued before a password change", func(t *testing.T) {
		token, err := jwtManager.GenerateToken(userID.Hex())
		require.NoError(t, err)

		changedAt := time.Now().Add(time.Hour)
		changedUsers := &repomocks.MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
				return &models.User{ID: id, PasswordChangedAt: &changedAt}, nil
			},
		}
		router := setupProtectedRouter(jwtManager, changedUsers)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), apperrors.ErrPasswordChanged.Error())
	})
}

func TestRestrictTo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setupRouter := func(role string) *gin.Engine {
		router := gin.New()
		router.GET("/admin",
			func(c *gin.Context) {
				c.Set(UserKey, &models.User{Role: role})
			},
			RestrictTo(models.RoleAdmin, models.RoleLeadGuide),
			func(c *gin.Context) {
				c.Status(http.StatusOK)
			},
		)
		return router
	}

	t.Run("lets an allowed role through", func(t *testing.T) {
		router := setupRouter(models.RoleAdmin)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("forbids a disallowed role", func(t *testing.T) {
		router := setupRouter(models.RoleUser)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("rejects when no user is loaded", func(t *testing.T) {
		router := gin.New()
		router.GET("/admin", RestrictTo(models.RoleAdmin), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
