package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/middleware"
	"tourbook/internal/models"
	"tourbook/internal/query"
	"tourbook/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupReviewRouter(svc *mocks.MockReviewService, userID primitive.ObjectID) *gin.Engine {
	h := NewReviewHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID.Hex())
	})
	r.GET("/reviews", h.GetReviews)
	r.POST("/reviews", h.CreateReview)
	r.GET("/reviews/:id", h.GetReview)
	r.PATCH("/reviews/:id", h.UpdateReview)
	r.DELETE("/reviews/:id", h.DeleteReview)
	r.GET("/tours/:tourId/reviews", h.GetReviews)
	r.POST("/tours/:tourId/reviews", h.CreateReview)
	return r
}

func TestReviewHandler_CreateReview(t *testing.T) {
	userID := primitive.NewObjectID()
	tourID := primitive.NewObjectID()

	t.Run("nested route passes the tour from the URL and the user from the token", func(t *testing.T) {
		var gotTourParam, gotUserID string
		svc := &mocks.MockReviewService{
			CreateReviewFunc: func(ctx context.Context, req *models.CreateReviewRequest, tourIDParam, uid string) (*models.Review, error) {
				gotTourParam = tourIDParam
				gotUserID = uid
				return &models.Review{Review: req.Review}, nil
			},
		}
		router := setupReviewRouter(svc, userID)

		w := postJSON(router, http.MethodPost, "/tours/"+tourID.Hex()+"/reviews", gin.H{
			"review": "Loved it",
			"rating": 5,
		})

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, tourID.Hex(), gotTourParam)
		assert.Equal(t, userID.Hex(), gotUserID)
	})

	t.Run("maps a duplicate review to 409", func(t *testing.T) {
		svc := &mocks.MockReviewService{
			CreateReviewFunc: func(ctx context.Context, req *models.CreateReviewRequest, tourIDParam, uid string) (*models.Review, error) {
				return nil, apperrors.ErrDuplicateReview
			},
		}
		router := setupReviewRouter(svc, userID)

		w := postJSON(router, http.MethodPost, "/reviews", gin.H{
			"review": "again",
			"tour":   tourID.Hex(),
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("rejects a rating outside 1..5 at binding", func(t *testing.T) {
		router := setupReviewRouter(&mocks.MockReviewService{}, userID)

		w := postJSON(router, http.MethodPost, "/reviews", gin.H{
			"review": "too good",
			"rating": 6,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReviewHandler_GetReviews(t *testing.T) {
	userID := primitive.NewObjectID()
	tourID := primitive.NewObjectID()

	t.Run("nested route narrows to the tour", func(t *testing.T) {
		var gotTourParam string
		svc := &mocks.MockReviewService{
			GetReviewsFunc: func(ctx context.Context, q *query.Query, tid string) ([]models.Review, error) {
				gotTourParam = tid
				return []models.Review{}, nil
			},
		}
		router := setupReviewRouter(svc, userID)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tours/"+tourID.Hex()+"/reviews", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, tourID.Hex(), gotTourParam)
	})

	t.Run("flat route passes an empty tour id", func(t *testing.T) {
		var gotTourParam string
		svc := &mocks.MockReviewService{
			GetReviewsFunc: func(ctx context.Context, q *query.Query, tid string) ([]models.Review, error) {
				gotTourParam = tid
				return []models.Review{}, nil
			},
		}
		router := setupReviewRouter(svc, userID)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reviews", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, gotTourParam)
	})
}

func TestReviewHandler_DeleteReview(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("returns 204 on success", func(t *testing.T) {
		svc := &mocks.MockReviewService{
			DeleteReviewFunc: func(ctx context.Context, id string) error { return nil },
		}
		router := setupReviewRouter(svc, userID)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/reviews/"+primitive.NewObjectID().Hex(), nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("maps an unknown review to 404", func(t *testing.T) {
		svc := &mocks.MockReviewService{
			DeleteReviewFunc: func(ctx context.Context, id string) error {
				return apperrors.ErrReviewNotFound
			},
		}
		router := setupReviewRouter(svc, userID)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/reviews/"+primitive.NewObjectID().Hex(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
