package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/middleware"
	"tourbook/internal/models"
	"tourbook/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupBookingRouter(svc *mocks.MockBookingService, userID primitive.ObjectID) *gin.Engine {
	h := NewBookingHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID.Hex())
	})
	r.GET("/bookings", h.GetBookings)
	r.POST("/bookings", h.CreateBooking)
	r.GET("/bookings/:id", h.GetBooking)
	r.PATCH("/bookings/:id", h.UpdateBooking)
	r.DELETE("/bookings/:id", h.DeleteBooking)
	r.GET("/users/my-bookings", h.GetMyBookings)
	return r
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	userID := primitive.NewObjectID()
	tourID := primitive.NewObjectID()

	t.Run("creates a booking for the calling user", func(t *testing.T) {
		var gotUserID string
		svc := &mocks.MockBookingService{
			CreateBookingFunc: func(ctx context.Context, req *models.CreateBookingRequest, uid string) (*models.Booking, error) {
				gotUserID = uid
				return &models.Booking{ID: primitive.NewObjectID(), Price: req.Price}, nil
			},
		}
		router := setupBookingRouter(svc, userID)

		w := postJSON(router, http.MethodPost, "/bookings", gin.H{
			"tour":  tourID.Hex(),
			"price": 497,
		})

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, userID.Hex(), gotUserID)
	})

	t.Run("rejects a missing tour field at binding", func(t *testing.T) {
		router := setupBookingRouter(&mocks.MockBookingService{}, userID)

		w := postJSON(router, http.MethodPost, "/bookings", gin.H{"price": 497})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps an unknown tour to 404", func(t *testing.T) {
		svc := &mocks.MockBookingService{
			CreateBookingFunc: func(ctx context.Context, req *models.CreateBookingRequest, uid string) (*models.Booking, error) {
				return nil, apperrors.ErrTourNotFound
			},
		}
		router := setupBookingRouter(svc, userID)

		w := postJSON(router, http.MethodPost, "/bookings", gin.H{
			"tour":  tourID.Hex(),
			"price": 497,
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookingHandler_GetMyBookings(t *testing.T) {
	userID := primitive.NewObjectID()

	svc := &mocks.MockBookingService{
		GetMyBookingsFunc: func(ctx context.Context, uid string) ([]models.Booking, error) {
			assert.Equal(t, userID.Hex(), uid)
			return []models.Booking{{Price: 497}}, nil
		},
	}
	router := setupBookingRouter(svc, userID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/my-bookings", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"results":1`)
}
