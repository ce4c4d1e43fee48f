package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/models"
	"tourbook/internal/query"
	"tourbook/internal/service/mocks"
	"tourbook/internal/validator"
	"tourbook/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
}

func setupTourRouter(svc *mocks.MockTourService) *gin.Engine {
	h := NewTourHandler(svc)
	r := gin.New()
	r.GET("/tours", h.GetTours)
	r.GET("/tours/top-5-cheap", h.AliasTopTours, h.GetTours)
	r.GET("/tours/tour-stats", h.GetTourStats)
	r.GET("/tours/monthly-plan/:year", h.GetMonthlyPlan)
	r.GET("/tours/tours-within/:distance/center/:latlng/unit/:unit", h.GetToursWithin)
	r.GET("/tours/distances/:latlng/unit/:unit", h.GetDistances)
	r.GET("/tours/:id", h.GetTour)
	r.POST("/tours", h.CreateTour)
	r.PATCH("/tours/:id", h.UpdateTour)
	r.DELETE("/tours/:id", h.DeleteTour)
	return r
}

func TestTourHandler_GetTours(t *testing.T) {
	t.Run("returns the list envelope with a results count", func(t *testing.T) {
		svc := &mocks.MockTourService{
			GetToursFunc: func(ctx context.Context, q *query.Query) ([]models.Tour, error) {
				return []models.Tour{{Name: "The Forest Hiker"}, {Name: "The Sea Explorer"}}, nil
			},
		}
		router := setupTourRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tours", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Status)
		require.NotNil(t, resp.Results)
		assert.Equal(t, 2, *resp.Results)
	})

	t.Run("passes translated filters through to the service", func(t *testing.T) {
		var gotQuery *query.Query
		svc := &mocks.MockTourService{
			GetToursFunc: func(ctx context.Context, q *query.Query) ([]models.Tour, error) {
				gotQuery = q
				return nil, nil
			},
		}
		router := setupTourRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tours?duration[gte]=5&sort=-price", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotQuery)
		assert.Contains(t, gotQuery.Filter, "duration")
	})

	t.Run("rejects malformed pagination", func(t *testing.T) {
		router := setupTourRouter(&mocks.MockTourService{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tours?page=0", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("alias presets limit, sort and fields", func(t *testing.T) {
		var gotQuery *query.Query
		svc := &mocks.MockTourService{
			GetToursFunc: func(ctx context.Context, q *query.Query) ([]models.Tour, error) {
				gotQuery = q
				return nil, nil
			},
		}
		router := setupTourRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tours/top-5-cheap", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotQuery)
		assert.Equal(t, int64(5), gotQuery.Limit)
		require.NotEmpty(t, gotQuery.Sort)
		assert.Equal(t, "ratingsAverage", gotQuery.Sort[0].Key)
	})
}

func TestTourHandler_GetTour(t *testing.T) {
	t.Run("returns 404 for an unknown tour", func(t *testing.T) {
		svc := &mocks.MockTourService{
			GetTourFunc: func(ctx context.Context, id string) (*models.TourWithReviews, error) {
				return nil, apperrors.ErrTourNotFound
			},
		}
		router := setupTourRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tours/"+primitive.NewObjectID().Hex(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns the tour with its reviews", func(t *testing.T) {
		svc := &mocks.MockTourService{
			GetTourFunc: func(ctx context.Context, id string) (*models.TourWithReviews, error) {
				return &models.TourWithReviews{
					Tour:    models.Tour{Name: "The Forest Hiker"},
					Reviews: []models.Review{{Review: "great"}},
				}, nil
			},
		}
		router := setupTourRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tours/"+primitive.NewObjectID().Hex(), nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "The Forest Hiker")
		assert.Contains(t, w.Body.String(), "reviews")
	})
}

func TestTourHandler_CreateTour(t *testing.T) {
	validBody := func() map[string]interface{} {
		return map[string]interface{}{
			"name":         "The Forest Hiker",
			"duration":     5,
			"maxGroupSize": 25,
			"difficulty":   "easy",
			"price":        497,
			"summary":      "Breathtaking hike",
			"imageCover":   "tour-1-cover.jpg",
		}
	}

	postTour := func(router *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
		payload, _ := json.Marshal(body)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/tours", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("creates a tour", func(t *testing.T) {
		svc := &mocks.MockTourService{
			CreateTourFunc: func(ctx context.Context, req *models.CreateTourRequest) (*models.Tour, error) {
				return &models.Tour{Name: req.Name}, nil
			},
		}
		router := setupTourRouter(svc)

		w := postTour(router, validBody())
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejects an unknown difficulty at binding", func(t *testing.T) {
		router := setupTourRouter(&mocks.MockTourService{})

		body := validBody()
		body["difficulty"] = "impossible"
		w := postTour(router, body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps the discount invariant to 400", func(t *testing.T) {
		svc := &mocks.MockTourService{
			CreateTourFunc: func(ctx context.Context, req *models.CreateTourRequest) (*models.Tour, error) {
				return nil, apperrors.ErrInvalidDiscount
			},
		}
		router := setupTourRouter(svc)

		w := postTour(router, validBody())
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps a duplicate name to 409", func(t *testing.T) {
		svc := &mocks.MockTourService{
			CreateTourFunc: func(ctx context.Context, req *models.CreateTourRequest) (*models.Tour, error) {
				return nil, apperrors.ErrTourNameTaken
			},
		}
		router := setupTourRouter(svc)

		w := postTour(router, validBody())
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestTourHandler_DeleteTour(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		svc := &mocks.MockTourService{
			DeleteTourFunc: func(ctx context.Context, id string) error { return nil },
		}
		router := setupTourRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/tours/"+primitive.NewObjectID().Hex(), nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestTourHandler_GetToursWithin(t *testing.T) {
	t.Run("rejects a non-numeric distance", func(t *testing.T) {
		router := setupTourRouter(&mocks.MockTourService{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tours/tours-within/far/center/34.1,-118.1/unit/mi", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps invalid unit to 400", func(t *testing.T) {
		svc := &mocks.MockTourService{
			GetToursWithinFunc: func(ctx context.Context, distance float64, latlng, unit string) ([]models.Tour, error) {
				return nil, apperrors.ErrInvalidUnit
			},
		}
		router := setupTourRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tours/tours-within/400/center/34.1,-118.1/unit/yards", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTourHandler_GetMonthlyPlan(t *testing.T) {
	t.Run("parses the year and returns the plan", func(t *testing.T) {
		svc := &mocks.MockTourService{
			GetMonthlyPlanFunc: func(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error) {
				assert.Equal(t, 2024, year)
				return []models.MonthlyPlanEntry{{Month: 7, NumTourStarts: 3}}, nil
			},
		}
		router := setupTourRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tours/monthly-plan/2024", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a non-numeric year", func(t *testing.T) {
		router := setupTourRouter(&mocks.MockTourService{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tours/monthly-plan/soon", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
