//go:build api

package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"tourbook/internal/models"
	"tourbook/pkg/response"
	"tourbook/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTourCatalog(t *testing.T) {
	t.Helper()

	testServer.SeedTour(t, &models.Tour{
		Name:           "The Forest Hiker",
		Duration:       5,
		Difficulty:     models.DifficultyEasy,
		RatingsAverage: 4.7,
		Price:          397,
		StartLocation:  &models.Location{Type: "Point", Coordinates: []float64{-115.570154, 51.178456}},
		StartDates:     []time.Time{time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)},
	})
	testServer.SeedTour(t, &models.Tour{
		Name:           "The Sea Explorer",
		Duration:       7,
		Difficulty:     models.DifficultyMedium,
		RatingsAverage: 4.8,
		Price:          497,
		StartLocation:  &models.Location{Type: "Point", Coordinates: []float64{-80.185942, 25.774772}},
		StartDates:     []time.Time{time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC)},
	})
	testServer.SeedTour(t, &models.Tour{
		Name:           "The Snow Adventurer",
		Duration:       4,
		Difficulty:     models.DifficultyDifficult,
		RatingsAverage: 4.5,
		Price:          997,
		StartLocation:  &models.Location{Type: "Point", Coordinates: []float64{-106.822318, 39.190872}},
		StartDates:     []time.Time{time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)},
	})
	testServer.SeedTour(t, &models.Tour{
		Name:       "Members Only Escape",
		Price:      1500,
		SecretTour: true,
	})
}

func TestTourListing(t *testing.T) {
	resetState(t)
	seedTourCatalog(t)

	t.Run("lists visible tours", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		require.NotNil(t, resp.Results)
		assert.Equal(t, 3, *resp.Results)
		assert.NotContains(t, w.Body.String(), "Members Only Escape")
	})

	t.Run("filters with comparison operators", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours?price[lte]=500", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		require.NotNil(t, resp.Results)
		assert.Equal(t, 2, *resp.Results)
	})

	t.Run("sorts and limits", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours?sort=-price&limit=1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		require.NotNil(t, resp.Results)
		assert.Equal(t, 1, *resp.Results)
		assert.Contains(t, w.Body.String(), "The Snow Adventurer")
	})

	t.Run("rejects a malformed page", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours?page=zero", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("the top-5-cheap alias pre-fills the query", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours/top-5-cheap", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		require.NotNil(t, resp.Results)
		assert.LessOrEqual(t, *resp.Results, 5)
	})
}

func TestTourCRUDRoles(t *testing.T) {
	resetState(t)

	_, adminToken := testServer.SeedUser(t, "Admin Anna", "admin@tourbook.io", "pass1234", models.RoleAdmin)
	userToken := testServer.Signup(t, "Plain User", "plain@example.com", "pass1234")

	body := map[string]interface{}{
		"name":         "The Brand New Walk",
		"duration":     3,
		"maxGroupSize": 10,
		"difficulty":   "easy",
		"price":        199,
		"summary":      "Short and sweet",
		"imageCover":   "cover.jpg",
	}

	t.Run("a regular user cannot create tours", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/tours", userToken, body)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("an admin can", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/tours", adminToken, body)

		require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
		assert.Contains(t, w.Body.String(), "the-brand-new-walk")
	})

	t.Run("a discount >= price is rejected", func(t *testing.T) {
		bad := map[string]interface{}{
			"name":          "The Too Generous Tour",
			"duration":      3,
			"maxGroupSize":  10,
			"difficulty":    "easy",
			"price":         100,
			"priceDiscount": 150,
			"summary":       "Free money",
			"imageCover":    "cover.jpg",
		}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/tours", adminToken, bad)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTourStatsAndPlan(t *testing.T) {
	resetState(t)
	seedTourCatalog(t)

	t.Run("tour stats are public", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours/tour-stats", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "avgPrice")
	})

	t.Run("the monthly plan needs a guide role", func(t *testing.T) {
		userToken := testServer.Signup(t, "Plan Peeker", "peek@example.com", "pass1234")
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours/monthly-plan/2026", userToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		_, guideToken := testServer.SeedUser(t, "Gina Guide", "gina@tourbook.io", "pass1234", models.RoleGuide)
		w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours/monthly-plan/2026", guideToken, nil)
		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
		assert.Contains(t, w.Body.String(), "numTourStarts")
	})
}

func TestTourGeoQueries(t *testing.T) {
	resetState(t)
	seedTourCatalog(t)

	t.Run("tours-within finds tours around a point", func(t *testing.T) {
		// 500 miles around Miami reaches only The Sea Explorer.
		path := fmt.Sprintf("/api/v1/tours/tours-within/%d/center/%f,%f/unit/mi", 500, 25.774772, -80.185942)
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, path, nil)

		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		require.NotNil(t, resp.Results)
		assert.Equal(t, 1, *resp.Results)
		assert.Contains(t, w.Body.String(), "The Sea Explorer")
	})

	t.Run("an unknown unit is rejected", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/tours/tours-within/500/center/25.77,-80.18/unit/furlongs", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("distances lists every tour with a start location", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/tours/distances/25.774772,-80.185942/unit/km", nil)

		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
		assert.Contains(t, w.Body.String(), "distance")
	})
}
