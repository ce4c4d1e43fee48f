//go:build api

package testserver

import (
	"context"
	"net/http"
	"testing"

	"tourbook/internal/models"
	"tourbook/pkg/auth"
	"tourbook/pkg/response"
	"tourbook/test/testutil"

	"github.com/stretchr/testify/require"
)

// Signup registers a user through the API and returns the issued token.
func (ts *TestServer) Signup(t *testing.T, name, email, password string) string {
	t.Helper()

	req := models.SignupRequest{
		Name:            name,
		Email:           email,
		Password:        password,
		PasswordConfirm: password,
	}

	w := testutil.MakeRequest(t, ts.Router, http.MethodPost, "/api/v1/users/signup", req)
	require.Equal(t, http.StatusCreated, w.Code, "signup should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.NotEmpty(t, resp.Token, "signup should issue a token")

	return resp.Token
}

// Login logs a user in through the API and returns the issued token.
func (ts *TestServer) Login(t *testing.T, email, password string) string {
	t.Helper()

	req := models.LoginRequest{
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ts.Router, http.MethodPost, "/api/v1/users/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.NotEmpty(t, resp.Token, "login should issue a token")

	return resp.Token
}

// SeedUser inserts a user with the given role directly into the database
// (signup never grants elevated roles) and returns it with a login token.
func (ts *TestServer) SeedUser(t *testing.T, name, email, password, role string) (*models.User, string) {
	t.Helper()
	ctx := context.Background()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err, "failed to hash password")

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     role,
	}
	require.NoError(t, ts.UserRepo.Create(ctx, user), "failed to seed user")

	return user, ts.Login(t, email, password)
}

// SeedTour inserts a tour directly into the database.
func (ts *TestServer) SeedTour(t *testing.T, tour *models.Tour) *models.Tour {
	t.Helper()

	if tour.Duration == 0 {
		tour.Duration = 5
	}
	if tour.MaxGroupSize == 0 {
		tour.MaxGroupSize = 25
	}
	if tour.Difficulty == "" {
		tour.Difficulty = models.DifficultyEasy
	}
	if tour.RatingsAverage == 0 {
		tour.RatingsAverage = models.DefaultRatingsAverage
	}
	if tour.Summary == "" {
		tour.Summary = "A seeded tour"
	}
	if tour.ImageCover == "" {
		tour.ImageCover = "cover.jpg"
	}

	require.NoError(t, ts.TourRepo.Create(context.Background(), tour), "failed to seed tour")
	return tour
}

// DataMap extracts the data object from a response envelope.
func DataMap(t *testing.T, resp response.Response) map[string]interface{} {
	t.Helper()

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}
