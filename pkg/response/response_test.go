package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(t *testing.T, handler gin.HandlerFunc) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	handler(c)
	c.Writer.WriteHeaderNow()

	var body Response
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestSuccess(t *testing.T) {
	w, body := perform(t, func(c *gin.Context) {
		Success(c, gin.H{"name": "test"})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body.Status)
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Message)
}

func TestSuccessList(t *testing.T) {
	w, body := perform(t, func(c *gin.Context) {
		SuccessList(c, 3, []string{"a", "b", "c"})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, body.Results)
	assert.Equal(t, 3, *body.Results)
}

func TestSuccessWithToken(t *testing.T) {
	w, body := perform(t, func(c *gin.Context) {
		SuccessWithToken(c, http.StatusCreated, "tok-123", nil)
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "tok-123", body.Token)
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name     string
		handler  gin.HandlerFunc
		expected int
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "bad") }, http.StatusBadRequest},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "no") }, http.StatusUnauthorized},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "no") }, http.StatusForbidden},
		{"not found", func(c *gin.Context) { NotFound(c, "gone") }, http.StatusNotFound},
		{"conflict", func(c *gin.Context) { Conflict(c, "dup") }, http.StatusConflict},
		{"internal", InternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := perform(t, tt.handler)

			assert.Equal(t, tt.expected, w.Code)
			assert.Equal(t, "error", body.Status)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestNoContent(t *testing.T) {
	w, _ := perform(t, NoContent)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())
}
