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

func record(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestSuccess_Envelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.NotNil(t, body["data"])
}

func TestError_Envelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, http.StatusNotFound, "NOT_FOUND", "movie not found")
	})

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])

	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", errObj["code"])
	assert.Equal(t, "movie not found", errObj["message"])
}

func TestErrorWithDetails_CarriesFieldMap(t *testing.T) {
	w := record(func(c *gin.Context) {
		ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid account fields",
			map[string]string{"Email": "email"})
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok)

	details, ok := errObj["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "email", details["Email"])
}
