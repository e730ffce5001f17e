package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elementa/backend/internal/app/content"
)

func elementTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewElementController()
	router.GET("/api/v1/elements/:slug/compatibility", ctrl.GetCompatibility)
	return router
}

func getCompatibility(t *testing.T, router *gin.Engine, path string) (int, []content.CompatibilityEntry) {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))

	if w.Code != http.StatusOK {
		return w.Code, nil
	}

	var body struct {
		Data []content.CompatibilityEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body.Data
}

func TestGetCompatibility(t *testing.T) {
	router := elementTestRouter()

	t.Run("returns all pairings without query", func(t *testing.T) {
		status, entries := getCompatibility(t, router, "/api/v1/elements/electric/compatibility")
		require.Equal(t, http.StatusOK, status)
		require.Len(t, entries, len(content.ElementSlugs))

		for i, entry := range entries {
			assert.Equal(t, content.ElementSlugs[i], entry.Element)
			assert.NotEmpty(t, entry.Label)
		}
		// Self-pairing is included.
		assert.Equal(t, "electric", entries[0].Element)
	})

	t.Run("with query narrows to one pairing", func(t *testing.T) {
		status, entries := getCompatibility(t, router, "/api/v1/elements/electric/compatibility?with=airy")
		require.Equal(t, http.StatusOK, status)
		require.Len(t, entries, 1)

		level, _ := content.Compatibility("electric", "airy")
		assert.Equal(t, "airy", entries[0].Element)
		assert.Equal(t, level.Score, entries[0].Score)
		assert.Equal(t, level.Label, entries[0].Label)
	})

	t.Run("unknown slug is 404", func(t *testing.T) {
		status, _ := getCompatibility(t, router, "/api/v1/elements/plasma/compatibility")
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("unknown with element is 404", func(t *testing.T) {
		status, _ := getCompatibility(t, router, "/api/v1/elements/electric/compatibility?with=plasma")
		assert.Equal(t, http.StatusNotFound, status)
	})
}
