package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-ai/config"
	"github.com/pageza/recipe-ai/internal/database"
)

func TestNew(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.ServerConfig{Host: "localhost", Port: "0", DBDriver: "sqlite", DBDSN: ":memory:", FoodExpiryDays: 5}

	db, err := database.New(cfg)
	require.NoError(t, err)

	srv, err := New(cfg, db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/get-ingredients", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.NotEmpty(t, items, "fixtures should be seeded")
}

func TestNewBadFixtures(t *testing.T) {
	cfg := config.ServerConfig{DBDriver: "sqlite", DBDSN: ":memory:", FixturesPath: "/missing.yaml"}
	db, err := database.New(cfg)
	require.NoError(t, err)

	_, err = New(cfg, db)
	assert.Error(t, err)
}
