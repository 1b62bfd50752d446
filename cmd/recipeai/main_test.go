package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-ai/config"
	"github.com/pageza/recipe-ai/internal/app"
	"github.com/pageza/recipe-ai/internal/database"
	"github.com/pageza/recipe-ai/internal/server"
)

func startServer(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	serverCfg := config.ServerConfig{DBDriver: "sqlite", DBDSN: ":memory:", FoodExpiryDays: config.DefaultFoodExpiryDays}
	db, err := database.New(serverCfg)
	require.NoError(t, err)
	srv, err := server.New(serverCfg, db)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		_ = srv.Shutdown(context.Background())
	})

	t.Setenv("ENV", "test")
	t.Setenv("CI", "")
	t.Setenv("LOG_FILE", "")
	t.Setenv("API_BASE_URL", ts.URL+"/api")
	t.Setenv("PREFERENCES_PATH", filepath.Join(t.TempDir(), "preferences.yaml"))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := Execute(context.Background())
	return out.String(), err
}

func TestParsePage(t *testing.T) {
	cases := map[string]app.Page{
		"":               app.PageDashboard,
		"3":              app.PageRecipes,
		"Ingredients":    app.PageIngredients,
		"create":         app.PageCreateRecipe,
		"create-recipe":  app.PageCreateRecipe,
		"upload":         app.PageUploadInvoice,
		"upload invoice": app.PageUploadInvoice,
		"favorites":      app.PageFavorites,
	}
	for in, want := range cases {
		got, err := parsePage(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parsePage("settings")
	assert.Error(t, err)
	_, err = parsePage("7")
	assert.Error(t, err)
}

func TestParseTab(t *testing.T) {
	tab, err := parseTab("Favorites")
	require.NoError(t, err)
	assert.Equal(t, app.TabFavorites, tab)

	_, err = parseTab("starred")
	assert.Error(t, err)
}

func TestIngredientCommands(t *testing.T) {
	startServer(t)

	out, err := execute(t, "ingredients", "add", "Basil", "--qty", "2", "--produce")
	require.NoError(t, err)
	assert.Contains(t, out, app.MsgIngredientAdded)

	out, err = execute(t, "ingredients", "list", "--search", "basil")
	require.NoError(t, err)
	assert.Contains(t, out, "Basil")
	assert.Contains(t, out, "Vegetables & Fruits (1)")
}

func TestCreateValidationFailsWithoutRequests(t *testing.T) {
	startServer(t)

	out, err := execute(t, "create", "--name", "", "--stats")
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrValidation)
	assert.Contains(t, out, app.MsgRecipeNameRequired)
	assert.Contains(t, out, "API calls: 0")
}
