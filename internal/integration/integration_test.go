package integration

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-ai/config"
	"github.com/pageza/recipe-ai/internal/api"
	"github.com/pageza/recipe-ai/internal/app"
	"github.com/pageza/recipe-ai/internal/client"
	"github.com/pageza/recipe-ai/internal/model"
	"github.com/pageza/recipe-ai/internal/router"
	"github.com/pageza/recipe-ai/internal/service"
	"github.com/pageza/recipe-ai/internal/testdb"
	"github.com/pageza/recipe-ai/internal/types"
)

// the blank name is refused by the server, which forces a commit failure
var invoiceItems = []model.ExtractedInvoiceItem{
	{ID: "a", Name: "Tomatoes", Quantity: 6, Category: model.CategoryVegetable},
	{ID: "b", Name: "", Quantity: 1, Category: "dairy"},
	{ID: "c", Name: "Whole Milk", Quantity: 2, Category: "dairy"},
}

type env struct {
	client *client.Client
	shell  *app.Shell
	app    *app.App
}

func setup(t *testing.T, commitConcurrency int) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.SQLite(t)

	ingredients := service.NewIngredientService(db, config.DefaultFoodExpiryDays)
	handler := router.SetupRouter(db, api.Services{
		Ingredients: ingredients,
		Recipes:     service.NewRecipeService(db, ingredients, service.NewChef(), nil),
		Invoices:    service.NewInvoiceService(invoiceItems),
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := client.New(srv.URL+"/api", client.WithTimeouts(5*time.Second, 10*time.Second))
	shell := app.NewShell(app.WithNotificationLimit(50))
	return &env{client: c, shell: shell, app: app.NewApp(shell, c, commitConcurrency)}
}

func (e *env) errorCount() int {
	n := 0
	for _, note := range e.shell.Notifications() {
		if note.Severity == app.SeverityError {
			n++
		}
	}
	return n
}

func (e *env) latest(t *testing.T) app.Notification {
	t.Helper()
	note, ok := e.shell.Latest()
	require.True(t, ok)
	return note
}

func TestIngredientSearchAndDelete(t *testing.T) {
	ctx := context.Background()
	e := setup(t, 1)
	page := e.app.Ingredients()

	for _, name := range []string{"Red Apple", "apple juice", "Rice"} {
		require.NoError(t, page.Add(ctx, types.AddIngredientRequest{Name: name, IsVegetableOrFruit: name == "Red Apple"}))
	}
	require.Len(t, page.Items(), 3)

	page.SetSearch("APPLE")
	assert.Len(t, page.Filtered(), 2)
	page.SetSearch("")
	assert.Equal(t, page.Items(), page.Filtered())

	target := page.Items()[0]
	require.NoError(t, page.Delete(ctx, target.ID))
	for _, item := range page.Items() {
		assert.NotEqual(t, target.ID, item.ID)
	}
	require.Len(t, page.Items(), 2)

	before := page.Items()
	require.ErrorIs(t, page.Delete(ctx, "no-such-id"), app.ErrRejected)
	assert.Equal(t, before, page.Items())
	assert.Equal(t, app.MsgIngredientDeleteFailed, e.latest(t).Message)
}

func TestToggleFavoriteRoundTrip(t *testing.T) {
	ctx := context.Background()
	e := setup(t, 1)

	create := e.app.CreateRecipe()
	create.SetName("Pea Risotto")
	require.True(t, create.AddIngredient("peas"))
	require.True(t, create.AddIngredient("arborio rice"))
	create.SetInstructions("Toast the rice.\nAdd stock slowly.\n\nStir in peas.")
	require.NoError(t, create.SaveCustom(ctx))

	recipes := e.app.Recipes()
	require.NoError(t, recipes.Load(ctx))
	require.Len(t, recipes.Recipes(), 1)
	saved := recipes.Recipes()[0]
	assert.True(t, saved.IsFav)
	assert.Len(t, saved.Instructions, 3)

	require.NoError(t, recipes.ToggleFavorite(ctx, saved))
	require.Len(t, recipes.Recipes(), 1)
	assert.Equal(t, saved.ID, recipes.Recipes()[0].ID)
	assert.False(t, recipes.Recipes()[0].IsFav)

	favorites := e.app.Favorites()
	require.NoError(t, favorites.Load(ctx))
	assert.Empty(t, favorites.Recipes())
}

func TestSaveCustomValidationMakesNoRequests(t *testing.T) {
	ctx := context.Background()
	e := setup(t, 1)
	page := e.app.CreateRecipe()

	require.ErrorIs(t, page.SaveCustom(ctx), app.ErrValidation)
	assert.Equal(t, app.MsgRecipeNameRequired, e.latest(t).Message)

	page.SetName("Toast")
	require.ErrorIs(t, page.SaveCustom(ctx), app.ErrValidation)
	assert.Equal(t, app.MsgRecipeItemsRequired, e.latest(t).Message)

	page.AddIngredient("bread")
	require.ErrorIs(t, page.SaveCustom(ctx), app.ErrValidation)
	assert.Equal(t, app.MsgRecipeStepsRequired, e.latest(t).Message)

	assert.Zero(t, e.client.Metrics().Calls)
}

func TestGenerateWithoutIngredientsShowsServerMessage(t *testing.T) {
	ctx := context.Background()
	e := setup(t, 1)
	page := e.app.Recipes()

	require.Error(t, page.Generate(ctx))
	note := e.latest(t)
	assert.Equal(t, "No ingredients available", note.Message)
	assert.Equal(t, app.SeverityError, note.Severity)

	require.NoError(t, page.SetRecipeType(model.RecipeTypeSurprise))
	require.NoError(t, page.Generate(ctx))
	selected, ok := page.Selected()
	require.True(t, ok)
	assert.True(t, selected.IsRecipe)
	assert.Len(t, page.Recipes(), 1)
}

func TestDashboardOtherIngredients(t *testing.T) {
	ctx := context.Background()
	e := setup(t, 1)
	ingredients := e.app.Ingredients()
	for _, req := range []types.AddIngredientRequest{
		{Name: "Kale", IsVegetableOrFruit: true},
		{Name: "Pears", IsVegetableOrFruit: true},
		{Name: "Flour"},
		{Name: "Salt"},
		{Name: "Butter"},
	} {
		require.NoError(t, ingredients.Add(ctx, req))
	}

	dashboard := e.app.Dashboard()
	require.NoError(t, dashboard.Load(ctx))
	stats := dashboard.Data().Stats
	assert.Equal(t, 5, stats.TotalIngredients)
	assert.Equal(t, 2, stats.VegetableCount)
	assert.Equal(t, stats.TotalIngredients-stats.VegetableCount, stats.OtherCount)
	assert.NotEmpty(t, dashboard.Data().Suggestions)
	assert.Empty(t, dashboard.Data().Expiring)
}

func uploadInvoice(t *testing.T, e *env) *app.UploadPage {
	t.Helper()
	page := e.app.UploadInvoice()
	require.NoError(t, page.SelectFile("march.pdf", []byte("%PDF-1.4 invoice")))
	require.NoError(t, page.Upload(context.Background()))
	require.Len(t, page.SelectedItems(), len(invoiceItems))
	return page
}

func inventoryNames(t *testing.T, e *env) []string {
	t.Helper()
	items, err := e.client.ListIngredients(context.Background())
	require.NoError(t, err)
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}

func TestUploadCommitSequentialStopsAtFailure(t *testing.T) {
	e := setup(t, 1)
	page := uploadInvoice(t, e)

	results, err := page.Commit(context.Background())
	require.Error(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, app.CommitAdded, results[0].Status)
	assert.Equal(t, app.CommitFailed, results[1].Status)
	assert.Equal(t, app.CommitSkipped, results[2].Status)

	assert.Equal(t, []string{"Tomatoes"}, inventoryNames(t, e))
	assert.Equal(t, 1, e.errorCount())
	assert.Equal(t, app.MsgInventoryFailed, e.latest(t).Message)

	// the page keeps its items so the user can retry
	assert.Len(t, page.Items(), 3)
	assert.Equal(t, app.UploadSucceeded, page.Status())
}

func TestUploadCommitBatchReportsEveryItem(t *testing.T) {
	e := setup(t, 3)
	page := uploadInvoice(t, e)

	results, err := page.Commit(context.Background())
	require.Error(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, app.CommitAdded, results[0].Status)
	assert.Equal(t, app.CommitFailed, results[1].Status)
	assert.Equal(t, app.CommitAdded, results[2].Status)

	assert.ElementsMatch(t, []string{"Tomatoes", "Whole Milk"}, inventoryNames(t, e))
	assert.Equal(t, 1, e.errorCount())
}

func TestUploadCommitSuccessResetsPage(t *testing.T) {
	e := setup(t, 1)
	page := uploadInvoice(t, e)
	page.Toggle("b")

	results, err := page.Commit(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Empty(t, page.Items())
	_, ok := page.File()
	assert.False(t, ok)
	assert.Equal(t, app.MsgInventoryUpdated, e.latest(t).Message)

	items, err := e.client.ListIngredients(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, item.Name == "Tomatoes", item.IsVegetableOrFruit)
	}
}
