package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-ai/internal/client"
	"github.com/pageza/recipe-ai/internal/mocks"
	"github.com/pageza/recipe-ai/internal/model"
	"github.com/pageza/recipe-ai/internal/types"
)

var ctx = context.Background()

func TestIngredientsLoadFailureKeepsState(t *testing.T) {
	api := new(mocks.MockKitchenAPI)
	shell := newTestShell()
	page := NewIngredientsPage(api, shell)

	api.On("ListIngredients", mock.Anything).Return([]model.Ingredient{{ID: "1", Name: "Leek"}}, nil).Once()
	require.NoError(t, page.Load(ctx))

	api.On("ListIngredients", mock.Anything).Return(nil, errors.New("connection refused")).Once()
	require.Error(t, page.Load(ctx))

	assert.Len(t, page.Items(), 1)
	requireLatest(t, shell, MsgIngredientsLoadFailed, SeverityError)
	assert.False(t, shell.Loading())
	api.AssertExpectations(t)
}

func TestIngredientsSearchAndGroups(t *testing.T) {
	api := new(mocks.MockKitchenAPI)
	page := NewIngredientsPage(api, newTestShell())
	api.On("ListIngredients", mock.Anything).Return([]model.Ingredient{
		{ID: "1", Name: "Red Apple", IsVegetableOrFruit: true},
		{ID: "2", Name: "Apple Vinegar"},
		{ID: "3", Name: "Rice"},
	}, nil)
	require.NoError(t, page.Load(ctx))

	page.SetSearch("apple")
	assert.Len(t, page.Filtered(), 2)

	produce, other := page.Grouped()
	require.Len(t, produce, 1)
	require.Len(t, other, 1)
	assert.Equal(t, "Apple Vinegar", other[0].Name)

	page.SetSearch("")
	assert.Len(t, page.Filtered(), 3)
}

func TestIngredientsAddRequiresName(t *testing.T) {
	api := new(mocks.MockKitchenAPI)
	shell := newTestShell()
	page := NewIngredientsPage(api, shell)

	err := page.Add(ctx, types.AddIngredientRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrValidation)
	requireLatest(t, shell, MsgIngredientNameRequired, SeverityWarning)
	api.AssertNotCalled(t, "AddIngredient", mock.Anything, mock.Anything)
}

func TestIngredientsAddReloads(t *testing.T) {
	api := new(mocks.MockKitchenAPI)
	shell := newTestShell()
	page := NewIngredientsPage(api, shell)

	api.On("AddIngredient", mock.Anything, types.AddIngredientRequest{Name: "Kale", Quantity: 1, IsVegetableOrFruit: true}).
		Return(&model.Ingredient{Name: "Kale"}, nil).Once()
	api.On("ListIngredients", mock.Anything).Return([]model.Ingredient{{ID: "k", Name: "Kale"}}, nil).Once()

	require.NoError(t, page.Add(ctx, types.AddIngredientRequest{Name: " Kale ", Quantity: 1, IsVegetableOrFruit: true}))
	assert.Len(t, page.Items(), 1)
	requireLatest(t, shell, MsgIngredientAdded, SeveritySuccess)
	api.AssertExpectations(t)
}

func TestIngredientsAddSendsQuantityUnchanged(t *testing.T) {
	api := new(mocks.MockKitchenAPI)
	shell := newTestShell()
	page := NewIngredientsPage(api, shell)

	api.On("AddIngredient", mock.Anything, types.AddIngredientRequest{Name: "Salt", Quantity: 0}).
		Return(&model.Ingredient{Name: "Salt"}, nil).Once()
	api.On("ListIngredients", mock.Anything).Return([]model.Ingredient{{ID: "s", Name: "Salt"}}, nil).Once()

	require.NoError(t, page.Add(ctx, types.AddIngredientRequest{Name: "Salt"}))
	api.AssertExpectations(t)
}

func TestIngredientsDeleteRejected(t *testing.T) {
	api := new(mocks.MockKitchenAPI)
	shell := newTestShell()
	page := NewIngredientsPage(api, shell)

	api.On("ListIngredients", mock.Anything).Return([]model.Ingredient{{ID: "1", Name: "Leek"}}, nil).Once()
	require.NoError(t, page.Load(ctx))

	api.On("DeleteIngredient", mock.Anything, "missing").Return(false, nil).Once()
	err := page.Delete(ctx, "missing")

	assert.ErrorIs(t, err, ErrRejected)
	assert.Len(t, page.Items(), 1)
	requireLatest(t, shell, MsgIngredientDeleteFailed, SeverityError)
	api.AssertNumberOfCalls(t, "ListIngredients", 1)
}

func TestRecipesToggleFavoriteSendsInvertedEntity(t *testing.T) {
	api := new(mocks.MockKitchenAPI)
	shell := newTestShell()
	page := NewRecipesPage(api, shell)

	recipe := model.Recipe{ID: "r1", Name: "Curry", Items: model.StringList{"rice"}, IsFav: false}
	api.On("SaveRecipe", mock.Anything, recipe.WithFavorite(true)).Return(&recipe, nil).Once()
	api.On("ListRecipes", mock.Anything).Return([]model.Recipe{recipe.WithFavorite(true)}, nil).Once()

	require.NoError(t, page.ToggleFavorite(ctx, recipe))
	assert.True(t, page.Recipes()[0].IsFav)

	notes := shell.Notifications()
	assert.Equal(t, MsgFavoriteAdded, notes[len(notes)-1].Message)
	api.AssertExpectations(t)
}

func TestRecipesTabs(t *testing.T) {
	api := new(mocks.MockKitchenAPI)
	page := NewRecipesPage(api, newTestShell())
	api.On("ListRecipes", mock.Anything).Return([]model.Recipe{
		{ID: "1", Name: "Pasta", IsFav: true},
		{ID: "2", Name: "Pesto Pasta"},
		{ID: "3", Name: "Soup"},
	}, nil)
	require.NoError(t, page.Load(ctx))

	page.SetSearch("pasta")
	assert.Len(t, page.Displayed(), 2)

	page.SetTab(TabFavorites)
	require.Len(t, page.Displayed(), 1)
	assert.Equal(t, "1", page.Displayed()[0].ID)

	page.SetTab(TabRegular)
	require.Len(t, page.Displayed(), 1)
	assert.Equal(t, "2", page.Displayed()[0].ID)

	assert.True(t, page.ToggleExpanded("2"))
	assert.True(t, page.Expanded("2"))
}

func TestRecipesGenerateUsesServerMessage(t *testing.T) {
	api := new(mocks.MockKitchenAPI)
	shell := newTestShell()
	page := NewRecipesPage(api, shell)
	require.NoError(t, page.SetRecipeType(model.RecipeTypeExpiring))

	apiErr := &client.APIError{Op: "get_recipe", StatusCode: 400, Message: "No ingredients available"}
	api.On("GenerateRecipe", mock.Anything, model.RecipeTypeExpiring).Return(nil, apiErr).Once()

	require.Error(t, page.Generate(ctx))
	requireLatest(t, shell, "No ingredients available", SeverityError)

	api.On("GenerateRecipe", mock.Anything, model.RecipeTypeExpiring).Return(nil, errors.New("timeout")).Once()
	require.Error(t, page.Generate(ctx))
	requireLatest(t, shell, MsgRecipeGenerateFailed, SeverityError)
}

func TestRecipesGenerateSelectsResult(t *testing.T) {
	api := new(mocks.MockKitchenAPI)
	page := NewRecipesPage(api, newTestShell())
	generated := &model.Recipe{ID: "g1", Name: "Stir fry", IsRecipe: true}
	api.On("GenerateRecipe", mock.Anything, model.RecipeTypeAvailable).Return(generated, nil).Once()
	api.On("ListRecipes", mock.Anything).Return([]model.Recipe{*generated}, nil).Once()

	require.NoError(t, page.Generate(ctx))
	selected, ok := page.Selected()
	require.True(t, ok)
	assert.Equal(t, "g1", selected.ID)
}

func TestRecipesSetRecipeTypeRejectsUnknown(t *testing.T) {
	page := NewRecipesPage(new(mocks.MockKitchenAPI), newTestShell())
	assert.ErrorIs(t, page.SetRecipeType(9), ErrValidation)
	assert.Equal(t, model.RecipeTypeAvailable, page.RecipeType())
}

func TestRecipesDelete(t *testing.T) {
	api := new(mocks.MockKitchenAPI)
	shell := newTestShell()
	page := NewRecipesPage(api, shell)
	page.Select(&model.Recipe{ID: "r1"})

	api.On("DeleteRecipe", mock.Anything, "r1").Return(true, nil).Once()
	api.On("ListRecipes", mock.Anything).Return([]model.Recipe{}, nil).Once()

	require.NoError(t, page.Delete(ctx, "r1"))
	_, open := page.Selected()
	assert.False(t, open)
	assert.Contains(t, shell.Notifications()[0].Message, MsgRecipeDeleted)
}

func TestFavoritesLoadAndRemove(t *testing.T) {
	api := new(mocks.MockKitchenAPI)
	shell := newTestShell()
	page := NewFavoritesPage(api, shell)

	fav := model.Recipe{ID: "1", Name: "Cake", IsFav: true}
	api.On("ListRecipes", mock.Anything).Return([]model.Recipe{fav, {ID: "2", Name: "Bread"}}, nil).Once()
	require.NoError(t, page.Load(ctx))
	require.Len(t, page.Recipes(), 1)

	api.On("SaveRecipe", mock.Anything, fav.WithFavorite(false)).Return(nil, errors.New("boom")).Once()
	require.Error(t, page.Remove(ctx, fav))
	requireLatest(t, shell, MsgFavoriteRemoveFailed, SeverityError)
	assert.Len(t, page.Recipes(), 1)

	api.On("SaveRecipe", mock.Anything, fav.WithFavorite(false)).Return(&fav, nil).Once()
	api.On("ListRecipes", mock.Anything).Return([]model.Recipe{fav.WithFavorite(false)}, nil).Once()
	require.NoError(t, page.Remove(ctx, fav))
	assert.Empty(t, page.Recipes())
	api.AssertExpectations(t)
}

func TestCreateRecipeSaveCustomValidation(t *testing.T) {
	api := new(mocks.MockKitchenAPI)
	shell := newTestShell()
	page := NewCreateRecipePage(api, shell)

	assert.ErrorIs(t, page.SaveCustom(ctx), ErrValidation)
	requireLatest(t, shell, MsgRecipeNameRequired, SeverityWarning)

	page.SetName("Salad")
	assert.ErrorIs(t, page.SaveCustom(ctx), ErrValidation)
	requireLatest(t, shell, MsgRecipeItemsRequired, SeverityWarning)

	assert.False(t, page.AddIngredient("  "))
	assert.True(t, page.AddIngredient("lettuce"))
	page.SetInstructions(" \n ")
	assert.ErrorIs(t, page.SaveCustom(ctx), ErrValidation)
	requireLatest(t, shell, MsgRecipeStepsRequired, SeverityWarning)

	api.AssertNotCalled(t, "SaveRecipe", mock.Anything, mock.Anything)
}

func TestCreateRecipeSaveCustom(t *testing.T) {
	api := new(mocks.MockKitchenAPI)
	shell := newTestShell()
	page := NewCreateRecipePage(api, shell)

	page.SetName(" Salad ")
	page.SetDescription("Crunchy")
	page.AddIngredient("lettuce")
	page.AddIngredient("croutons")
	page.AddIngredient("oops")
	require.True(t, page.RemoveIngredient(2))
	assert.False(t, page.RemoveIngredient(5))
	page.SetInstructions("wash\n\nchop\ntoss")

	want := model.Recipe{
		Name:         "Salad",
		Description:  "Crunchy",
		Items:        model.StringList{"lettuce", "croutons"},
		Instructions: model.StringList{"wash", "chop", "toss"},
		IsRecipe:     true,
		IsFav:        true,
	}
	api.On("SaveRecipe", mock.Anything, want).Return(&want, nil).Once()

	require.NoError(t, page.SaveCustom(ctx))
	requireLatest(t, shell, MsgRecipeSaved, SeveritySuccess)
	assert.Equal(t, RecipeDraft{}, page.Draft())
	api.AssertExpectations(t)
}

func TestCreateRecipeGenerateAndSave(t *testing.T) {
	api := new(mocks.MockKitchenAPI)
	shell := newTestShell()
	page := NewCreateRecipePage(api, shell)

	require.NoError(t, page.SaveGenerated(ctx))
	api.AssertNotCalled(t, "SaveRecipe", mock.Anything, mock.Anything)

	require.NoError(t, page.SetRecipeType(model.RecipeTypeSurprise))
	api.On("GenerateRecipe", mock.Anything, model.RecipeTypeSurprise).Return(nil, errors.New("llm down")).Once()
	require.Error(t, page.Generate(ctx))
	requireLatest(t, shell, MsgDraftGenerateFailed, SeverityError)

	generated := &model.Recipe{ID: "g", Name: "Mystery", IsRecipe: true}
	api.On("GenerateRecipe", mock.Anything, model.RecipeTypeSurprise).Return(generated, nil).Once()
	require.NoError(t, page.Generate(ctx))
	requireLatest(t, shell, MsgDraftGenerated, SeveritySuccess)

	api.On("SaveRecipe", mock.Anything, generated.WithFavorite(true)).Return(generated, nil).Once()
	require.NoError(t, page.SaveGenerated(ctx))
	requireLatest(t, shell, MsgGeneratedSaved, SeveritySuccess)

	saved, ok := page.Generated()
	require.True(t, ok)
	assert.True(t, saved.IsFav)
}

func TestDashboardLoad(t *testing.T) {
	api := new(mocks.MockKitchenAPI)
	page := NewDashboardPage(api, newTestShell())

	api.On("ListIngredients", mock.Anything).Return([]model.Ingredient{
		{Name: "Pear", IsVegetableOrFruit: true},
		{Name: "Flour"},
		{Name: "Sugar"},
	}, nil)
	api.On("ListExpiringIngredients", mock.Anything).Return([]model.Ingredient{{Name: "Pear"}}, nil)
	api.On("ListRecipes", mock.Anything).Return([]model.Recipe{{Name: "Tart", IsFav: true}, {Name: "Crumble"}}, nil)
	api.On("RecipeSuggestions", mock.Anything).Return([]model.Suggestion{{Name: "Pear tart"}}, nil)

	require.NoError(t, page.Load(ctx))
	data := page.Data()
	assert.Equal(t, Stats{
		TotalIngredients: 3,
		VegetableCount:   1,
		OtherCount:       2,
		RecipeCount:      2,
		FavoriteCount:    1,
		RegularCount:     1,
	}, data.Stats)
	assert.Len(t, data.Expiring, 1)
	assert.Len(t, data.Suggestions, 1)
}

func TestDashboardLoadIsAllOrNothing(t *testing.T) {
	api := new(mocks.MockKitchenAPI)
	shell := newTestShell()
	page := NewDashboardPage(api, shell)

	api.On("ListIngredients", mock.Anything).Return([]model.Ingredient{{Name: "Pear"}}, nil)
	api.On("ListExpiringIngredients", mock.Anything).Return([]model.Ingredient{}, nil)
	api.On("ListRecipes", mock.Anything).Return(nil, errors.New("500"))
	api.On("RecipeSuggestions", mock.Anything).Return([]model.Suggestion{}, nil)

	require.Error(t, page.Load(ctx))
	assert.Equal(t, DashboardData{}, page.Data())
	assert.Equal(t, 1, errorCount(shell))
	requireLatest(t, shell, MsgDashboardLoadFailed, SeverityError)
}

func TestComputeStatsOtherIsTotalMinusProduce(t *testing.T) {
	ingredients := make([]model.Ingredient, 7)
	for i := 0; i < 3; i++ {
		ingredients[i].IsVegetableOrFruit = true
	}
	stats := ComputeStats(ingredients, nil)
	assert.Equal(t, stats.TotalIngredients-stats.VegetableCount, stats.OtherCount)
	assert.Equal(t, 4, stats.OtherCount)
}
