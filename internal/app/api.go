package app

import (
	"context"
	"io"

	"github.com/pageza/recipe-ai/internal/model"
	"github.com/pageza/recipe-ai/internal/types"
)

// KitchenAPI is the backend contract the pages depend on.
// *client.Client implements it.
type KitchenAPI interface {
	ListIngredients(ctx context.Context) ([]model.Ingredient, error)
	ListExpiringIngredients(ctx context.Context) ([]model.Ingredient, error)
	AddIngredient(ctx context.Context, req types.AddIngredientRequest) (*model.Ingredient, error)
	DeleteIngredient(ctx context.Context, id string) (bool, error)
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
	GenerateRecipe(ctx context.Context, recipeType model.RecipeType) (*model.Recipe, error)
	SaveRecipe(ctx context.Context, recipe model.Recipe) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) (bool, error)
	RecipeSuggestions(ctx context.Context) ([]model.Suggestion, error)
	UploadInvoice(ctx context.Context, filename string, pdf io.Reader) ([]model.ExtractedInvoiceItem, error)
}
