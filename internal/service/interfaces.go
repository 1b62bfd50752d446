package service

import (
	"context"
	"io"

	"github.com/pageza/recipe-ai/internal/model"
	"github.com/pageza/recipe-ai/internal/types"
)

// IIngredientService defines the interface for inventory operations
type IIngredientService interface {
	Add(ctx context.Context, req types.AddIngredientRequest) (*model.Ingredient, error)
	List(ctx context.Context) ([]model.Ingredient, error)
	ListExpiring(ctx context.Context) ([]model.Ingredient, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	List(ctx context.Context) ([]model.Recipe, error)
	Save(ctx context.Context, recipe model.Recipe) (*model.Recipe, error)
	Delete(ctx context.Context, id string) (bool, error)
	Generate(ctx context.Context, recipeType model.RecipeType) (*model.Recipe, error)
	Suggestions(ctx context.Context) ([]model.Suggestion, error)
}

// IInvoiceService defines the interface for invoice extraction
type IInvoiceService interface {
	Extract(ctx context.Context, filename string, r io.Reader) ([]model.ExtractedInvoiceItem, error)
}
