package mocks

import (
	"context"
	"io"

	"github.com/pageza/recipe-ai/internal/model"
	"github.com/pageza/recipe-ai/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockKitchenAPI is a mock implementation of the kitchen backend
type MockKitchenAPI struct {
	mock.Mock
}

// ListIngredients mocks the ListIngredients method
func (m *MockKitchenAPI) ListIngredients(ctx context.Context) ([]model.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ingredient), args.Error(1)
}

// ListExpiringIngredients mocks the ListExpiringIngredients method
func (m *MockKitchenAPI) ListExpiringIngredients(ctx context.Context) ([]model.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ingredient), args.Error(1)
}

// AddIngredient mocks the AddIngredient method
func (m *MockKitchenAPI) AddIngredient(ctx context.Context, req types.AddIngredientRequest) (*model.Ingredient, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ingredient), args.Error(1)
}

// DeleteIngredient mocks the DeleteIngredient method
func (m *MockKitchenAPI) DeleteIngredient(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// ListRecipes mocks the ListRecipes method
func (m *MockKitchenAPI) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

// GenerateRecipe mocks the GenerateRecipe method
func (m *MockKitchenAPI) GenerateRecipe(ctx context.Context, recipeType model.RecipeType) (*model.Recipe, error) {
	args := m.Called(ctx, recipeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// SaveRecipe mocks the SaveRecipe method
func (m *MockKitchenAPI) SaveRecipe(ctx context.Context, recipe model.Recipe) (*model.Recipe, error) {
	args := m.Called(ctx, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// DeleteRecipe mocks the DeleteRecipe method
func (m *MockKitchenAPI) DeleteRecipe(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// RecipeSuggestions mocks the RecipeSuggestions method
func (m *MockKitchenAPI) RecipeSuggestions(ctx context.Context) ([]model.Suggestion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Suggestion), args.Error(1)
}

// UploadInvoice mocks the UploadInvoice method
func (m *MockKitchenAPI) UploadInvoice(ctx context.Context, filename string, pdf io.Reader) ([]model.ExtractedInvoiceItem, error) {
	args := m.Called(ctx, filename, pdf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExtractedInvoiceItem), args.Error(1)
}
