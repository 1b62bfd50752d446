package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipe-ai/internal/model"
)

const maxSuggestions = 5

// RecipeService handles recipe operations
type RecipeService struct {
	db          *gorm.DB
	ingredients *IngredientService
	chef        *Chef
	suggestions []model.Suggestion
}

// NewRecipeService creates a new RecipeService instance. Fixed suggestions,
// when given, replace the ones derived from the inventory.
func NewRecipeService(db *gorm.DB, ingredients *IngredientService, chef *Chef, suggestions []model.Suggestion) *RecipeService {
	return &RecipeService{
		db:          db,
		ingredients: ingredients,
		chef:        chef,
		suggestions: suggestions,
	}
}

// List returns every recipe, oldest first
func (s *RecipeService) List(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).Order("created_at").Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Save inserts a recipe with an empty or unknown id and otherwise replaces
// the stored recipe with the submitted one
func (s *RecipeService) Save(ctx context.Context, recipe model.Recipe) (*model.Recipe, error) {
	if strings.TrimSpace(recipe.Name) == "" {
		return nil, ErrInvalidRecipe
	}
	if recipe.Items == nil {
		recipe.Items = model.StringList{}
	}
	if recipe.Instructions == nil {
		recipe.Instructions = model.StringList{}
	}

	db := s.db.WithContext(ctx)
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
		if err := db.Create(&recipe).Error; err != nil {
			return nil, err
		}
		return &recipe, nil
	}

	var existing model.Recipe
	err := db.First(&existing, "id = ?", recipe.ID).Error
	switch {
	case isNotFound(err):
		if err := db.Create(&recipe).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		recipe.CreatedAt = existing.CreatedAt
		if err := db.Save(&recipe).Error; err != nil {
			return nil, err
		}
	}
	return &recipe, nil
}

// Delete removes a recipe, reporting whether it existed
func (s *RecipeService) Delete(ctx context.Context, id string) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Generate composes and stores a new, non-favourite recipe
func (s *RecipeService) Generate(ctx context.Context, recipeType model.RecipeType) (*model.Recipe, error) {
	if !recipeType.Valid() {
		return nil, ErrInvalidRecipeType
	}

	inventory, err := s.ingredients.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(inventory) == 0 && recipeType != model.RecipeTypeSurprise {
		return nil, ErrNoIngredients
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Count(&count).Error; err != nil {
		return nil, err
	}

	recipe := s.chef.Compose(recipeType, inventory, int(count))
	recipe.ID = uuid.NewString()
	recipe.IsRecipe = true
	recipe.IsFav = false
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Suggestions returns the fixed suggestions, or ideas derived from the
// inventory when there are none
func (s *RecipeService) Suggestions(ctx context.Context) ([]model.Suggestion, error) {
	if len(s.suggestions) > 0 {
		return s.suggestions, nil
	}
	names, err := s.ingredients.Names(ctx)
	if err != nil {
		return nil, err
	}
	return s.chef.Suggest(names, maxSuggestions), nil
}
