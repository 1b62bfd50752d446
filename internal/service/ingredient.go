package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/recipe-ai/internal/model"
	"github.com/pageza/recipe-ai/internal/types"
)

// IngredientService handles inventory operations
type IngredientService struct {
	db         *gorm.DB
	expiryDays int
	now        func() time.Time
}

// NewIngredientService creates a new IngredientService instance. Produce
// stored for expiryDays or more counts as expiring.
func NewIngredientService(db *gorm.DB, expiryDays int) *IngredientService {
	return &IngredientService{db: db, expiryDays: expiryDays, now: time.Now}
}

// Add stores an ingredient, overwriting any existing entry with the same
// name, and stamps it with today's date
func (s *IngredientService) Add(ctx context.Context, req types.AddIngredientRequest) (*model.Ingredient, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidIngredient
	}

	item := model.Ingredient{
		ID:                 uuid.NewString(),
		Name:               name,
		Quantity:           req.Quantity,
		IsVegetableOrFruit: req.IsVegetableOrFruit,
		ItemAdded:          model.NewDate(s.now()),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "is_vegetable_or_fruit", "item_added"}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	var stored model.Ingredient
	if err := s.db.WithContext(ctx).First(&stored, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// List returns the whole inventory ordered by name
func (s *IngredientService) List(ctx context.Context) ([]model.Ingredient, error) {
	var items []model.Ingredient
	if err := s.db.WithContext(ctx).Order("name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListExpiring returns the vegetables and fruits added expiryDays or more ago
func (s *IngredientService) ListExpiring(ctx context.Context) ([]model.Ingredient, error) {
	var produce []model.Ingredient
	if err := s.db.WithContext(ctx).Where("is_vegetable_or_fruit = ?", true).Order("name").Find(&produce).Error; err != nil {
		return nil, err
	}

	cutoff := model.NewDate(s.now()).AddDays(-s.expiryDays)
	expiring := make([]model.Ingredient, 0, len(produce))
	for _, item := range produce {
		if !item.ItemAdded.IsZero() && !item.ItemAdded.After(cutoff.Time) {
			expiring = append(expiring, item)
		}
	}
	return expiring, nil
}

// Delete removes an ingredient, reporting whether it existed
func (s *IngredientService) Delete(ctx context.Context, id string) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&model.Ingredient{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Names returns the inventory names, used to compose recipes and suggestions
func (s *IngredientService) Names(ctx context.Context) ([]string, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
