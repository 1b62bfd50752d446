package service

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/pageza/recipe-ai/internal/model"
)

//go:embed fixtures/default.yaml
var defaultFixtures []byte

// FixtureIngredient is an inventory entry added daysAgo days before seeding
type FixtureIngredient struct {
	Name               string `yaml:"name"`
	Quantity           int    `yaml:"quantity"`
	IsVegetableOrFruit bool   `yaml:"is_vegetable_or_fruit"`
	DaysAgo            int    `yaml:"days_ago"`
}

// FixtureRecipe is a stored recipe in fixture form
type FixtureRecipe struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Items        []string `yaml:"items"`
	Instructions []string `yaml:"instructions"`
	Tags         []string `yaml:"tags"`
	CookingTime  int      `yaml:"cooking_time"`
	IsFav        bool     `yaml:"is_fav"`
	IsVeg        bool     `yaml:"is_veg"`
	IsRecipe     bool     `yaml:"is_recipe"`
}

// Fixtures is the seed data and canned responses of the stand-in server
type Fixtures struct {
	Ingredients  []FixtureIngredient          `yaml:"ingredients"`
	Recipes      []FixtureRecipe              `yaml:"recipes"`
	Suggestions  []model.Suggestion           `yaml:"suggestions"`
	InvoiceItems []model.ExtractedInvoiceItem `yaml:"invoice_items"`
}

// LoadFixtures reads fixtures from path, or the built-in set when path is empty
func LoadFixtures(path string) (*Fixtures, error) {
	data := defaultFixtures
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read fixtures: %w", err)
		}
	}

	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &f, nil
}

// Seed fills empty tables with the fixture data. Tables that already hold
// rows are left alone.
func (f *Fixtures) Seed(ctx context.Context, db *gorm.DB, now time.Time) error {
	db = db.WithContext(ctx)

	var count int64
	if err := db.Model(&model.Ingredient{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 && len(f.Ingredients) > 0 {
		today := model.NewDate(now)
		items := make([]model.Ingredient, len(f.Ingredients))
		for i, fi := range f.Ingredients {
			items[i] = model.Ingredient{
				ID:                 uuid.NewString(),
				Name:               fi.Name,
				Quantity:           fi.Quantity,
				IsVegetableOrFruit: fi.IsVegetableOrFruit,
				ItemAdded:          today.AddDays(-fi.DaysAgo),
			}
		}
		if err := db.Create(&items).Error; err != nil {
			return fmt.Errorf("seed ingredients: %w", err)
		}
	}

	if err := db.Model(&model.Recipe{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 && len(f.Recipes) > 0 {
		recipes := make([]model.Recipe, len(f.Recipes))
		for i, fr := range f.Recipes {
			recipes[i] = model.Recipe{
				ID:           uuid.NewString(),
				Name:         fr.Name,
				Description:  fr.Description,
				Items:        model.StringList(fr.Items),
				Instructions: model.StringList(fr.Instructions),
				Tags:         model.StringList(fr.Tags),
				CookingTime:  fr.CookingTime,
				IsFav:        fr.IsFav,
				IsVeg:        fr.IsVeg,
				IsRecipe:     fr.IsRecipe,
				// keep fixture order under created_at ordering
				CreatedAt: now.Add(time.Duration(i-len(f.Recipes)) * time.Second),
			}
		}
		if err := db.Create(&recipes).Error; err != nil {
			return fmt.Errorf("seed recipes: %w", err)
		}
	}
	return nil
}
