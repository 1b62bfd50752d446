package app

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pageza/recipe-ai/internal/model"
)

// Stats are the dashboard counters
type Stats struct {
	TotalIngredients int
	VegetableCount   int
	OtherCount       int
	RecipeCount      int
	FavoriteCount    int
	RegularCount     int
}

// ComputeStats derives the dashboard counters from the two lists
func ComputeStats(ingredients []model.Ingredient, recipes []model.Recipe) Stats {
	produce, _ := model.SplitByKind(ingredients)
	favorites := model.CountFavorites(recipes)
	return Stats{
		TotalIngredients: len(ingredients),
		VegetableCount:   len(produce),
		OtherCount:       len(ingredients) - len(produce),
		RecipeCount:      len(recipes),
		FavoriteCount:    favorites,
		RegularCount:     len(recipes) - favorites,
	}
}

// DashboardData is everything the dashboard shows
type DashboardData struct {
	Ingredients []model.Ingredient
	Expiring    []model.Ingredient
	Recipes     []model.Recipe
	Suggestions []model.Suggestion
	Stats       Stats
}

// DashboardPage summarises inventory and recipes
type DashboardPage struct {
	pageBase

	mu   sync.RWMutex
	data DashboardData
}

// NewDashboardPage creates an unmounted dashboard
func NewDashboardPage(api KitchenAPI, host Host) *DashboardPage {
	return &DashboardPage{pageBase: pageBase{api: api, host: host}}
}

// Load issues the four reads concurrently. The first failure cancels the
// rest and nothing is displayed from a partial load.
func (p *DashboardPage) Load(ctx context.Context) error {
	return p.busy(ctx, func(ctx context.Context) error {
		var next DashboardData
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			next.Ingredients, err = p.api.ListIngredients(gctx)
			return err
		})
		g.Go(func() (err error) {
			next.Expiring, err = p.api.ListExpiringIngredients(gctx)
			return err
		})
		g.Go(func() (err error) {
			next.Recipes, err = p.api.ListRecipes(gctx)
			return err
		})
		g.Go(func() (err error) {
			next.Suggestions, err = p.api.RecipeSuggestions(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return p.fail("fetching dashboard data", err, MsgDashboardLoadFailed)
		}

		next.Stats = ComputeStats(next.Ingredients, next.Recipes)
		p.mu.Lock()
		p.data = next
		p.mu.Unlock()
		return nil
	})
}

// Data returns the last complete load
func (p *DashboardPage) Data() DashboardData {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.data
}
