package app

import (
	"context"
	"sync"

	"github.com/pageza/recipe-ai/internal/model"
)

// FavoritesPage lists favourite recipes and lets the user unfavourite them
type FavoritesPage struct {
	pageBase

	mu       sync.RWMutex
	recipes  []model.Recipe
	search   string
	selected *model.Recipe
}

// NewFavoritesPage creates an unmounted favorites page
func NewFavoritesPage(api KitchenAPI, host Host) *FavoritesPage {
	return &FavoritesPage{pageBase: pageBase{api: api, host: host}}
}

// Load fetches all recipes and keeps the favourites
func (p *FavoritesPage) Load(ctx context.Context) error {
	return p.busy(ctx, func(ctx context.Context) error {
		recipes, err := p.api.ListRecipes(ctx)
		if err != nil {
			return p.fail("fetching favorite recipes", err, MsgFavoritesLoadFailed)
		}
		favorites := make([]model.Recipe, 0, len(recipes))
		for _, r := range recipes {
			if r.IsFav {
				favorites = append(favorites, r)
			}
		}
		p.mu.Lock()
		p.recipes = favorites
		p.mu.Unlock()
		return nil
	})
}

// SetSearch updates the name filter
func (p *FavoritesPage) SetSearch(query string) {
	p.mu.Lock()
	p.search = query
	p.mu.Unlock()
}

// Search returns the current name filter
func (p *FavoritesPage) Search() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.search
}

// Recipes returns every favourite
func (p *FavoritesPage) Recipes() []model.Recipe {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]model.Recipe(nil), p.recipes...)
}

// Filtered returns the favourites matching the search
func (p *FavoritesPage) Filtered() []model.Recipe {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]model.Recipe(nil), FilterByName(p.recipes, p.search, model.RecipeName)...)
}

// Select opens the details of r. A nil recipe closes them.
func (p *FavoritesPage) Select(r *model.Recipe) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if r == nil {
		p.selected = nil
		return
	}
	cp := *r
	p.selected = &cp
}

// Selected returns the recipe whose details are open
func (p *FavoritesPage) Selected() (model.Recipe, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.selected == nil {
		return model.Recipe{}, false
	}
	return *p.selected, true
}

// Remove resubmits r with is_fav cleared and reloads. The recipe itself
// is kept.
func (p *FavoritesPage) Remove(ctx context.Context, r model.Recipe) error {
	err := p.busy(ctx, func(ctx context.Context) error {
		if _, err := p.api.SaveRecipe(ctx, r.WithFavorite(false)); err != nil {
			return p.fail("removing recipe from favorites", err, MsgFavoriteRemoveFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}
	p.Select(nil)
	p.success(MsgFavoriteRemoved)
	return p.Load(ctx)
}
