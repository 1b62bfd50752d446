package app

import (
	"context"
	"sync"

	"github.com/pageza/recipe-ai/internal/client"
	"github.com/pageza/recipe-ai/internal/model"
)

// RecipeTab narrows the recipe list
type RecipeTab int

const (
	TabAll RecipeTab = iota
	TabFavorites
	TabRegular
)

// RecipeTabs lists the tabs in display order
var RecipeTabs = []RecipeTab{TabAll, TabFavorites, TabRegular}

func (t RecipeTab) String() string {
	switch t {
	case TabFavorites:
		return "Favorites"
	case TabRegular:
		return "Regular"
	default:
		return "All"
	}
}

// RecipesPage lists every recipe with search, tabs, favourite toggling,
// generation and deletion
type RecipesPage struct {
	pageBase

	mu         sync.RWMutex
	recipes    []model.Recipe
	search     string
	tab        RecipeTab
	recipeType model.RecipeType
	expanded   map[string]bool
	selected   *model.Recipe
}

// NewRecipesPage creates an unmounted recipes page
func NewRecipesPage(api KitchenAPI, host Host) *RecipesPage {
	return &RecipesPage{
		pageBase:   pageBase{api: api, host: host},
		recipeType: model.RecipeTypeAvailable,
		expanded:   make(map[string]bool),
	}
}

// Load replaces the list with the server's recipes
func (p *RecipesPage) Load(ctx context.Context) error {
	return p.busy(ctx, func(ctx context.Context) error {
		recipes, err := p.api.ListRecipes(ctx)
		if err != nil {
			return p.fail("fetching recipes", err, MsgRecipesLoadFailed)
		}
		p.mu.Lock()
		p.recipes = recipes
		p.mu.Unlock()
		return nil
	})
}

// SetSearch updates the name filter
func (p *RecipesPage) SetSearch(query string) {
	p.mu.Lock()
	p.search = query
	p.mu.Unlock()
}

// Search returns the current name filter
func (p *RecipesPage) Search() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.search
}

// SetTab selects which recipes are displayed
func (p *RecipesPage) SetTab(tab RecipeTab) {
	p.mu.Lock()
	p.tab = tab
	p.mu.Unlock()
}

// Tab returns the selected tab
func (p *RecipesPage) Tab() RecipeTab {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tab
}

// Recipes returns the full unfiltered list
func (p *RecipesPage) Recipes() []model.Recipe {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]model.Recipe(nil), p.recipes...)
}

// Displayed returns the recipes matching both the search and the tab
func (p *RecipesPage) Displayed() []model.Recipe {
	p.mu.RLock()
	defer p.mu.RUnlock()

	matches := FilterByName(p.recipes, p.search, model.RecipeName)
	out := make([]model.Recipe, 0, len(matches))
	for _, r := range matches {
		switch {
		case p.tab == TabFavorites && !r.IsFav:
		case p.tab == TabRegular && r.IsFav:
		default:
			out = append(out, r)
		}
	}
	return out
}

// ToggleExpanded flips the expanded state of one recipe card
func (p *RecipesPage) ToggleExpanded(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.expanded[id] = !p.expanded[id]
	return p.expanded[id]
}

// Expanded reports whether the recipe card is expanded
func (p *RecipesPage) Expanded(id string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.expanded[id]
}

// Select opens the details of r. A nil recipe closes them.
func (p *RecipesPage) Select(r *model.Recipe) {
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
func (p *RecipesPage) Selected() (model.Recipe, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.selected == nil {
		return model.Recipe{}, false
	}
	return *p.selected, true
}

// SetRecipeType chooses the kind of recipe Generate asks for
func (p *RecipesPage) SetRecipeType(t model.RecipeType) error {
	if !t.Valid() {
		return validationError("unknown recipe type")
	}
	p.mu.Lock()
	p.recipeType = t
	p.mu.Unlock()
	return nil
}

// RecipeType returns the selected generation type
func (p *RecipesPage) RecipeType() model.RecipeType {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.recipeType
}

// ToggleFavorite resubmits r with is_fav inverted and reloads
func (p *RecipesPage) ToggleFavorite(ctx context.Context, r model.Recipe) error {
	updated := r.WithFavorite(!r.IsFav)
	err := p.busy(ctx, func(ctx context.Context) error {
		if _, err := p.api.SaveRecipe(ctx, updated); err != nil {
			return p.fail("updating favorite status", err, MsgFavoriteToggleFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if updated.IsFav {
		p.success(MsgFavoriteAdded)
	} else {
		p.success(MsgFavoriteRemoved)
	}
	return p.Load(ctx)
}

// Generate asks the backend for a recipe of the selected type, reloads the
// list and opens the new recipe's details. The server's error message is
// shown when it sent one.
func (p *RecipesPage) Generate(ctx context.Context) error {
	recipeType := p.RecipeType()

	var generated *model.Recipe
	err := p.busy(ctx, func(ctx context.Context) error {
		r, err := p.api.GenerateRecipe(ctx, recipeType)
		if err != nil {
			msg := MsgRecipeGenerateFailed
			if serverMsg, ok := client.ServerMessage(err); ok {
				msg = serverMsg
			}
			return p.fail("generating recipe", err, msg)
		}
		generated = r
		return nil
	})
	if err != nil {
		return err
	}

	p.success(MsgRecipeGenerated)
	p.Select(generated)
	return p.Load(ctx)
}

// Delete removes the recipe with id and reloads
func (p *RecipesPage) Delete(ctx context.Context, id string) error {
	err := p.busy(ctx, func(ctx context.Context) error {
		ok, err := p.api.DeleteRecipe(ctx, id)
		if err == nil && !ok {
			err = ErrRejected
		}
		if err != nil {
			return p.fail("deleting recipe", err, MsgRecipeDeleteFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	p.mu.Lock()
	if p.selected != nil && p.selected.ID == id {
		p.selected = nil
	}
	delete(p.expanded, id)
	p.mu.Unlock()

	p.success(MsgRecipeDeleted)
	return p.Load(ctx)
}
