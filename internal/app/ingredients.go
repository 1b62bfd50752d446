package app

import (
	"context"
	"strings"
	"sync"

	"github.com/pageza/recipe-ai/internal/model"
	"github.com/pageza/recipe-ai/internal/types"
)

// IngredientsPage lists the inventory with search, add and delete
type IngredientsPage struct {
	pageBase

	mu     sync.RWMutex
	items  []model.Ingredient
	search string
}

// NewIngredientsPage creates an unmounted ingredients page
func NewIngredientsPage(api KitchenAPI, host Host) *IngredientsPage {
	return &IngredientsPage{pageBase: pageBase{api: api, host: host}}
}

// Load replaces the list with the server's inventory. On failure the
// previous list is kept.
func (p *IngredientsPage) Load(ctx context.Context) error {
	return p.busy(ctx, func(ctx context.Context) error {
		items, err := p.api.ListIngredients(ctx)
		if err != nil {
			return p.fail("fetching ingredients", err, MsgIngredientsLoadFailed)
		}
		p.mu.Lock()
		p.items = items
		p.mu.Unlock()
		return nil
	})
}

// SetSearch updates the name filter
func (p *IngredientsPage) SetSearch(query string) {
	p.mu.Lock()
	p.search = query
	p.mu.Unlock()
}

// Search returns the current name filter
func (p *IngredientsPage) Search() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.search
}

// Items returns the full unfiltered list
func (p *IngredientsPage) Items() []model.Ingredient {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]model.Ingredient(nil), p.items...)
}

// Filtered returns the ingredients matching the search
func (p *IngredientsPage) Filtered() []model.Ingredient {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]model.Ingredient(nil), FilterByName(p.items, p.search, model.IngredientName)...)
}

// Grouped splits the filtered list into produce and everything else
func (p *IngredientsPage) Grouped() (produce, other []model.Ingredient) {
	return model.SplitByKind(p.Filtered())
}

// Add stores a new ingredient and reloads the list. The quantity is sent as given.
func (p *IngredientsPage) Add(ctx context.Context, req types.AddIngredientRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return p.warn(MsgIngredientNameRequired)
	}

	err := p.busy(ctx, func(ctx context.Context) error {
		if _, err := p.api.AddIngredient(ctx, req); err != nil {
			return p.fail("adding ingredient", err, MsgIngredientAddFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}
	p.success(MsgIngredientAdded)
	return p.Load(ctx)
}

// Delete removes the ingredient with id and reloads the list. A server
// answer of success=false counts as a failure and leaves the list as is.
func (p *IngredientsPage) Delete(ctx context.Context, id string) error {
	err := p.busy(ctx, func(ctx context.Context) error {
		ok, err := p.api.DeleteIngredient(ctx, id)
		if err != nil {
			return p.fail("deleting ingredient", err, MsgIngredientDeleteFailed)
		}
		if !ok {
			return p.fail("deleting ingredient", ErrRejected, MsgIngredientDeleteFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}
	p.success(MsgIngredientDeleted)
	return p.Load(ctx)
}
