package app

import (
	"context"
	"strings"
	"sync"

	"github.com/pageza/recipe-ai/internal/model"
)

// RecipeDraft is the custom recipe form
type RecipeDraft struct {
	Name        string
	Description string
	Ingredients []string
	// Instructions is free text, one step per line.
	Instructions string
}

// CreateRecipePage drives AI generation and the custom recipe form
type CreateRecipePage struct {
	pageBase

	mu         sync.RWMutex
	recipeType model.RecipeType
	draft      RecipeDraft
	generated  *model.Recipe
}

// NewCreateRecipePage creates an unmounted create page
func NewCreateRecipePage(api KitchenAPI, host Host) *CreateRecipePage {
	return &CreateRecipePage{
		pageBase:   pageBase{api: api, host: host},
		recipeType: model.RecipeTypeAvailable,
	}
}

// SetRecipeType chooses the kind of recipe Generate asks for
func (p *CreateRecipePage) SetRecipeType(t model.RecipeType) error {
	if !t.Valid() {
		return validationError("unknown recipe type")
	}
	p.mu.Lock()
	p.recipeType = t
	p.mu.Unlock()
	return nil
}

// RecipeType returns the selected generation type
func (p *CreateRecipePage) RecipeType() model.RecipeType {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.recipeType
}

// Draft returns a copy of the form
func (p *CreateRecipePage) Draft() RecipeDraft {
	p.mu.RLock()
	defer p.mu.RUnlock()
	d := p.draft
	d.Ingredients = append([]string(nil), p.draft.Ingredients...)
	return d
}

// SetName sets the draft name
func (p *CreateRecipePage) SetName(name string) {
	p.mu.Lock()
	p.draft.Name = name
	p.mu.Unlock()
}

// SetDescription sets the draft description
func (p *CreateRecipePage) SetDescription(description string) {
	p.mu.Lock()
	p.draft.Description = description
	p.mu.Unlock()
}

// SetInstructions sets the draft instructions text
func (p *CreateRecipePage) SetInstructions(text string) {
	p.mu.Lock()
	p.draft.Instructions = text
	p.mu.Unlock()
}

// AddIngredient appends a trimmed ingredient. Blank input is ignored.
func (p *CreateRecipePage) AddIngredient(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	p.mu.Lock()
	p.draft.Ingredients = append(p.draft.Ingredients, name)
	p.mu.Unlock()
	return true
}

// RemoveIngredient drops the ingredient at index i
func (p *CreateRecipePage) RemoveIngredient(i int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.draft.Ingredients) {
		return false
	}
	p.draft.Ingredients = append(p.draft.Ingredients[:i], p.draft.Ingredients[i+1:]...)
	return true
}

// Generated returns the last generated recipe
func (p *CreateRecipePage) Generated() (model.Recipe, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.generated == nil {
		return model.Recipe{}, false
	}
	return *p.generated, true
}

// Generate asks the backend for a recipe of the selected type
func (p *CreateRecipePage) Generate(ctx context.Context) error {
	recipeType := p.RecipeType()
	err := p.busy(ctx, func(ctx context.Context) error {
		r, err := p.api.GenerateRecipe(ctx, recipeType)
		if err != nil {
			return p.fail("generating recipe", err, MsgDraftGenerateFailed)
		}
		p.mu.Lock()
		p.generated = r
		p.mu.Unlock()
		return nil
	})
	if err != nil {
		return err
	}
	p.success(MsgDraftGenerated)
	return nil
}

// SaveCustom validates the draft, saves it as a favourite recipe and
// clears the form. Validation failures never reach the network.
func (p *CreateRecipePage) SaveCustom(ctx context.Context) error {
	draft := p.Draft()
	switch {
	case strings.TrimSpace(draft.Name) == "":
		return p.warn(MsgRecipeNameRequired)
	case len(draft.Ingredients) == 0:
		return p.warn(MsgRecipeItemsRequired)
	case strings.TrimSpace(draft.Instructions) == "":
		return p.warn(MsgRecipeStepsRequired)
	}

	recipe := model.Recipe{
		Name:         strings.TrimSpace(draft.Name),
		Description:  strings.TrimSpace(draft.Description),
		Items:        model.StringList(draft.Ingredients),
		Instructions: model.SplitLines(draft.Instructions),
		IsRecipe:     true,
		IsFav:        true,
	}
	err := p.busy(ctx, func(ctx context.Context) error {
		if _, err := p.api.SaveRecipe(ctx, recipe); err != nil {
			return p.fail("saving recipe", err, MsgRecipeSaveFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.draft = RecipeDraft{}
	p.mu.Unlock()
	p.success(MsgRecipeSaved)
	return nil
}

// SaveGenerated stores the generated recipe as a favourite. It does
// nothing when no recipe has been generated.
func (p *CreateRecipePage) SaveGenerated(ctx context.Context) error {
	generated, ok := p.Generated()
	if !ok {
		return nil
	}

	recipe := generated.WithFavorite(true)
	err := p.busy(ctx, func(ctx context.Context) error {
		if _, err := p.api.SaveRecipe(ctx, recipe); err != nil {
			return p.fail("saving generated recipe", err, MsgRecipeSaveFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.generated = &recipe
	p.mu.Unlock()
	p.success(MsgGeneratedSaved)
	return nil
}
