package app

import (
	"context"
	"log"
)

// App wires the shell and the backend together and mounts fresh page
// view-models. Every mount starts from empty state, so returning to a page
// always refetches.
type App struct {
	Shell *Shell
	API   KitchenAPI
	// CommitConcurrency > 1 commits invoice items as a bounded batch.
	CommitConcurrency int
}

// NewApp creates an App
func NewApp(shell *Shell, api KitchenAPI, commitConcurrency int) *App {
	return &App{Shell: shell, API: api, CommitConcurrency: commitConcurrency}
}

// Dashboard mounts the dashboard page
func (a *App) Dashboard() *DashboardPage { return NewDashboardPage(a.API, a.Shell) }

// Ingredients mounts the ingredients page
func (a *App) Ingredients() *IngredientsPage { return NewIngredientsPage(a.API, a.Shell) }

// Recipes mounts the recipes page
func (a *App) Recipes() *RecipesPage { return NewRecipesPage(a.API, a.Shell) }

// Favorites mounts the favorites page
func (a *App) Favorites() *FavoritesPage { return NewFavoritesPage(a.API, a.Shell) }

// CreateRecipe mounts the recipe creation page
func (a *App) CreateRecipe() *CreateRecipePage { return NewCreateRecipePage(a.API, a.Shell) }

// UploadInvoice mounts the invoice upload page
func (a *App) UploadInvoice() *UploadPage {
	return NewUploadPage(a.API, a.Shell, a.CommitConcurrency)
}

type pageBase struct {
	api  KitchenAPI
	host Host
}

// busy raises the loading flag for the duration of fn
func (b pageBase) busy(ctx context.Context, fn func(ctx context.Context) error) error {
	b.host.SetLoading(true)
	defer b.host.SetLoading(false)
	return fn(ctx)
}

// fail logs err and collapses it into one error notification
func (b pageBase) fail(op string, err error, message string) error {
	log.Printf("Error %s: %v", op, err)
	b.host.Notify(message, SeverityError)
	return err
}

// warn rejects input locally without touching the network
func (b pageBase) warn(message string) error {
	b.host.Notify(message, SeverityWarning)
	return validationError(message)
}

func (b pageBase) success(message string) {
	b.host.Notify(message, SeveritySuccess)
}
