package service

import "errors"

var (
	ErrNoIngredients     = errors.New("no ingredients available")
	ErrInvalidRecipeType = errors.New("invalid recipe type")
	ErrInvalidRecipe     = errors.New("recipe name is required")
	ErrInvalidIngredient = errors.New("ingredient name is required")
	ErrInvalidFileFormat = errors.New("invalid file format")
	ErrUnreadableInvoice = errors.New("no text extracted from the invoice")
)
