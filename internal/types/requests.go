package types

import "github.com/pageza/recipe-ai/internal/model"

// AddIngredientRequest represents the request body for adding an ingredient.
// Adding an existing name overwrites that entry.
type AddIngredientRequest struct {
	Name               string `json:"name" binding:"required"`
	Quantity           int    `json:"quantity"`
	IsVegetableOrFruit bool   `json:"is_vegetable_or_fruit"`
}

// GenerateRecipeRequest represents the request body for recipe generation
type GenerateRecipeRequest struct {
	Type model.RecipeType `json:"type"`
}

// SuccessResponse is the acknowledgement returned by writes and deletes
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

// UploadInvoiceResponse is returned by invoice extraction
type UploadInvoiceResponse struct {
	Success        bool                         `json:"success"`
	ItemsProcessed int                          `json:"items_processed"`
	Items          []model.ExtractedInvoiceItem `json:"items"`
}
