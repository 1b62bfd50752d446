package app

// User-facing notification texts
const (
	MsgDashboardLoadFailed = "Failed to fetch dashboard data"

	MsgIngredientsLoadFailed  = "Failed to fetch ingredients"
	MsgIngredientAdded        = "Ingredient added successfully"
	MsgIngredientNameRequired = "Please enter an ingredient name"
	MsgIngredientAddFailed    = "Failed to add ingredient"
	MsgIngredientDeleted      = "Ingredient deleted successfully"
	MsgIngredientDeleteFailed = "Failed to delete ingredient"

	MsgRecipesLoadFailed    = "Failed to fetch recipes"
	MsgFavoriteAdded        = "Recipe added to favorites"
	MsgFavoriteRemoved      = "Recipe removed from favorites"
	MsgFavoriteToggleFailed = "Failed to update favorite status"
	MsgRecipeGenerated      = "Recipe generated successfully"
	MsgRecipeGenerateFailed = "Failed to generate recipe"
	MsgRecipeDeleted        = "Recipe deleted successfully"
	MsgRecipeDeleteFailed   = "Failed to delete recipe"
	MsgDraftGenerated       = "Recipe generated successfully!"
	MsgDraftGenerateFailed  = "Failed to generate recipe. Please try again."
	MsgRecipeSaved          = "Recipe saved successfully!"
	MsgRecipeNameRequired   = "Please enter a recipe name"
	MsgRecipeItemsRequired  = "Please add at least one ingredient"
	MsgRecipeStepsRequired  = "Please add cooking instructions"
	MsgRecipeSaveFailed     = "Failed to save recipe"
	MsgGeneratedSaved       = "Recipe saved to favorites!"
	MsgFavoritesLoadFailed  = "Failed to fetch favorite recipes"
	MsgFavoriteRemoveFailed = "Failed to remove recipe from favorites"

	MsgInvoiceNotPDF        = "Please upload a PDF file"
	MsgInvoiceProcessed     = "Invoice processed successfully"
	MsgInvoiceFileRequired  = "Please select a file to upload"
	MsgInvoiceProcessFailed = "Failed to process invoice"
	MsgInventoryUpdated     = "Items added to inventory successfully"
	MsgInvoiceNoSelection   = "Please select at least one item"
	MsgInventoryFailed      = "Failed to add items to inventory"
)
