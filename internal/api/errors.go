package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-ai/internal/service"
	"github.com/pageza/recipe-ai/internal/types"
)

// Error bodies the console matches on
const (
	MsgNoIngredients     = "No ingredients available"
	MsgInvalidRecipeType = "Invalid recipe type"
	MsgNoFilePart        = "No file part"
	MsgNoSelectedFile    = "No selected file"
	MsgInvalidFileFormat = "Invalid file format"
	MsgNoTextExtracted   = "No text extracted from the invoice."
)

var clientErrors = map[error]string{
	service.ErrNoIngredients:     MsgNoIngredients,
	service.ErrInvalidRecipeType: MsgInvalidRecipeType,
	service.ErrInvalidRecipe:     "Recipe name is required",
	service.ErrInvalidIngredient: "Ingredient name is required",
	service.ErrInvalidFileFormat: MsgInvalidFileFormat,
	service.ErrUnreadableInvoice: MsgNoTextExtracted,
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, types.ErrorResponse{Error: message})
}

// respondServiceError maps service sentinels to 400s; anything else is a 500
// carrying a prefix and the error text.
func respondServiceError(c *gin.Context, prefix string, err error) {
	for sentinel, message := range clientErrors {
		if errors.Is(err, sentinel) {
			respondError(c, http.StatusBadRequest, message)
			return
		}
	}
	log.Printf("%s: %v", prefix, err)
	respondError(c, http.StatusInternalServerError, prefix+": "+err.Error())
}
