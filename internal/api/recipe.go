package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-ai/internal/model"
	"github.com/pageza/recipe-ai/internal/service"
	"github.com/pageza/recipe-ai/internal/types"
)

type RecipeHandler struct {
	recipes service.IRecipeService
}

func NewRecipeHandler(recipes service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/get-recipes", h.ListRecipes)
	router.POST("/get-recipe", h.GenerateRecipe)
	router.POST("/save-recipe", h.SaveRecipe)
	router.DELETE("/delete-recipe/:id", h.DeleteRecipe)
	router.GET("/get-recipe-suggestions", h.RecipeSuggestions)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, "Error fetching recipes", err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GenerateRecipe defaults a missing type to 1
func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	req := types.GenerateRecipeRequest{Type: model.RecipeTypeAvailable}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, MsgInvalidRecipeType)
			return
		}
	}

	recipe, err := h.recipes.Generate(c.Request.Context(), req.Type)
	if err != nil {
		respondServiceError(c, "Error processing recipe", err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) SaveRecipe(c *gin.Context) {
	var recipe model.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.recipes.Save(c.Request.Context(), recipe)
	if err != nil {
		respondServiceError(c, "Error saving recipe", err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	ok, err := h.recipes.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, "Error deleting recipe", err)
		return
	}
	c.JSON(http.StatusOK, types.SuccessResponse{Success: ok})
}

func (h *RecipeHandler) RecipeSuggestions(c *gin.Context) {
	suggestions, err := h.recipes.Suggestions(c.Request.Context())
	if err != nil {
		respondServiceError(c, "Error generating suggestions", err)
		return
	}
	c.JSON(http.StatusOK, suggestions)
}
