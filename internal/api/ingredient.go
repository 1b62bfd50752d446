package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-ai/internal/service"
	"github.com/pageza/recipe-ai/internal/types"
)

type IngredientHandler struct {
	ingredients service.IIngredientService
}

func NewIngredientHandler(ingredients service.IIngredientService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/add-ingredient", h.AddIngredient)
	router.GET("/get-ingredients", h.ListIngredients)
	router.GET("/get-expiring-ingredients", h.ListExpiringIngredients)
	router.DELETE("/delete-ingredient/:id", h.DeleteIngredient)
}

func (h *IngredientHandler) AddIngredient(c *gin.Context) {
	var req types.AddIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.ingredients.Add(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, "Error adding ingredient", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	items, err := h.ingredients.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, "Error fetching ingredients", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *IngredientHandler) ListExpiringIngredients(c *gin.Context) {
	items, err := h.ingredients.ListExpiring(c.Request.Context())
	if err != nil {
		respondServiceError(c, "Error fetching expiring ingredients", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	ok, err := h.ingredients.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, "Error deleting ingredient", err)
		return
	}
	c.JSON(http.StatusOK, types.SuccessResponse{Success: ok})
}
