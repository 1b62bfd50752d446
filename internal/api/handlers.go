package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/recipe-ai/internal/database"
	"github.com/pageza/recipe-ai/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			respondError(c, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Kitchen API is running",
		})
	}
}

// Services bundles what the handlers depend on
type Services struct {
	Ingredients service.IIngredientService
	Recipes     service.IRecipeService
	Invoices    service.IInvoiceService
}

// RegisterRoutes registers all API routes under /api
func RegisterRoutes(router *gin.Engine, db *gorm.DB, svc Services) {
	router.GET("/health", HealthCheck(db))

	group := router.Group("/api")
	group.GET("/health", HealthCheck(db))

	NewIngredientHandler(svc.Ingredients).RegisterRoutes(group)
	NewRecipeHandler(svc.Recipes).RegisterRoutes(group)
	NewInvoiceHandler(svc.Invoices).RegisterRoutes(group)
}
