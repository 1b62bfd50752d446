package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/recipe-ai/internal/api"
	"github.com/pageza/recipe-ai/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(db *gorm.DB, svc api.Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	api.RegisterRoutes(router, db, svc)
	return router
}
