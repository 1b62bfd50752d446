package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-ai/internal/types"
)

// Recovery turns a panic into a JSON 500 in the same shape as every other error
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Error: request_id=%s panic: %v", GetRequestID(c.Request.Context()), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Internal Server Error"})
	})
}
