package address

import (
	"go-swifteats-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	addresses := r.Group("/addresses")
	addresses.Use(middleware.AuthMiddleware())
	{
		addresses.GET("", handler.List)
		addresses.POST("", handler.Create)
		addresses.PUT("/:id", handler.Update)
		addresses.DELETE("/:id", handler.Delete)
	}
}
