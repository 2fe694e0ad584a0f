package cart

import (
	"go-swifteats-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/carts")
	carts.Use(middleware.AuthMiddleware())
	{
		carts.GET("/detail", handler.Detail)
		carts.GET("/count", handler.Count)
		carts.DELETE("", handler.Clear)

		items := carts.Group("/items")
		{
			items.POST("", handler.AddItem)
			items.PATCH("/:lineId", handler.UpdateQty)
			items.DELETE("/:lineId", handler.DeleteItem)
		}
	}
}
