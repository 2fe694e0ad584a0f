package order

import (
	"go-swifteats-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.GET("/quote", handler.Quote)

		// Checkout is idempotency-guarded to stop accidental double
		// orders from retried requests.
		orders.POST("/checkout",
			middleware.Idempotency(rdb),
			handler.Checkout,
		)

		orders.GET("", handler.List)
		orders.GET("/:id", handler.Detail)
		orders.PATCH("/:id/cancel", handler.Cancel)

		// Courier dispatch marks delivery through the admin role.
		orders.PATCH("/:id/complete",
			middleware.RoleMiddleware("admin"),
			handler.Complete,
		)
	}
}
