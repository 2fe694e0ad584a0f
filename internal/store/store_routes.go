package store

import "github.com/gin-gonic/gin"

// Store browsing is public; no auth required.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	stores := r.Group("/stores")
	{
		stores.GET("", handler.List)
		stores.GET("/:id", handler.Detail)
	}
}
