package http

import (
	"github.com/gin-gonic/gin"

	"item-catalog/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Mutating
// routes sit behind the rate limiter; reads are unthrottled.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.POST("", mw.RateLimit(), h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.Detail)
		items.PATCH("/:id", mw.RateLimit(), h.Update)
		items.DELETE("/:id", mw.RateLimit(), h.Delete)

		items.POST("/maintenance/reconcile", mw.RateLimit(), h.Reconcile)
	}
}
