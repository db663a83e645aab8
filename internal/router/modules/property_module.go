package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/estatia/estatia/internal/container"
	handlers "github.com/estatia/estatia/internal/interface/http"
	"github.com/estatia/estatia/internal/interface/middleware"
)

// PropertyModule wires listing HTTP handlers into routes.
// All routes live under /api/properties; write routes carry a per-IP limiter.
type PropertyModule struct {
	Handler *handlers.PropertyHandler
}

func NewPropertyModule(h *handlers.PropertyHandler) *PropertyModule {
	return &PropertyModule{Handler: h}
}

func (m *PropertyModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	props := rg.Group("/properties")
	{
		props.GET("", m.Handler.List)
		props.GET("/:id", m.Handler.Get)
		props.POST("", writeLimiter, m.Handler.Create)
		props.PUT("/:id", writeLimiter, m.Handler.Update)
		props.DELETE("/:id", writeLimiter, m.Handler.Delete)

		props.GET("/search/location", m.Handler.SearchByLocation)
		props.GET("/search/price", m.Handler.SearchByPriceRange)
		props.GET("/search/title", m.Handler.SearchByTitle)

		props.GET("/sort/price-asc", m.Handler.SortByPriceAsc)
		props.GET("/sort/price-desc", m.Handler.SortByPriceDesc)
	}
}
