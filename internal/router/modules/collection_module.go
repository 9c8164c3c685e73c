package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/greenloop/greencycle/internal/container"
	handlers "github.com/greenloop/greencycle/internal/interface/http"
	"github.com/greenloop/greencycle/internal/interface/middleware"
)

// CollectionModule wires the collection-request routes.
// POST /api/collections           create a request
// GET  /api/collections           list all requests
// GET  /api/collections/user/:userId  list requests owned by a user
// GET  /api/collections/search    full-text search (Elasticsearch)
type CollectionModule struct {
	Handler *handlers.CollectionHandler
}

func NewCollectionModule(h *handlers.CollectionHandler) *CollectionModule {
	return &CollectionModule{Handler: h}
}

func (m *CollectionModule) Register(rg *gin.RouterGroup) {
	createLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	listLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.POST("/collections", createLimiter, m.Handler.Create)
	rg.GET("/collections", listLimiter, m.Handler.ListAll)
	rg.GET("/collections/user/:userId", listLimiter, m.Handler.ListByUser)
	rg.GET("/collections/search", listLimiter, m.Handler.Search)
}
