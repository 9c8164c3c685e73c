package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/greenloop/greencycle/internal/container"
	handlers "github.com/greenloop/greencycle/internal/interface/http"
	"github.com/greenloop/greencycle/internal/interface/middleware"
)

// ReferenceModule serves the static lookup endpoints.
// GET /api/centers, GET /api/tutorials
type ReferenceModule struct {
	Handler *handlers.ReferenceHandler
}

func NewReferenceModule(h *handlers.ReferenceHandler) *ReferenceModule {
	return &ReferenceModule{Handler: h}
}

func (m *ReferenceModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/centers", rl, m.Handler.ListCenters)
	rg.GET("/tutorials", rl, m.Handler.ListTutorials)
}
