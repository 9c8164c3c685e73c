package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/greenloop/greencycle/internal/container"
	handlers "github.com/greenloop/greencycle/internal/interface/http"
	"github.com/greenloop/greencycle/internal/interface/middleware"
	"github.com/greenloop/greencycle/pkg/helpers"
)

// AuthModule wires registration, login and the protected profile route.
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: GET /api/profile
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/profile", m.Handler.Profile)
	}
}
