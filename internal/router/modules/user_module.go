package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/estatia/estatia/internal/container"
	handlers "github.com/estatia/estatia/internal/interface/http"
	"github.com/estatia/estatia/internal/interface/middleware"
)

// UserModule wires registration into routes.
// Public: POST /api/users/signup (tight per-IP+path limit).
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	users := rg.Group("/users")
	{
		users.POST("/signup", signupLimiter, m.Handler.Signup)
	}
}
