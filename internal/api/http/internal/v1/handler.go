package v1

import (
	"github.com/lovematch/backend/internal/config"
	"github.com/lovematch/backend/internal/service"
	"github.com/lovematch/backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title LoveMatch API
// @version 1.0
// @description Love compatibility backend: OTP-verified accounts and scored submissions

// @BasePath /api

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name token

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	h.initAuthRoutes(api)
	h.initUsersRoutes(api)
}
