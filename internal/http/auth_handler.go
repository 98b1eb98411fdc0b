package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"interview-scheduler/internal/service"
)

// AuthHandler mantiene dependencias para los endpoints de autenticación.
type AuthHandler struct {
	logger  *zap.Logger
	authSvc *service.AuthService
	limiter service.LoginRateLimiter
}

// NewAuthHandler crea una instancia de AuthHandler con sus dependencias.
func NewAuthHandler(logger *zap.Logger, authSvc *service.AuthService, limiter service.LoginRateLimiter) *AuthHandler {
	return &AuthHandler{
		logger:  logger,
		authSvc: authSvc,
		limiter: limiter,
	}
}

// Login maneja POST /api/admin/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		respondError(c, http.StatusUnprocessableEntity, "invalid request")
		return
	}

	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		respondError(c, http.StatusTooManyRequests, "too many requests")
		return
	}

	token, err := h.authSvc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not login")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "message": "Login successful"})
}
