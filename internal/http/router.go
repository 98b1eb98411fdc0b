package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"interview-scheduler/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas bajo /api.
func NewRouter(
	logger *zap.Logger,
	corsOrigins []string,
	authSvc *service.AuthService,
	authH *AuthHandler,
	interviewH *InterviewHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y CORS.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), corsMiddleware(corsOrigins))

	api := r.Group("/api")
	api.GET("/", root)
	api.POST("/admin/login", authH.Login)
	api.POST("/interviews", interviewH.Create)

	protected := api.Group("", AuthMiddleware(authSvc))
	protected.GET("/interviews", interviewH.ListAll)
	protected.GET("/interviews/date/:date", interviewH.ListByDate)

	return r
}

// root maneja GET /api/.
func root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Interview Scheduler API"})
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		// Credenciales solo con orígenes explícitos, nunca con comodín.
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	cfg.AddAllowHeaders("Authorization")
	return cors.New(cfg)
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
