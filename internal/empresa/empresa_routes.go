package empresa

import (
	"go-epi/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	empresas := r.Group("/empresas")
	empresas.Use(middleware.ContextLogger(logger))
	{
		empresas.GET("", handler.GetAll)
		empresas.GET("/email/:email", handler.GetByEmail)

		empresas.POST("",
			middleware.RateLimitByIP(0.5, 3),
			handler.Register,
		)

		// Login is throttled harder than everything else.
		empresas.POST("/autenticacao",
			middleware.RateLimitByIP(0.5, 5),
			handler.Authenticate,
		)
		empresas.POST("/refresh",
			middleware.RateLimitByIP(1, 5),
			handler.Refresh,
		)

		empresas.GET("/me",
			middleware.AuthMiddleware(),
			middleware.RateLimitByEmpresa(5, 10),
			handler.Me,
		)
	}
}
