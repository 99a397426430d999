package epi

import (
	"go-epi/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	epis := r.Group("/epis")
	epis.Use(middleware.ContextLogger(logger))
	{
		epis.GET("", handler.GetAll)
		epis.GET("/buscar/ca", handler.GetByCA)
		epis.GET("/buscar/vencimento", handler.GetExpiring)
		epis.GET("/buscar", handler.GetByDateRange)

		epis.POST("",
			middleware.RateLimitByIP(1, 5),
			handler.Create,
		)
	}
}
