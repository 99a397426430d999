package funcionario

import (
	"go-epi/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	funcionarios := r.Group("/funcionarios")
	funcionarios.Use(middleware.ContextLogger(logger))
	{
		funcionarios.GET("", handler.GetAll)
		funcionarios.GET("/buscar", handler.SearchByCPF)

		funcionarios.POST("",
			middleware.RateLimitByIP(1, 5),
			handler.Create,
		)
	}
}
