package historico

import (
	"go-epi/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the ledger endpoints under the same /epis prefix
// the catalog uses; the paths never collide.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client, logger *zap.Logger) {
	epis := r.Group("/epis")
	epis.Use(middleware.ContextLogger(logger))
	{
		epis.GET("/funcionario/:cpf", handler.GetActive)
		epis.GET("/funcionario/:cpf/historico", handler.GetHistory)

		epis.POST("/atribuir",
			middleware.RateLimitByIP(1, 5),
			middleware.Idempotency(rdb),
			handler.Assign,
		)
		epis.POST("/substituicao",
			middleware.RateLimitByIP(0.5, 2),
			middleware.Idempotency(rdb),
			handler.Substitute,
		)
	}
}
