package app

import (
	"database/sql"

	"go-epi/internal/empresa"
	"go-epi/internal/epi"
	"go-epi/internal/funcionario"
	"go-epi/internal/historico"
	"go-epi/internal/messaging/kafka"
	"go-epi/internal/middleware"
	"go-epi/internal/shared/counter"
	"go-epi/internal/shared/password"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	epiRepo := epi.NewRepository(gormDB)
	historicoRepo := historico.NewRepository(gormDB)
	empresaRepo := empresa.NewRepository(gormDB)
	funcionarioRepo := funcionario.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	epiService := epi.NewService(epiRepo, rdb)
	historicoService := historico.NewService(db, historicoRepo, epiRepo, counterRepo, outboxRepo, rdb)
	empresaService := empresa.NewService(empresaRepo, password.NewBcryptHasher(), logger)
	funcionarioService := funcionario.NewService(funcionarioRepo)

	// --- Handlers ---
	epiHandler := epi.NewHandler(epiService)
	historicoHandler := historico.NewHandlerWithRedis(historicoService, rdb)
	empresaHandler := empresa.NewHandler(empresaService)
	funcionarioHandler := funcionario.NewHandler(funcionarioService)

	router.Use(middleware.RequestID())

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		epi.RegisterRoutes(api, epiHandler, logger)
		historico.RegisterRoutes(api, historicoHandler, rdb, logger)
		empresa.RegisterRoutes(api, empresaHandler, logger)
		funcionario.RegisterRoutes(api, funcionarioHandler, logger)
	}

	return nil
}
