package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/VetCareCL/vetcare-api/internal/config"
	dbpkg "github.com/VetCareCL/vetcare-api/internal/db"
	"github.com/VetCareCL/vetcare-api/internal/logger"
	"github.com/VetCareCL/vetcare-api/internal/middleware"
	"github.com/VetCareCL/vetcare-api/internal/routes"
)

func main() {

	cfg := config.Load()
	logger.Init(cfg.IsProduction())

	db := dbpkg.NewDB(cfg)

	if err := dbpkg.Seed(db); err != nil {
		logger.L().Warn("seed failed", zap.Error(err))
	}

	rdb := newRedisClient(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	logger.L().Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.L().Fatal("failed to start server", zap.Error(err))
	}
}

// newRedisClient conecta o Redis usado pelo rate limiter. Se não estiver
// disponível o limiter fica desativado (fail open) em vez de derrubar a API.
func newRedisClient(cfg *config.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.L().Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		return nil
	}

	return rdb
}
