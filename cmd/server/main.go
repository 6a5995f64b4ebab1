package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/fintrack/finance-tracker/internal/api"
	"github.com/fintrack/finance-tracker/internal/infrastructure/config"
	"github.com/fintrack/finance-tracker/internal/infrastructure/db/postgres"
	redisdb "github.com/fintrack/finance-tracker/internal/infrastructure/db/redis"
	"github.com/fintrack/finance-tracker/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()

	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	e := api.NewRouter(pool, rdb, cfg, log)

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Msg("starting finance tracker API")

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
