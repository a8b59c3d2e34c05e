package main

import (
	"context"

	"language_connect/internal/config"
	"language_connect/internal/db"
	"language_connect/internal/gateway"
	httpServer "language_connect/internal/http"
	"language_connect/internal/http/handlers"
	"language_connect/internal/logger"
	"language_connect/internal/warmup"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	// one pool per container, reused across invocations
	pool := db.MustConnect(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns)

	api := gateway.NewDispatcher("api",
		httpServer.APIRoutes(handlers.NewHandler(pool)),
		gateway.WithLimiter(httpServer.NewLimiter(cfg, false)),
	)

	lambda.Start(warmup.Lambda(warmup.New(cfg.LambdaFunction), api.Handle))
}
