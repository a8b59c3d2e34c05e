package main

import (
	"language_connect/internal/config"
	httpServer "language_connect/internal/http"
	"language_connect/internal/logger"
	"language_connect/internal/translate"
	"language_connect/internal/warmup"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	if cfg.TranslateAPIKey == "" {
		logger.Warn("GOOGLE_TRANSLATE_API_KEY not set, translations will echo the input")
	}
	client := translate.NewGoogleClient(cfg.TranslateAPIKey, cfg.TranslateEndpoint, cfg.TranslateTimeout)
	proxy := translate.NewDispatcher(translate.NewHandler(client), httpServer.NewLimiter(cfg, false))

	lambda.Start(warmup.Lambda(warmup.New(cfg.LambdaFunction), proxy.Handle))
}
