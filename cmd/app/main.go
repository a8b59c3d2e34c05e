package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"language_connect/internal/config"
	"language_connect/internal/db"
	"language_connect/internal/gateway"
	httpServer "language_connect/internal/http"
	"language_connect/internal/http/handlers"
	"language_connect/internal/logger"
	"language_connect/internal/translate"

	"github.com/gin-gonic/gin"
)

var version = "dev"

// Local server: both Lambda handlers behind one gin engine.
func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	dbPool := db.MustConnect(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns)
	defer dbPool.Close()

	limiter := httpServer.NewLimiter(cfg, true)
	api := gateway.NewDispatcher("api",
		httpServer.APIRoutes(handlers.NewHandler(dbPool)),
		gateway.WithLimiter(limiter),
	)
	client := translate.NewGoogleClient(cfg.TranslateAPIKey, cfg.TranslateEndpoint, cfg.TranslateTimeout)
	proxy := translate.NewDispatcher(translate.NewHandler(client), limiter)

	r := gin.Default()
	httpServer.RegisterRoutes(r, api.Handle, proxy.Handle, handlers.NewHealthHandler(dbPool, version))

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return
	}

	logger.Info("server exited")
}
