package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"adcraft/internal/generation"
	"adcraft/internal/http/handlers"
	httpapi "adcraft/internal/http/httpapi"
	"adcraft/internal/infra"
	"adcraft/internal/observability"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	registry := observability.NewRegistry()
	metrics := observability.MustNewMetrics(registry)

	svc, resolver := generation.NewServiceFromConfig(cfg, metrics, &logger)
	app := handlers.NewApp(svc, resolver.Sources(), cfg.Version, &logger)

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:         logger,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Metrics:        observability.Handler(registry),
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().
			Str("addr", server.Addr()).
			Bool("hosted", cfg.Hosted).
			Interface("providers", svc.Providers()).
			Strs("image_sources", resolver.Sources()).
			Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GenerateTimeout+5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
