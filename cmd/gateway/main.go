// Command gateway runs the Langflow integration gateway, a small HTTP
// service that fronts a Langflow instance with flow listing and flow
// execution endpoints.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skillsenselab/langflow-gateway/config"
	"github.com/skillsenselab/langflow-gateway/gateway"
	"github.com/skillsenselab/langflow-gateway/logger"
	"github.com/skillsenselab/langflow-gateway/observability"
	"github.com/skillsenselab/langflow-gateway/version"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Init(cfg.Logging)
	log := logger.WithComponent("main")
	log.Info("Starting gateway", map[string]interface{}{
		"version":     version.Short(),
		"environment": cfg.Environment,
		"langflow":    cfg.Langflow.BaseURL,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	telemetry, err := observability.Init(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", map[string]interface{}{
			"error": err.Error(),
		})
	}

	handlerOpts := []gateway.HandlerOption{}
	if telemetry != nil {
		metrics, err := observability.NewUpstreamMetrics(nil)
		if err != nil {
			log.Fatal("Failed to create upstream metrics", map[string]interface{}{
				"error": err.Error(),
			})
		}
		handlerOpts = append(handlerOpts, gateway.WithUpstreamMetrics(metrics))
	}

	server := gateway.NewServer(cfg.Server, logger.WithComponent("server"))
	server.ApplyMiddleware()
	gateway.NewHandler(cfg.Langflow, handlerOpts...).Register(server.GinEngine())

	if err := server.Start(ctx); err != nil {
		log.Fatal("Failed to start server", map[string]interface{}{
			"error": err.Error(),
		})
	}
	log.Info("Gateway listening", map[string]interface{}{"addr": server.Addr()})

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		log.Error("Telemetry shutdown failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
