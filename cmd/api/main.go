package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"self-order-agent/agent"
	"self-order-agent/internal/client"
	"self-order-agent/internal/config"
	"self-order-agent/internal/handler"
	"self-order-agent/internal/repository"
	"self-order-agent/internal/server"
	"self-order-agent/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)

	orderRepo, catalogRepo, err := buildRepositories(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("init warehouse")
	}

	svcs := agent.Services{
		Orders:    service.NewOrderService(orderRepo),
		Catalog:   service.NewCatalogService(catalogRepo),
		Payments:  service.NewPaymentService(cfg.Agent.PaymentBaseURL, logger),
		Customers: service.NewCustomerService(),
	}

	rootAgent, err := agent.New(cfg.Agent.Model, svcs)
	if err != nil {
		logger.Fatal().Err(err).Msg("build agent")
	}

	// The hosted model runtime is an external collaborator. Until one is
	// attached the local runtime answers chat requests; tool invocation is
	// fully functional either way.
	var runtime agent.Runtime = agent.NewLocalRuntime(rootAgent)
	if cfg.Agent.ForceLocalFallback {
		logger.Info().Msg("local agent runtime forced via FORCE_LOCAL_ADK_FALLBACK")
	}

	agentHandler := handler.NewAgentHandler(rootAgent, runtime)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(agentHandler)

	logger.Info().Str("addr", serverAddr).Msg("starting HTTP server")
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info().Msg("signal received, starting graceful shutdown")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		logger.Fatal().Err(err).Msg("HTTP server shutdown error")
	}
}

// buildRepositories selects the warehouse implementation at startup:
// BigQuery when a project is configured, the local sqlite fallback
// otherwise.
func buildRepositories(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (repository.OrderRepository, repository.CatalogRepository, error) {
	if cfg.Warehouse.ProjectID != "" {
		wh, err := client.NewBigQueryWarehouse(ctx, &cfg.Warehouse)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().
			Str("project", cfg.Warehouse.ProjectID).
			Str("dataset", cfg.Warehouse.Dataset).
			Msg("using BigQuery warehouse")
		return repository.NewOrderRepository(wh, cfg.Warehouse.OrdersTable),
			repository.NewCatalogRepository(wh, cfg.Warehouse.MenuTable, cfg.Warehouse.PromosTable),
			nil
	}

	db, err := client.InitLocalDB(cfg.Warehouse.LocalDBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := client.SeedLocalCatalog(db); err != nil {
		return nil, nil, err
	}
	logger.Info().Str("path", cfg.Warehouse.LocalDBPath).Msg("PROJECT_ID not set, using local sqlite warehouse")
	return repository.NewLocalOrderRepository(db), repository.NewLocalCatalogRepository(db), nil
}

func newLogger(cfg config.Log) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out = os.Stdout
	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	if cfg.Format == "console" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: out})
	}
	return logger
}
