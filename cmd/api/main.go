package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/ecosistens/nexusshop-backend/api/routes"
	"github.com/ecosistens/nexusshop-backend/internal/advisor"
	"github.com/ecosistens/nexusshop-backend/internal/cart"
	"github.com/ecosistens/nexusshop-backend/internal/catalog"
	"github.com/ecosistens/nexusshop-backend/internal/checklists"
	"github.com/ecosistens/nexusshop-backend/internal/clients"
	"github.com/ecosistens/nexusshop-backend/internal/contracts"
	"github.com/ecosistens/nexusshop-backend/internal/inventory"
	"github.com/ecosistens/nexusshop-backend/internal/lookup"
	"github.com/ecosistens/nexusshop-backend/internal/sales"
	"github.com/ecosistens/nexusshop-backend/internal/serviceorders"
	"github.com/ecosistens/nexusshop-backend/internal/suppliers"
	"github.com/ecosistens/nexusshop-backend/internal/team"
	"github.com/ecosistens/nexusshop-backend/pkg/brasilapi"
	"github.com/ecosistens/nexusshop-backend/pkg/config"
	"github.com/ecosistens/nexusshop-backend/pkg/gemini"
	"github.com/ecosistens/nexusshop-backend/pkg/logger"
	"github.com/ecosistens/nexusshop-backend/pkg/metrics"
	"github.com/ecosistens/nexusshop-backend/pkg/redis"
	"github.com/ecosistens/nexusshop-backend/pkg/viacep"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var cache *redis.Client
	if cfg.Redis.Enabled() {
		cache, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := cache.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Info(context.Background(), "redis not configured, lookup cache disabled")
	}

	catalogStore := catalog.Seed()
	cartStore := cart.NewStore()

	lookupSvc := lookup.NewService(
		viacep.NewClient(viacep.WithBaseURL(cfg.Lookup.ViaCEPBaseURL), viacep.WithTimeout(cfg.Lookup.Timeout)),
		brasilapi.NewClient(brasilapi.WithBaseURL(cfg.Lookup.BrasilAPIBaseURL), brasilapi.WithTimeout(cfg.Lookup.Timeout)),
		cache,
		cfg.Lookup.CacheTTL,
		logg,
	)

	advisorSvc := advisor.NewService(nil, logg)
	if cfg.Advisor.Configured() {
		model, err := gemini.NewClient(cfg.Advisor.APIKey,
			gemini.WithModel(cfg.Advisor.Model),
			gemini.WithBaseURL(cfg.Advisor.BaseURL),
			gemini.WithTimeout(cfg.Advisor.Timeout),
		)
		if err != nil {
			logg.Error(context.Background(), "failed to create advisor client", err)
			os.Exit(1)
		}
		advisorSvc = advisor.NewService(model, logg)
	} else {
		logg.Warn(context.Background(), "advisor api key missing, advisor runs in fallback mode")
	}

	clientsSvc := clients.NewService()
	suppliersSvc := suppliers.NewService()
	teamSvc := team.NewService()
	inventorySvc := inventory.NewService()
	checklistsSvc := checklists.NewService()
	ordersSvc := serviceorders.NewService(clientsSvc, checklistsSvc)
	contractsSvc := contracts.NewService()

	salesSvc := sales.NewService(catalogStore)
	sales.Seed(salesSvc, time.Now())

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(reg)

	handler := routes.NewRouter(routes.Deps{
		Config:  cfg,
		Logger:  logg,
		Metrics: httpMetrics,
		Prom:    reg,

		Cache: cache,

		Catalog: catalogStore,
		Cart:    cartStore,

		Lookup:  lookupSvc,
		Advisor: advisorSvc,

		Clients:       clientsSvc,
		Suppliers:     suppliersSvc,
		Team:          teamSvc,
		Inventory:     inventorySvc,
		Checklists:    checklistsSvc,
		ServiceOrders: ordersSvc,
		Contracts:     contractsSvc,
		Sales:         salesSvc,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "server shutdown failed", err)
		}
	}
}
