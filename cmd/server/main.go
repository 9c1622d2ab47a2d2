package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pricecrawl/price-crawl-api/internal/adapter"
	"github.com/pricecrawl/price-crawl-api/internal/config"
	"github.com/pricecrawl/price-crawl-api/internal/crawler"
	"github.com/pricecrawl/price-crawl-api/internal/domain"
	"github.com/pricecrawl/price-crawl-api/internal/metrics"
	"github.com/pricecrawl/price-crawl-api/internal/service"
	httpTransport "github.com/pricecrawl/price-crawl-api/internal/transport/http"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		hclog.Default().Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize the logger
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "price-crawl-api",
		Level: hclog.LevelFromString(cfg.LogLevel),
	})

	// Create a standard logger for the HTTP server
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	// One client per retailer so each gets its own rate budget; Fortress
	// gets a longer per-attempt timeout
	newClient := func(timeout time.Duration) *crawler.Client {
		return crawler.NewClient(crawler.ClientOptions{
			Timeout:           timeout,
			MaxRetries:        cfg.CrawlerMaxRetries,
			RequestsPerSecond: float64(cfg.CrawlerRate),
		})
	}

	// Build the adapter registry; read-only after this point
	registry := adapter.NewRegistry()
	registry.MustRegister(
		crawler.NewBroadway(newClient(cfg.CrawlerTimeout), logger.Named("broadway")),
		crawler.NewFortress(newClient(cfg.FortressTimeout), logger.Named("fortress")),
		crawler.NewPriceDotCom(newClient(cfg.CrawlerTimeout), logger.Named("price-dot-com")),
	)

	// Initialize the search metrics
	searchMetrics := metrics.NewSearchMetrics(prometheus.DefaultRegisterer)

	// Initialize the SearchService
	ss, err := service.NewSearchService(
		registry,
		service.Options{AdapterTimeout: cfg.AdapterTimeout},
		logger.Named("search-service"),
		searchMetrics,
	)
	if err != nil {
		logger.Error("Failed to initialize search service", "error", err)
		os.Exit(1)
	}

	// Initialize the validator
	validator := domain.NewValidation()

	// Initialize HTTP handlers
	sh := httpTransport.NewSearchHandler(ss, logger.Named("http-handler"))

	// Initialize the router
	router := httpTransport.NewRouter(sh, validator, logger, nil)

	// Create the HTTP Server
	server := &http.Server{
		Addr:         cfg.BindAddress,
		Handler:      router,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.AdapterTimeout + 5*time.Second,
	}

	// Start the server in a new goroutine
	go func() {
		logger.Info("Starting server", "bind_address", cfg.BindAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	<-sigChan
	logger.Info("Shutting down server")

	// Context for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	server.Shutdown(shutdownCtx)
}
