package config

import (
	"time"

	"github.com/nicholasjackson/env"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":9090", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"info", "Log output level for the server [debug, info, trace]")
	adapterTimeout = env.Int("ADAPTER_TIMEOUT_SECONDS", false,
		10, "Per-adapter search deadline in seconds (independent per adapter, not aggregate)")
	crawlerTimeout = env.Int("CRAWLER_TIMEOUT_SECONDS", false,
		10, "Per-attempt HTTP timeout for retailer crawlers in seconds")
	fortressTimeout = env.Int("FORTRESS_TIMEOUT_SECONDS", false,
		25, "Per-attempt HTTP timeout for the Fortress crawler, which is slower than the rest")
	crawlerRetries = env.Int("CRAWLER_MAX_RETRIES", false,
		3, "Maximum retries per crawler HTTP request")
	crawlerRate = env.Int("CRAWLER_REQUESTS_PER_SECOND", false,
		1, "Outbound request budget per retailer per second")
)

// Config is the process-wide configuration, read once at startup.
type Config struct {
	BindAddress       string
	LogLevel          string
	AdapterTimeout    time.Duration
	CrawlerTimeout    time.Duration
	FortressTimeout   time.Duration
	CrawlerMaxRetries int
	CrawlerRate       int
}

func Load() (*Config, error) {
	if err := env.Parse(); err != nil {
		return nil, err
	}

	return &Config{
		BindAddress:       *bindAddress,
		LogLevel:          *logLevel,
		AdapterTimeout:    time.Duration(*adapterTimeout) * time.Second,
		CrawlerTimeout:    time.Duration(*crawlerTimeout) * time.Second,
		FortressTimeout:   time.Duration(*fortressTimeout) * time.Second,
		CrawlerMaxRetries: *crawlerRetries,
		CrawlerRate:       *crawlerRate,
	}, nil
}
