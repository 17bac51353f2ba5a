// Command server runs the RAGFIN1 remittance API.
//
// Configuration is layered: built-in defaults, an optional YAML file
// (RAGFIN_CONFIG or ./config.yaml), then environment variables:
//
//	GROQ_API_KEY    - Groq credential; without it the service answers in fallback mode
//	PORT            - Listen port (default: 10000)
//	RAGFIN_CONFIG   - Path to a YAML config file (optional)
//	RAGFIN_BASE_URL - Groq API root override (optional)
//	RAGFIN_MODEL    - Model name override (optional)
//	RAGFIN_LOG_LEVEL - ERROR, WARN, INFO, DEBUG or TRACE (default: INFO)
//	RAGFIN_DEBUG    - Comma-separated debug categories (groq, engine, transport, config, all)
//
// A .env file in the working directory is loaded if present.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Macmac87/ragfin1/pkg/config"
	"github.com/Macmac87/ragfin1/pkg/debug"
	"github.com/Macmac87/ragfin1/pkg/engine"
	"github.com/Macmac87/ragfin1/pkg/provider"
	"github.com/Macmac87/ragfin1/pkg/provider/groq"
	transporthttp "github.com/Macmac87/ragfin1/pkg/transport/http"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Best effort; the environment wins over .env either way.
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: debug.ParseLevel(os.Getenv("RAGFIN_LOG_LEVEL")),
	}))
	slog.SetDefault(logger)

	// Without a credential the engine runs in fallback mode and never
	// calls the backend.
	var prov provider.Provider
	if cfg.Engine.APIKey != "" {
		client, err := groq.New(groq.Config{
			BaseURL: cfg.Engine.BaseURL,
			APIKey:  cfg.Engine.APIKey,
			Timeout: cfg.Engine.Timeout,
		})
		if err != nil {
			return fmt.Errorf("creating provider: %w", err)
		}
		defer client.Close()
		prov = client
		logger.Info("AI provider configured",
			slog.String("base_url", cfg.Engine.BaseURL),
			slog.String("model", cfg.Engine.Model))
	} else {
		logger.Warn("GROQ_API_KEY not set, answering in fallback mode")
	}

	eng := engine.New(prov, engine.Config{
		Model:       cfg.Engine.Model,
		Temperature: cfg.Engine.Temperature,
		MaxTokens:   cfg.Engine.MaxTokens,
	})

	opts := []transporthttp.ServerOption{
		transporthttp.WithAddr(fmt.Sprintf(":%d", cfg.Server.Port)),
		transporthttp.WithReadTimeout(cfg.Server.ReadTimeout),
		transporthttp.WithWriteTimeout(cfg.Server.WriteTimeout),
		transporthttp.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		transporthttp.WithLogger(logger),
	}
	if !cfg.Observability.Metrics.Enabled {
		opts = append(opts, transporthttp.WithMetricsPath(""))
	} else if cfg.Observability.Metrics.Path != "" {
		opts = append(opts, transporthttp.WithMetricsPath(cfg.Observability.Metrics.Path))
	}

	srv := transporthttp.NewServer(eng, opts...)
	return srv.ListenAndServe()
}
