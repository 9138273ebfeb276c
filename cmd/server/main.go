package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/redis/v3"

	"seoscope/internal/analyzer"
	"seoscope/internal/config"
	"seoscope/internal/email"
	"seoscope/internal/jobs"
	"seoscope/internal/metrics"
	"seoscope/internal/providers/llm"
	"seoscope/internal/server"
	"seoscope/internal/store"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	cfg.SEODataBaseURL = yamlCfg.Providers.SEODataBaseURL

	// Storage backend: Redis when configured, in-memory otherwise.
	var backend fiber.Storage
	if cfg.RedisURL != "" {
		backend = redis.New(redis.Config{URL: cfg.RedisURL})
		log.Println("Using Redis storage backend")
	} else {
		backend = store.NewMemory()
		log.Println("REDIS_URL not set, using in-memory storage (data is lost on restart)")
	}

	st := store.New(backend)
	defer st.Close()

	metrics.Init(st)

	settings := st.GetSettings(ctx)
	minWords := settings.MinWords
	if yamlCfg.Analyzer.MinWords > 0 {
		minWords = yamlCfg.Analyzer.MinWords
	}

	pageAnalyzer := analyzer.New(
		analyzer.WithMinWords(minWords),
		analyzer.WithMaxBodyBytes(yamlCfg.MaxBodyBytes()),
		analyzer.WithTimeout(yamlCfg.FetchTimeout()),
	)

	// LLM rewriter is optional: settings key wins over the environment.
	geminiKey := settings.Credentials.GeminiAPIKey
	if geminiKey == "" {
		geminiKey = cfg.GeminiAPIKey
	}
	rewriter, err := llm.New(ctx, geminiKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("Warning: LLM rewriter disabled: %v", err)
		rewriter = nil
	}

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, st, pageAnalyzer, rewriter); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Background score reports
	mailer := email.NewService(cfg)
	scheduler := jobs.NewReportScheduler(
		st,
		pageAnalyzer,
		mailer,
		cfg.ReportRecipients,
		yamlCfg.ReportInterval(),
		yamlCfg.Reports.MinScoreDelta,
	)
	go scheduler.Start(ctx)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("Shutting down...")
		cancel()
		if err := srv.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
