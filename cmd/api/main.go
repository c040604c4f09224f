package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"farmpower-chat/config"
	_ "farmpower-chat/docs" // Swagger docs
	"farmpower-chat/internal/assistant"
	"farmpower-chat/internal/chat/usecase"
	"farmpower-chat/internal/httpserver"
	"farmpower-chat/internal/session"
	"farmpower-chat/pkg/llmprovider"
	"farmpower-chat/pkg/log"
)

// @title       FarmPower Chat API
// @description Farming assistant chat sessions backed by the Gemini API.
// @version     1
// @host        localhost:3000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting FarmPower chat service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Server stopped with error: ", err)
		stop()
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		return fmt.Errorf("initialize LLM providers: %w", err)
	}
	manager := llmprovider.NewManagerFromConfig(providers, cfg.LLM, logger)
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider: %s model=%s", p.Name(), p.Model())
	}

	// 4. Chat domain
	store := session.New(logger, session.Config{
		TTL:           cfg.Session.TTL,
		SweepInterval: cfg.Session.SweepInterval,
	})
	gateway := assistant.New(logger, manager, assistant.Config{
		MaxHistoryTurns: cfg.Session.MaxHistoryTurns,
		Timeout:         cfg.LLM.Timeout,
		Temperature:     cfg.LLM.Temperature,
		MaxTokens:       cfg.LLM.MaxTokens,
		LogQueryContent: cfg.Chat.LogQueryContent,
	})
	chatUC := usecase.New(logger, store, gateway, cfg.Chat.MaxQueryLength)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Production:     cfg.IsProduction(),
		RateLimit:      cfg.RateLimit,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		ChatUseCase:    chatUC,
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	// 6. Run server and session sweeper until a signal arrives or one of them fails
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return httpServer.Run(gctx) })
	g.Go(func() error { return store.RunSweeper(gctx) })

	return g.Wait()
}
