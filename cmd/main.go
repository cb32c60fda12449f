package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"postmortem/internal/config"
	"postmortem/internal/report"
	"postmortem/internal/web"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.InfoContext(ctx, "No .env file found so process environment will be used")
	}

	cfg, err := config.Load()
	if err != nil {
		log.ErrorContext(ctx, "OPENAI_API_KEY is required; set it in the environment or a .env file",
			"error", err,
			"envVar", "OPENAI_API_KEY")

		return
	}

	generator, err := report.NewOpenAIGenerator(report.OpenAIConfig{
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to create report generator",
			"error", err,
			"model", cfg.Model)

		return
	}
	log.InfoContext(ctx, "Report generator is initialized",
		"provider", "openai",
		"model", cfg.Model,
		"temperature", cfg.Temperature)

	example := web.LoadExampleTranscript(ctx, cfg.ExamplePath, log)

	server := web.NewServer(generator, example, log)

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- server.Listen(cfg.Addr)
	}()
	log.InfoContext(ctx, "Server is started",
		"addr", cfg.Addr)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-c:
		log.InfoContext(ctx, "Shutdown signal is received",
			"signal", sig.String())
	case err = <-listenErr:
		log.ErrorContext(ctx, "Server stopped unexpectedly",
			"error", err,
			"addr", cfg.Addr)

		return
	}
	cancel()

	if err = server.Shutdown(); err != nil {
		log.ErrorContext(ctx, "Failed to shut down server",
			"error", err)
	}

	log.InfoContext(ctx, "Exiting...",
		"uptimeSeconds", time.Since(start).Seconds())
}
