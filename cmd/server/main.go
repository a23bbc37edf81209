package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/config"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	"resume-builder/pkg/infrastructure"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	var gen usecase.TextGenerator
	if cfg.GeminiAPIKey != "" {
		client, err := ai.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			slog.Error("gemini client setup failed", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		gen = client
	} else {
		slog.Warn("GEMINI_API_KEY not set, AI assistance disabled")
	}

	rasterizer := infrastructure.NewChromeRasterizer(cfg.ChromePath)
	studio := usecase.NewStudio(gen, rasterizer, nil, cfg.OutputDir)

	app := fiber.New()
	httpadapter.NewHandler(studio).Register(app)

	slog.Info("resume builder listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
