package main

import (
	"fmt"
	"log"

	"forkful/internal/config"
	"forkful/internal/dietconv"
	"forkful/internal/extractor"
	"forkful/internal/extractor/gemini"
	"forkful/internal/fetcher"
	"forkful/internal/handler"
	"forkful/internal/quota"
	"forkful/internal/repository/memory"
	"forkful/internal/router"
	"forkful/internal/service"
	"forkful/internal/youtube"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// External clients
	generator := gemini.NewClient(&cfg.Gemini)
	pageFetcher := fetcher.New(&cfg.Fetcher)
	quotaCounter := quota.NewCounter(cfg.YouTube.DailyQuota)
	videoClient := youtube.NewClient(&cfg.YouTube, quotaCounter)

	// Orchestrators
	webExtractor := extractor.NewWebExtractor(pageFetcher, generator)
	imageExtractor := extractor.NewImageExtractor(generator)
	converter := dietconv.NewConverter(generator)

	// Datastore port
	store := memory.NewRecipeStore()

	// Services
	importSvc := service.NewImportService(webExtractor, imageExtractor, videoClient, generator, converter, store)

	// Handlers
	extractH := handler.NewExtractHandler(importSvc)
	listH := handler.NewShoppingListHandler(importSvc)
	healthH := handler.NewHealthHandler()

	r := router.Setup(cfg, extractH, listH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
