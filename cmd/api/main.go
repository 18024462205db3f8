package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jobscout-ai/jobscout/internal/config"
	"github.com/jobscout-ai/jobscout/internal/firecrawl"
	"github.com/jobscout-ai/jobscout/internal/handlers"
	"github.com/jobscout-ai/jobscout/internal/services"
)

func main() {
	// 1. Load Environment Variables (.env is optional; real env wins)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// 2. Configuration (fail-fast on missing API keys)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	// 3. Initialize Core Services (Dependencies)
	llmService, err := services.NewLLMService(cfg)
	if err != nil {
		log.Fatal("Failed to create LLM service: ", err)
	}
	crawler := firecrawl.NewClient(cfg.FirecrawlBaseURL, cfg.FirecrawlAPIKey)
	scrapeService := services.NewScrapeService(crawler)
	searchService := services.NewSearchService(scrapeService, llmService)

	// 4. Initialize Handlers
	searchHandler := handlers.NewSearchHandler(searchService)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Define Routes
	r.GET("/", handlers.Home)

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/search", searchHandler.Search)
	}

	log.Printf("🚀 Server starting on port %s (model: %s)...", cfg.Port, cfg.ModelID)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
