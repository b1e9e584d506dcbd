package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"offercompare-backend/internal/comparison"
	"offercompare-backend/internal/llm"
	"offercompare-backend/internal/llm/googleai"
	"offercompare-backend/internal/llm/openai"
	"offercompare-backend/internal/market"
	"offercompare-backend/internal/positions"
	"offercompare-backend/internal/services/health"
	"offercompare-backend/internal/shared/config"
	"offercompare-backend/internal/shared/server/middleware"
	"offercompare-backend/internal/shared/server/respond"
	"offercompare-backend/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	bench := newBenchmarker(cfg)
	client := newLLMClient(cfg)
	compareSvc := comparison.NewService(bench, client, cfg.LLMProvider, cfg.LLMModel, cfg.NarrativeTimeout)
	compareHandler := comparison.NewHandler(compareSvc)
	positionsHandler := positions.NewHandler()
	healthSvc := health.NewService(cfg.LLMProvider, cfg.LLMModel)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	compareHandler.RegisterRoutes(api)
	positionsHandler.RegisterRoutes(api)

	return r
}

// newBenchmarker builds the market source chain. Postgres-backed benchmarks
// are optional; without a database the embedded tables serve alone.
func newBenchmarker(cfg config.Config) *market.Benchmarker {
	if cfg.DatabaseURL == "" {
		return market.NewBenchmarker()
	}

	conn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		log.Printf("failed to connect database, falling back to embedded benchmarks: %v", err)
		return market.NewBenchmarker()
	}
	if err := db.RunMigrations(context.Background(), conn); err != nil {
		log.Printf("failed to run migrations, falling back to embedded benchmarks: %v", err)
		return market.NewBenchmarker()
	}
	return market.NewBenchmarker(&market.PGSource{DB: conn}, market.StaticSource{})
}

// newLLMClient picks the narrative provider from config. Construction
// failures and the "none" provider both degrade to the placeholder, which
// yields the narrative fallback text at request time.
func newLLMClient(cfg config.Config) llm.Client {
	switch cfg.LLMProvider {
	case "openai":
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
		if err != nil {
			log.Printf("openai client unavailable, narratives disabled: %v", err)
			return llm.PlaceholderClient{}
		}
		return client
	case "googleai":
		client, err := googleai.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			log.Printf("googleai client unavailable, narratives disabled: %v", err)
			return llm.PlaceholderClient{}
		}
		return client
	default:
		return llm.PlaceholderClient{}
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
