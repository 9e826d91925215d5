package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"seo-content-engine/internal/cache"
	"seo-content-engine/internal/config"
	httphandler "seo-content-engine/internal/http"
	"seo-content-engine/internal/services/content"
	"seo-content-engine/internal/services/llm"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Build the provider list once, in the configured order. Both the intent
	// and the content call sites consult the same list.
	providers := buildProviders(ctx, cfg)
	if len(providers) == 0 {
		log.Warn().Msg("No provider credentials configured, all content will use the deterministic fallback")
	}
	gateway := llm.NewGateway(providers, cfg.LLM.Timeout)

	// Redis is optional; it only backs the distributed rate limiter.
	var redisCache *cache.RedisCache
	if cfg.Redis.Addr != "" {
		redisCache, err = cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, rate limiting falls back to in-memory")
		} else {
			defer redisCache.Close()
		}
	}

	service := content.NewService(gateway)

	router := httphandler.NewRouter(redisCache, cfg)
	router.RegisterContentRoutes(httphandler.NewContentHandler(service))
	router.RegisterHealthRoutes()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}

	log.Info().Msg("Server stopped")
}

func buildProviders(ctx context.Context, cfg *config.Config) []llm.TextCompleter {
	var providers []llm.TextCompleter
	for _, name := range cfg.LLM.ProviderOrder {
		switch name {
		case "openai":
			if cfg.LLM.OpenAIAPIKey == "" {
				continue
			}
			client, err := llm.NewOpenAIClient(cfg.LLM.OpenAIAPIKey, cfg.LLM.OpenAIModel)
			if err != nil {
				log.Warn().Err(err).Msg("Failed to create OpenAI client")
				continue
			}
			providers = append(providers, client)
		case "gemini":
			if cfg.LLM.GeminiAPIKey == "" {
				continue
			}
			client, err := llm.NewGeminiClient(ctx, cfg.LLM.GeminiAPIKey, cfg.LLM.GeminiModel)
			if err != nil {
				log.Warn().Err(err).Msg("Failed to create Gemini client")
				continue
			}
			providers = append(providers, client)
		default:
			log.Warn().Str("provider", name).Msg("Unknown provider in PROVIDER_ORDER, skipping")
		}
	}
	return providers
}
