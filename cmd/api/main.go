package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zinyando/salon-booking-api/internal/adapters/cache"
	"github.com/zinyando/salon-booking-api/internal/adapters/providers/scheduling"
	"github.com/zinyando/salon-booking-api/internal/api/handlers"
	"github.com/zinyando/salon-booking-api/internal/api/middleware"
	"github.com/zinyando/salon-booking-api/internal/api/routes"
	"github.com/zinyando/salon-booking-api/internal/application/services"
	"github.com/zinyando/salon-booking-api/internal/domain/providers"
	"github.com/zinyando/salon-booking-api/internal/infrastructure/clients/agent"
	"github.com/zinyando/salon-booking-api/internal/infrastructure/clients/redis"
	"github.com/zinyando/salon-booking-api/internal/infrastructure/observability"
	"github.com/zinyando/salon-booking-api/pkg/config"
	"github.com/zinyando/salon-booking-api/pkg/secrets"
)

func main() {
	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Hydrate secrets from Vault before reading configuration
	vaultResult, err := secrets.ApplyVaultSecrets(ctx, secrets.LoadVaultConfigFromEnv())
	if err != nil {
		log.Printf("Warning: Failed to load Vault secrets: %v", err)
	} else if vaultResult.Enabled {
		log.Printf("Vault secrets applied: %d loaded, %d skipped", vaultResult.Loaded, vaultResult.Skipped)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize structured logging
	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize Redis client
	redisClient, err := redis.NewClient(ctx, &cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		// Continue without Redis - the application can work without caching
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize the scheduling provider (mock without an API key)
	schedulingProvider := scheduling.NewSchedulingProvider(&cfg.CalCom)
	if cfg.CalCom.APIKey == "" {
		log.Println("Warning: CAL_API_KEY is not set; using mock scheduling provider")
	}

	// Initialize the agent client; chat is disabled without credentials
	var agentProvider providers.AgentProvider
	if cfg.Agent.APIKey == "" {
		log.Println("Warning: AGENT_API_KEY is not set; chat endpoint disabled")
	} else {
		agentClient, err := agent.NewClient(&cfg.Agent)
		if err != nil {
			log.Printf("Warning: Failed to initialize agent client: %v", err)
		} else {
			agentProvider = agentClient
		}
	}

	// Initialize services
	catalogueService := services.NewCatalogueService()
	availabilityService := services.NewAvailabilityService(schedulingProvider, &cfg.CalCom)
	bookingService := services.NewBookingService(schedulingProvider)

	var chatService *services.ChatService
	if agentProvider != nil {
		chatService = services.NewChatService(agentProvider, catalogueService, availabilityService)
	}

	// Initialize handlers
	catalogueHandler := handlers.NewCatalogueHandler(catalogueService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
		log.Println("Cache middleware initialized successfully")
	}

	// Set up router
	router := routes.NewRouter(
		catalogueHandler,
		availabilityHandler,
		bookingHandler,
		chatHandler,
		cacheMiddleware,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server stopped")
}
