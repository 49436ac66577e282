package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"tailortalk/config"
	"tailortalk/handlers"
	"tailortalk/middleware"
	"tailortalk/routes"
	"tailortalk/services/agent"
	"tailortalk/services/calendar"
	"tailortalk/services/intelligence"
	"tailortalk/services/session"
	"tailortalk/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	// Calendar provider. Missing or stale credentials are not fatal: the
	// gateway serves deterministic synthetic data instead.
	var provider calendar.Provider
	creds := &calendar.FileCredentialProvider{
		CredentialsFile: cfg.GoogleCredentialsFile,
		TokenFile:       cfg.GoogleTokenFile,
	}
	if gp, err := calendar.NewGoogleProvider(context.Background(), creds); err != nil {
		logger.Sugar().Warnf("main: no Google Calendar session, using mock calendar data: %v", err)
	} else {
		provider = gp
	}
	gateway := calendar.NewGateway(provider, cfg.CalendarTimeout(), logger)

	// Session store: Redis when configured, in-memory otherwise.
	var store session.Store = session.NewMemoryStore()
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisSessionDB,
		})
		store = session.NewRedisStore(client, 30*time.Minute)
		logger.Sugar().Infof("main: using Redis session store at %s", cfg.RedisAddr)
	}

	completion, err := intelligence.NewGeminiCompletion(cfg.GeminiAPIKey, cfg.CompletionTimeout(), logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize completion fallback: %v", err)
	}

	orchestrator := &agent.Orchestrator{
		Processor: &agent.Processor{},
		Tools:     &agent.Toolbox{Calendar: gateway, Logger: logger},
	}

	chatHandler := handlers.NewChatHandler(orchestrator, store, completion, logger)
	handlerBundle := &handlers.HandlerBundle{
		HandleChat: chatHandler.HandleChat,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
