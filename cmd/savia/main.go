// Command savia runs the portfolio chat service: the keyword classifier,
// the conversation navigator, and the HTTP/WebSocket API in one process.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/savia-portfolio-chat/internal/classify"
	"github.com/savia-portfolio-chat/internal/config"
	"github.com/savia-portfolio-chat/internal/content"
	"github.com/savia-portfolio-chat/internal/navigator"
	"github.com/savia-portfolio-chat/internal/server"
	"github.com/savia-portfolio-chat/internal/session"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.FromEnv()

	catalog, err := content.Load()
	if err != nil {
		logger.Fatal("failed to load content", zap.Error(err))
	}

	redisClient := connectRedis(cfg, logger)

	engine := classify.NewEngine(logger)
	cache, err := classify.NewAnswerCache(cfg.CacheMaxCost, cfg.CacheTTL, redisClient, logger)
	if err != nil {
		logger.Fatal("failed to create answer cache", zap.Error(err))
	}
	defer cache.Close()

	var classifier navigator.Classifier = navigator.NewLocalClassifier(classify.NewCachedEngine(engine, cache))
	if cfg.ClassifierURL != "" {
		logger.Info("using remote classifier", zap.String("url", cfg.ClassifierURL))
		classifier = navigator.NewRemoteClassifier(cfg.ClassifierURL, 0)
	}

	store, err := session.NewStore(cfg.SessionCapacity, catalog, classifier, logger)
	if err != nil {
		logger.Fatal("failed to create session store", zap.Error(err))
	}

	router := mux.NewRouter()
	server.NewServer(store, classifier, logger).SetupRoutes(router)

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      cors(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("chat service listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

// connectRedis returns nil when Redis is not configured or unreachable; the
// answer cache then runs in-memory only.
func connectRedis(cfg config.Config, logger *zap.Logger) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn("invalid REDIS_URL, running without L2 cache", zap.Error(err))
		return nil
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, running without L2 cache", zap.Error(err))
		client.Close()
		return nil
	}

	logger.Info("redis connected", zap.String("addr", opts.Addr))
	return client
}
