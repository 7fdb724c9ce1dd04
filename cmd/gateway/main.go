package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/config"
	"github.com/m04kA/SMC-ShareItService/internal/gateway"
	"github.com/m04kA/SMC-ShareItService/internal/integrations/shareitserver"
	"github.com/m04kA/SMC-ShareItService/pkg/logger"
	"github.com/m04kA/SMC-ShareItService/pkg/metrics"
)

type gatewayRecorder interface {
	IncUpstreamError()
	IncRateLimited(route string)
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.LoadGateway("gateway.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting ShareIt gateway...")

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		recorder         gatewayRecorder
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		recorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Клиент основного сервера
	client := shareitserver.NewClient(
		cfg.Upstream.URL,
		time.Duration(cfg.Upstream.Timeout)*time.Second,
		log,
	)
	log.Info("Upstream client initialized (url=%s, timeout=%ds)", cfg.Upstream.URL, cfg.Upstream.Timeout)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("").Subrouter()

	if cfg.RateLimit.Enabled {
		var limiter middleware.Limiter

		switch cfg.RateLimit.Backend {
		case config.RateLimitRedis:
			redisClient := redis.NewClient(&redis.Options{
				Addr:     cfg.RateLimit.RedisAddr,
				Password: cfg.RateLimit.RedisPassword,
				DB:       cfg.RateLimit.RedisDB,
			})
			defer redisClient.Close()

			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := redisClient.Ping(pingCtx).Err()
			cancel()
			if err != nil {
				log.Fatal("Failed to connect to Redis at %s: %v", cfg.RateLimit.RedisAddr, err)
			}

			limiter = middleware.NewRedisLimiter(redisClient, cfg.RateLimit.Limit(), cfg.RateLimit.WindowDuration())
			log.Info("Rate limit: redis fixed window, %d requests per %s", cfg.RateLimit.Limit(), cfg.RateLimit.WindowDuration())

		default:
			memoryLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.MaxKeys)
			if err != nil {
				log.Fatal("Failed to create rate limiter: %v", err)
			}
			limiter = memoryLimiter
			log.Info("Rate limit: in-memory token bucket, rps=%.2f, burst=%d, max_keys=%d",
				cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.MaxKeys)
		}

		api.Use(middleware.RateLimit(limiter, recorder, log))
	}

	gateway.NewGateway(client, recorder, log).Register(api)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting gateway on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Gateway failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gateway...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Gateway forced to shutdown: %v", err)
	}

	log.Info("Gateway stopped gracefully")
}
