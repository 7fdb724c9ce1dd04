package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m04kA/SMC-ShareItService/internal/api"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/config"
	"github.com/m04kA/SMC-ShareItService/internal/events"
	"github.com/m04kA/SMC-ShareItService/internal/infra/database"
	"github.com/m04kA/SMC-ShareItService/internal/infra/storage"
	"github.com/m04kA/SMC-ShareItService/internal/infra/storage/memory"
	bookingsService "github.com/m04kA/SMC-ShareItService/internal/service/bookings"
	commentsService "github.com/m04kA/SMC-ShareItService/internal/service/comments"
	itemsService "github.com/m04kA/SMC-ShareItService/internal/service/items"
	requestsService "github.com/m04kA/SMC-ShareItService/internal/service/requests"
	usersService "github.com/m04kA/SMC-ShareItService/internal/service/users"
	addCommentUC "github.com/m04kA/SMC-ShareItService/internal/usecase/add_comment"
	createBookingUC "github.com/m04kA/SMC-ShareItService/internal/usecase/create_booking"
	getItemDetailsUC "github.com/m04kA/SMC-ShareItService/internal/usecase/get_item_details"
	"github.com/m04kA/SMC-ShareItService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShareItService/pkg/logger"
	"github.com/m04kA/SMC-ShareItService/pkg/metrics"
	"github.com/m04kA/SMC-ShareItService/pkg/txmanager"
)

type transitionRecorder interface {
	IncBookingTransition(status string)
}

type transactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting ShareIt server...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		transitions      transitionRecorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		transitions = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище
	var (
		repos storage.Repositories
		txMgr transactionManager
	)

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		repos = storage.NewMemory(memory.New())
		txMgr = txmanager.Noop{}
		log.Info("Using in-memory storage")

	default:
		db, err := database.Open(cfg.Database.DSN(), database.PoolConfig{
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		})
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Database.MigrationsEnabled {
			if err := database.Migrate(db); err != nil {
				log.Fatal("Failed to apply migrations: %v", err)
			}
			log.Info("Database migrations applied")
		}

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			repos = storage.NewPostgres(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
			log.Info("Database metrics collection started")
		} else {
			repos = storage.NewPostgres(db)
			txMgr = txmanager.NewSQLTransactionManager(db)
		}
	}

	// Публикация событий бронирований
	var publisher events.Publisher = events.Noop{}
	if cfg.Events.Enabled {
		rabbit, err := events.NewRabbitPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer rabbit.Close()
		publisher = rabbit
		log.Info("Booking events are published to exchange %s", cfg.Events.Exchange)
	}

	// Инициализируем сервисы
	userSvc := usersService.NewService(repos.Users, log)
	itemSvc := itemsService.NewService(repos.Items, repos.Users, repos.Requests, log)
	bookingSvc := bookingsService.NewService(repos.Bookings, repos.Users, publisher, transitions, log)
	requestSvc := requestsService.NewService(repos.Requests, repos.Items, repos.Users, log)
	commentSvc := commentsService.NewService(repos.Comments, repos.Users, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		repos.Bookings,
		repos.Items,
		repos.Users,
		publisher,
		transitions,
		txMgr,
		log,
	)
	addCommentUseCase := addCommentUC.NewUseCase(
		repos.Comments,
		repos.Bookings,
		repos.Items,
		repos.Users,
		log,
	)
	getItemDetailsUseCase := getItemDetailsUC.NewUseCase(
		repos.Items,
		repos.Bookings,
		repos.Comments,
		log,
	)

	// Настраиваем роутер
	r := api.NewRouter(api.Services{
		Users:          userSvc,
		Items:          itemSvc,
		Bookings:       bookingSvc,
		Requests:       requestSvc,
		Comments:       commentSvc,
		CreateBooking:  createBookingUseCase,
		AddComment:     addCommentUseCase,
		GetItemDetails: getItemDetailsUseCase,
	}, log)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

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
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
