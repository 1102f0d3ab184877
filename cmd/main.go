package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookingWindowOptionsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/booking_window_options"
	getTimelineHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_timeline"
	resolveBookingWindowHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/resolve_booking_window"
	searchAvailabilityHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/search_availability"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/room"
	availabilityClient "github.com/m04kA/SMC-HotelBookingService/internal/integrations/availability"
	windowService "github.com/m04kA/SMC-HotelBookingService/internal/service/window"
	getTimelineUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/get_timeline"
	searchAvailabilityUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/search_availability"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
	"github.com/m04kA/SMC-HotelBookingService/pkg/metrics"
)

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

	log.Info("Starting SMC-HotelBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиента сервиса доступности и цен
	availClient := availabilityClient.NewClient(
		cfg.Availability.URL,
		time.Duration(cfg.Availability.Timeout)*time.Second,
		log,
	)
	log.Info("Availability client initialized (url=%s, timeout=%ds)",
		cfg.Availability.URL, cfg.Availability.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		roomRepository    *roomRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	windowSvc := windowService.NewService(log)

	// Инициализируем use cases
	searchAvailabilityUseCase := searchAvailabilityUC.NewUseCase(availClient, log)
	getTimelineUseCase := getTimelineUC.NewUseCase(bookingRepository, roomRepository, log)

	// Инициализируем handlers
	bookingWindowOptions := bookingWindowOptionsHandler.NewHandler(windowSvc, log)
	resolveBookingWindow := resolveBookingWindowHandler.NewHandler(windowSvc, log)
	searchAvailability := searchAvailabilityHandler.NewHandler(searchAvailabilityUseCase, log)
	getTimeline := getTimelineHandler.NewHandler(getTimelineUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Request ID для трассировки запросов
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Наборы-кандидаты формы бронирования и значения по умолчанию
	api.HandleFunc("/booking-window/options",
		bookingWindowOptions.Handle).Methods(http.MethodGet)

	// Разрешение полей формы в каноничное окно заезда/выезда
	api.HandleFunc("/booking-window/resolve",
		resolveBookingWindow.Handle).Methods(http.MethodPost)

	// Поиск доступности и цен по каноничному окну
	api.HandleFunc("/branches/{branchId}/availability",
		searchAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Штабной таймлайн занятости номеров
	protected.HandleFunc("/branches/{branchId}/timeline", getTimeline.Handle).Methods(http.MethodGet)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
