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

	calculateQuoteHandler "github.com/m04kA/SMC-StructureBooking/internal/api/handlers/calculate_quote"
	cancelBookingHandler "github.com/m04kA/SMC-StructureBooking/internal/api/handlers/cancel_booking"
	checkOccupancyHandler "github.com/m04kA/SMC-StructureBooking/internal/api/handlers/check_occupancy"
	confirmBookingHandler "github.com/m04kA/SMC-StructureBooking/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-StructureBooking/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-StructureBooking/internal/api/handlers/get_booking"
	getQuoteHandler "github.com/m04kA/SMC-StructureBooking/internal/api/handlers/get_quote"
	getStructureHandler "github.com/m04kA/SMC-StructureBooking/internal/api/handlers/get_structure"
	listEventBookingsHandler "github.com/m04kA/SMC-StructureBooking/internal/api/handlers/list_event_bookings"
	listEventQuotesHandler "github.com/m04kA/SMC-StructureBooking/internal/api/handlers/list_event_quotes"
	listStructuresHandler "github.com/m04kA/SMC-StructureBooking/internal/api/handlers/list_structures"
	rejectBookingHandler "github.com/m04kA/SMC-StructureBooking/internal/api/handlers/reject_booking"
	suggestStructuresHandler "github.com/m04kA/SMC-StructureBooking/internal/api/handlers/suggest_structures"
	"github.com/m04kA/SMC-StructureBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StructureBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-StructureBooking/internal/infra/storage/booking"
	eventRepo "github.com/m04kA/SMC-StructureBooking/internal/infra/storage/event"
	quoteRepo "github.com/m04kA/SMC-StructureBooking/internal/infra/storage/quote"
	structureRepo "github.com/m04kA/SMC-StructureBooking/internal/infra/storage/structure"
	bookingsService "github.com/m04kA/SMC-StructureBooking/internal/service/bookings"
	quotesService "github.com/m04kA/SMC-StructureBooking/internal/service/quotes"
	structuresService "github.com/m04kA/SMC-StructureBooking/internal/service/structures"
	calculateQuoteUC "github.com/m04kA/SMC-StructureBooking/internal/usecase/calculate_quote"
	checkOccupancyUC "github.com/m04kA/SMC-StructureBooking/internal/usecase/check_occupancy"
	confirmBookingUC "github.com/m04kA/SMC-StructureBooking/internal/usecase/confirm_booking"
	createBookingUC "github.com/m04kA/SMC-StructureBooking/internal/usecase/create_booking"
	suggestStructuresUC "github.com/m04kA/SMC-StructureBooking/internal/usecase/suggest_structures"
	"github.com/m04kA/SMC-StructureBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StructureBooking/pkg/logger"
	"github.com/m04kA/SMC-StructureBooking/pkg/metrics"
	"github.com/m04kA/SMC-StructureBooking/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-StructureBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	// При выключенных метриках используется nil коллектор: его методы ничего не делают
	var metricsCollector *metrics.Metrics
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

	// Выбираем исполнителя запросов (с метриками или без)
	var (
		executor  dbmetrics.DBExecutor
		txManager *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		executor = wrappedDB
		txManager = txmanager.NewTransactionManager(wrappedDB)
	} else {
		executor = db
		txManager = txmanager.NewTransactionManager(txmanager.FromSQL(db))
	}

	// Инициализируем репозитории
	eventRepository := eventRepo.NewRepository(executor)
	structureRepository := structureRepo.NewRepository(executor)
	bookingRepository := bookingRepo.NewRepository(executor)
	quoteRepository := quoteRepo.NewRepository(executor)

	// Параметры расчётов из конфигурации
	quoteCfg := cfg.QuoteConfig()
	suggestCfg := cfg.SuggestConfig()
	margins := cfg.ScenarioMargins()

	log.Info("Pricing: currency=%s, base units=%v, bands cheap<=%s medium<=%s, margins best=%s worst=%s",
		quoteCfg.DefaultCurrency, quoteCfg.BaseUnits,
		quoteCfg.Thresholds.CheapMax, quoteCfg.Thresholds.MediumMax,
		margins.Best, margins.Worst)
	if suggestCfg.Reference != nil {
		log.Info("Suggestions: reference point %.4f,%.4f",
			suggestCfg.Reference.Latitude, suggestCfg.Reference.Longitude)
	} else {
		log.Warn("Suggestions: reference point is not configured, distances are disabled")
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txManager, log)
	quoteSvc := quotesService.NewService(quoteRepository, log)
	structureSvc := structuresService.NewService(structureRepository, quoteCfg.Thresholds, log)

	// Инициализируем use cases
	calculateQuoteUseCase := calculateQuoteUC.NewUseCase(
		eventRepository,
		structureRepository,
		quoteRepository,
		txManager,
		metricsCollector,
		quoteCfg,
		margins,
		log,
	)

	suggestStructuresUseCase := suggestStructuresUC.NewUseCase(
		eventRepository,
		structureRepository,
		bookingRepository,
		txManager,
		metricsCollector,
		suggestCfg,
		suggestStructuresUC.Limits{
			Default: cfg.Suggestions.DefaultLimit,
			Max:     cfg.Suggestions.MaxLimit,
		},
		log,
	)

	checkOccupancyUseCase := checkOccupancyUC.NewUseCase(
		structureRepository,
		bookingRepository,
		metricsCollector,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		eventRepository,
		structureRepository,
		log,
	)

	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		txManager,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	calculateQuote := calculateQuoteHandler.NewHandler(calculateQuoteUseCase, log)
	listEventQuotes := listEventQuotesHandler.NewHandler(quoteSvc, log)
	getQuote := getQuoteHandler.NewHandler(quoteSvc, log)
	suggestStructures := suggestStructuresHandler.NewHandler(suggestStructuresUseCase, log)
	listStructures := listStructuresHandler.NewHandler(structureSvc, log)
	getStructure := getStructureHandler.NewHandler(structureSvc, log)
	checkOccupancy := checkOccupancyHandler.NewHandler(checkOccupancyUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listEventBookings := listEventBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Мероприятия ---
	api.HandleFunc("/events/{eventId}/quotes", calculateQuote.Handle).Methods(http.MethodPost)
	api.HandleFunc("/events/{eventId}/quotes", listEventQuotes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/events/{eventId}/suggestions", suggestStructures.Handle).Methods(http.MethodGet)
	api.HandleFunc("/events/{eventId}/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/events/{eventId}/bookings", listEventBookings.Handle).Methods(http.MethodGet)

	// --- Сметы ---
	api.HandleFunc("/quotes/{quoteId}", getQuote.Handle).Methods(http.MethodGet)

	// --- Структуры ---
	api.HandleFunc("/structures", listStructures.Handle).Methods(http.MethodGet)
	api.HandleFunc("/structures/{structureId}", getStructure.Handle).Methods(http.MethodGet)
	api.HandleFunc("/structures/{structureId}/occupancy", checkOccupancy.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/reject", rejectBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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
