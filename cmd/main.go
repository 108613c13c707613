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

	cancelReservationHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/cancel_reservation"
	createClosureHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/create_closure"
	createReservationHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/create_reservation"
	deleteClosureHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/delete_closure"
	getDayCapacityHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/get_day_capacity"
	getMonthCalendarHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/get_month_calendar"
	getReportHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/get_report"
	getReservationHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/get_reservation"
	listClosuresHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/list_closures"
	listReservationsHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/list_reservations"
	reviewSpecialBookingHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/review_special_booking"
	updateReservationStatusHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/update_reservation_status"
	uploadDocumentHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/upload_document"
	"github.com/m04kA/SMC-TourService/internal/api/middleware"
	"github.com/m04kA/SMC-TourService/internal/config"
	closureRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/closure"
	documentRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/document"
	reservationRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/reservation"
	holidayAPIClient "github.com/m04kA/SMC-TourService/internal/integrations/holidayapi"
	objectStoreClient "github.com/m04kA/SMC-TourService/internal/integrations/objectstore"
	calendarService "github.com/m04kA/SMC-TourService/internal/service/calendar"
	closuresService "github.com/m04kA/SMC-TourService/internal/service/closures"
	reportsService "github.com/m04kA/SMC-TourService/internal/service/reports"
	reservationsService "github.com/m04kA/SMC-TourService/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-TourService/internal/usecase/create_reservation"
	getDayCapacityUC "github.com/m04kA/SMC-TourService/internal/usecase/get_day_capacity"
	"github.com/m04kA/SMC-TourService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourService/pkg/logger"
	"github.com/m04kA/SMC-TourService/pkg/metrics"
	"github.com/m04kA/SMC-TourService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-TourService/pkg/txmanager"
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

	log.Info("Starting SMC-TourService...")
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

	// Инициализируем интеграционных клиентов
	holidayClient := holidayAPIClient.NewClient(
		cfg.HolidayAPI.URL,
		cfg.HolidayAPI.CountryCode,
		time.Duration(cfg.HolidayAPI.Timeout)*time.Second,
		log,
	)
	objectStore := objectStoreClient.NewClient(
		cfg.ObjectStore.URL,
		time.Duration(cfg.ObjectStore.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (HolidayAPI=%s timeout=%ds, ObjectStore=%s timeout=%ds)",
		cfg.HolidayAPI.URL, cfg.HolidayAPI.Timeout, cfg.ObjectStore.URL, cfg.ObjectStore.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		closureRepository     *closureRepo.Repository
		documentRepository    *documentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		closureRepository = closureRepo.NewRepository(wrappedDB)
		documentRepository = documentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		closureRepository = closureRepo.NewRepository(db)
		documentRepository = documentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	calendarSvc := calendarService.NewService(closureRepository, holidayClient, log)
	closuresSvc := closuresService.NewService(closureRepository, txMgr, log)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		documentRepository,
		objectStore,
		log,
	)
	reportsSvc := reportsService.NewService(reservationRepository, cfg.Tours.TicketPrice, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		calendarSvc,
		txMgr,
		log,
	)
	getDayCapacityUseCase := getDayCapacityUC.NewUseCase(
		reservationRepository,
		calendarSvc,
		log,
	)

	// Инициализируем handlers
	getMonthCalendar := getMonthCalendarHandler.NewHandler(calendarSvc, log)
	getDayCapacity := getDayCapacityHandler.NewHandler(getDayCapacityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	uploadDocument := uploadDocumentHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	reviewSpecialBooking := reviewSpecialBookingHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	createClosure := createClosureHandler.NewHandler(closuresSvc, log)
	deleteClosure := deleteClosureHandler.NewHandler(closuresSvc, log)
	listClosures := listClosuresHandler.NewHandler(closuresSvc, log)
	getReport := getReportHandler.NewHandler(reportsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Календарь доступности на месяц
	api.HandleFunc("/calendar/{year}/{month}", getMonthCalendar.Handle).Methods(http.MethodGet)

	// Остаток мест по окнам на день
	api.HandleFunc("/capacity", getDayCapacity.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Просмотр бронирования по коду
	api.HandleFunc("/reservations/{reference}", getReservation.Handle).Methods(http.MethodGet)

	// Самостоятельная отмена бронирования
	api.HandleFunc("/reservations/{reference}/cancel", cancelReservation.Handle).Methods(http.MethodPost)

	// Загрузка документов к special-заявке
	api.HandleFunc("/reservations/{reference}/documents", uploadDocument.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer JWT)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.JWTSecret))

	// --- Бронирования ---
	// Список бронирований с фильтрами
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Переходы статусов
	admin.HandleFunc("/reservations/{reference}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// Рассмотрение special-заявок
	admin.HandleFunc("/reservations/{reference}/review", reviewSpecialBooking.Handle).Methods(http.MethodPost)

	// --- Закрытия календаря ---
	admin.HandleFunc("/closures", createClosure.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/closures", listClosures.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/closures/{date}", deleteClosure.Handle).Methods(http.MethodDelete)

	// --- Отчёты ---
	admin.HandleFunc("/reports", getReport.Handle).Methods(http.MethodGet)

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
