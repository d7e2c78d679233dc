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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/SMC-AmenityBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-AmenityBooking/internal/api/handlers/create_booking"
	decideParkingRequestHandler "github.com/m04kA/SMC-AmenityBooking/internal/api/handlers/decide_parking_request"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AmenityBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-AmenityBooking/internal/api/handlers/get_booking"
	getFacilityBookingsHandler "github.com/m04kA/SMC-AmenityBooking/internal/api/handlers/get_facility_bookings"
	getFacilitySettingsHandler "github.com/m04kA/SMC-AmenityBooking/internal/api/handlers/get_facility_settings"
	getMyParkingSlotHandler "github.com/m04kA/SMC-AmenityBooking/internal/api/handlers/get_my_parking_slot"
	getParkingSlotsHandler "github.com/m04kA/SMC-AmenityBooking/internal/api/handlers/get_parking_slots"
	getUserBookingsHandler "github.com/m04kA/SMC-AmenityBooking/internal/api/handlers/get_user_bookings"
	listFacilitiesHandler "github.com/m04kA/SMC-AmenityBooking/internal/api/handlers/list_facilities"
	listParkingRequestsHandler "github.com/m04kA/SMC-AmenityBooking/internal/api/handlers/list_parking_requests"
	releaseParkingSlotHandler "github.com/m04kA/SMC-AmenityBooking/internal/api/handlers/release_parking_slot"
	requestParkingSlotHandler "github.com/m04kA/SMC-AmenityBooking/internal/api/handlers/request_parking_slot"
	updateFacilitySettingsHandler "github.com/m04kA/SMC-AmenityBooking/internal/api/handlers/update_facility_settings"
	"github.com/m04kA/SMC-AmenityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AmenityBooking/internal/config"
	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AmenityBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AmenityBooking/internal/infra/storage/migrations"
	parkingRepo "github.com/m04kA/SMC-AmenityBooking/internal/infra/storage/parking"
	settingsRepo "github.com/m04kA/SMC-AmenityBooking/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AmenityBooking/internal/integrations/events"
	userServiceClient "github.com/m04kA/SMC-AmenityBooking/internal/integrations/userservice"
	bookingsService "github.com/m04kA/SMC-AmenityBooking/internal/service/bookings"
	parkingService "github.com/m04kA/SMC-AmenityBooking/internal/service/parking"
	settingsService "github.com/m04kA/SMC-AmenityBooking/internal/service/settings"
	createBookingUC "github.com/m04kA/SMC-AmenityBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-AmenityBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AmenityBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-AmenityBooking/pkg/logger"
	"github.com/m04kA/SMC-AmenityBooking/pkg/metrics"
	"github.com/m04kA/SMC-AmenityBooking/pkg/txmanager"
)

// visitorTTL сколько хранится лимитер неактивного клиента
const visitorTTL = 10 * time.Minute

// domainMetrics счётчики бизнес-операций, общие для use cases и сервисов
type domainMetrics interface {
	RecordBooking(facility, outcome string)
	RecordCancellation(facility, outcome string)
	RecordParkingTransition(to string)
}

// eventPublisher публикация событий в брокер
type eventPublisher interface {
	Publish(ctx context.Context, key string, event interface{})
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("AMENITY_CONFIG"); p != "" {
		configPath = p
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

	log.Info("Starting SMC-AmenityBooking...")
	log.Info("Configuration loaded from %s", configPath)

	loc, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		dbRecorder       dbmetrics.Recorder
		recorder         domainMetrics = metrics.Noop{}
	)
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbRecorder = metricsCollector
		recorder = metricsCollector
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

	if cfg.Database.RunMigrations {
		version, err := migrations.Up(db)
		if err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database schema is at version %d", version)
	}

	// Без recorder обёртка просто проксирует запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, dbRecorder, stopCh)

	// Справочник пользователей, при наличии Redis - с резервной копией на случай отказа UserService
	var directory userServiceClient.UserGetter = userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis is unavailable, user fallback copies are disabled until it recovers: %v", err)
		}
		directory = userServiceClient.NewCachedClient(
			directory, rdb, time.Duration(cfg.Redis.CacheTTL)*time.Second, log,
		)
		log.Info("User directory fallback cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CacheTTL)
	}
	log.Info("UserService client initialized (url=%s, timeout=%ds)", cfg.UserService.URL, cfg.UserService.Timeout)

	// Публикация событий
	var publisher eventPublisher = events.Noop{}
	if cfg.Events.Enabled {
		p, err := events.NewPublisher(cfg.Events.URL, cfg.Events.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer p.Close()
		publisher = p
		log.Info("Event publisher connected (exchange=%s)", cfg.Events.Exchange)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	parkingRepository := parkingRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(settingsRepository, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		settingsSvc,
		txMgr,
		recorder,
		publisher,
		loc,
		log,
	)
	parkingSvc := parkingService.NewService(
		parkingRepository,
		directory,
		txMgr,
		recorder,
		publisher,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		settingsSvc,
		directory,
		txMgr,
		recorder,
		publisher,
		loc,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		settingsSvc,
		loc,
		log,
	)

	// Инициализируем handlers
	listFacilities := listFacilitiesHandler.NewHandler(settingsSvc, log)
	getFacilitySettings := getFacilitySettingsHandler.NewHandler(settingsSvc, log)
	updateFacilitySettings := updateFacilitySettingsHandler.NewHandler(settingsSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getFacilityBookings := getFacilityBookingsHandler.NewHandler(bookingSvc, log)
	getParkingSlots := getParkingSlotsHandler.NewHandler(parkingSvc, log)
	requestParkingSlot := requestParkingSlotHandler.NewHandler(parkingSvc, log)
	getMyParkingSlot := getMyParkingSlotHandler.NewHandler(parkingSvc, log)
	releaseParkingSlot := releaseParkingSlotHandler.NewHandler(parkingSvc, log)
	listParkingRequests := listParkingRequestsHandler.NewHandler(parkingSvc, log)
	decideParkingRequest := decideParkingRequestHandler.NewHandler(parkingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := wrappedDB.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог объектов и их правила
	api.HandleFunc("/facilities", listFacilities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facility}/settings", getFacilitySettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (JWT или X-User-ID от gateway)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, visitorTTL)
		go limiter.Cleanup(time.Minute, stopCh)
		protected.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// --- Бронирования объектов ---
	// /bookings/my регистрируем раньше /bookings/{bookingId}
	protected.HandleFunc("/facilities/{facility}/bookings/my", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/facilities/{facility}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/facilities/{facility}/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/facilities/{facility}/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/facilities/{facility}/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Парковка ---
	protected.HandleFunc("/parking/available-slots", getParkingSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/parking/requests", requestParkingSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/parking/requests/my", getMyParkingSlot.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/parking/release", releaseParkingSlot.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	staff := protected.PathPrefix("/admin").Subrouter()
	staff.Use(middleware.RequireRole(domain.RoleAdmin, domain.RoleSecurity))
	staff.HandleFunc("/parking/requests", listParkingRequests.Handle).Methods(http.MethodGet)

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.HandleFunc("/admin/facilities/{facility}/bookings", getFacilityBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/admin/parking/requests/{requestId}/{action}", decideParkingRequest.Handle).Methods(http.MethodPost)

	// Правила объекта читаются публично (см. выше), меняет только администратор
	admin.HandleFunc("/facilities/{facility}/settings", updateFacilitySettings.Handle).Methods(http.MethodPut)

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

	// Останавливаем сбор статистики пула и очистку лимитера
	close(stopCh)

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
