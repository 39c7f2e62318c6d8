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

	cancelBookingHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/create_booking"
	createContactHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/create_contact"
	createGuestBookingHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/create_guest_booking"
	deleteBookingHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/delete_booking"
	deleteContactHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/delete_contact"
	getAvailableSlotsHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/get_booking"
	getClinicHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/get_clinic"
	getDashboardHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/get_dashboard"
	getMeHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/get_me"
	getUserBookingsHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/get_user_bookings"
	healthHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/list_bookings"
	listContactsHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/list_contacts"
	signInHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/sign_in"
	signUpHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/sign_up"
	transferContactHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/transfer_contact"
	updateBookingStatusHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/update_booking_status"
	updateContactStatusHandler "github.com/m04kA/SMC-DentalBooking/internal/api/handlers/update_contact_status"
	"github.com/m04kA/SMC-DentalBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DentalBooking/internal/config"
	"github.com/m04kA/SMC-DentalBooking/internal/infra/notify"
	bookingRepo "github.com/m04kA/SMC-DentalBooking/internal/infra/storage/booking"
	contactRepo "github.com/m04kA/SMC-DentalBooking/internal/infra/storage/contact"
	userRepo "github.com/m04kA/SMC-DentalBooking/internal/infra/storage/user"
	bookingsService "github.com/m04kA/SMC-DentalBooking/internal/service/bookings"
	configService "github.com/m04kA/SMC-DentalBooking/internal/service/config"
	contactsService "github.com/m04kA/SMC-DentalBooking/internal/service/contacts"
	identityService "github.com/m04kA/SMC-DentalBooking/internal/service/identity"
	createBookingUC "github.com/m04kA/SMC-DentalBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-DentalBooking/internal/usecase/get_available_slots"
	getDashboardUC "github.com/m04kA/SMC-DentalBooking/internal/usecase/get_dashboard"
	transferContactUC "github.com/m04kA/SMC-DentalBooking/internal/usecase/transfer_contact"
	"github.com/m04kA/SMC-DentalBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-DentalBooking/pkg/logger"
	"github.com/m04kA/SMC-DentalBooking/pkg/metrics"
	"github.com/m04kA/SMC-DentalBooking/pkg/migrator"
	"github.com/m04kA/SMC-DentalBooking/pkg/txmanager"
)

const (
	rateLimitEntryTTL      = 10 * time.Minute
	rateLimitCleanupPeriod = time.Minute
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

	log.Info("Starting SMC-DentalBooking...")
	log.Info("Configuration loaded from config.toml")

	clinic, err := cfg.Clinic.Build()
	if err != nil {
		log.Fatal("Invalid clinic configuration: %v", err)
	}
	log.Info("Clinic configured: branches=%v, services=%d, slots=%d, timezone=%s",
		clinic.Branches, len(clinic.Services), len(clinic.SlotGrid), clinic.Location)

	// Инициализируем метрики (если включены). nil метрики методы игнорируют
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

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

	if cfg.Database.AutoMigrate {
		if err := migrator.Up(db, cfg.Database.MigrationsPath); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Migrations applied from %s", cfg.Database.MigrationsPath)
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Уведомления об изменениях для админ-панели
	var publisher bookingsService.Notifier = notify.Noop{}
	if cfg.Notifications.Enabled {
		redisPublisher := notify.NewRedisPublisher(redis.NewClient(&redis.Options{
			Addr:     cfg.Notifications.RedisAddr,
			Password: cfg.Notifications.Password,
			DB:       cfg.Notifications.DB,
		}), cfg.Notifications.Channel)
		defer redisPublisher.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisPublisher.Ping(pingCtx); err != nil {
			log.Warn("Redis is not reachable at %s, events may be lost: %v", cfg.Notifications.RedisAddr, err)
		}
		cancel()

		publisher = redisPublisher
		log.Info("Change notifications enabled (redis=%s, channel=%s)", cfg.Notifications.RedisAddr, cfg.Notifications.Channel)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	contactRepository := contactRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	tokenIssuer := identityService.NewTokenIssuer(
		cfg.Auth.JWTSecret,
		cfg.Auth.Issuer,
		cfg.Auth.AccessTokenTTLDuration(),
	)
	identitySvc := identityService.NewService(userRepository, tokenIssuer, cfg.Admin.Emails, log)

	// Учетные записи администраторов создаются только здесь, самостоятельная регистрация для них закрыта
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := identitySvc.EnsureAdmins(seedCtx, cfg.Admin.PasswordHash); err != nil {
		log.Fatal("Failed to provision admin accounts: %v", err)
	}
	seedCancel()
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		txMgr,
		metricsCollector,
		publisher,
		cfg.Dashboard.PageSize,
		log,
	)
	contactSvc := contactsService.NewService(
		contactRepository,
		clinic,
		metricsCollector,
		publisher,
		log,
	)
	configSvc := configService.NewService(clinic, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		clinic,
		metricsCollector,
		publisher,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, clinic, log)
	transferContactUseCase := transferContactUC.NewUseCase(contactRepository, createBookingUseCase, log)
	getDashboardUseCase := getDashboardUC.NewUseCase(
		bookingRepository,
		contactRepository,
		clinic,
		getDashboardUC.Options{
			UpcomingDays:        cfg.Dashboard.UpcomingDays,
			RecentActivityLimit: cfg.Dashboard.RecentActivityLimit,
		},
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler(wrappedDB, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getClinic := getClinicHandler.NewHandler(configSvc)
	createContact := createContactHandler.NewHandler(contactSvc, log)
	createGuestBooking := createGuestBookingHandler.NewHandler(contactSvc, log)
	signUp := signUpHandler.NewHandler(identitySvc, log)
	signIn := signInHandler.NewHandler(identitySvc, log)

	getMe := getMeHandler.NewHandler(identitySvc, log)
	createOwnBooking := createBookingHandler.NewHandler(createBookingUseCase, createBookingUC.OriginSelf, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	createAdminBooking := createBookingHandler.NewHandler(createBookingUseCase, createBookingUC.OriginAdmin, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	listContacts := listContactsHandler.NewHandler(contactSvc, log)
	updateContactStatus := updateContactStatusHandler.NewHandler(contactSvc, log)
	deleteContact := deleteContactHandler.NewHandler(contactSvc, log)
	transferContact := transferContactHandler.NewHandler(transferContactUseCase, log)
	getDashboard := getDashboardHandler.NewHandler(getDashboardUseCase, log)

	// Ограничение частоты для публичных форм
	limit := func(h http.HandlerFunc) http.Handler { return h }
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, rateLimitEntryTTL)
		go limiter.RunCleanup(rateLimitCleanupPeriod, stopCh)
		limit = func(h http.HandlerFunc) http.Handler { return limiter.Middleware(h) }
		log.Info("Rate limiting enabled for public forms (rps=%.2f, burst=%d)",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/branches/{branch}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clinic", getClinic.Handle).Methods(http.MethodGet)
	api.Handle("/contacts", limit(createContact.Handle)).Methods(http.MethodPost)
	api.Handle("/guest-bookings", limit(createGuestBooking.Handle)).Methods(http.MethodPost)
	api.Handle("/auth/sign-up", limit(signUp.Handle)).Methods(http.MethodPost)
	api.Handle("/auth/sign-in", limit(signIn.Handle)).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(identitySvc))

	protected.HandleFunc("/auth/me", getMe.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", createOwnBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (email из списка администраторов)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(identitySvc))
	admin.Use(middleware.AdminOnly(identitySvc))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", createAdminBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Обращения ---
	admin.HandleFunc("/contacts", listContacts.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/contacts/{contactId}/status", updateContactStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/contacts/{contactId}", deleteContact.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/contacts/{contactId}/transfer", transferContact.Handle).Methods(http.MethodPost)

	// --- Панель ---
	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

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

	// Останавливаем фоновые задачи (статистика пула, очистка rate limiter)
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
