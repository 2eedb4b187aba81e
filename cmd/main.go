package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/llbeautybar/salon-booking-service/internal/api/handlers/cancel_booking"
	certificatesHandler "github.com/llbeautybar/salon-booking-service/internal/api/handlers/certificates"
	createBookingHandler "github.com/llbeautybar/salon-booking-service/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/llbeautybar/salon-booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/llbeautybar/salon-booking-service/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/llbeautybar/salon-booking-service/internal/api/handlers/get_user_bookings"
	mastersHandler "github.com/llbeautybar/salon-booking-service/internal/api/handlers/masters"
	profileHandler "github.com/llbeautybar/salon-booking-service/internal/api/handlers/profile"
	promotionsHandler "github.com/llbeautybar/salon-booking-service/internal/api/handlers/promotions"
	rescheduleBookingHandler "github.com/llbeautybar/salon-booking-service/internal/api/handlers/reschedule_booking"
	reviewsHandler "github.com/llbeautybar/salon-booking-service/internal/api/handlers/reviews"
	servicesHandler "github.com/llbeautybar/salon-booking-service/internal/api/handlers/services"
	settingsHandler "github.com/llbeautybar/salon-booking-service/internal/api/handlers/settings"
	webhookHandler "github.com/llbeautybar/salon-booking-service/internal/api/handlers/webhook"
	"github.com/llbeautybar/salon-booking-service/internal/api/middleware"
	"github.com/llbeautybar/salon-booking-service/internal/config"
	"github.com/llbeautybar/salon-booking-service/internal/domain"
	bookingRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/catalog"
	certificateRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/certificate"
	masterRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/master"
	promotionRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/promotion"
	reviewRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/review"
	settingsRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/settings"
	userRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/user"
	"github.com/llbeautybar/salon-booking-service/internal/integrations/telegram"
	bookingsService "github.com/llbeautybar/salon-booking-service/internal/service/bookings"
	catalogService "github.com/llbeautybar/salon-booking-service/internal/service/catalog"
	certificatesService "github.com/llbeautybar/salon-booking-service/internal/service/certificates"
	mastersService "github.com/llbeautybar/salon-booking-service/internal/service/masters"
	promotionsService "github.com/llbeautybar/salon-booking-service/internal/service/promotions"
	reviewsService "github.com/llbeautybar/salon-booking-service/internal/service/reviews"
	settingsService "github.com/llbeautybar/salon-booking-service/internal/service/settings"
	usersService "github.com/llbeautybar/salon-booking-service/internal/service/users"
	cancelBookingUC "github.com/llbeautybar/salon-booking-service/internal/usecase/cancel_booking"
	createBookingUC "github.com/llbeautybar/salon-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/llbeautybar/salon-booking-service/internal/usecase/get_available_slots"
	rescheduleBookingUC "github.com/llbeautybar/salon-booking-service/internal/usecase/reschedule_booking"
	"github.com/llbeautybar/salon-booking-service/pkg/logger"
	"github.com/llbeautybar/salon-booking-service/pkg/metrics"
	"github.com/llbeautybar/salon-booking-service/pkg/txmanager"
	"github.com/llbeautybar/salon-booking-service/pkg/types"
)

// systemClock реальное время для usecase-слоя
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func main() {
	// .env опционален: в проде секреты приходят из окружения
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting LL BeautyBar booking service...")

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if cfg.Database.MigrationsPath != "" {
		if err := runMigrations(db, cfg.Database.MigrationsPath, cfg.Database.DBName); err != nil {
			log.Fatal("Failed to run migrations: %v", err)
		}
		log.Info("Migrations applied from %s", cfg.Database.MigrationsPath)
	}

	// Метрики
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		go metricsCollector.CollectDBStats(db, 15*time.Second, stopMetricsCh)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	masterRepository := masterRepo.NewRepository(db)
	catalogRepository := catalogRepo.NewRepository(db)
	userRepository := userRepo.NewRepository(db)
	certificateRepository := certificateRepo.NewRepository(db)
	reviewRepository := reviewRepo.NewRepository(db)
	promotionRepository := promotionRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)

	txManager := txmanager.NewTransactionManager(db)
	clock := systemClock{}

	// Часы работы по умолчанию для дней, не настроенных в расписании мастера
	defaultHours, err := defaultDayHours(cfg.Booking)
	if err != nil {
		log.Fatal("Invalid default working hours: %v", err)
	}

	// Telegram-бот (опционален: без токена сервис работает как чистый API)
	var (
		bot      *telegram.Bot
		notifier createBookingUC.Notifier
	)
	if cfg.Telegram.Enabled() {
		botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
		if err != nil {
			log.Fatal("Failed to initialize telegram bot: %v", err)
		}
		bot = telegram.NewBot(botAPI, cfg.Telegram.WebAppURL, cfg.Telegram.MessagesPerSecond, log)
		notifier = telegram.NewNotifier(botAPI, cfg.Telegram.AdminChatID, cfg.Telegram.MessagesPerSecond, log)
		log.Info("Telegram bot initialized (admin_chat_id=%d)", cfg.Telegram.AdminChatID)
	} else {
		log.Warn("TELEGRAM_BOT_TOKEN is not set, telegram integration disabled")
	}

	// Use cases
	createBookingUseCase := createBookingUC.NewUsecase(
		bookingRepository, masterRepository, catalogRepository, certificateRepository,
		txManager, notifier, clock, log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUsecase(
		masterRepository, catalogRepository, bookingRepository, defaultHours, log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUsecase(bookingRepository, clock, log)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUsecase(bookingRepository, txManager, clock, log)

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	masterSvc := mastersService.NewService(masterRepository, reviewRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	userSvc := usersService.NewService(userRepository, log)
	certificateSvc := certificatesService.NewService(certificateRepository, clock, log)
	reviewSvc := reviewsService.NewService(reviewRepository, masterRepository, bookingRepository, txManager, log)
	promotionSvc := promotionsService.NewService(promotionRepository, clock, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	masters := mastersHandler.NewHandler(masterSvc, log)
	services := servicesHandler.NewHandler(catalogSvc, log)
	certificates := certificatesHandler.NewHandler(certificateSvc, log)
	reviews := reviewsHandler.NewHandler(reviewSvc, log)
	promotions := promotionsHandler.NewHandler(promotionSvc, log)
	profile := profileHandler.NewHandler(userSvc, log)
	settings := settingsHandler.NewHandler(settingsSvc, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.CORS(cfg.Server.AllowedOrigin))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	// Вебхук Telegram живёт вне /api: его URL регистрируется в setWebhook
	if bot != nil {
		webhook := webhookHandler.NewHandler(bot, cfg.Telegram.Token, cfg.Telegram.WebhookSecret, log)
		r.HandleFunc("/webhook/{token}", webhook.Handle).Methods(http.MethodPost)
	}

	api := r.PathPrefix("/api").Subrouter()

	// Публичные роуты
	api.HandleFunc("/services/categories", services.HandleCategories).Methods(http.MethodGet)
	api.HandleFunc("/services", services.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", services.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/slots", getAvailableSlots.HandleServiceSlots).Methods(http.MethodGet)
	api.HandleFunc("/masters", masters.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/masters/{masterId}", masters.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/masters/{masterId}/reviews", masters.HandleReviews).Methods(http.MethodGet)
	api.HandleFunc("/masters/{masterId}/slots", getAvailableSlots.HandleMasterSlots).Methods(http.MethodGet)
	api.HandleFunc("/promotions", promotions.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/promotions/{promotionId}", promotions.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/settings", settings.Handle).Methods(http.MethodGet)

	// Защищённые роуты: пользователь определяется по заголовкам Telegram
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(userSvc, log))

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reviews", reviews.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/certificates", certificates.HandlePurchase).Methods(http.MethodPost)
	protected.HandleFunc("/certificates", certificates.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/profile", profile.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/profile", profile.HandleUpdate).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
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

func runMigrations(db *sql.DB, path, dbName string) error {
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("create migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, dbName, driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func defaultDayHours(cfg config.BookingConfig) (*domain.DayHours, error) {
	if !cfg.HasDefaultHours() {
		return nil, nil
	}

	start, err := types.NewTimeStringFromString(cfg.DefaultDayStart)
	if err != nil {
		return nil, fmt.Errorf("default_day_start: %w", err)
	}
	end, err := types.NewTimeStringFromString(cfg.DefaultDayEnd)
	if err != nil {
		return nil, fmt.Errorf("default_day_end: %w", err)
	}
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("default day hours: start %s must be before end %s", start, end)
	}

	return &domain.DayHours{Start: start, End: end}, nil
}
