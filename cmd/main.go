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

	calendarStatsHandler "github.com/plenkanet/CleanNet-Backend/internal/api/handlers/calendar_stats"
	cancelOrderHandler "github.com/plenkanet/CleanNet-Backend/internal/api/handlers/cancel_order"
	createOrderHandler "github.com/plenkanet/CleanNet-Backend/internal/api/handlers/create_order"
	createReviewHandler "github.com/plenkanet/CleanNet-Backend/internal/api/handlers/create_review"
	createSlotHandler "github.com/plenkanet/CleanNet-Backend/internal/api/handlers/create_slot"
	deleteReviewHandler "github.com/plenkanet/CleanNet-Backend/internal/api/handlers/delete_review"
	deleteSlotHandler "github.com/plenkanet/CleanNet-Backend/internal/api/handlers/delete_slot"
	generateSlotsHandler "github.com/plenkanet/CleanNet-Backend/internal/api/handlers/generate_slots"
	getAdminReviewsHandler "github.com/plenkanet/CleanNet-Backend/internal/api/handlers/get_admin_reviews"
	getAvailableSlotsHandler "github.com/plenkanet/CleanNet-Backend/internal/api/handlers/get_available_slots"
	getOrderHandler "github.com/plenkanet/CleanNet-Backend/internal/api/handlers/get_order"
	getReviewsHandler "github.com/plenkanet/CleanNet-Backend/internal/api/handlers/get_reviews"
	getUserOrdersHandler "github.com/plenkanet/CleanNet-Backend/internal/api/handlers/get_user_orders"
	moderateReviewHandler "github.com/plenkanet/CleanNet-Backend/internal/api/handlers/moderate_review"
	sweepSlotsHandler "github.com/plenkanet/CleanNet-Backend/internal/api/handlers/sweep_slots"
	updateOrderStatusHandler "github.com/plenkanet/CleanNet-Backend/internal/api/handlers/update_order_status"
	"github.com/plenkanet/CleanNet-Backend/internal/api/middleware"
	"github.com/plenkanet/CleanNet-Backend/internal/config"
	orderRepo "github.com/plenkanet/CleanNet-Backend/internal/infra/storage/order"
	reviewRepo "github.com/plenkanet/CleanNet-Backend/internal/infra/storage/review"
	slotRepo "github.com/plenkanet/CleanNet-Backend/internal/infra/storage/slot"
	"github.com/plenkanet/CleanNet-Backend/internal/integrations/telegram"
	calendarService "github.com/plenkanet/CleanNet-Backend/internal/service/calendar"
	ordersService "github.com/plenkanet/CleanNet-Backend/internal/service/orders"
	reviewsService "github.com/plenkanet/CleanNet-Backend/internal/service/reviews"
	cancelOrderUC "github.com/plenkanet/CleanNet-Backend/internal/usecase/cancel_order"
	createOrderUC "github.com/plenkanet/CleanNet-Backend/internal/usecase/create_order"
	generateSlotsUC "github.com/plenkanet/CleanNet-Backend/internal/usecase/generate_slots"
	getAvailableSlotsUC "github.com/plenkanet/CleanNet-Backend/internal/usecase/get_available_slots"
	sweepSlotsUC "github.com/plenkanet/CleanNet-Backend/internal/usecase/sweep_slots"
	"github.com/plenkanet/CleanNet-Backend/pkg/dbmetrics"
	"github.com/plenkanet/CleanNet-Backend/pkg/logger"
	"github.com/plenkanet/CleanNet-Backend/pkg/metrics"
	"github.com/plenkanet/CleanNet-Backend/pkg/simpletxmanager"
	"github.com/plenkanet/CleanNet-Backend/pkg/txmanager"
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

	log.Info("Starting CleanNet-Backend...")
	log.Info("Configuration loaded from config.toml")

	// Операционная таймзона сервиса
	loc, err := cfg.Service.Location()
	if err != nil {
		log.Fatal("Failed to load service timezone: %v", err)
	}
	log.Info("Service timezone: %s", cfg.Service.Timezone)

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

	// Инициализируем клиента Telegram-уведомлений
	var notifier createOrderUC.Notifier
	if cfg.Telegram.Enabled {
		tgClient, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID, loc, log)
		if err != nil {
			log.Fatal("Failed to initialize telegram client: %v", err)
		}
		notifier = tgClient
		log.Info("Telegram notifications enabled, chat_id=%d", cfg.Telegram.ChatID)
	} else {
		notifier = telegram.NewDisabledClient(log)
		log.Info("Telegram notifications disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository   *slotRepo.Repository
		orderRepository  *orderRepo.Repository
		reviewRepository *reviewRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		orderRepository = orderRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		orderRepository = orderRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	ordersSvc := ordersService.NewService(orderRepository, log)
	calendarSvc := calendarService.NewService(slotRepository, loc, log)
	reviewsSvc := reviewsService.NewService(reviewRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(slotRepository, loc, log)
	createOrderUseCase := createOrderUC.NewUseCase(orderRepository, slotRepository, notifier, txMgr, log)
	cancelOrderUseCase := cancelOrderUC.NewUseCase(orderRepository, slotRepository, txMgr, log)
	generateSlotsUseCase := generateSlotsUC.NewUseCase(slotRepository, loc, log)
	sweepSlotsUseCase := sweepSlotsUC.NewUseCase(slotRepository, loc, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createOrder := createOrderHandler.NewHandler(createOrderUseCase, log)
	getOrder := getOrderHandler.NewHandler(ordersSvc, log)
	getUserOrders := getUserOrdersHandler.NewHandler(ordersSvc, log)
	cancelOrder := cancelOrderHandler.NewHandler(cancelOrderUseCase, log)
	createReview := createReviewHandler.NewHandler(reviewsSvc, log)
	getReviews := getReviewsHandler.NewHandler(reviewsSvc, log)
	getAdminReviews := getAdminReviewsHandler.NewHandler(reviewsSvc, log)
	moderateReview := moderateReviewHandler.NewHandler(reviewsSvc, log)
	deleteReview := deleteReviewHandler.NewHandler(reviewsSvc, log)
	createSlot := createSlotHandler.NewHandler(calendarSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(calendarSvc, log)
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, loc, log)
	sweepSlots := sweepSlotsHandler.NewHandler(sweepSlotsUseCase, log)
	calendarStats := calendarStatsHandler.NewHandler(calendarSvc, log)
	updateOrderStatus := updateOrderStatusHandler.NewHandler(ordersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты календаря
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Опубликованные отзывы
	api.HandleFunc("/reviews", getReviews.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Заказы ---
	protected.HandleFunc("/orders", createOrder.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/orders", getUserOrders.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/orders/{id}", getOrder.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/orders/{id}/cancel", cancelOrder.Handle).Methods(http.MethodPost)

	// --- Отзывы ---
	protected.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют роль admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth, middleware.AdminOnly)

	// --- Календарь ---
	admin.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots/generate", generateSlots.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots/sweep", sweepSlots.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots/stats", calendarStats.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/slots/{id}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Заказы ---
	admin.HandleFunc("/orders/{id}/status", updateOrderStatus.Handle).Methods(http.MethodPatch)

	// --- Модерация отзывов ---
	admin.HandleFunc("/reviews", getAdminReviews.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reviews/{id}", moderateReview.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reviews/{id}", deleteReview.Handle).Methods(http.MethodDelete)

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
