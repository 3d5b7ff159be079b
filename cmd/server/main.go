package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"cafe_menu_service/internal/app"
	"cafe_menu_service/internal/domain/notify"
	"cafe_menu_service/internal/domain/schedule"
	"cafe_menu_service/internal/infra/cache"
	"cafe_menu_service/internal/infra/config"
	idb "cafe_menu_service/internal/infra/database"
	"cafe_menu_service/internal/infra/httpapi"
	"cafe_menu_service/internal/infra/kvstore"
	"cafe_menu_service/internal/infra/logger"
	"cafe_menu_service/internal/infra/scheduler"
	"cafe_menu_service/internal/infra/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	mainLogger := logger.Log.WithField("component", "main")
	mainLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s", cfg.LogLevel, cfg.Environment)

	// Database connection and menu repository (LRU-cached).
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not connect to database: %v", err)
	}
	defer db.Close()
	mainLogger.Info("Database connection established successfully")

	menuRepo, err := cache.NewCachingMenuRepository(
		idb.NewPostgresMenuRepository(db),
		cfg.MenuCacheSize,
		logger.Log.WithField("component", "menu_cache"),
	)
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not initialize menu cache: %v", err)
	}

	menuService := app.NewMenuService(menuRepo, logger.Log.WithField("component", "menu_service"))

	// Weekly schedule table and resolver.
	table, err := schedule.NewTable(schedule.TableConfig{
		SaturdayHalfDay:  cfg.SaturdayHalfDay,
		AfternoonMinutes: cfg.AfternoonMinutes,
	})
	if err != nil {
		mainLogger.Fatalf("FATAL: Invalid schedule configuration: %v", err)
	}
	resolver := schedule.NewResolver(table)

	// Notification gate state and transport.
	sentStore, err := kvstore.NewBadgerSentStore(cfg.NotifyStateDir)
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not open notification state store: %v", err)
	}
	defer sentStore.Close()

	gate := notify.NewGate(cfg.NotifyEnabled, sentStore)

	var transport notify.Transport
	if cfg.TelegramToken != "" {
		transport, err = telegram.NewNotifier(cfg.TelegramToken, cfg.NotifyChatID)
		if err != nil {
			mainLogger.Fatalf("FATAL: Could not create Telegram notifier: %v", err)
		}
		mainLogger.Info("Telegram notification transport initialized")
	} else {
		transport = telegram.NewLogNotifier(logger.Log.WithField("component", "notifier"))
		mainLogger.Info("No TELEGRAM_TOKEN configured, using log notification transport")
	}

	servingService := app.NewServingService(
		resolver,
		menuService,
		gate,
		transport,
		cfg.NotifyIconURL,
		logger.Log.WithField("component", "serving_service"),
	)

	watcher := scheduler.NewServingWatcher(servingService, logger.Log.WithField("component", "watcher"), cfg.CronSpecServing)
	if err := watcher.Start(); err != nil {
		mainLogger.Fatalf("FATAL: Could not start serving watcher: %v", err)
	}

	// HTTP API.
	if cfg.Environment == "production" || cfg.Environment == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	controller := httpapi.NewMenuController(menuService, servingService, logger.Log.WithField("component", "http"))
	controller.RegisterRoutes(router, cfg.AdminKey)

	server := &http.Server{
		Addr:              cfg.HTTPListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		mainLogger.Infof("HTTP server listening on %s", cfg.HTTPListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			mainLogger.Fatalf("FATAL: HTTP server failed: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	mainLogger.Info("Shutting down application...")
	watcher.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		mainLogger.Errorf("HTTP server shutdown error: %v", err)
	}
	mainLogger.Info("Application shut down gracefully")
}
