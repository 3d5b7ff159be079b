package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application.
type AppConfig struct {
	DatabaseURL      string
	HTTPListenAddr   string
	AdminKey         string
	LogLevel         string
	Environment      string
	CronSpecServing  string
	MenuCacheSize    int
	NotifyStateDir   string
	NotifyEnabled    bool
	NotifyIconURL    string
	TelegramToken    string
	NotifyChatID     int64
	SaturdayHalfDay  bool
	AfternoonMinutes int
}

// Load reads configuration from environment variables and .env file
// (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file
	// doesn't exist; godotenv.Load will not override existing env
	// variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.AdminKey = os.Getenv("ADMIN_KEY")
	if cfg.AdminKey == "" {
		return nil, fmt.Errorf("ADMIN_KEY is not set")
	}

	cfg.HTTPListenAddr = os.Getenv("HTTP_LISTEN_ADDR")
	if cfg.HTTPListenAddr == "" {
		cfg.HTTPListenAddr = ":8080"
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.CronSpecServing = os.Getenv("CRON_SPEC_SERVING_CHECK")
	if cfg.CronSpecServing == "" {
		cfg.CronSpecServing = "* * * * *" // Default: every minute
	}

	cfg.MenuCacheSize = 128
	if sizeStr := os.Getenv("MENU_CACHE_SIZE"); sizeStr != "" {
		cfg.MenuCacheSize, err = strconv.Atoi(sizeStr)
		if err != nil || cfg.MenuCacheSize <= 0 {
			return nil, fmt.Errorf("invalid MENU_CACHE_SIZE: %q", sizeStr)
		}
	}

	cfg.NotifyStateDir = os.Getenv("NOTIFY_STATE_DIR")
	if cfg.NotifyStateDir == "" {
		cfg.NotifyStateDir = "data/notify-state"
	}

	cfg.NotifyEnabled = true
	if enabledStr := os.Getenv("NOTIFICATIONS_ENABLED"); enabledStr != "" {
		cfg.NotifyEnabled, err = strconv.ParseBool(enabledStr)
		if err != nil {
			return nil, fmt.Errorf("invalid NOTIFICATIONS_ENABLED: %w", err)
		}
	}

	cfg.NotifyIconURL = os.Getenv("NOTIFY_ICON_URL")

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken != "" {
		chatIDStr := os.Getenv("NOTIFY_CHAT_ID")
		if chatIDStr == "" {
			return nil, fmt.Errorf("NOTIFY_CHAT_ID is not set but TELEGRAM_TOKEN is")
		}
		cfg.NotifyChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid NOTIFY_CHAT_ID: %w", err)
		}
	}

	cfg.SaturdayHalfDay = false
	if satStr := os.Getenv("SATURDAY_HALF_DAY"); satStr != "" {
		cfg.SaturdayHalfDay, err = strconv.ParseBool(satStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SATURDAY_HALF_DAY: %w", err)
		}
	}

	cfg.AfternoonMinutes = 0 // schedule package applies its default
	if afternoonStr := os.Getenv("AFTERNOON_SLOT_MINUTES"); afternoonStr != "" {
		cfg.AfternoonMinutes, err = strconv.Atoi(afternoonStr)
		if err != nil || cfg.AfternoonMinutes <= 0 {
			return nil, fmt.Errorf("invalid AFTERNOON_SLOT_MINUTES: %q", afternoonStr)
		}
	}

	return cfg, nil
}
