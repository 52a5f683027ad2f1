package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/efreitasn/tradedesk/internal/domain"
)

// Config holds all runtime configuration for the trading desk.
type Config struct {
	Port            int
	LogLevel        string
	DefaultView     string
	DisplayCurrency string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applies defaults,
// and validates values. It returns an error for any invalid value.
func Load() (*Config, error) {
	port, err := getInt("PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d, must be between 1 and 65535", port)
	}

	logLevel := getStr("LOG_LEVEL", "info")
	if !isValidLogLevel(logLevel) {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %q, must be one of: debug, info, warn, error", logLevel)
	}

	defaultView := getStr("DEFAULT_VIEW", "/")
	if !strings.HasPrefix(defaultView, "/") {
		return nil, fmt.Errorf("invalid DEFAULT_VIEW: %q, must be an absolute path", defaultView)
	}

	displayCurrency := strings.ToUpper(getStr("DISPLAY_CURRENCY", "USD"))
	if !domain.IsKnownCurrency(displayCurrency) {
		return nil, fmt.Errorf("invalid DISPLAY_CURRENCY: %q, must be an ISO 4217 code", displayCurrency)
	}

	cfg := &Config{
		Port:            port,
		LogLevel:        logLevel,
		DefaultView:     defaultView,
		DisplayCurrency: displayCurrency,
	}

	timeouts := []struct {
		key string
		def time.Duration
		dst *time.Duration
	}{
		{"READ_TIMEOUT", 5 * time.Second, &cfg.ReadTimeout},
		{"WRITE_TIMEOUT", 10 * time.Second, &cfg.WriteTimeout},
		{"IDLE_TIMEOUT", 60 * time.Second, &cfg.IdleTimeout},
		{"SHUTDOWN_TIMEOUT", 10 * time.Second, &cfg.ShutdownTimeout},
	}
	for _, tc := range timeouts {
		d, err := getDuration(tc.key, tc.def)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", tc.key, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("invalid %s: %v, must be positive", tc.key, d)
		}
		*tc.dst = d
	}

	return cfg, nil
}

func getStr(key, defaultVal string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v
}

func getInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(v)
}

func getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	return time.ParseDuration(v)
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
