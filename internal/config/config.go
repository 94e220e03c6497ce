package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Переменные окружения для секретов, перекрывают значения из файла
const (
	EnvCalendlyAPIToken = "CALENDLY_API_TOKEN"
	EnvAPIKey           = "API_KEY"
	EnvHTTPPort         = "PORT"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Calendly   CalendlyConfig   `toml:"calendly"`
	Auth       AuthConfig       `toml:"auth"`
	RateLimit  RateLimitConfig  `toml:"rate_limit"`
	CORS       CORSConfig       `toml:"cors"`
	Scheduling SchedulingConfig `toml:"scheduling"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	Version         string `toml:"version"`
	Environment     string `toml:"environment"`
	// ForceHTTPS перенаправляет запросы, пришедшие через прокси не по https
	ForceHTTPS bool `toml:"force_https"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CalendlyConfig настройки интеграции с Calendly
type CalendlyConfig struct {
	BaseURL  string `toml:"base_url"`
	APIToken string `toml:"api_token"`
	UserURI  string `toml:"user_uri"` // Опционально, фильтр для /event_types
	Timeout  int    `toml:"timeout"`  // Секунды
}

// AuthConfig настройки аутентификации входящих запросов
type AuthConfig struct {
	APIKey string `toml:"api_key"`
}

// RateLimitConfig лимит запросов на один IP: Requests за WindowSeconds
type RateLimitConfig struct {
	Enabled       bool `toml:"enabled"`
	Requests      int  `toml:"requests"`
	WindowSeconds int  `toml:"window_seconds"`
	// TrustProxyHops число доверенных прокси перед сервисом.
	// 0 - X-Forwarded-For игнорируется, ключ берется из адреса соединения
	TrustProxyHops int `toml:"trust_proxy_hops"`
}

// CORSConfig политика CORS; пустой список источников отключает CORS заголовки
type CORSConfig struct {
	AllowedOrigins   []string `toml:"allowed_origins"`
	AllowedMethods   []string `toml:"allowed_methods"`
	AllowedHeaders   []string `toml:"allowed_headers"`
	AllowCredentials bool     `toml:"allow_credentials"`
	MaxAgeSeconds    int      `toml:"max_age_seconds"`
}

// SchedulingConfig настройки расчета интервалов
type SchedulingConfig struct {
	// Timezone IANA имя зоны для рабочих часов и границ недели; "Local" - зона сервера
	Timezone string `toml:"timezone"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			Version:         "1.0.0",
			Environment:     "development",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc-voice-scheduler",
		},
		Calendly: CalendlyConfig{
			BaseURL: "https://api.calendly.com",
			Timeout: 10,
		},
		RateLimit: RateLimitConfig{
			Enabled:       true,
			Requests:      200,
			WindowSeconds: 15 * 60,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
			AllowedHeaders: []string{"Content-Type", "Authorization", "X-API-Key"},
			MaxAgeSeconds:  86400,
		},
		Scheduling: SchedulingConfig{
			Timezone: "Local",
		},
	}
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvCalendlyAPIToken)); v != "" {
		c.Calendly.APIToken = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		c.Auth.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvHTTPPort)); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil {
			c.Server.HTTPPort = port
		}
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if strings.TrimSpace(c.Calendly.BaseURL) == "" {
		return fmt.Errorf("%w: calendly.base_url is required", ErrInvalidConfig)
	}

	if strings.TrimSpace(c.Calendly.APIToken) == "" {
		return fmt.Errorf("%w: calendly.api_token (or %s) is required", ErrInvalidConfig, EnvCalendlyAPIToken)
	}

	if c.Calendly.Timeout <= 0 {
		return fmt.Errorf("%w: calendly.timeout must be positive", ErrInvalidConfig)
	}

	if strings.TrimSpace(c.Auth.APIKey) == "" {
		return fmt.Errorf("%w: auth.api_key (or %s) is required", ErrInvalidConfig, EnvAPIKey)
	}

	if c.RateLimit.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.WindowSeconds <= 0) {
		return fmt.Errorf("%w: rate_limit.requests and rate_limit.window_seconds must be positive", ErrInvalidConfig)
	}

	if c.RateLimit.TrustProxyHops < 0 {
		return fmt.Errorf("%w: rate_limit.trust_proxy_hops must not be negative", ErrInvalidConfig)
	}

	if c.CORS.MaxAgeSeconds < 0 {
		return fmt.Errorf("%w: cors.max_age_seconds must not be negative", ErrInvalidConfig)
	}

	if _, err := c.Scheduling.Location(); err != nil {
		return fmt.Errorf("%w: scheduling.timezone: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Location возвращает зону для рабочих часов
func (s SchedulingConfig) Location() (*time.Location, error) {
	name := strings.TrimSpace(s.Timezone)
	if name == "" || strings.EqualFold(name, "Local") {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// MaxAge возвращает время кэширования preflight ответа
func (c CORSConfig) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeSeconds) * time.Second
}

// Window возвращает окно rate limit
func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}
