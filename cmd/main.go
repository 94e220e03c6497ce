package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers"
	checkAvailabilityHandler "github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers/check_availability"
	checkTimesHandler "github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers/check_times"
	functionCallHandler "github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers/function_call"
	healthHandler "github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers/health"
	listEventTypesHandler "github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers/list_event_types"
	personalizationHandler "github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers/personalization"
	providerCheckHandler "github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers/provider_check"
	"github.com/m04kA/SMC-VoiceScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-VoiceScheduler/internal/config"
	"github.com/m04kA/SMC-VoiceScheduler/internal/integrations/calendly"
	"github.com/m04kA/SMC-VoiceScheduler/internal/service/availability"
	checkAvailabilityUC "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/check_availability"
	checkTimesUC "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/check_times"
	listEventTypesUC "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/list_event_types"
	"github.com/m04kA/SMC-VoiceScheduler/pkg/logger"
	"github.com/m04kA/SMC-VoiceScheduler/pkg/metrics"
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

	log.Info("Starting SMC-VoiceScheduler (version=%s, environment=%s)...", cfg.Server.Version, cfg.Server.Environment)
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Зона, в которой считаются рабочие часы и границы недели
	location, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Failed to load scheduling timezone %q: %v", cfg.Scheduling.Timezone, err)
	}

	// Клиент Calendly создается один раз и передается явно
	calendlyClient := calendly.NewClient(
		cfg.Calendly.BaseURL,
		cfg.Calendly.APIToken,
		cfg.Calendly.UserURI,
		time.Duration(cfg.Calendly.Timeout)*time.Second,
		log,
	)
	if metricsCollector != nil {
		calendlyClient.WithRecorder(metricsCollector)
	}
	log.Info("Calendly client initialized (base_url=%s, timeout=%ds)", cfg.Calendly.BaseURL, cfg.Calendly.Timeout)

	timeProvider := &availability.RealTimeProvider{}
	calculator := availability.NewCalculator(timeProvider, location)
	log.Info("Availability calculator initialized (timezone=%s)", location)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(calendlyClient, calculator, log)
	checkTimesUseCase := checkTimesUC.NewUseCase(calendlyClient, calculator, log)
	listEventTypesUseCase := listEventTypesUC.NewUseCase(calendlyClient, log)

	// Инициализируем handlers
	health := healthHandler.NewHandler(cfg.Server.Version, cfg.Server.Environment, timeProvider)
	providerCheck := providerCheckHandler.NewHandler(calendlyClient, log)
	functionCall := functionCallHandler.NewHandler(checkAvailabilityUseCase, checkTimesUseCase, listEventTypesUseCase, log)
	personalization := personalizationHandler.NewHandler(calculator, log)
	listEventTypes := listEventTypesHandler.NewHandler(listEventTypesUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	checkTimes := checkTimesHandler.NewHandler(checkTimesUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.NotFoundHandler = handlers.NotFoundHandler()
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if metricsCollector != nil {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window(), cfg.RateLimit.TrustProxyHops)
		api.Use(limiter.Middleware(log))
		log.Info("Rate limit enabled: %d requests per %s (trusted proxy hops=%d)",
			cfg.RateLimit.Requests, cfg.RateLimit.Window(), cfg.RateLimit.TrustProxyHops)
	}

	// Проверка связи с Calendly
	api.HandleFunc("/calendly-test", providerCheck.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-API-Key)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.APIKeyAuth(cfg.Auth.APIKey, log))

	// --- Голосовой агент ---
	protected.HandleFunc("/elevenlabs/function-handler", functionCall.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/elevenlabs/personalization", personalization.Handle).Methods(http.MethodPost)

	// --- Calendly ---
	protected.HandleFunc("/v1/calendly/event-types", listEventTypes.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/v1/calendly/availability", checkAvailability.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/v1/calendly/times", checkTimes.Handle).Methods(http.MethodGet)

	// Внешние middleware оборачивают роутер целиком: срабатывают и для 404, и для preflight
	handler := middleware.Chain(r,
		middleware.RequestID,
		middleware.Recover(log),
		middleware.SecurityHeaders,
		middleware.HTTPSRedirect(cfg.Server.ForceHTTPS),
		middleware.CORS(middleware.CORSPolicy{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   cfg.CORS.AllowedMethods,
			AllowedHeaders:   cfg.CORS.AllowedHeaders,
			AllowCredentials: cfg.CORS.AllowCredentials,
			MaxAge:           cfg.CORS.MaxAge(),
		}),
	)
	if cfg.Server.ForceHTTPS {
		log.Info("HTTPS redirect enabled")
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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
