package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/gometeo/lookup/internal/api/handlers"
	"github.com/gometeo/lookup/internal/config"
	"github.com/gometeo/lookup/internal/geocode"
	"github.com/gometeo/lookup/internal/lookup"
	"github.com/gometeo/lookup/internal/meteo"
)

func main() {
	_ = godotenv.Load()

	// Настройка логирования
	logger := setupLogger()
	logger.Info("Запуск Weather Lookup API сервиса...")

	// Загрузка конфигурации
	cfg := config.Load()
	logger.Info("Конфигурация загружена",
		"port", cfg.HTTPPort,
		"geocode_url", cfg.GeocodeURL,
		"weather_url", cfg.WeatherURL)

	// 1. Сборка конвейера запроса
	geo := geocode.New(cfg.GeocodeURL, cfg.UserAgent, cfg.HTTPTimeout, logger)
	fetcher := meteo.New(cfg.WeatherURL, cfg.HTTPTimeout, logger)
	service := lookup.NewService(geo, fetcher, logger)

	// 2. Настройка маршрутизатора
	router := mux.NewRouter()
	weatherHandler := handlers.NewWeatherHandler(service, logger)

	// API маршруты
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/weather/{city}", weatherHandler.GetWeather).Methods("GET")

	// Health check
	api.HandleFunc("/health", weatherHandler.HealthCheck).Methods("GET")

	// Middleware
	router.Use(requestIDMiddleware)
	router.Use(loggingMiddleware(logger))
	router.Use(contentTypeMiddleware)

	// 3. Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      ghandlers.RecoveryHandler()(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 4. Graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("Сервер запущен", "port", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Ошибка сервера", "error", err)
		}
	}()

	// Ожидание сигнала завершения
	<-stopChan
	logger.Info("Получен сигнал завершения...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Ошибка при остановке сервера", "error", err)
	} else {
		logger.Info("Сервер остановлен")
	}
}

func setupLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)

	// Для продакшена используем JSON формат
	if os.Getenv("ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Middleware для присвоения каждому запросу своего идентификатора
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

// Middleware для логирования
func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Создаем ResponseWriter для отслеживания статуса
			rw := &responseWriter{ResponseWriter: w, status: 200}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)

			logger.Info("HTTP запрос",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rw.status,
				"request_id", rw.Header().Get("X-Request-ID"),
				"duration_ms", duration.Milliseconds(),
				"user_agent", r.UserAgent(),
				"remote_addr", r.RemoteAddr,
			)
		})
	}
}

// Кастомный ResponseWriter для отслеживания статуса
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware для установки Content-Type
func contentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
