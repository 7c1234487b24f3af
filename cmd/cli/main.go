package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/gometeo/lookup/internal/config"
	"github.com/gometeo/lookup/internal/geocode"
	"github.com/gometeo/lookup/internal/lookup"
	"github.com/gometeo/lookup/internal/meteo"
)

func main() {
	// .env опционален, без него работаем на значениях по умолчанию
	_ = godotenv.Load()

	cfg := config.Load()
	// Логи в stderr: stdout занят строками результата
	logger := setupLogger(cfg.LogLevel)

	fmt.Print("Enter city name: ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return
	}
	city := strings.TrimSpace(scanner.Text())
	if city == "" {
		return
	}

	geo := geocode.New(cfg.GeocodeURL, cfg.UserAgent, cfg.HTTPTimeout, logger)
	fetcher := meteo.New(cfg.WeatherURL, cfg.HTTPTimeout, logger)
	service := lookup.NewService(geo, fetcher, logger)

	report, err := service.Lookup(context.Background(), city)
	if err != nil {
		// Ошибка не фатальна: печатаем сообщение и выходим нормально
		fmt.Println(lookup.UserMessage(city, err))
		return
	}

	fmt.Println(lookup.FormatReport(report))
}

func setupLogger(level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)

	// Для продакшена используем JSON формат
	if os.Getenv("ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
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
