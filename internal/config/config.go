package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPPort    string
	GeocodeURL  string
	WeatherURL  string
	UserAgent   string
	HTTPTimeout time.Duration
	LogLevel    string
}

func Load() *Config {
	timeout := getEnvInt("HTTP_TIMEOUT_SECONDS", 10)

	return &Config{
		HTTPPort:   getEnv("HTTP_PORT", "8080"),
		GeocodeURL: getEnv("GEOCODE_URL", "https://nominatim.openstreetmap.org/search"),
		WeatherURL: getEnv("WEATHER_URL", "https://api.open-meteo.com/v1/forecast"),
		// Nominatim требует осмысленный User-Agent, иначе могут заблокировать
		UserAgent:   getEnv("USER_AGENT", "gometeo-lookup/1.0 (contact@gometeo.dev)"),
		HTTPTimeout: time.Duration(timeout) * time.Second,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
