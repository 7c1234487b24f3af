package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"log/slog"

	"github.com/gometeo/lookup/internal/geocode"
	"github.com/gometeo/lookup/internal/meteo"
	"github.com/gometeo/lookup/internal/model"
)

// WeatherService - конвейер запроса погоды по городу
type WeatherService interface {
	Lookup(ctx context.Context, city string) (*model.Report, error)
}

type WeatherHandler struct {
	service WeatherService
	logger  *slog.Logger
}

func NewWeatherHandler(service WeatherService, logger *slog.Logger) *WeatherHandler {
	return &WeatherHandler{
		service: service,
		logger:  logger,
	}
}

// GetWeather возвращает текущую погоду для конкретного города
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	city := strings.TrimSpace(mux.Vars(r)["city"])

	h.logger.Info("Запрос погоды", "city", city, "method", r.Method)

	report, err := h.service.Lookup(r.Context(), city)
	if err != nil {
		h.writeLookupError(w, city, err)
		return
	}

	sendJSON(w, http.StatusOK, report)

	h.logger.Info("Запрос обработан",
		"city", city,
		"duration_ms", time.Since(start).Milliseconds())
}

// writeLookupError переводит ошибку конвейера в HTTP статус
func (h *WeatherHandler) writeLookupError(w http.ResponseWriter, city string, err error) {
	var notFound *geocode.NotFoundError

	switch {
	case errors.As(err, &notFound):
		sendError(w, http.StatusNotFound, "Город не найден", notFound.City)
	case errors.Is(err, meteo.ErrUnavailable):
		sendError(w, http.StatusBadGateway, "Погодные данные недоступны", city)
	default:
		h.logger.Error("Ошибка конвейера", "city", city, "error", err)
		sendError(w, http.StatusBadGateway, "Сервис геокодирования недоступен", "")
	}
}

// HealthCheck проверяет живость сервиса
func (h *WeatherHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}
	sendJSON(w, http.StatusOK, health)
}

// Вспомогательные функции
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, status int, errorMsg, details string) {
	response := model.ErrorResponse{
		Error:   errorMsg,
		Message: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}
