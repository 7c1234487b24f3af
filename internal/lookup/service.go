package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gometeo/lookup/internal/geocode"
	"github.com/gometeo/lookup/internal/meteo"
	"github.com/gometeo/lookup/internal/model"
)

// Geocoder превращает название города в координаты
type Geocoder interface {
	Locate(ctx context.Context, city string) (model.Coordinates, error)
}

// Fetcher возвращает текущую погоду по координатам
type Fetcher interface {
	Current(ctx context.Context, coords model.Coordinates) (model.CurrentConditions, error)
}

// Service - конвейер запроса: геокодер -> погода -> описание.
// Никакого состояния между запросами не хранит.
type Service struct {
	geo    Geocoder
	meteo  Fetcher
	logger *slog.Logger
}

func NewService(geo Geocoder, fetcher Fetcher, logger *slog.Logger) *Service {
	return &Service{
		geo:    geo,
		meteo:  fetcher,
		logger: logger,
	}
}

// Lookup выполняет полный цикл запроса для одного города.
// Шаги строго последовательны: при ошибке геокодирования
// запрос погоды не выполняется.
func (s *Service) Lookup(ctx context.Context, city string) (*model.Report, error) {
	start := time.Now()

	coords, err := s.geo.Locate(ctx, city)
	if err != nil {
		s.logger.Warn("Геокодирование не удалось", "city", city, "error", err)
		return nil, fmt.Errorf("геокодирование %q: %w", city, err)
	}

	conditions, err := s.meteo.Current(ctx, coords)
	if err != nil {
		s.logger.Warn("Запрос погоды не удался", "city", city, "error", err)
		return nil, fmt.Errorf("погода для %q: %w", city, err)
	}

	report := &model.Report{
		City:         city,
		TemperatureC: conditions.TemperatureC,
		WeatherCode:  conditions.WeatherCode,
		Condition:    meteo.Describe(conditions.WeatherCode),
		Timestamp:    time.Now(),
	}

	s.logger.Info("Запрос обработан",
		"city", city,
		"temp", report.TemperatureC,
		"condition", report.Condition,
		"duration_ms", time.Since(start).Milliseconds())

	return report, nil
}

// FormatReport печатает отчет в три строки для терминала
func FormatReport(r *model.Report) string {
	// cases.Caser хранит состояние, поэтому создается на каждый вызов
	caser := cases.Title(language.English)

	var b strings.Builder
	b.WriteString("Weather in " + caser.String(r.City) + ":\n")
	b.WriteString("Temperature: " + strconv.FormatFloat(r.TemperatureC, 'f', -1, 64) + "°C\n")
	b.WriteString("Condition: " + r.Condition)
	return b.String()
}

// UserMessage переводит ошибку конвейера в сообщение для пользователя.
// Видов ошибок ровно три, все завершаются нормальным выходом из процесса.
func UserMessage(city string, err error) string {
	var notFound *geocode.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return fmt.Sprintf("Error: Unable to find location data for '%s'. Please check the city name.", city)
	case errors.Is(err, meteo.ErrUnavailable):
		return fmt.Sprintf("Error: Unable to retrieve weather data for '%s'.", city)
	default:
		return "Error: Unable to fetch location data. Try again later."
	}
}
