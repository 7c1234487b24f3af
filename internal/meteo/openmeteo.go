package meteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gometeo/lookup/internal/model"
)

// ErrUnavailable - в ответе нет блока current, данных по точке нет
var ErrUnavailable = errors.New("погодные данные недоступны")

// Client - клиент Open-Meteo
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type forecastResponse struct {
	Current *model.CurrentConditions `json:"current"`
}

// Current запрашивает текущую температуру и код погоды по координатам
func (c *Client) Current(ctx context.Context, coords model.Coordinates) (model.CurrentConditions, error) {
	params := url.Values{}
	params.Add("latitude", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	params.Add("longitude", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
	params.Add("current", "temperature_2m,weathercode")
	fullURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return model.CurrentConditions{}, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.CurrentConditions{}, fmt.Errorf("ошибка запроса к погодному API: %w", err)
	}
	defer resp.Body.Close()

	var result forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return model.CurrentConditions{}, fmt.Errorf("некорректный ответ погодного API: %w", err)
	}

	if result.Current == nil {
		return model.CurrentConditions{}, ErrUnavailable
	}

	c.logger.Debug("Погода получена",
		"lat", coords.Lat,
		"lon", coords.Lon,
		"temp", result.Current.TemperatureC,
		"code", result.Current.WeatherCode)

	return *result.Current, nil
}
