package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gometeo/lookup/internal/model"
)

// NotFoundError - сервис ответил, но по запросу ничего не нашлось
type NotFoundError struct {
	City string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("город %q не найден", e.City)
}

// Client - клиент геокодера Nominatim
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(baseURL, userAgent string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// coordinate - Nominatim отдает lat/lon строками, но формально это число
type coordinate float64

func (c *coordinate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("некорректная координата %s: %w", string(data), err)
	}
	*c = coordinate(v)
	return nil
}

type place struct {
	Lat coordinate `json:"lat"`
	Lon coordinate `json:"lon"`
}

// Locate возвращает координаты первого совпадения по названию города.
// Ранжирование отдано на откуп Nominatim: берем первый элемент списка.
func (c *Client) Locate(ctx context.Context, city string) (model.Coordinates, error) {
	params := url.Values{}
	params.Add("city", city)
	params.Add("format", "json")
	fullURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	// Обязательный заголовок по правилам Nominatim
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("ошибка запроса к геокодеру: %w", err)
	}
	defer resp.Body.Close()

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return model.Coordinates{}, fmt.Errorf("некорректный ответ геокодера: %w", err)
	}

	if len(places) == 0 {
		return model.Coordinates{}, &NotFoundError{City: city}
	}

	coords := model.Coordinates{
		Lat: float64(places[0].Lat),
		Lon: float64(places[0].Lon),
	}

	c.logger.Debug("Город геокодирован",
		"city", city,
		"lat", coords.Lat,
		"lon", coords.Lon,
		"matches", len(places))

	return coords, nil
}
