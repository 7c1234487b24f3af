package model

import "time"

// Coordinates - точка на карте, результат геокодирования
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CurrentConditions - текущие показания от погодного API
type CurrentConditions struct {
	TemperatureC float64 `json:"temperature_2m"`
	WeatherCode  int     `json:"weathercode"`
}

// Report - итоговый результат запроса для пользователя
type Report struct {
	City         string    `json:"city"`
	TemperatureC float64   `json:"temperature"`
	WeatherCode  int       `json:"weather_code"`
	Condition    string    `json:"condition"`
	Timestamp    time.Time `json:"timestamp"`
}

// ErrorResponse - тело ответа HTTP API при ошибке
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
