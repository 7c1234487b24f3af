package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "https://nominatim.openstreetmap.org/search", cfg.GeocodeURL)
	assert.Equal(t, "https://api.open-meteo.com/v1/forecast", cfg.WeatherURL)
	assert.NotEmpty(t, cfg.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("GEOCODE_URL", "http://localhost:1234/search")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "3")

	cfg := Load()

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "http://localhost:1234/search", cfg.GeocodeURL)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
}
