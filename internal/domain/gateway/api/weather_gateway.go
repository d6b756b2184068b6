package api

import (
	"context"

	"weather-checker/internal/domain/entity"
	"weather-checker/internal/domain/model"
	"weather-checker/internal/domain/model/external"
)

// WeatherGateway defines the interface for weather-related external API calls
type WeatherGateway interface {
	// GetCurrentWeather issues exactly one request for the current conditions of the query.
	// Non-200 answers come back as *entity.UpstreamStatusError, missing responses as *entity.TransportError.
	GetCurrentWeather(ctx context.Context, query entity.WeatherQuery) (*external.CurrentWeatherResponse, error)

	// Health reports the gateway configuration without calling the upstream
	Health() model.ComponentHealthStatus
}
