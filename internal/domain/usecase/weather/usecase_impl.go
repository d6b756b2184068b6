package weather

import (
	"context"
	"fmt"
	"strings"

	"weather-checker/internal/domain/entity"
	"weather-checker/internal/domain/gateway/api"
)

type weatherUseCase struct {
	countryCode string
	catalog     *entity.PlaceCatalog
	apiGateway  api.WeatherGateway
}

func NewWeatherUseCase(countryCode string, catalog *entity.PlaceCatalog, apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		countryCode: countryCode,
		catalog:     catalog,
		apiGateway:  apiGateway,
	}
}

// ListPlaces returns the supported places in sorted order
func (uc *weatherUseCase) ListPlaces() []entity.Place {
	return uc.catalog.All()
}

// Lookup fetches and maps the current conditions of a place
func (uc *weatherUseCase) Lookup(ctx context.Context, name string) (entity.WeatherReport, error) {
	if strings.TrimSpace(name) == "" {
		return entity.WeatherReport{}, entity.ErrPlaceRequired
	}

	place, ok := uc.catalog.Find(name)
	if !ok {
		return entity.WeatherReport{}, fmt.Errorf("%w: %s", entity.ErrUnsupportedPlace, name)
	}

	query := entity.NewWeatherQuery(place, uc.countryCode)

	response, err := uc.apiGateway.GetCurrentWeather(ctx, query)
	if err != nil {
		return entity.WeatherReport{}, fmt.Errorf("failed to fetch weather for %s: %w", query.Q(), err)
	}

	report, err := toWeatherReport(response)
	if err != nil {
		return entity.WeatherReport{}, &entity.TransportError{Detail: "incomplete weather payload for " + query.Q(), Err: err}
	}

	return report, nil
}
