package weather

import (
	"context"

	"weather-checker/internal/domain/entity"
)

type UseCase interface {
	// ListPlaces returns the supported places in sorted order
	ListPlaces() []entity.Place

	// Lookup fetches the current conditions of a supported place with exactly one upstream request.
	// Errors are entity.ErrPlaceRequired or entity.ErrUnsupportedPlace for bad input,
	// entity.ErrCityNotFound for any non-200 answer and *entity.TransportError when nothing usable came back.
	Lookup(ctx context.Context, place string) (entity.WeatherReport, error)
}
