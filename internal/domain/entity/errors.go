package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrCityNotFound covers every non-200 upstream answer: genuine absence, auth failure and rate limiting alike.
	ErrCityNotFound = errors.New("city not found")
	// ErrPlaceRequired is returned for a blank place.
	ErrPlaceRequired = errors.New("place is required")
	// ErrUnsupportedPlace is returned for names outside the place catalog.
	ErrUnsupportedPlace = errors.New("place is not supported")
	// ErrMissingAPIKey is returned at construction time when no API key is configured.
	ErrMissingAPIKey = errors.New("weather api key is not configured")
)

// UpstreamStatusError keeps the real status code behind ErrCityNotFound.
type UpstreamStatusError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamStatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream answered %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream answered %d", e.StatusCode)
}

func (e *UpstreamStatusError) Is(target error) bool {
	return target == ErrCityNotFound
}

// TransportError means no usable response was received.
type TransportError struct {
	Detail string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("weather transport error: %s: %v", e.Detail, e.Err)
	}
	return "weather transport error: " + e.Detail
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
