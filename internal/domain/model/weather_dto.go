package model

import "weather-checker/internal/domain/entity"

// WeatherCardDTO is the display-ready view of a report
type WeatherCardDTO struct {
	Title        string                   `json:"title"`
	Temperature  string                   `json:"temperature"`
	Description  string                   `json:"description"`
	FeelsLike    string                   `json:"feelsLike"`
	Humidity     string                   `json:"humidity"`
	WindSpeed    string                   `json:"windSpeed"`
	Sunrise      string                   `json:"sunrise"`
	Sunset       string                   `json:"sunset"`
	Category     entity.ConditionCategory `json:"category"`
	AnimationURL string                   `json:"animationUrl"`
}

// WeatherLookupResponseDTO is returned by the weather endpoint on success
type WeatherLookupResponseDTO struct {
	Report   entity.WeatherReport     `json:"report"`
	Category entity.ConditionCategory `json:"category"`
	Card     WeatherCardDTO           `json:"card"`
}

// ErrorResponseDTO carries the user-facing message and a machine-readable reason
type ErrorResponseDTO struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}
