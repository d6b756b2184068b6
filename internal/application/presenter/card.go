package presenter

import (
	"strconv"
	"strings"

	"weather-checker/internal/domain/entity"
	"weather-checker/internal/domain/model"
)

// NewWeatherCard renders a report into display strings. animationBase is the URL prefix animations are served from.
func NewWeatherCard(report entity.WeatherReport, animationBase string) model.WeatherCardDTO {
	category := entity.Classify(report.ConditionDescription)

	return model.WeatherCardDTO{
		Title:        report.CityName + ", " + report.CountryCode,
		Temperature:  formatNumber(report.TemperatureC) + "°C",
		Description:  report.ConditionDescription,
		FeelsLike:    "Feels like: " + formatNumber(report.FeelsLikeC) + "°C",
		Humidity:     "💧 " + strconv.Itoa(report.HumidityPct) + "%",
		WindSpeed:    "🌬️ " + formatNumber(report.WindSpeedMps) + " m/s",
		Sunrise:      "🌅 " + report.SunriseLocal,
		Sunset:       "🌇 " + report.SunsetLocal,
		Category:     category,
		AnimationURL: strings.TrimRight(animationBase, "/") + "/" + string(category),
	}
}

// NewLookupResponse bundles the report, its category and card.
func NewLookupResponse(report entity.WeatherReport, animationBase string) model.WeatherLookupResponseDTO {
	card := NewWeatherCard(report, animationBase)
	return model.WeatherLookupResponseDTO{
		Report:   report,
		Category: card.Category,
		Card:     card,
	}
}

// formatNumber keeps one decimal on whole numbers, so 28 renders as "28.0"
func formatNumber(value float64) string {
	formatted := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.ContainsAny(formatted, ".eE") {
		formatted += ".0"
	}
	return formatted
}
