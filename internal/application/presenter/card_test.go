package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weather-checker/internal/domain/entity"
	"weather-checker/internal/domain/model"
)

func TestNewWeatherCard(t *testing.T) {
	report := entity.WeatherReport{
		CityName:             "Kakinada",
		CountryCode:          "IN",
		TemperatureC:         28.5,
		FeelsLikeC:           32,
		HumidityPct:          60,
		WindSpeedMps:         3.09,
		ConditionMain:        "Clouds",
		ConditionDescription: "Partly Cloudy",
		SunriseLocal:         "05:58",
		SunsetLocal:          "17:41",
	}

	card := NewWeatherCard(report, "/weather-checker/animations/")

	assert.Equal(t, model.WeatherCardDTO{
		Title:        "Kakinada, IN",
		Temperature:  "28.5°C",
		Description:  "Partly Cloudy",
		FeelsLike:    "Feels like: 32.0°C",
		Humidity:     "💧 60%",
		WindSpeed:    "🌬️ 3.09 m/s",
		Sunrise:      "🌅 05:58",
		Sunset:       "🌇 17:41",
		Category:     entity.ConditionCloudy,
		AnimationURL: "/weather-checker/animations/cloudy",
	}, card)
}

func TestNewLookupResponse(t *testing.T) {
	report := entity.WeatherReport{CityName: "Tenali", CountryCode: "IN", ConditionDescription: "Light Rain"}

	response := NewLookupResponse(report, "/animations")

	assert.Equal(t, report, response.Report)
	assert.Equal(t, entity.ConditionRainy, response.Category)
	assert.Equal(t, "/animations/rainy", response.Card.AnimationURL)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "28.0", formatNumber(28))
	assert.Equal(t, "-1.5", formatNumber(-1.5))
	assert.Equal(t, "0.0", formatNumber(0))
}
