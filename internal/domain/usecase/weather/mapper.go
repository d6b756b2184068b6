package weather

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weather-checker/internal/domain/entity"
	"weather-checker/internal/domain/model/external"
)

const clockLayout = "15:04"

var errMissingField = errors.New("missing field")

// toWeatherReport maps the upstream payload into a report, refusing to build a partial one
func toWeatherReport(resp *external.CurrentWeatherResponse) (entity.WeatherReport, error) {
	if resp == nil {
		return entity.WeatherReport{}, errors.New("empty response")
	}
	if len(resp.Weather) == 0 {
		return entity.WeatherReport{}, fmt.Errorf("%w: weather", errMissingField)
	}

	required := []struct {
		field   string
		present bool
	}{
		{"main.temp", resp.Main.Temp != nil},
		{"main.feels_like", resp.Main.FeelsLike != nil},
		{"main.humidity", resp.Main.Humidity != nil},
		{"wind.speed", resp.Wind.Speed != nil},
		{"sys.sunrise", resp.Sys.Sunrise != nil},
		{"sys.sunset", resp.Sys.Sunset != nil},
	}
	for _, r := range required {
		if !r.present {
			return entity.WeatherReport{}, fmt.Errorf("%w: %s", errMissingField, r.field)
		}
	}

	condition := resp.Weather[0]

	return entity.WeatherReport{
		CityName:             resp.Name,
		CountryCode:          resp.Sys.Country,
		TemperatureC:         *resp.Main.Temp,
		FeelsLikeC:           *resp.Main.FeelsLike,
		HumidityPct:          *resp.Main.Humidity,
		WindSpeedMps:         *resp.Wind.Speed,
		ConditionMain:        condition.Main,
		ConditionDescription: titleCase(condition.Description),
		SunriseLocal:         FormatLocalClock(*resp.Sys.Sunrise, resp.Timezone),
		SunsetLocal:          FormatLocalClock(*resp.Sys.Sunset, resp.Timezone),
	}, nil
}

func titleCase(description string) string {
	return cases.Title(language.English).String(description)
}

// FormatLocalClock renders epoch seconds as HH:MM at the given offset in seconds east of UTC.
func FormatLocalClock(epochSeconds int64, offsetSeconds int) string {
	return time.Unix(epochSeconds, 0).In(time.FixedZone("", offsetSeconds)).Format(clockLayout)
}
