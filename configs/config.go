package configs

import (
	"time"

	"weather-checker/pkg/resource"
)

// ServerConfig holds the inbound HTTP settings.
type ServerConfig struct {
	Port        string
	ContextPath string
}

// OpenWeatherConfig holds the upstream weather API settings.
type OpenWeatherConfig struct {
	BaseURL           string
	Path              string
	APIKey            string
	CountryCode       string
	Units             string
	ConnectionTimeout time.Duration
	ReadTimeout       time.Duration
}

// Config is the typed view of application.yml handed to constructors at startup.
type Config struct {
	ApplicationName string
	Server          ServerConfig
	OpenWeather     OpenWeatherConfig
	Animations      map[string]string
	Places          []string
}

// Load reads the typed configuration from the already initialised properties.
func Load() *Config {
	return &Config{
		ApplicationName: getStringOrDefault("app.name", "weather-checker"),
		Server: ServerConfig{
			Port:        getStringOrDefault("app.server.port", "8080"),
			ContextPath: getStringOrDefault("app.server.context-path", "/weather-checker"),
		},
		OpenWeather: OpenWeatherConfig{
			BaseURL:           getStringOrDefault("app.openweather.base-url", "http://api.openweathermap.org"),
			Path:              getStringOrDefault("app.openweather.path", "/data/2.5/weather"),
			APIKey:            resource.GetString("app.openweather.api-key"),
			CountryCode:       getStringOrDefault("app.openweather.country-code", "IN"),
			Units:             getStringOrDefault("app.openweather.units", "metric"),
			ConnectionTimeout: resource.GetDuration("app.openweather.connection-timeout"),
			ReadTimeout:       resource.GetDuration("app.openweather.read-timeout"),
		},
		Animations: resource.GetStringMapString("app.animations"),
		Places:     resource.GetStringSlice("app.places"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := resource.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
