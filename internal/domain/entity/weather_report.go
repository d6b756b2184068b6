package entity

// WeatherQuery is built fresh on every lookup.
type WeatherQuery struct {
	Place       Place
	CountryCode string
}

func NewWeatherQuery(place Place, countryCode string) WeatherQuery {
	return WeatherQuery{Place: place, CountryCode: countryCode}
}

// Q returns the upstream location qualifier, e.g. "Hyderabad,IN".
func (q WeatherQuery) Q() string {
	if q.CountryCode == "" {
		return string(q.Place)
	}
	return string(q.Place) + "," + q.CountryCode
}

// WeatherReport holds the current conditions for one place. A report is always complete.
type WeatherReport struct {
	CityName             string  `json:"cityName"`
	CountryCode          string  `json:"countryCode"`
	TemperatureC         float64 `json:"temperatureC"`
	FeelsLikeC           float64 `json:"feelsLikeC"`
	HumidityPct          int     `json:"humidityPct"`
	WindSpeedMps         float64 `json:"windSpeedMps"`
	ConditionMain        string  `json:"conditionMain"`
	ConditionDescription string  `json:"conditionDescription"`
	SunriseLocal         string  `json:"sunriseLocal"`
	SunsetLocal          string  `json:"sunsetLocal"`
}
