package external

// CurrentWeatherResponse represents the OpenWeatherMap current weather payload.
// Fields the report depends on are pointers so an absent value can be told apart from zero.
type CurrentWeatherResponse struct {
	Weather  []WeatherConditionDTO `json:"weather"`
	Main     MainDTO               `json:"main"`
	Wind     WindDTO               `json:"wind"`
	Sys      SysDTO                `json:"sys"`
	Timezone int                   `json:"timezone"`
	Name     string                `json:"name"`
}

// WeatherConditionDTO represents one entry of the weather list
type WeatherConditionDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainDTO holds temperature and humidity readings
type MainDTO struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	Humidity  *int     `json:"humidity"`
	Pressure  int      `json:"pressure"`
}

// WindDTO holds wind readings
type WindDTO struct {
	Speed *float64 `json:"speed"`
	Deg   int      `json:"deg"`
}

// SysDTO holds country and sun times as epoch seconds
type SysDTO struct {
	Country string `json:"country"`
	Sunrise *int64 `json:"sunrise"`
	Sunset  *int64 `json:"sunset"`
}

// APIErrorResponse represents error responses from OpenWeatherMap. Cod comes back as a string or a number.
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
