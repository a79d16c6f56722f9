package models

import "time"

// CurrentWeather is a point-in-time snapshot of the conditions in a city.
type CurrentWeather struct {
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Temperature int       `json:"temperature"`
	FeelsLike   int       `json:"feels_like"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Humidity    int       `json:"humidity"`
	Pressure    int       `json:"pressure"`
	WindSpeed   float64   `json:"wind_speed"`
	Timestamp   time.Time `json:"timestamp"`
}

// ForecastSample is one fixed-interval forecast point as returned by the provider.
// Time is expressed in the forecast city's own time zone.
type ForecastSample struct {
	Time        time.Time `json:"time"`
	Temperature float64   `json:"temperature"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
}

// DailyForecast is the roll-up of all samples that fall on one calendar day.
type DailyForecast struct {
	// Date is the human-readable label, e.g. "Monday, January 02".
	Date string `json:"date"`

	// Day is the calendar date in YYYY-MM-DD form.
	Day string `json:"day"`

	TempMax     int     `json:"temp_max"`
	TempMin     int     `json:"temp_min"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Icon        string  `json:"icon"`
}

// WeatherReport is what a lookup hands to the presentation layer.
// Current is nil when the provider returned nothing usable.
type WeatherReport struct {
	Current  *CurrentWeather `json:"current"`
	Forecast []DailyForecast `json:"forecast"`
}

// WeatherQuery is a persisted record of one successful lookup.
type WeatherQuery struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	City      string          `json:"city"`
	QueryTime time.Time       `json:"query_time"`
	Weather   CurrentWeather  `json:"weather_data"`
	Forecast  []DailyForecast `json:"forecast"`
}

// TableName returns the name of the database table
// associated with the WeatherQuery model.
func (q WeatherQuery) TableName() string {
	return "weather_queries"
}
