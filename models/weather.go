package models

import (
	"strings"

	"kisekae_server/rules"
)

// OpenWeather API レスポンスの境界型。外部の緩い形をここで受け止めて、
// 以降は型付きの内部構造だけを流す。

// GeocodeResult is one entry from /geo/1.0/direct.
type GeocodeResult struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// CurrentWeather is the subset of /data/2.5/weather the services consume.
// FeelsLike is a pointer so its absence is distinguishable from 0℃.
type CurrentWeather struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64  `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  float64  `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

// FeelsLikeOrTemp prefers the feels-like temperature, falling back to the
// raw temperature when the provider omits it.
func (w *CurrentWeather) FeelsLikeOrTemp() float64 {
	if w.Main.FeelsLike != nil {
		return *w.Main.FeelsLike
	}
	return w.Main.Temp
}

// Condition returns the lower-cased primary condition ("rain", "clear"...).
func (w *CurrentWeather) Condition() string {
	if len(w.Weather) == 0 {
		return ""
	}
	return strings.ToLower(w.Weather[0].Main)
}

// ForecastEntry is one 3-hour step from /data/2.5/forecast.
type ForecastEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
}

// Forecast is the boundary type for /data/2.5/forecast.
type Forecast struct {
	List []ForecastEntry `json:"list"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
}

// TemperatureReading is the normalized weather block returned to clients.
type TemperatureReading struct {
	Value     float64               `json:"value"`
	FeelsLike float64               `json:"feelsLike"`
	Humidity  float64               `json:"humidity"`
	WindSpeed float64               `json:"windSpeed"`
	Category  rules.TemperatureBand `json:"category"`
}

// WeatherResponse is the GET /weather payload.
type WeatherResponse struct {
	Region      string             `json:"region"`
	Temperature TemperatureReading `json:"temperature"`
}

// HourlyWeatherItem is one forecast point in the hourly response.
type HourlyWeatherItem struct {
	Time      string                `json:"time"` // RFC 3339
	Value     float64               `json:"value"`
	FeelsLike float64               `json:"feelsLike"`
	Humidity  float64               `json:"humidity"`
	WindSpeed float64               `json:"windSpeed"`
	Condition string                `json:"condition"`
	Category  rules.TemperatureBand `json:"category"`
}

// HourlyWeatherResponse is the GET /weather/hourly/{userId} payload. The
// provider interval is fixed at 3 hours.
type HourlyWeatherResponse struct {
	UserID        string              `json:"userId"`
	Region        string              `json:"region"`
	IntervalHours int                 `json:"intervalHours"`
	Hourly        []HourlyWeatherItem `json:"hourly"`
}
