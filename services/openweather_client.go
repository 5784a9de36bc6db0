package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"kisekae_server/config"
	"kisekae_server/models"
)

// WeatherAPI resolves regions to coordinates and coordinates to weather.
type WeatherAPI interface {
	GetLatLon(ctx context.Context, region string) (lat, lon float64, err error)
	GetCurrent(ctx context.Context, lat, lon float64) (*models.CurrentWeather, error)
	GetForecast(ctx context.Context, lat, lon float64) (*models.Forecast, error)
}

// OpenWeatherClient calls the OpenWeatherMap geocoding, current-weather
// and 3-hour forecast endpoints. Responses are decoded into typed
// boundary structs immediately; no loose shapes leave this file.
type OpenWeatherClient struct {
	BaseURL string
	Client  *http.Client
}

// NewOpenWeatherClient builds a client against api.openweathermap.org.
func NewOpenWeatherClient() *OpenWeatherClient {
	return &OpenWeatherClient{
		BaseURL: "https://api.openweathermap.org",
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *OpenWeatherClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("appid", config.OpenWeatherKey())
	endpoint := c.BaseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	log.Printf("OpenWeather request: %s\n", path)
	res, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("openweather request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("openweather returned status %d for %s", res.StatusCode, path)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode openweather response: %w", err)
	}
	return nil
}

// GetLatLon geocodes a region name to coordinates.
func (c *OpenWeatherClient) GetLatLon(ctx context.Context, region string) (float64, float64, error) {
	params := url.Values{}
	params.Set("q", region)
	params.Set("limit", "1")

	var results []models.GeocodeResult
	if err := c.get(ctx, "/geo/1.0/direct", params, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("%w: %s", models.ErrRegionNotFound, region)
	}
	return results[0].Lat, results[0].Lon, nil
}

// GetCurrent fetches the current weather for coordinates, metric units.
func (c *OpenWeatherClient) GetCurrent(ctx context.Context, lat, lon float64) (*models.CurrentWeather, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("units", "metric")

	var weather models.CurrentWeather
	if err := c.get(ctx, "/data/2.5/weather", params, &weather); err != nil {
		return nil, err
	}
	return &weather, nil
}

// GetForecast fetches the 3-hour-step forecast for coordinates.
func (c *OpenWeatherClient) GetForecast(ctx context.Context, lat, lon float64) (*models.Forecast, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("units", "metric")

	var forecast models.Forecast
	if err := c.get(ctx, "/data/2.5/forecast", params, &forecast); err != nil {
		return nil, err
	}
	return &forecast, nil
}
