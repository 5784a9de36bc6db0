package services

import (
	"context"
	"fmt"
	"time"

	"kisekae_server/models"
	"kisekae_server/rules"
)

// forecastIntervalHours is OpenWeather's fixed forecast step.
const forecastIntervalHours = 3

// WeatherService builds normalized weather responses for a region or a
// stored profile.
type WeatherService struct {
	Repo    ProfileRepository
	Weather WeatherAPI
}

// GetByRegion geocodes the region and returns the current weather with
// its temperature band.
func (ws *WeatherService) GetByRegion(ctx context.Context, region string) (*models.WeatherResponse, error) {
	lat, lon, err := ws.Weather.GetLatLon(ctx, region)
	if err != nil {
		return nil, err
	}
	return ws.current(ctx, region, lat, lon)
}

// GetByUser resolves the user's stored coordinates and returns the
// current weather. A profile without coordinates is an incomplete
// profile, not an external failure.
func (ws *WeatherService) GetByUser(ctx context.Context, userID string) (*models.WeatherResponse, error) {
	profile, err := ws.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.HasLocation() {
		return nil, fmt.Errorf("%w: location for user %s", models.ErrProfileIncomplete, userID)
	}
	return ws.current(ctx, profile.Region, *profile.Lat, *profile.Lon)
}

func (ws *WeatherService) current(ctx context.Context, region string, lat, lon float64) (*models.WeatherResponse, error) {
	weather, err := ws.Weather.GetCurrent(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	if region == "" {
		region = weather.Name
	}
	return &models.WeatherResponse{
		Region: region,
		Temperature: models.TemperatureReading{
			Value:     weather.Main.Temp,
			FeelsLike: weather.FeelsLikeOrTemp(),
			Humidity:  weather.Main.Humidity,
			WindSpeed: weather.Wind.Speed,
			Category:  rules.CategorizeTemperature(weather.Main.Temp),
		},
	}, nil
}

// GetHourlyForUser returns forecast points covering limitHours at the
// provider's 3-hour interval. limitHours is clamped by the caller to
// 1..48; the point count is the ceiling of limitHours over the interval.
func (ws *WeatherService) GetHourlyForUser(ctx context.Context, userID string, limitHours int) (*models.HourlyWeatherResponse, error) {
	profile, err := ws.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.HasLocation() {
		return nil, fmt.Errorf("%w: location for user %s", models.ErrProfileIncomplete, userID)
	}

	forecast, err := ws.Weather.GetForecast(ctx, *profile.Lat, *profile.Lon)
	if err != nil {
		return nil, err
	}

	points := (limitHours + forecastIntervalHours - 1) / forecastIntervalHours
	if points > len(forecast.List) {
		points = len(forecast.List)
	}

	hourly := make([]models.HourlyWeatherItem, 0, points)
	for _, entry := range forecast.List[:points] {
		condition := ""
		if len(entry.Weather) > 0 {
			condition = entry.Weather[0].Main
		}
		hourly = append(hourly, models.HourlyWeatherItem{
			Time:      time.Unix(entry.Dt, 0).UTC().Format(time.RFC3339),
			Value:     entry.Main.Temp,
			FeelsLike: entry.Main.FeelsLike,
			Humidity:  entry.Main.Humidity,
			WindSpeed: entry.Wind.Speed,
			Condition: condition,
			Category:  rules.CategorizeTemperature(entry.Main.FeelsLike),
		})
	}

	region := profile.Region
	if region == "" {
		region = forecast.City.Name
	}

	return &models.HourlyWeatherResponse{
		UserID:        userID,
		Region:        region,
		IntervalHours: forecastIntervalHours,
		Hourly:        hourly,
	}, nil
}
