package services

import (
	"context"
	"errors"

	"kisekae_server/models"
)

// In-memory test doubles for the external collaborators.

type stubRepo struct {
	profiles map[string]*models.UserProfile
	updates  []map[string]interface{}
	removed  []string
}

func newStubRepo(profiles ...models.UserProfile) *stubRepo {
	r := &stubRepo{profiles: map[string]*models.UserProfile{}}
	for i := range profiles {
		p := profiles[i]
		r.profiles[p.UserID] = &p
	}
	return r
}

func (r *stubRepo) Put(_ context.Context, profile models.UserProfile) error {
	if _, ok := r.profiles[profile.UserID]; ok {
		return models.ErrProfileExists
	}
	r.profiles[profile.UserID] = &profile
	return nil
}

func (r *stubRepo) GetByID(_ context.Context, userID string) (*models.UserProfile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, models.ErrProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *stubRepo) Update(_ context.Context, userID string, changes map[string]interface{}) error {
	if _, ok := r.profiles[userID]; !ok {
		return models.ErrProfileNotFound
	}
	r.updates = append(r.updates, changes)
	return nil
}

func (r *stubRepo) RemoveFamily(_ context.Context, userID string) error {
	if _, ok := r.profiles[userID]; !ok {
		return models.ErrProfileNotFound
	}
	r.removed = append(r.removed, userID)
	return nil
}

type stubWeather struct {
	lat, lon float64
	current  *models.CurrentWeather
	forecast *models.Forecast
	geoErr   error
	err      error
}

func (w *stubWeather) GetLatLon(_ context.Context, region string) (float64, float64, error) {
	if w.geoErr != nil {
		return 0, 0, w.geoErr
	}
	return w.lat, w.lon, nil
}

func (w *stubWeather) GetCurrent(_ context.Context, lat, lon float64) (*models.CurrentWeather, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.current, nil
}

func (w *stubWeather) GetForecast(_ context.Context, lat, lon float64) (*models.Forecast, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.forecast, nil
}

func currentWeather(temp float64, feelsLike *float64, humidity, wind float64, condition string) *models.CurrentWeather {
	w := &models.CurrentWeather{Name: "Tokyo"}
	w.Main.Temp = temp
	w.Main.FeelsLike = feelsLike
	w.Main.Humidity = humidity
	w.Wind.Speed = wind
	w.Weather = []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	}{{Main: condition}}
	return w
}

func floatPtr(v float64) *float64 { return &v }

type stubSearcher struct {
	results map[string][]models.Product
	failOn  map[string]bool
}

func (s *stubSearcher) SearchItems(_ context.Context, keyword string, hits int) ([]models.Product, error) {
	if s.failOn[keyword] {
		return nil, errors.New("search unavailable")
	}
	return s.results[keyword], nil
}
