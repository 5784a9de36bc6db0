package services

import (
	"context"
	"fmt"
	"time"

	"kisekae_server/models"
	"kisekae_server/rules"
)

// ClothesService combines a user's profile, the current weather and the
// clothing matrix into one suggestion.
type ClothesService struct {
	Repo     ProfileRepository
	Weather  WeatherAPI
	Products *ProductService
}

// GetClothesForUser builds the suggestion for the profile owner. The
// feels-like temperature drives the band, falling back to the raw
// temperature when the provider omits it. Product enrichment is
// best-effort and only attempted when requested.
func (cs *ClothesService) GetClothesForUser(ctx context.Context, userID string, withProducts bool) (*models.ClothesResponse, error) {
	profile, err := cs.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.HasLocation() {
		return nil, fmt.Errorf("%w: location for user %s", models.ErrProfileIncomplete, userID)
	}
	if profile.Birthday == "" {
		return nil, fmt.Errorf("%w: birthday for user %s", models.ErrProfileIncomplete, userID)
	}

	weather, err := cs.Weather.GetCurrent(ctx, *profile.Lat, *profile.Lon)
	if err != nil {
		return nil, err
	}

	temp := weather.Main.Temp
	feelsLike := weather.FeelsLikeOrTemp()
	band := rules.CategorizeTemperature(feelsLike)

	ageYears := rules.AgeYears(profile.Birthday, time.Now())
	group := rules.CoarseAgeGroup(ageYears)
	suggestion := rules.LookupSuggestion(group, band)

	specs := make([]rules.LayerSpec, 0, len(suggestion.Layers))
	for _, layer := range suggestion.Layers {
		specs = append(specs, rules.MapToLayerSpec(layer))
	}

	response := &models.ClothesResponse{
		UserID:   userID,
		AgeGroup: group,
		Temperature: models.ClothesTemperature{
			Value:     temp,
			FeelsLike: feelsLike,
			Category:  band,
		},
		Suggestion: suggestion,
		LayerSpecs: specs,
	}

	if withProducts && cs.Products != nil {
		response.Products = cs.Products.GetProductsForLayers(ctx, group, suggestion.Layers, userID)
	}

	return response, nil
}
