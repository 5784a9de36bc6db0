package services

import (
	"context"
	"fmt"
	"time"

	"kisekae_server/models"
	"kisekae_server/rules"
)

// HomeService assembles the household view: one shared weather reading,
// one card per member, and a generated today message.
type HomeService struct {
	Repo          ProfileRepository
	Weather       WeatherAPI
	Illustrations IllustrationResolver
}

// GetHomeToday builds cards for the profile owner and every family
// member. All cards use the same current weather; each member's own
// birthday drives the age groups. The matrix is looked up with the
// coarse group and then adjusted for the fine group.
func (hs *HomeService) GetHomeToday(ctx context.Context, userID string) (*models.HomeTodayResponse, error) {
	profile, err := hs.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.HasLocation() {
		return nil, fmt.Errorf("%w: location for user %s", models.ErrProfileIncomplete, userID)
	}
	if profile.Birthday == "" {
		return nil, fmt.Errorf("%w: birthday for user %s", models.ErrProfileIncomplete, userID)
	}

	weather, err := hs.Weather.GetCurrent(ctx, *profile.Lat, *profile.Lon)
	if err != nil {
		return nil, err
	}

	feelsLike := weather.FeelsLikeOrTemp()
	band := rules.CategorizeTemperature(feelsLike)
	condition := weather.Condition()

	region := weather.Name
	if region == "" {
		region = profile.Region
	}

	now := time.Now()
	ownerName := profile.Nickname
	if ownerName == "" {
		ownerName = "あなた"
	}

	members := []models.HomeMemberCard{hs.buildCard(ctx, ownerName, profile.Birthday, band, now)}
	for _, member := range profile.Family {
		members = append(members, hs.buildCard(ctx, member.Name, member.Birthday, band, now))
	}

	message := rules.BuildTodayMessage(feelsLike, weather.Wind.Speed, weather.Main.Humidity, condition)

	return &models.HomeTodayResponse{
		// 今日のひとことは主カードの要約を使用
		Summary: members[0].Suggestion.Summary,
		Message: message,
		Weather: models.HomeWeather{
			Region:    region,
			Value:     weather.Main.Temp,
			FeelsLike: feelsLike,
			Humidity:  weather.Main.Humidity,
			WindSpeed: weather.Wind.Speed,
			Category:  band,
			Condition: condition,
		},
		Members: members,
	}, nil
}

func (hs *HomeService) buildCard(ctx context.Context, name, birthday string, band rules.TemperatureBand, now time.Time) models.HomeMemberCard {
	ageYears := rules.AgeYears(birthday, now)
	coarse := rules.CoarseAgeGroup(ageYears)
	fine := rules.FineAgeGroup(ageYears)

	suggestion := rules.LookupSuggestion(coarse, band)
	suggestion = rules.ApplyAgeAdjustment(fine, band, suggestion)

	illustrationURL := ""
	if hs.Illustrations != nil {
		illustrationURL = hs.Illustrations.ResolveURL(ctx, fine)
	}

	return models.HomeMemberCard{
		Name:            name,
		AgeGroup:        fine,
		Suggestion:      suggestion,
		IllustrationURL: illustrationURL,
	}
}
