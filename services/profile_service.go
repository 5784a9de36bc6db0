package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"kisekae_server/models"
	"kisekae_server/utils"
)

// ProfileService orchestrates profile persistence. Region names are
// resolved to coordinates on save so recommendation and weather lookups
// never need to geocode again.
type ProfileService struct {
	Repo    ProfileRepository
	Weather WeatherAPI
}

// CreateProfile generates a userId, geocodes the region and persists the
// profile. The family list is only stored when non-empty.
func (ps *ProfileService) CreateProfile(ctx context.Context, req models.SaveProfileRequest) (string, error) {
	lat, lon, err := ps.Weather.GetLatLon(ctx, req.Region)
	if err != nil {
		return "", fmt.Errorf("failed to resolve region %q: %w", req.Region, err)
	}

	userID := uuid.NewString()
	profile := models.UserProfile{
		UserID:               userID,
		Region:               req.Region,
		Birthday:             req.Birthday,
		Gender:               req.Gender,
		NotificationsEnabled: req.NotificationsEnabled != nil && *req.NotificationsEnabled,
		Nickname:             req.Nickname,
		Lat:                  &lat,
		Lon:                  &lon,
		Family:               toFamilyMembers(req.Family),
	}

	if err := ps.Repo.Put(ctx, profile); err != nil {
		return "", err
	}
	log.Printf("Profile created: userId=%s region=%s\n", userID, req.Region)
	return userID, nil
}

// GetProfile loads a profile by id.
func (ps *ProfileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	return ps.Repo.GetByID(ctx, userID)
}

// UpdateProfile writes only the supplied fields. A region change is
// re-geocoded so the stored coordinates stay consistent with it.
func (ps *ProfileService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) error {
	if req.IsEmpty() {
		return models.ErrNothingToUpdate
	}

	changes := map[string]interface{}{}
	if req.Region != nil {
		lat, lon, err := ps.Weather.GetLatLon(ctx, *req.Region)
		if err != nil {
			return fmt.Errorf("failed to resolve region %q: %w", *req.Region, err)
		}
		changes["region"] = *req.Region
		changes["lat"] = lat
		changes["lon"] = lon
	}
	if req.Birthday != nil {
		changes["birthday"] = *req.Birthday
	}
	if req.Gender != nil {
		changes["gender"] = *req.Gender
	}
	if req.NotificationsEnabled != nil {
		changes["notificationsEnabled"] = *req.NotificationsEnabled
	}
	if req.Nickname != nil {
		changes["nickname"] = *req.Nickname
	}

	return ps.Repo.Update(ctx, userID, changes)
}

// ReplaceFamily swaps the whole family list. An empty list removes the
// attribute instead of storing an empty list.
func (ps *ProfileService) ReplaceFamily(ctx context.Context, userID string, family []models.FamilyMemberInput) error {
	if len(family) == 0 {
		return ps.Repo.RemoveFamily(ctx, userID)
	}
	return ps.Repo.Update(ctx, userID, map[string]interface{}{
		"family": toFamilyMembers(family),
	})
}

// toFamilyMembers normalizes incoming birthdays to the canonical format.
func toFamilyMembers(inputs []models.FamilyMemberInput) []models.FamilyMember {
	if len(inputs) == 0 {
		return nil
	}
	members := make([]models.FamilyMember, 0, len(inputs))
	for _, in := range inputs {
		members = append(members, models.FamilyMember{
			Name:     in.Name,
			Birthday: utils.NormalizeBirthday(in.Birthday),
			Gender:   in.Gender,
		})
	}
	return members
}
