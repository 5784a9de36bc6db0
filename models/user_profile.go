package models

// FamilyMember is one household member on a profile. Birthday is stored
// canonically as YYYY-MM-DD.
type FamilyMember struct {
	Name     string `json:"name" dynamodbav:"name"`
	Birthday string `json:"birthday" dynamodbav:"birthday"`
	Gender   string `json:"gender" dynamodbav:"gender"`
}

// UserProfile is the persisted profile entity. Region is resolved to
// coordinates on save so later weather lookups skip geocoding.
type UserProfile struct {
	UserID               string         `json:"userId" dynamodbav:"userId"`
	Region               string         `json:"region" dynamodbav:"region,omitempty"`
	Birthday             string         `json:"birthday" dynamodbav:"birthday,omitempty"`
	Gender               string         `json:"gender" dynamodbav:"gender,omitempty"`
	NotificationsEnabled bool           `json:"notificationsEnabled" dynamodbav:"notificationsEnabled"`
	Nickname             string         `json:"nickname" dynamodbav:"nickname,omitempty"`
	Lat                  *float64       `json:"lat,omitempty" dynamodbav:"lat,omitempty"`
	Lon                  *float64       `json:"lon,omitempty" dynamodbav:"lon,omitempty"`
	Family               []FamilyMember `json:"family" dynamodbav:"family,omitempty"`
}

// HasLocation reports whether the profile carries resolved coordinates.
// Pointers keep an unset coordinate distinguishable from a legitimate 0
// (equator, prime meridian).
func (p *UserProfile) HasLocation() bool {
	return p.Lat != nil && p.Lon != nil
}

// MaxFamilyMembers caps the family list on a profile.
const MaxFamilyMembers = 10

// UserProfilesTable is the DynamoDB table name for user profiles.
const UserProfilesTable = "UserProfile"
