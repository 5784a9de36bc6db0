package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kisekae_server/models"
)

func boolPtr(v bool) *bool { return &v }

func validSaveRequest() models.SaveProfileRequest {
	return models.SaveProfileRequest{
		Region:               "Setagaya",
		Birthday:             "1991-04-01",
		Gender:               "female",
		NotificationsEnabled: boolPtr(true),
		Nickname:             "はは",
	}
}

func TestValidateStructAcceptsValidRequest(t *testing.T) {
	assert.Nil(t, ValidateStruct(validSaveRequest()))
}

func TestValidateStructMissingRequiredFields(t *testing.T) {
	details := ValidateStruct(models.SaveProfileRequest{})
	require.NotNil(t, details)

	require.Contains(t, details, "region")
	assert.Equal(t, "E001_INVALID_TYPE", details["region"][0].Code)
	require.Contains(t, details, "birthday")
	require.Contains(t, details, "notificationsEnabled")
}

func TestValidateStructBirthdayFormat(t *testing.T) {
	req := validSaveRequest()
	req.Birthday = "01-04-1991"

	details := ValidateStruct(req)
	require.Contains(t, details, "birthday")
	assert.Equal(t, "E004_INVALID_STRING", details["birthday"][0].Code)
	assert.Equal(t, "文字列の形式が正しくありません。", details["birthday"][0].Message)
}

func TestValidateStructGenderEnum(t *testing.T) {
	req := validSaveRequest()
	req.Gender = "unknown"

	details := ValidateStruct(req)
	require.Contains(t, details, "gender")
	assert.Equal(t, "E005_INVALID_ENUM", details["gender"][0].Code)
}

func TestValidateStructFamilyMemberFieldPath(t *testing.T) {
	req := validSaveRequest()
	req.Family = []models.FamilyMemberInput{
		{Name: "たろう", Birthday: "2024-12-01", Gender: "male"},
		{Name: "", Birthday: "not-a-date", Gender: "female"},
	}

	details := ValidateStruct(req)
	require.NotNil(t, details)
	// ネストは JSON のフィールド名とインデックスで報告される
	require.Contains(t, details, "family[1].name")
	require.Contains(t, details, "family[1].birthday")
	assert.Equal(t, "E004_INVALID_STRING", details["family[1].birthday"][0].Code)
	assert.NotContains(t, details, "family[0].name")
}

func TestValidateStructFamilyAcceptsSlashBirthday(t *testing.T) {
	req := validSaveRequest()
	req.Family = []models.FamilyMemberInput{
		{Name: "たろう", Birthday: "2024/12/01", Gender: "male"},
	}
	assert.Nil(t, ValidateStruct(req))
}

func TestValidateStructFamilyTooLarge(t *testing.T) {
	req := validSaveRequest()
	for i := 0; i <= models.MaxFamilyMembers; i++ {
		req.Family = append(req.Family, models.FamilyMemberInput{
			Name: "member", Birthday: "2020-01-01", Gender: "other",
		})
	}

	details := ValidateStruct(req)
	require.Contains(t, details, "family")
	assert.Equal(t, "E003_TOO_BIG", details["family"][0].Code)
}

func TestNormalizeBirthday(t *testing.T) {
	assert.Equal(t, "2024-12-01", NormalizeBirthday("2024/12/01"))
	assert.Equal(t, "2024-12-01", NormalizeBirthday("2024-12-01"))
}
