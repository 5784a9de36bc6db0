package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var today = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestAgeYears(t *testing.T) {
	tests := []struct {
		name     string
		birthday string
		want     int
	}{
		{"birthday already passed this year", "2020-03-01", 5},
		{"birthday later this year", "2020-09-01", 4},
		{"birthday today", "2020-06-15", 5},
		{"birthday tomorrow", "2020-06-16", 4},
		{"exactly one year ago", "2024-06-15", 1},
		{"under one year", "2024-12-01", 0},
		{"future birthday clamps to zero", "2030-01-01", 0},
		{"malformed: not numeric", "abcd-ef-gh", 0},
		{"malformed: missing parts", "2020-06", 0},
		{"malformed: empty", "", 0},
		{"slash format is not parsed", "2020/06/15", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeYears(tt.birthday, today))
		})
	}
}

func TestCoarseAgeGroup(t *testing.T) {
	assert.Equal(t, AgeInfant, CoarseAgeGroup(0))
	assert.Equal(t, AgeToddler, CoarseAgeGroup(1))
	assert.Equal(t, AgeToddler, CoarseAgeGroup(5))
	assert.Equal(t, AgeChild, CoarseAgeGroup(6))
	assert.Equal(t, AgeChild, CoarseAgeGroup(40))
}

func TestFineAgeGroup(t *testing.T) {
	tests := []struct {
		age  int
		want GeneralAgeGroup
	}{
		{0, GeneralInfant},
		{1, GeneralToddler},
		{5, GeneralToddler},
		{6, GeneralChild},
		{11, GeneralChild},
		{12, GeneralTeen},
		{19, GeneralTeen},
		{20, GeneralAdult},
		{64, GeneralAdult},
		{65, GeneralSenior},
		{90, GeneralSenior},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FineAgeGroup(tt.age), "age=%d", tt.age)
	}
}

func TestCoarseAndFineAgreeOnSharedThresholds(t *testing.T) {
	// 1歳ちょうどは両方とも toddler
	birthday := "2024-06-15"
	age := AgeYears(birthday, today)
	assert.Equal(t, AgeToddler, CoarseAgeGroup(age))
	assert.Equal(t, GeneralToddler, FineAgeGroup(age))
}
