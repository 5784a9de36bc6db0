package rules

import (
	"strconv"
	"strings"
	"time"
)

// AgeGroup is the coarse 3-value life-stage bucket keying the clothing matrix.
type AgeGroup string

const (
	AgeInfant  AgeGroup = "infant"
	AgeToddler AgeGroup = "toddler"
	AgeChild   AgeGroup = "child"
)

// AllAgeGroups lists the coarse groups in ascending age order.
var AllAgeGroups = []AgeGroup{AgeInfant, AgeToddler, AgeChild}

// GeneralAgeGroup is the fine 6-value bucket used for the adjustment pass
// and household member display.
type GeneralAgeGroup string

const (
	GeneralInfant  GeneralAgeGroup = "infant"
	GeneralToddler GeneralAgeGroup = "toddler"
	GeneralChild   GeneralAgeGroup = "child"
	GeneralTeen    GeneralAgeGroup = "teen"
	GeneralAdult   GeneralAgeGroup = "adult"
	GeneralSenior  GeneralAgeGroup = "senior"
)

// AllGeneralAgeGroups lists the fine groups in ascending age order.
var AllGeneralAgeGroups = []GeneralAgeGroup{
	GeneralInfant, GeneralToddler, GeneralChild, GeneralTeen, GeneralAdult, GeneralSenior,
}

// AgeYears computes the whole-year age for a "YYYY-MM-DD" birthday as of
// today. The year difference is decremented when this year's birthday has
// not happened yet. A malformed birthday yields 0 (safe fallback) and a
// future birthday clamps to 0.
func AgeYears(birthday string, today time.Time) int {
	parts := strings.SplitN(birthday, "-", 3)
	if len(parts) != 3 {
		return 0
	}
	y, errY := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	d, errD := strconv.Atoi(parts[2])
	if errY != nil || errM != nil || errD != nil || y == 0 || m == 0 || d == 0 {
		return 0
	}

	age := today.Year() - y
	beforeBirthdayThisYear := int(today.Month()) < m ||
		(int(today.Month()) == m && today.Day() < d)
	if beforeBirthdayThisYear {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// CoarseAgeGroup buckets a whole-year age for matrix lookups.
func CoarseAgeGroup(ageYears int) AgeGroup {
	switch {
	case ageYears < 1:
		return AgeInfant
	case ageYears < 6:
		return AgeToddler
	default:
		return AgeChild
	}
}

// FineAgeGroup buckets a whole-year age for adjustment rules and display.
func FineAgeGroup(ageYears int) GeneralAgeGroup {
	switch {
	case ageYears < 1:
		return GeneralInfant
	case ageYears < 6:
		return GeneralToddler
	case ageYears < 12:
		return GeneralChild
	case ageYears < 20:
		return GeneralTeen
	case ageYears < 65:
		return GeneralAdult
	default:
		return GeneralSenior
	}
}
