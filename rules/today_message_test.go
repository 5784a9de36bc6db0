package rules

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestBuildTodayMessageBaseOnly(t *testing.T) {
	got := BuildTodayMessage(3, 1, 50, "clear")
	assert.Equal(t, TodayMessageTemplates[RecHeavyLayers], got)
}

func TestBuildTodayMessageBandSelection(t *testing.T) {
	tests := []struct {
		feelsLike float64
		want      RecommendationType
	}{
		{-2, RecHeavyLayers},
		{8, RecHeavyLayers},
		{13, RecAdjustableLayers},
		{18, RecAdjustableLayers},
		{23, RecLightLayers},
		{30, RecHeatAwareness},
	}
	for _, tt := range tests {
		got := BuildTodayMessage(tt.feelsLike, 0, 0, "clear")
		assert.True(t, strings.HasPrefix(got, TodayMessageTemplates[tt.want]), "feelsLike=%v", tt.feelsLike)
	}
}

func TestBuildTodayMessageSuffixes(t *testing.T) {
	got := BuildTodayMessage(8, 6, 85, "rain")

	assert.Contains(t, got, "風が強い場合は羽織で体温調節を")
	assert.Contains(t, got, "湿度が高い時は汗対策を")
	assert.Contains(t, got, "外出は天候に合わせて無理なく")
}

func TestBuildTodayMessageSuffixThresholds(t *testing.T) {
	// 風速ちょうど5は付与しない、湿度ちょうど80は付与する
	got := BuildTodayMessage(8, 5, 80, "clouds")
	assert.NotContains(t, got, "風が強い場合")
	assert.Contains(t, got, "湿度が高い時は汗対策を")
}

func TestBuildTodayMessageNeverExceeds200Runes(t *testing.T) {
	conditions := []string{"clear", "rain", "drizzle", "snow", "clouds"}
	for _, cond := range conditions {
		for _, feelsLike := range []float64{-5, 8, 13, 23, 35} {
			for _, wind := range []float64{0, 10} {
				for _, humidity := range []float64{40, 95} {
					got := BuildTodayMessage(feelsLike, wind, humidity, cond)
					assert.LessOrEqual(t, utf8.RuneCountInString(got), 200)
					assert.NotEmpty(t, got)
				}
			}
		}
	}
}
