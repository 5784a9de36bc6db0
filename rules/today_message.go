package rules

import "strings"

// RecommendationType groups temperature bands into four layering stances
// for the today message.
type RecommendationType string

const (
	RecHeavyLayers      RecommendationType = "heavy_layers"      // しっかり防寒
	RecAdjustableLayers RecommendationType = "adjustable_layers" // 脱ぎ着で調整
	RecLightLayers      RecommendationType = "light_layers"      // 軽装寄り
	RecHeatAwareness    RecommendationType = "heat_awareness"    // 暑さへの注意
)

// BandToRecommendation maps each temperature band to its stance.
var BandToRecommendation = map[TemperatureBand]RecommendationType{
	BandVeryCold: RecHeavyLayers,
	BandCold:     RecHeavyLayers,
	BandCool:     RecAdjustableLayers,
	BandMild:     RecAdjustableLayers,
	BandWarm:     RecLightLayers,
	BandHot:      RecHeatAwareness,
}

// TodayMessageTemplates holds the base sentence per stance (1〜2文、
// 200 文字以内を想定).
var TodayMessageTemplates = map[RecommendationType]string{
	RecHeavyLayers:      "寒い一日。重ね着でしっかり保温し、屋内では脱ぎ着で体温調整を。",
	RecAdjustableLayers: "気温差に備えて、薄手＋羽織で調整できる服装がおすすめです。",
	RecLightLayers:      "過ごしやすい〜少し暖かい一日。軽めの服装で、動きやすさを優先しましょう。",
	RecHeatAwareness:    "暑い一日。通気性の良い軽装と、こまめな水分補給を心がけて。",
}

const (
	windSuffixThreshold     = 5.0
	humiditySuffixThreshold = 80.0
	maxMessageRunes         = 200
)

var wetConditions = map[string]bool{"rain": true, "drizzle": true, "snow": true}

// buildSuffix adds short clauses for wind, humidity and wet conditions.
func buildSuffix(windSpeed, humidity float64, condition string) string {
	var suffix []string
	if windSpeed > windSuffixThreshold {
		suffix = append(suffix, "風が強い場合は羽織で体温調節を")
	}
	if humidity >= humiditySuffixThreshold {
		suffix = append(suffix, "湿度が高い時は汗対策を")
	}
	if wetConditions[condition] {
		suffix = append(suffix, "外出は天候に合わせて無理なく")
	}
	if len(suffix) == 0 {
		return ""
	}
	return " " + strings.Join(suffix, "。") + "。"
}

// BuildTodayMessage derives the short daily summary sentence from the
// feels-like temperature, wind, humidity and condition. The result never
// exceeds 200 characters; longer output is cut at 198 characters plus an
// ellipsis, regardless of clause boundaries.
func BuildTodayMessage(feelsLike, windSpeed, humidity float64, condition string) string {
	band := CategorizeTemperature(feelsLike)
	base := TodayMessageTemplates[BandToRecommendation[band]]
	message := strings.TrimSpace(base + buildSuffix(windSpeed, humidity, condition))

	runes := []rune(message)
	if len(runes) > maxMessageRunes {
		return string(runes[:maxMessageRunes-2]) + "…"
	}
	return message
}
