package rules

import "strings"

// 年齢補正思想:
// - infant/toddler/child: 既存マトリクスそのまま
// - teen: 軽装寄せ（中間着・付属品を控えめ）
// - adult: 最小限（必要最低限の重ね着）
// - senior: 基準寄せで安全側、暑熱・軽装帯のみ付属品削除

var (
	matchMiddle      = []string{"トレーナー", "セーター", "フリース", "中間着"}
	matchHeavyOuter  = []string{"中綿", "ダウン", "ボア"}
	matchAccessories = []string{"帽子", "手袋", "厚手ソックス"}
	matchLightOuter  = []string{"薄手パーカー", "カーディガン", "羽織"}
)

// AdjustmentRule filters layers from a base matrix suggestion. An empty
// rule means no adjustment.
type AdjustmentRule struct {
	// Remove drops layers containing any of these substrings.
	Remove []string
	// PreferLightOuter additionally drops heavy outerwear (中綿/ダウン/ボア).
	PreferLightOuter bool
}

func concat(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// AdjustmentRules maps (fine age group, band) to its optional rule.
// Every combination has an entry so lookups are total.
var AdjustmentRules = map[GeneralAgeGroup]map[TemperatureBand]AdjustmentRule{
	GeneralInfant: {
		BandVeryCold: {}, BandCold: {}, BandCool: {}, BandMild: {}, BandWarm: {}, BandHot: {},
	},
	GeneralToddler: {
		BandVeryCold: {}, BandCold: {}, BandCool: {}, BandMild: {}, BandWarm: {}, BandHot: {},
	},
	GeneralChild: {
		BandVeryCold: {}, BandCold: {}, BandCool: {}, BandMild: {}, BandWarm: {}, BandHot: {},
	},
	GeneralTeen: {
		BandVeryCold: {Remove: matchAccessories},
		BandCold:     {Remove: concat(matchMiddle, matchAccessories)},
		BandCool:     {Remove: concat(matchMiddle, matchAccessories), PreferLightOuter: true},
		BandMild:     {Remove: concat(matchMiddle, matchAccessories), PreferLightOuter: true},
		BandWarm:     {Remove: concat(matchLightOuter, matchAccessories)},
		BandHot:      {Remove: concat(matchLightOuter, matchAccessories)},
	},
	GeneralAdult: {
		// very_cold では付属品は任意なので残す
		BandVeryCold: {Remove: matchMiddle},
		BandCold:     {Remove: concat(matchMiddle, matchAccessories)},
		BandCool:     {Remove: concat(matchMiddle, matchAccessories), PreferLightOuter: true},
		BandMild:     {Remove: concat(matchMiddle, matchAccessories), PreferLightOuter: true},
		BandWarm:     {Remove: concat(matchLightOuter, matchAccessories)},
		BandHot:      {Remove: concat(matchLightOuter, matchAccessories)},
	},
	GeneralSenior: {
		BandVeryCold: {},
		BandCold:     {},
		BandCool:     {},
		BandMild:     {PreferLightOuter: true},
		BandWarm:     {Remove: concat(matchLightOuter, matchAccessories)},
		BandHot:      {Remove: concat(matchLightOuter, matchAccessories)},
	},
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// ApplyAgeAdjustment applies the fine-age-group adjustment to a base
// matrix suggestion. Notes pass through unchanged. A second application
// removes nothing further (filtering is a fixed point after one pass).
func ApplyAgeAdjustment(group GeneralAgeGroup, band TemperatureBand, base ClothingSuggestion) ClothingSuggestion {
	rule := AdjustmentRules[group][band]
	if len(rule.Remove) == 0 && !rule.PreferLightOuter {
		return base
	}

	filtered := make([]string, 0, len(base.Layers))
	for _, layer := range base.Layers {
		if len(rule.Remove) > 0 && containsAny(layer, rule.Remove) {
			continue
		}
		if rule.PreferLightOuter && containsAny(layer, matchHeavyOuter) {
			continue
		}
		filtered = append(filtered, layer)
	}

	// summary はトーン維持のため簡潔に補足（末尾の句点を重ねない）
	summary := strings.TrimSuffix(base.Summary, "。") + "。脱ぎ着しやすい構成で過ごしましょう。"

	return ClothingSuggestion{
		Summary:    summary,
		Layers:     filtered,
		Notes:      base.Notes,
		References: base.References,
	}
}
