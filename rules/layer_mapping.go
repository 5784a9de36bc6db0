package rules

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// LayerSlot is a garment position category.
type LayerSlot string

const (
	SlotTopBase   LayerSlot = "top_base"
	SlotMidlayer  LayerSlot = "midlayer"
	SlotOuterwear LayerSlot = "outerwear"
	SlotBottom    LayerSlot = "bottom"
	SlotLegwear   LayerSlot = "legwear"
	SlotFootwear  LayerSlot = "footwear"
	SlotHeadwear  LayerSlot = "headwear"
	SlotHandwear  LayerSlot = "handwear"
	SlotAccessory LayerSlot = "accessory"
)

// ClothingCategory is a specific garment type within a slot.
type ClothingCategory string

const (
	CategoryTeeShort        ClothingCategory = "tee_short"
	CategoryTeeLong         ClothingCategory = "tee_long"
	CategoryShirt           ClothingCategory = "shirt"
	CategorySweater         ClothingCategory = "sweater"
	CategoryCardigan        ClothingCategory = "cardigan"
	CategoryHoodie          ClothingCategory = "hoodie"
	CategoryThermal         ClothingCategory = "thermal"
	CategoryJacketWindproof ClothingCategory = "jacket_windproof"
	CategoryCoatDown        ClothingCategory = "coat_down"
	CategoryCoatFleece      ClothingCategory = "coat_fleece"
	CategoryRainJacket      ClothingCategory = "rain_jacket"
	CategoryPants           ClothingCategory = "pants"
	CategoryShorts          ClothingCategory = "shorts"
	CategoryLeggings        ClothingCategory = "leggings"
	CategorySocks           ClothingCategory = "socks"
	CategoryHat             ClothingCategory = "hat"
	CategoryGloves          ClothingCategory = "gloves"
	CategoryScarf           ClothingCategory = "scarf"
	CategoryOnesie          ClothingCategory = "onesie"
)

// LayerAttributes describe garment properties used for search and display.
type LayerAttributes struct {
	WarmthLevel   int      `json:"warmthLevel,omitempty"` // 1-5 目安
	Windproof     bool     `json:"windproof,omitempty"`
	Waterproof    bool     `json:"waterproof,omitempty"`
	Breathability int      `json:"breathability,omitempty"` // 1-5 目安
	Materials     []string `json:"materials,omitempty"`
	Fit           string   `json:"fit,omitempty"`
	KidSafe       *bool    `json:"kidSafe,omitempty"`
}

// LayerSpec is the structured form of a free-text layer description.
type LayerSpec struct {
	Slot        LayerSlot        `json:"slot"`
	Category    ClothingCategory `json:"category"`
	DisplayName string           `json:"displayName"`
	Attributes  LayerAttributes  `json:"attributes"`
}

type layerRule struct {
	patterns []string
	all      bool // true なら patterns 全語一致（半袖×Tシャツ 等の複合条件）
	spec     func(name string) LayerSpec
}

func pick(slot LayerSlot, category ClothingCategory, name string, attrs LayerAttributes) LayerSpec {
	return LayerSpec{Slot: slot, Category: category, DisplayName: name, Attributes: attrs}
}

func boolPtr(v bool) *bool { return &v }

// 表記ゆれ吸収のため NFKC 正規化と小文字化を通してから判定する。より
// 特定的な語を先に置いた順序付きルールで、最初に一致したものを採用する。
var layerRules = []layerRule{
	{patterns: []string{"ダウン"}, spec: func(n string) LayerSpec {
		return pick(SlotOuterwear, CategoryCoatDown, n, LayerAttributes{WarmthLevel: 5})
	}},
	{patterns: []string{"フリース", "ボア"}, spec: func(n string) LayerSpec {
		return pick(SlotOuterwear, CategoryCoatFleece, n, LayerAttributes{WarmthLevel: 4})
	}},
	{patterns: []string{"レイン", "雨"}, spec: func(n string) LayerSpec {
		return pick(SlotOuterwear, CategoryRainJacket, n, LayerAttributes{Waterproof: true})
	}},
	{patterns: []string{"ロンパース", "カバーオール"}, spec: func(n string) LayerSpec {
		return pick(SlotTopBase, CategoryOnesie, n, LayerAttributes{KidSafe: boolPtr(true)})
	}},
	{patterns: []string{"インナー", "肌着"}, spec: func(n string) LayerSpec {
		return pick(SlotTopBase, CategoryThermal, n, LayerAttributes{WarmthLevel: 2})
	}},
	{patterns: []string{"トレーナー", "セーター", "ニット"}, spec: func(n string) LayerSpec {
		return pick(SlotMidlayer, CategorySweater, n, LayerAttributes{WarmthLevel: 3})
	}},
	{patterns: []string{"カーディガン"}, spec: func(n string) LayerSpec {
		return pick(SlotMidlayer, CategoryCardigan, n, LayerAttributes{WarmthLevel: 2})
	}},
	{patterns: []string{"パーカー"}, spec: func(n string) LayerSpec {
		return pick(SlotOuterwear, CategoryHoodie, n, LayerAttributes{WarmthLevel: 2})
	}},
	{patterns: []string{"半袖", "tシャツ"}, all: true, spec: func(n string) LayerSpec {
		return pick(SlotTopBase, CategoryTeeShort, n, LayerAttributes{Breathability: 3})
	}},
	{patterns: []string{"長袖", "tシャツ"}, all: true, spec: func(n string) LayerSpec {
		return pick(SlotTopBase, CategoryTeeLong, n, LayerAttributes{WarmthLevel: 2})
	}},
	{patterns: []string{"半袖", "シャツ"}, all: true, spec: func(n string) LayerSpec {
		return pick(SlotTopBase, CategoryShirt, n, LayerAttributes{Breathability: 3})
	}},
	{patterns: []string{"長袖", "シャツ"}, all: true, spec: func(n string) LayerSpec {
		return pick(SlotTopBase, CategoryShirt, n, LayerAttributes{WarmthLevel: 2})
	}},
	{patterns: []string{"アウター", "コート", "ジャケット"}, spec: func(n string) LayerSpec {
		return pick(SlotOuterwear, CategoryJacketWindproof, n, LayerAttributes{Windproof: true, WarmthLevel: 3})
	}},
	{patterns: []string{"短パン", "ハーフパンツ"}, spec: func(n string) LayerSpec {
		return pick(SlotBottom, CategoryShorts, n, LayerAttributes{})
	}},
	{patterns: []string{"ズボン", "パンツ"}, spec: func(n string) LayerSpec {
		return pick(SlotBottom, CategoryPants, n, LayerAttributes{})
	}},
	{patterns: []string{"レギンス"}, spec: func(n string) LayerSpec {
		return pick(SlotLegwear, CategoryLeggings, n, LayerAttributes{})
	}},
	{patterns: []string{"靴下", "ソックス", "ブーティ"}, spec: func(n string) LayerSpec {
		return pick(SlotFootwear, CategorySocks, n, LayerAttributes{})
	}},
	{patterns: []string{"帽子", "ニット帽"}, spec: func(n string) LayerSpec {
		return pick(SlotHeadwear, CategoryHat, n, LayerAttributes{})
	}},
	{patterns: []string{"手袋"}, spec: func(n string) LayerSpec {
		return pick(SlotHandwear, CategoryGloves, n, LayerAttributes{})
	}},
	{patterns: []string{"マフラー", "ネックウォーマー"}, spec: func(n string) LayerSpec {
		return pick(SlotAccessory, CategoryScarf, n, LayerAttributes{KidSafe: boolPtr(false)})
	}},
}

// MapToLayerSpec classifies a free-text layer name into a LayerSpec.
// Matching runs on the NFKC-normalized lower-cased form so full-width
// ASCII (Ｔシャツ 等) classifies the same as half-width. Unmatched input
// falls back to a long-sleeve top.
func MapToLayerSpec(name string) LayerSpec {
	n := strings.ToLower(norm.NFKC.String(name))
	for _, rule := range layerRules {
		if rule.all {
			matched := true
			for _, p := range rule.patterns {
				if !strings.Contains(n, p) {
					matched = false
					break
				}
			}
			if matched {
				return rule.spec(name)
			}
		} else if containsAny(n, rule.patterns) {
			return rule.spec(name)
		}
	}
	return pick(SlotTopBase, CategoryTeeLong, name, LayerAttributes{WarmthLevel: 2})
}
