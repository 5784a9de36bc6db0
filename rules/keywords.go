package rules

import "strings"

// 楽天商品検索の keyword 生成ロジック
//
// 服装レイヤー説明（自然文）と年齢層から、検索精度の高い語句列を合成する。
// 表記ゆれを代表語へ正規化し、年齢コンテキスト（ベビー/キッズ等）で
// 検索結果の関連性を上げる。ここでは純粋にルールのみを扱い、HTTP や
// 外部 IO は services 層へ委譲する。

type keywordRule struct {
	patterns []string
	keyword  string
}

// 多様な表記（例: セーター/ニット）を検索に強い代表語へ統一する辞書。
// 全ルールを走査して一致した代表語をすべて収集する（first-wins ではない）。
var tokenRules = []keywordRule{
	{[]string{"ロンパース", "肌着"}, "ロンパース"},
	{[]string{"カバーオール"}, "カバーオール"},
	{[]string{"中綿", "ダウン"}, "ダウン"},
	{[]string{"フリース"}, "フリース"},
	{[]string{"アウター", "コート", "ジャケット"}, "アウター"},
	{[]string{"帽子"}, "帽子"},
	{[]string{"手袋"}, "手袋"},
	{[]string{"靴下", "ソックス", "ブーティ"}, "靴下"},
	{[]string{"ブランケット"}, "ブランケット"},
	{[]string{"長袖Tシャツ", "長袖インナー", "長袖シャツ"}, "長袖Tシャツ"},
	{[]string{"半袖Tシャツ", "半袖シャツ"}, "半袖Tシャツ"},
	{[]string{"薄手パーカー", "パーカー"}, "パーカー"},
	{[]string{"カーディガン"}, "カーディガン"},
	{[]string{"トレーナー", "セーター", "ニット"}, "トレーナー"},
	{[]string{"短パン", "ハーフパンツ"}, "ハーフパンツ"},
	{[]string{"ズボン", "パンツ"}, "パンツ"},
}

// 年齢層に応じて検索語へ前置するプレフィックス。同一アイテムでも年齢帯で
// 商品群が分かれるため、関連性の高い結果へバイアスする。
var agePrefixes = map[AgeGroup][]string{
	AgeInfant:  {"ベビー"},
	AgeToddler: {"キッズ", "幼児"},
	AgeChild:   {"キッズ", "子供"},
}

// stripAnnotations removes bracketed notes (full/half-width) and turns
// list-separator punctuation into spaces before dictionary matching.
func stripAnnotations(layer string) string {
	var b strings.Builder
	depth := 0
	for _, r := range layer {
		switch r {
		case '（', '(':
			depth++
		case '）', ')':
			if depth > 0 {
				depth--
			}
		case '、', '・':
			if depth == 0 {
				b.WriteRune(' ')
			}
		default:
			if depth == 0 {
				b.WriteRune(r)
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// MapLayerToKeyword builds the marketplace search keyword string for a
// layer description: age prefixes first, then the dictionary tokens found
// in the cleaned text (insertion order, deduplicated). When no token
// matches, the first whitespace-delimited word of the cleaned text is
// used so unknown input still yields a searchable term.
func MapLayerToKeyword(group AgeGroup, layer string) string {
	normalized := stripAnnotations(layer)

	seen := map[string]bool{}
	var tokens []string
	for _, rule := range tokenRules {
		if containsAny(normalized, rule.patterns) && !seen[rule.keyword] {
			seen[rule.keyword] = true
			tokens = append(tokens, rule.keyword)
		}
	}

	// 未知語でも最低限の検索が成立するようにする安全策
	if len(tokens) == 0 {
		if fallback := strings.Fields(normalized); len(fallback) > 0 {
			tokens = append(tokens, fallback[0])
		}
	}

	prefixes := agePrefixes[group]
	ordered := make([]string, 0, len(prefixes)+len(tokens))
	ordered = append(ordered, prefixes...)
	for _, t := range tokens {
		duplicate := false
		for _, p := range prefixes {
			if t == p {
				duplicate = true
				break
			}
		}
		if !duplicate {
			ordered = append(ordered, t)
		}
	}

	return strings.Join(ordered, " ")
}
